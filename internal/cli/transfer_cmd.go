package cli

import (
	"fmt"

	"github.com/alexanderramin/weekly/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		out    string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export activities and notes as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if stdout {
				data, err := app.Transfer.Export(ctx)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := out
			if path == "" {
				path = app.ExportFile
			}
			if path == "" {
				path = importer.DefaultFileName
			}
			n, err := app.Transfer.ExportToFile(ctx, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities to %s\n", n, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: "+importer.DefaultFileName+")")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the document to stdout")
	cmd.MarkFlagsMutuallyExclusive("out", "stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all activities with those of an exported document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() && len(app.Activities.List()) > 0 {
				confirmed := false
				prompt := fmt.Sprintf("Replace %d existing activities?", len(app.Activities.List()))
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			res, err := app.Transfer.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d activities and %d note entries from %s\n",
				res.Activities, res.Notes, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
