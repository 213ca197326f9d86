package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/importer"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedTransfer stores two activities in different weeks plus notes for both.
func seedTransfer(t *testing.T, svc *testServices) {
	t.Helper()
	ctx := context.Background()
	w := testutil.TestWeek

	require.NoError(t, svc.store.Add(ctx, testutil.NewTestActivity("Run",
		testutil.WithCompleted(1, 3),
		testutil.WithTargetCount(3),
		testutil.WithReminder("06:30", 1))))
	require.NoError(t, svc.store.Add(ctx, testutil.NewTestActivity("Read",
		testutil.WithDomain("learning"),
		testutil.WithWeek(w.Next()),
		testutil.WithDescription("20 pages"))))

	require.NoError(t, svc.notes.SetPositiveNoteSlot(ctx, w, 1, 0, "good sleep"))
	require.NoError(t, svc.notes.SetFreeWriting(ctx, w, 1, "first run in weeks"))
	require.NoError(t, svc.notes.SetFreeWriting(ctx, w.Next(), 6, "quiet saturday"))
}

func TestTransfer_ExportImportRoundTrip(t *testing.T) {
	src := newTestServices(t)
	seedTransfer(t, src)
	ctx := context.Background()

	data, err := src.transfer.Export(ctx)
	require.NoError(t, err)

	dst := newTestServices(t)
	require.NoError(t, dst.store.Add(ctx, testutil.NewTestActivity("Replaced")))

	res, err := dst.transfer.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Activities)
	assert.Equal(t, 2, res.Notes)

	assert.Equal(t, src.store.List(), dst.store.List())

	for _, w := range []weekcal.Week{testutil.TestWeek, testutil.TestWeek.Next()} {
		want, err := src.notes.WeekNotes(ctx, w)
		require.NoError(t, err)
		got, err := dst.notes.WeekNotes(ctx, w)
		require.NoError(t, err)
		assert.Equal(t, want, got, "notes for %s", w)
	}

	stored, err := repository.NewSQLiteActivityRepo(dst.db).LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, dst.store.List(), stored)
}

func TestTransfer_ExportShape(t *testing.T) {
	svc := newTestServices(t)
	seedTransfer(t, svc)

	data, err := svc.transfer.Export(context.Background())
	require.NoError(t, err)

	records, err := importer.Parse(data)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "good sleep", records[0].PositiveNotes[1][0])
	assert.Equal(t, map[int]string{1: "first run in weeks"}, records[0].FreeWriting)
	assert.Equal(t, map[int]string{6: "quiet saturday"}, records[1].FreeWriting)
	assert.Nil(t, records[1].PositiveNotes)

	assert.Contains(t, string(data), "\n  {\n")
	assert.Contains(t, string(data), `"domainId": "health"`)
	assert.Contains(t, string(data), `"freeWriting-1": "first run in weeks"`)
}

func TestTransfer_ExportEmpty(t *testing.T) {
	svc := newTestServices(t)
	data, err := svc.transfer.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestTransfer_ImportRejectsWithoutChange(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"malformed", `[{"title":`, importer.ErrMalformed},
		{"object", `{"activities": []}`, importer.ErrNotArray},
		{"invalid record", `[{"title":"","domainId":"health","selectedDays":[1],"weekNumber":42,"year":2026}]`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestServices(t)
			ctx := context.Background()
			a := testutil.NewTestActivity("Keep")
			require.NoError(t, svc.store.Add(ctx, a))

			_, err := svc.transfer.Import(ctx, []byte(tc.input))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			} else {
				assert.Contains(t, err.Error(), "import validation failed")
			}
			assert.Equal(t, []*domain.Activity{a}, svc.store.List())

			stored, err := repository.NewSQLiteActivityRepo(svc.db).LoadAll(ctx)
			require.NoError(t, err)
			require.Len(t, stored, 1)
			assert.Equal(t, a.ID, stored[0].ID)
		})
	}
}

func TestTransfer_ImportRollsBackWhenNoteWriteFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	// Exec #1 writes the activity collection, #2 is the first note.
	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("injected note failure")}
	svc := newTestServicesWithUoW(t, database, failUoW)
	ctx := context.Background()

	before := testutil.NewTestActivity("Before")
	require.NoError(t, svc.store.Add(ctx, before))

	doc := `[{"id":"new-1","title":"Imported","domainId":"health","selectedDays":[2],
		"completedDays":{},"weekNumber":42,"year":2026,"createdAt":"2026-10-11T08:00:00Z",
		"freeWriting-2":"should not survive"}]`

	_, err := svc.transfer.Import(ctx, []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected note failure")

	assert.Equal(t, []*domain.Activity{before}, svc.store.List())
	stored, err := repository.NewSQLiteActivityRepo(database).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, before.ID, stored[0].ID)

	_, err = repository.NewSQLiteNotesRepo(database).GetFreeWriting(ctx, testutil.TestWeek, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransfer_ImportDocumentFromBrowser(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	doc := `[{"id":"1728633600000","title":"Quran","domainId":"spiritual","selectedDays":[0,1,2,3,4,5,6],
		"allowSunday":true,"completedDays":{"0":true,"1":true},"weekNumber":42,"year":2026,
		"createdAt":"2026-10-11T06:00:00.000Z","positiveNotes-0":["a","b","c","d","e"]},
		{"title":"Save","domainId":"financial","selectedDays":[5],"completedDays":{},
		"weekNumber":43,"year":2026}]`

	res, err := svc.transfer.Import(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Activities)

	got, err := svc.store.Get("1728633600000")
	require.NoError(t, err)
	assert.Equal(t, 2, got.CompletedCount())

	list := svc.store.ListByWeek(weekcal.Week{Number: 43, Year: 2026})
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, fixedNow, list[0].CreatedAt)

	notes, err := svc.notes.GetPositiveNotes(ctx, testutil.TestWeek, 0)
	require.NoError(t, err)
	assert.Equal(t, [domain.PositiveNoteSlots]string{"a", "b", "c", "d", "e"}, notes)
}

func TestTransfer_FileRoundTrip(t *testing.T) {
	src := newTestServices(t)
	seedTransfer(t, src)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "backup", importer.DefaultFileName)

	n, err := src.transfer.ExportToFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = os.Stat(path)
	require.NoError(t, err)

	dst := newTestServices(t)
	res, err := dst.transfer.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Activities)
	assert.Equal(t, src.store.List(), dst.store.List())

	_, err = dst.transfer.ImportFile(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
