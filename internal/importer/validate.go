package importer

import (
	"fmt"
)

// ValidateRecords checks every record before conversion and returns all
// problems found. Records without an id are accepted; Convert assigns one.
func ValidateRecords(records []Record) []error {
	var errs []error
	seen := make(map[string]int)

	for i := range records {
		a := records[i].Activity.Clone()
		a.Normalize()
		if err := a.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%q): %w", i, a.Title, err))
		}
		if a.ID != "" {
			if prev, dup := seen[a.ID]; dup {
				errs = append(errs, fmt.Errorf("record %d: id %q already used by record %d", i, a.ID, prev))
			} else {
				seen[a.ID] = i
			}
		}
	}

	return errs
}
