package importer

import (
	"testing"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordOf(a *domain.Activity) Record {
	return Record{Activity: *a}
}

func TestValidateRecords_Valid(t *testing.T) {
	errs := ValidateRecords([]Record{
		recordOf(testutil.NewTestActivity("Run")),
		recordOf(testutil.NewTestActivity("Read", testutil.WithID(""))),
		recordOf(testutil.NewTestActivity("Pray", testutil.WithID(""))),
	})
	assert.Empty(t, errs)
}

func TestValidateRecords_CollectsAllErrors(t *testing.T) {
	bad := testutil.NewTestActivity("")
	unknown := testutil.NewTestActivity("Cook", testutil.WithDomain("kitchen"))
	noWeek := testutil.NewTestActivity("Walk")
	noWeek.WeekNumber = 0

	errs := ValidateRecords([]Record{recordOf(bad), recordOf(unknown), recordOf(noWeek)})
	require.Len(t, errs, 3)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrInvalidActivity)
	}
	assert.Contains(t, errs[0].Error(), "record 0")
	assert.Contains(t, errs[1].Error(), "unknown domain")
}

func TestValidateRecords_DuplicateIDs(t *testing.T) {
	errs := ValidateRecords([]Record{
		recordOf(testutil.NewTestActivity("A", testutil.WithID("same"))),
		recordOf(testutil.NewTestActivity("B", testutil.WithID("same"))),
	})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "already used by record 0")
}
