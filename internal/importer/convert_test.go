package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_FillsMissingIDAndCreatedAt(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	a := testutil.NewTestActivity("Run", testutil.WithID(""))
	a.CreatedAt = time.Time{}

	out := Convert([]Record{recordOf(a)}, now)
	require.Len(t, out.Activities, 1)
	assert.NotEmpty(t, out.Activities[0].ID)
	assert.Equal(t, now, out.Activities[0].CreatedAt)
	assert.Empty(t, out.Notes)
}

func TestConvert_PreservesIdentityAndWeek(t *testing.T) {
	w := weekcal.Week{Number: 1, Year: 2027}
	a := testutil.NewTestActivity("Read", testutil.WithID("keep-me"), testutil.WithWeek(w), testutil.WithDays(3, 1, 3))

	out := Convert([]Record{recordOf(a)}, time.Now())
	got := out.Activities[0]
	assert.Equal(t, "keep-me", got.ID)
	assert.Equal(t, w, got.Week())
	assert.Equal(t, []int{1, 3}, got.SelectedDays)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)
}

func TestConvert_NotesFollowRecordWeek(t *testing.T) {
	w := weekcal.Week{Number: 7, Year: 2026}
	rec := recordOf(testutil.NewTestActivity("Journal", testutil.WithWeek(w)))
	rec.PositiveNotes = map[int][domain.PositiveNoteSlots]string{4: {"x"}}
	rec.FreeWriting = map[int]string{0: "sunday", 4: "thursday"}

	out := Convert([]Record{rec}, time.Now())
	require.Len(t, out.Notes, 2)

	assert.Equal(t, Note{Week: w, Day: 0, FreeWriting: ptr("sunday")}, out.Notes[0])
	assert.Equal(t, w, out.Notes[1].Week)
	assert.Equal(t, 4, out.Notes[1].Day)
	require.NotNil(t, out.Notes[1].PositiveNotes)
	assert.Equal(t, "x", out.Notes[1].PositiveNotes[0])
	assert.Equal(t, "thursday", *out.Notes[1].FreeWriting)
}

func ptr[T any](v T) *T { return &v }
