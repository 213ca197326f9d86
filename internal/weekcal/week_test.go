package weekcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek_KnownWeeks(t *testing.T) {
	cases := []struct {
		week, year int
		want       time.Time
	}{
		{1, 2026, date(2025, time.December, 28)},
		{42, 2026, date(2026, time.October, 11)},
		{53, 2026, date(2026, time.December, 27)},
		{1, 2027, date(2027, time.January, 3)},
		{1, 2025, date(2024, time.December, 29)},
		{52, 2025, date(2025, time.December, 21)},
	}
	for _, tc := range cases {
		got, err := StartOfWeek(tc.week, tc.year)
		require.NoError(t, err, "week=%d year=%d", tc.week, tc.year)
		assert.Equal(t, tc.want, got, "week=%d year=%d", tc.week, tc.year)
		assert.Equal(t, time.Sunday, got.Weekday())
	}
}

func TestStartOfWeek_OutOfRange(t *testing.T) {
	_, err := StartOfWeek(0, 2026)
	assert.Error(t, err)

	_, err = StartOfWeek(53, 2025)
	assert.Error(t, err, "2025 has only 52 weeks")

	_, err = StartOfWeek(54, 2026)
	assert.Error(t, err)
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 52, WeeksInYear(2025))
	assert.Equal(t, 53, WeeksInYear(2026))
	assert.Equal(t, 53, WeeksInYear(2020))
	assert.Equal(t, 52, WeeksInYear(2027))
}

func TestWeekOf_KnownDates(t *testing.T) {
	cases := []struct {
		d    time.Time
		want Week
	}{
		{date(2026, time.October, 15), Week{42, 2026}},
		{date(2026, time.October, 11), Week{42, 2026}},
		{date(2026, time.October, 17), Week{42, 2026}},
		{date(2026, time.October, 18), Week{43, 2026}},
		{date(2025, time.December, 28), Week{1, 2026}},
		{date(2026, time.December, 31), Week{53, 2026}},
		{date(2027, time.January, 2), Week{53, 2026}},
		{date(2027, time.January, 3), Week{1, 2027}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeekOf(tc.d), "date=%s", tc.d.Format(DateLayout))
	}
}

func TestWeekOf_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	late := time.Date(2026, time.October, 17, 23, 59, 0, 0, loc)
	assert.Equal(t, Week{42, 2026}, WeekOf(late))
}

func TestRoundTrip_AllWeeks(t *testing.T) {
	for year := 2000; year <= 2040; year++ {
		for w := 1; w <= WeeksInYear(year); w++ {
			start, err := StartOfWeek(w, year)
			require.NoError(t, err)
			assert.Equal(t, Week{w, year}, WeekOf(start), "start of %d/%d", w, year)

			for i, d := range WeekDates(start) {
				assert.Equal(t, Week{w, year}, WeekOf(d), "day %d of %d/%d", i, w, year)
				assert.Equal(t, i, DayOf(d))
			}
		}
	}
}

func TestWeekOf_StartContainsDate(t *testing.T) {
	d := date(2024, time.February, 29)
	for i := 0; i < 800; i++ {
		wk := WeekOf(d)
		start, err := StartOfWeek(wk.Number, wk.Year)
		require.NoError(t, err)
		assert.False(t, d.Before(start))
		assert.True(t, d.Before(start.AddDate(0, 0, DaysPerWeek)))
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekDates_SevenConsecutiveDays(t *testing.T) {
	start := date(2026, time.October, 11)
	dates := WeekDates(start)
	require.Len(t, dates, DaysPerWeek)
	assert.Equal(t, start, dates[0])
	for i := 1; i < DaysPerWeek; i++ {
		assert.Equal(t, 24*time.Hour, dates[i].Sub(dates[i-1]))
	}
}

func TestWeek_NextPrevAcrossYears(t *testing.T) {
	last := Week{53, 2026}
	assert.Equal(t, Week{1, 2027}, last.Next())
	assert.Equal(t, last, Week{1, 2027}.Prev())
	assert.Equal(t, Week{52, 2025}, Week{1, 2026}.Prev())
}

func TestWeek_BeforeAndString(t *testing.T) {
	assert.True(t, Week{52, 2025}.Before(Week{1, 2026}))
	assert.False(t, Week{3, 2026}.Before(Week{3, 2026}))
	assert.Equal(t, "2026-W07", Week{7, 2026}.String())
}

func TestParseWeek(t *testing.T) {
	w, err := ParseWeek("2026-W07")
	require.NoError(t, err)
	assert.Equal(t, Week{7, 2026}, w)

	w, err = ParseWeek("42/2026")
	require.NoError(t, err)
	assert.Equal(t, Week{42, 2026}, w)

	_, err = ParseWeek("2025-W53")
	assert.Error(t, err)
	_, err = ParseWeek("garbage")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	cases := map[string]int{"0": 0, "6": 6, "sun": 0, "Monday": 1, "SAT": 6, "thu": 4}
	for in, want := range cases {
		got, err := ParseDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"7", "-1", "mo", "xyz"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Sun", DayName(0))
	assert.Equal(t, "Sat", DayName(6))
	assert.Equal(t, "?", DayName(7))
}
