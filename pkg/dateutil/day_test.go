package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/pkg/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay_TruncatesToUTCMidnight(t *testing.T) {
	t.Parallel()

	paris := time.FixedZone("CET", 3600)
	in := time.Date(2024, time.March, 15, 14, 30, 12, 999, paris)

	got := dateutil.Day(in)

	assert.Equal(t, date(2024, time.March, 15), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, time.January, 1), date(2024, time.January, 1), 1},
		{"ten days inclusive", date(2024, time.January, 1), date(2024, time.January, 10), 10},
		{"reversed", date(2024, time.January, 10), date(2024, time.January, 1), 0},
		{"across february leap", date(2024, time.February, 28), date(2024, time.March, 1), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, dateutil.DaysBetween(tc.a, tc.b))
		})
	}
}

func TestRange_Inclusive(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 30), date(2024, time.February, 2))

	require.Len(t, days, 4)
	assert.Equal(t, date(2024, time.January, 30), days[0])
	assert.Equal(t, date(2024, time.February, 2), days[3])
}

func TestRange_ReversedIsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, dateutil.Range(date(2024, time.January, 2), date(2024, time.January, 1)))
}

func TestWeekStart_MondayAnchor(t *testing.T) {
	t.Parallel()

	// 2024-01-08 is a Monday.
	monday := date(2024, time.January, 8)

	for i := range 7 {
		d := monday.AddDate(0, 0, i)
		assert.Equal(t, monday, dateutil.WeekStart(d), "day %s", d)
	}

	sunday := date(2024, time.January, 7)
	assert.Equal(t, date(2024, time.January, 1), dateutil.WeekStart(sunday))
}

func TestMaxTime(t *testing.T) {
	t.Parallel()

	a := date(2024, time.May, 1)
	b := date(2024, time.May, 2)

	assert.Equal(t, b, dateutil.MaxTime(a, b))
	assert.Equal(t, b, dateutil.MaxTime(b, a))
	assert.Equal(t, a, dateutil.MaxTime(a, a))
}
