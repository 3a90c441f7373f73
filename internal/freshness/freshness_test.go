package freshness

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	today := day(2024, time.January, 1)

	tests := []struct {
		name   string
		expiry string
		want   Label
	}{
		{"far future day-month-year", "01/01/2099", Fresh},
		{"same day iso", "2024-01-01", ExpiringToday},
		{"yesterday day-month-year", "31/12/2023", Expired},
		{"garbage", "not-a-date", Unknown},
		{"empty", "", Unknown},
		{"month-first is rejected", "12/31/2024", Unknown},
		{"surrounding whitespace", "  2024-01-05 ", Urgent},
		{"16 days", "2024-01-17", Fresh},
		{"15 days", "2024-01-16", ExpiringSoon},
		{"8 days", "09/01/2024", ExpiringSoon},
		{"7 days", "08/01/2024", Urgent},
		{"1 day", "2024-01-02", Urgent},
		{"long expired", "2020-06-30", Expired},
		{"unpadded day-month-year", "5/1/2024", Urgent},
		{"unpadded day only", "9/01/2024", ExpiringSoon},
		{"unpadded iso", "2024-1-5", Urgent},
		{"unpadded iso month", "2024-2-1", Fresh},
		{"unpadded month-first is rejected", "1/31/2024", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.expiry, today))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, ExpiringToday, Classify("2024-01-01", lateEvening))
	assert.Equal(t, Urgent, Classify("2024-01-02", lateEvening))

	ist := time.FixedZone("IST", 5*60*60+30*60)
	earlyMorning := time.Date(2024, time.January, 1, 0, 30, 0, 0, ist)
	assert.Equal(t, ExpiringToday, Classify("01/01/2024", earlyMorning))
}

func TestClassify_AcrossDSTAndLeapYear(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(day(2024, time.February, 28), day(2024, time.February, 29)))
	assert.Equal(t, 366, DaysBetween(day(2024, time.January, 1), day(2025, time.January, 1)))

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	beforeDST := time.Date(2024, time.March, 9, 12, 0, 0, 0, ny)
	assert.Equal(t, 1, DaysBetween(beforeDST, day(2024, time.March, 10)))
}

func TestForDaysLeft_Boundaries(t *testing.T) {
	cases := map[int]Label{
		-30: Expired,
		-1:  Expired,
		0:   ExpiringToday,
		1:   Urgent,
		7:   Urgent,
		8:   ExpiringSoon,
		15:  ExpiringSoon,
		16:  Fresh,
		400: Fresh,
	}
	for days, want := range cases {
		assert.Equal(t, want, ForDaysLeft(days), "daysLeft=%d", days)
	}
}

func TestParseExpiry(t *testing.T) {
	got, err := ParseExpiry("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 5), got)

	got, err = ParseExpiry("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 5), got)

	got, err = ParseExpiry("5/3/2024")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 5), got)

	got, err = ParseExpiry("2024-3-5")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 5), got)

	_, err = ParseExpiry("31/02/2024")
	assert.True(t, errors.Is(err, ErrInvalidExpiry))
}

func TestLabelRank(t *testing.T) {
	assert.Less(t, Fresh.Rank(), ExpiringSoon.Rank())
	assert.Less(t, ExpiringSoon.Rank(), Urgent.Rank())
	assert.Less(t, Urgent.Rank(), ExpiringToday.Rank())
	assert.Less(t, ExpiringToday.Rank(), Expired.Rank())
	assert.Equal(t, -1, Unknown.Rank())

	assert.True(t, Unknown.Valid())
	assert.True(t, Expired.Valid())
	assert.False(t, Label("Stale").Valid())
}
