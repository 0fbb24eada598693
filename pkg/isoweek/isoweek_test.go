package isoweek_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
)

func TestAt(t *testing.T) {
	testCases := []struct {
		Desc     string
		Date     time.Time
		Expected isoweek.YearWeek
	}{
		{
			Desc: "middle of year",
			Date: time.Date(2025, time.July, 16, 12, 0, 0, 0, time.UTC),
			Expected: isoweek.YearWeek{
				Year: 2025,
				Week: 29,
			},
		},
		{
			// Monday Dec 31 2018 belongs to week 1 of the next ISO year
			Desc: "december belonging to next iso year",
			Date: time.Date(2018, time.December, 31, 0, 0, 0, 0, time.UTC),
			Expected: isoweek.YearWeek{
				Year: 2019,
				Week: 1,
			},
		},
		{
			// Friday Jan 1 2021 belongs to the last week of the previous ISO year
			Desc: "january belonging to previous iso year",
			Date: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			Expected: isoweek.YearWeek{
				Year: 2020,
				Week: 53,
			},
		},
		{
			// local Monday Jan 6 early morning is still UTC Sunday Jan 5
			Desc: "timezone east of utc doesn't shift the week",
			Date: time.Date(2025, time.January, 6, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
			Expected: isoweek.YearWeek{
				Year: 2025,
				Week: 1,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, isoweek.At(tc.Date))
		})
	}
}

func TestAtBounds(t *testing.T) {
	// A decade of days never produces a week outside [1, 53]
	day := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() < 2025 {
		yw := isoweek.At(day)
		assert.GreaterOrEqual(t, yw.Week, 1)
		assert.LessOrEqual(t, yw.Week, 53)
		day = day.AddDate(0, 0, 1)
	}
}

func TestPrev(t *testing.T) {
	testCases := []struct {
		Desc     string
		Week     isoweek.YearWeek
		Expected isoweek.YearWeek
	}{
		{
			Desc:     "simple decrement",
			Week:     isoweek.YearWeek{Year: 2025, Week: 29},
			Expected: isoweek.YearWeek{Year: 2025, Week: 28},
		},
		{
			Desc:     "week one steps into 52-week year",
			Week:     isoweek.YearWeek{Year: 2019, Week: 1},
			Expected: isoweek.YearWeek{Year: 2018, Week: 52},
		},
		{
			Desc:     "week one steps into 53-week year",
			Week:     isoweek.YearWeek{Year: 2021, Week: 1},
			Expected: isoweek.YearWeek{Year: 2020, Week: 53},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Week.Prev())
		})
	}
}

func TestPrevMatchesDecember28(t *testing.T) {
	// Stepping back from week 1 must land on the week of Dec 28
	for year := 2016; year <= 2026; year++ {
		got := isoweek.YearWeek{Year: year, Week: 1}.Prev()
		want := isoweek.At(time.Date(year-1, time.December, 28, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, want, got)
	}
}

func TestHistory(t *testing.T) {
	from := isoweek.YearWeek{Year: 2025, Week: 2}
	history := isoweek.History(4, from)
	assert.Equal(t, []isoweek.YearWeek{
		{Year: 2025, Week: 2},
		{Year: 2025, Week: 1},
		{Year: 2024, Week: 52},
		{Year: 2024, Week: 51},
	}, history)
}

func TestHistoryLengthAndStrictDescent(t *testing.T) {
	from := isoweek.Current()
	history := isoweek.History(10, from)
	assert.Len(t, history, 10)
	seen := make(map[isoweek.YearWeek]struct{})
	for i, yw := range history {
		_, dup := seen[yw]
		assert.False(t, dup, "duplicate pair in history")
		seen[yw] = struct{}{}
		if i > 0 {
			assert.Equal(t, history[i-1].Prev(), yw, "gap in history")
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	assert.Empty(t, isoweek.History(0, isoweek.Current()))
	assert.Empty(t, isoweek.History(-3, isoweek.Current()))
}

func TestContains(t *testing.T) {
	history := isoweek.History(2, isoweek.YearWeek{Year: 2025, Week: 1})
	assert.True(t, isoweek.Contains(history, isoweek.YearWeek{Year: 2024, Week: 52}))
	// same week number from another year must not match
	assert.False(t, isoweek.Contains(history, isoweek.YearWeek{Year: 2024, Week: 1}))
}

func TestValid(t *testing.T) {
	assert.True(t, isoweek.YearWeek{Year: 2025, Week: 53}.Valid())
	assert.False(t, isoweek.YearWeek{Year: 2025, Week: 0}.Valid())
	assert.False(t, isoweek.YearWeek{Year: 2025, Week: 54}.Valid())
	assert.False(t, isoweek.YearWeek{Year: 1999, Week: 10}.Valid())
	assert.False(t, isoweek.YearWeek{Year: 2101, Week: 10}.Valid())
}
