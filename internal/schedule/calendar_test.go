package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift_board_backend/internal/models"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start MonthCursor
		delta int
		want  MonthCursor
	}{
		{
			name:  "Should roll back over a year boundary",
			start: MonthCursor{Year: 2024, Month: time.January},
			delta: -1,
			want:  MonthCursor{Year: 2023, Month: time.December},
		},
		{
			name:  "Should roll forward over a year boundary",
			start: MonthCursor{Year: 2023, Month: time.December},
			delta: 1,
			want:  MonthCursor{Year: 2024, Month: time.January},
		},
		{
			name:  "Should move several months at once",
			start: MonthCursor{Year: 2024, Month: time.March},
			delta: 11,
			want:  MonthCursor{Year: 2025, Month: time.February},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMonths(tt.delta))
		})
	}
}

func TestAddMonthsRoundTrip(t *testing.T) {
	// -1 then +1 must return to the original month from any reference date,
	// including end-of-month dates that drift under naive date arithmetic.
	refs := []time.Time{
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		cursor := CursorFor(ref)
		assert.Equal(t, cursor, cursor.AddMonths(-1).AddMonths(1), "round trip from %s", ref)
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cursor    MonthCursor
		wantCells int
	}{
		{
			name:      "Should pad March 2024 to five full weeks",
			cursor:    MonthCursor{Year: 2024, Month: time.March},
			wantCells: 35, // Mar 1 2024 is a Friday, Mar 31 a Sunday
		},
		{
			name:      "Should produce a six week grid for March 2026",
			cursor:    MonthCursor{Year: 2026, Month: time.March},
			wantCells: 42, // Mar 1 2026 is a Sunday, Mar 31 a Tuesday
		},
		{
			name:      "Should emit zero overflow cells for an exact fit month",
			cursor:    MonthCursor{Year: 2021, Month: time.February},
			wantCells: 28, // Feb 2021 starts Monday and ends Sunday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildMonthGrid(tt.cursor, nil, today)

			require.Len(t, cells, tt.wantCells)
			assert.Zero(t, len(cells)%7, "grid size must be a multiple of 7")

			// The grid runs Monday to Sunday.
			first, err := time.Parse(ISODate, cells[0].Date)
			require.NoError(t, err)
			last, err := time.Parse(ISODate, cells[len(cells)-1].Date)
			require.NoError(t, err)
			assert.Equal(t, time.Monday, first.Weekday())
			assert.Equal(t, time.Sunday, last.Weekday())

			// Every date of the target month is present and flagged in-month.
			inMonth := 0
			for _, cell := range cells {
				if cell.InMonth {
					inMonth++
				}
			}
			assert.Equal(t, tt.cursor.LastOfMonth().Day(), inMonth)
		})
	}
}

func TestBuildMonthGridExactFitHasNoOverflow(t *testing.T) {
	cells := BuildMonthGrid(MonthCursor{Year: 2021, Month: time.February}, nil, time.Now())

	require.Len(t, cells, 28)
	for _, cell := range cells {
		assert.True(t, cell.InMonth, "cell %s must belong to February", cell.Date)
	}
	assert.Equal(t, "2021-02-01", cells[0].Date)
	assert.Equal(t, "2021-02-28", cells[27].Date)
}

func TestBuildMonthGridTodayFlag(t *testing.T) {
	today := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	cells := BuildMonthGrid(MonthCursor{Year: 2024, Month: time.March}, nil, today)

	var flagged []string
	for _, cell := range cells {
		if cell.IsToday {
			flagged = append(flagged, cell.Date)
		}
	}
	assert.Equal(t, []string{"2024-03-15"}, flagged)
}

func TestBuildMonthGridShiftOrdering(t *testing.T) {
	shifts := []models.Shift{
		{ID: "a", Date: "2024-03-15", StartTime: "10:00", EndTime: "18:00"},
		{ID: "b", Date: "2024-03-15", StartTime: "09:00", EndTime: "12:00"},
		{ID: "c", Date: "2024-03-15", StartTime: "09:00", EndTime: "13:00"},
		{ID: "d", Date: "2024-03-16", StartTime: "08:00", EndTime: "16:00"},
	}

	cells := BuildMonthGrid(MonthCursor{Year: 2024, Month: time.March}, shifts, time.Now())

	byDate := map[string]DayCell{}
	for _, cell := range cells {
		byDate[cell.Date] = cell
	}

	// Ascending by start time, original order preserved between the 09:00 pair.
	var ids []string
	for _, s := range byDate["2024-03-15"].Shifts {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)

	require.Len(t, byDate["2024-03-16"].Shifts, 1)
	assert.Equal(t, "d", byDate["2024-03-16"].Shifts[0].ID)

	// Input collection untouched.
	assert.Equal(t, "a", shifts[0].ID)
}
