// Package schedule holds the pure shift-board computations: the month
// calendar grid, the staff/shift visibility filters and the presentation
// mapping. Everything here operates on already-materialized collections,
// never blocks and never mutates its inputs.
package schedule

import (
	"sort"
	"time"

	"shift_board_backend/internal/models"
)

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// MonthCursor identifies the month a view is looking at. Callers own the
// cursor and pass it per call; there is no ambient current-month state.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// CursorFor collapses any reference date to its month cursor.
func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// AddMonths moves the cursor by whole months, rolling over year boundaries
// (January minus one month is December of the previous year). Normalizing
// through the first of the month keeps -1 then +1 a round trip from any
// starting reference date.
func (c MonthCursor) AddMonths(delta int) MonthCursor {
	t := time.Date(c.Year, c.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// FirstOfMonth returns the first day of the cursor's month at midnight UTC.
func (c MonthCursor) FirstOfMonth() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns the last day of the cursor's month at midnight UTC.
func (c MonthCursor) LastOfMonth() time.Time {
	return c.FirstOfMonth().AddDate(0, 1, -1)
}

// DayCell is one unit of the month grid: a single calendar date plus the
// shifts scheduled on it.
type DayCell struct {
	Date    string         `json:"date"` // ISO YYYY-MM-DD
	Day     int            `json:"day"`
	InMonth bool           `json:"in_month"`
	IsToday bool           `json:"is_today"`
	Shifts  []models.Shift `json:"shifts"`
}

// mondayOffset reindexes a weekday so Monday = 0 and Sunday = 6.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// GridRange returns the first and last dates of the cursor's month grid:
// the Monday on or before the first of the month and the Sunday on or after
// the last. The two boundaries are computed independently of each other.
func GridRange(cursor MonthCursor) (startDate, endDate time.Time) {
	firstOfMonth := cursor.FirstOfMonth()
	lastOfMonth := cursor.LastOfMonth()
	startDate = firstOfMonth.AddDate(0, 0, -mondayOffset(firstOfMonth))
	endDate = lastOfMonth.AddDate(0, 0, 6-mondayOffset(lastOfMonth))
	return startDate, endDate
}

// BuildMonthGrid produces the ordered day cells of a Monday-start,
// Sunday-end grid fully containing the cursor's month. The leading and
// trailing boundaries are computed independently, so the grid spans anywhere
// from exactly the month's days (a month that starts Monday and ends Sunday)
// up to six weeks; the cell count is always a multiple of seven.
//
// Each cell carries the shifts whose date equals the cell's ISO date, sorted
// ascending by start time. The sort is stable: shifts with equal start times
// keep their original collection order.
func BuildMonthGrid(cursor MonthCursor, shifts []models.Shift, today time.Time) []DayCell {
	startDate, endDate := GridRange(cursor)

	byDate := make(map[string][]models.Shift)
	for _, shift := range shifts {
		byDate[shift.Date] = append(byDate[shift.Date], shift)
	}

	todayKey := today.Format(ISODate)

	var cells []DayCell
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateKey := d.Format(ISODate)

		dayShifts := append([]models.Shift(nil), byDate[dateKey]...)
		sort.SliceStable(dayShifts, func(i, j int) bool {
			return dayShifts[i].StartTime < dayShifts[j].StartTime
		})

		cells = append(cells, DayCell{
			Date:    dateKey,
			Day:     d.Day(),
			InMonth: d.Month() == cursor.Month && d.Year() == cursor.Year,
			IsToday: dateKey == todayKey,
			Shifts:  dayShifts,
		})
	}
	return cells
}
