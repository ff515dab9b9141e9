package schedule

import (
	"sort"

	"shift_board_backend/internal/models"
)

// ActiveStaff returns the staff eligible for shift assignment and
// customer-facing display, preserving the original order.
func ActiveStaff(staffList []models.Staff) []models.Staff {
	active := []models.Staff{}
	for _, staff := range staffList {
		if staff.Active {
			active = append(active, staff)
		}
	}
	return active
}

// VisibleShifts returns the shifts shown to customers: everything not in
// cancelled status, order preserved. The admin view operates on the
// unfiltered set.
func VisibleShifts(shifts []models.Shift) []models.Shift {
	visible := []models.Shift{}
	for _, shift := range shifts {
		if shift.Status != models.ShiftCancelled {
			visible = append(visible, shift)
		}
	}
	return visible
}

// MonthShifts returns the shifts falling inside the cursor's month, sorted
// ascending by date. The sort is stable, so shifts on the same date keep
// their collection order.
func MonthShifts(cursor MonthCursor, shifts []models.Shift) []models.Shift {
	prefix := cursor.FirstOfMonth().Format("2006-01")

	monthly := []models.Shift{}
	for _, shift := range shifts {
		if len(shift.Date) >= len(prefix) && shift.Date[:len(prefix)] == prefix {
			monthly = append(monthly, shift)
		}
	}
	sort.SliceStable(monthly, func(i, j int) bool {
		return monthly[i].Date < monthly[j].Date
	})
	return monthly
}
