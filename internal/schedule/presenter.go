package schedule

import "shift_board_backend/internal/models"

// UnknownStaffLabel is shown for shifts whose staff_id no longer matches a
// staff record, e.g. after the staff member was deleted.
const UnknownStaffLabel = "Unknown staff"

// ShiftView is the display-ready form of a shift.
type ShiftView struct {
	ID          string             `json:"id"`
	StaffID     string             `json:"staff_id"`
	StaffLabel  string             `json:"staff_label"`
	Date        string             `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	TimeRange   string             `json:"time_range"`
	Status      models.ShiftStatus `json:"status"`
	StatusLabel string             `json:"status_label"`
}

// StatusLabel maps a shift status to its fixed display label, with an
// explicit default for values outside the closed set.
func StatusLabel(status models.ShiftStatus) string {
	switch status {
	case models.ShiftScheduled:
		return "Scheduled"
	case models.ShiftConfirmed:
		return "Confirmed"
	case models.ShiftCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// StaffLabel resolves the display label for a staff_id against the current
// staff collection: display_name if non-empty, else name, else the
// unknown-staff placeholder when no record matches.
func StaffLabel(staffID string, staffList []models.Staff) string {
	for _, staff := range staffList {
		if staff.ID == staffID {
			if staff.DisplayName != "" {
				return staff.DisplayName
			}
			return staff.Name
		}
	}
	return UnknownStaffLabel
}

// timeRange truncates the times to HH:MM and joins them.
func timeRange(start, end string) string {
	return clipTime(start) + "-" + clipTime(end)
}

func clipTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// MapShift resolves a shift into its display form. Pure; the shift and the
// staff collection are left untouched.
func MapShift(shift models.Shift, staffList []models.Staff) ShiftView {
	return ShiftView{
		ID:          shift.ID,
		StaffID:     shift.StaffID,
		StaffLabel:  StaffLabel(shift.StaffID, staffList),
		Date:        shift.Date,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		TimeRange:   timeRange(shift.StartTime, shift.EndTime),
		Status:      shift.Status,
		StatusLabel: StatusLabel(shift.Status),
	}
}

// MapShifts maps a whole collection, preserving order.
func MapShifts(shifts []models.Shift, staffList []models.Staff) []ShiftView {
	views := make([]ShiftView, 0, len(shifts))
	for _, shift := range shifts {
		views = append(views, MapShift(shift, staffList))
	}
	return views
}
