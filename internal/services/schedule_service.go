package services

import (
	"fmt"
	"time"

	"shift_board_backend/internal/repositories"
	"shift_board_backend/internal/schedule"
)

// AdminScheduleView is the admin month listing: every shift of the month,
// cancelled ones included, sorted by date.
type AdminScheduleView struct {
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	MonthLabel string               `json:"month_label"`
	Shifts     []schedule.ShiftView `json:"shifts"`
}

// CalendarDayView is one rendered day cell of the customer calendar.
type CalendarDayView struct {
	Date    string               `json:"date"`
	Day     int                  `json:"day"`
	InMonth bool                 `json:"in_month"`
	IsToday bool                 `json:"is_today"`
	Shifts  []schedule.ShiftView `json:"shifts"`
}

// CustomerCalendarView is the customer-facing month calendar: a Monday-start
// week-aligned grid with cancelled shifts hidden and labels resolved against
// the active staff set.
type CustomerCalendarView struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	MonthLabel string            `json:"month_label"`
	Days       []CalendarDayView `json:"days"`
}

// --- ScheduleService Interface ---
type ScheduleService interface {
	AdminMonthSchedule(cursor schedule.MonthCursor) (*AdminScheduleView, error)
	CustomerMonthCalendar(cursor schedule.MonthCursor, today time.Time) (*CustomerCalendarView, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	staffRepo repositories.StaffRepository
	shiftRepo repositories.ShiftRepository
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(staffRepo repositories.StaffRepository, shiftRepo repositories.ShiftRepository) ScheduleService {
	return &scheduleService{
		staffRepo: staffRepo,
		shiftRepo: shiftRepo,
	}
}

func monthLabel(cursor schedule.MonthCursor) string {
	return fmt.Sprintf("%s %d", cursor.Month.String(), cursor.Year)
}

// AdminMonthSchedule lists the month's shifts without any visibility
// filtering; staff labels are resolved against the full staff set so the
// admin sees inactive members by name too.
func (s *scheduleService) AdminMonthSchedule(cursor schedule.MonthCursor) (*AdminScheduleView, error) {
	staffList, err := s.staffRepo.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff for admin schedule: %w", err)
	}

	from := cursor.FirstOfMonth().Format(schedule.ISODate)
	to := cursor.LastOfMonth().Format(schedule.ISODate)
	shifts, err := s.shiftRepo.GetShiftsByDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for admin schedule: %w", err)
	}

	monthly := schedule.MonthShifts(cursor, shifts)

	return &AdminScheduleView{
		Year:       cursor.Year,
		Month:      int(cursor.Month),
		MonthLabel: monthLabel(cursor),
		Shifts:     schedule.MapShifts(monthly, staffList),
	}, nil
}

// CustomerMonthCalendar builds the week-aligned grid for the cursor's month.
// Only active staff and non-cancelled shifts participate; shifts of inactive
// or deleted staff fall back to the placeholder label.
func (s *scheduleService) CustomerMonthCalendar(cursor schedule.MonthCursor, today time.Time) (*CustomerCalendarView, error) {
	staffList, err := s.staffRepo.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff for customer calendar: %w", err)
	}
	activeStaff := schedule.ActiveStaff(staffList)

	gridStart, gridEnd := schedule.GridRange(cursor)
	shifts, err := s.shiftRepo.GetShiftsByDateRange(
		gridStart.Format(schedule.ISODate), gridEnd.Format(schedule.ISODate))
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for customer calendar: %w", err)
	}
	visible := schedule.VisibleShifts(shifts)

	cells := schedule.BuildMonthGrid(cursor, visible, today)

	days := make([]CalendarDayView, 0, len(cells))
	for _, cell := range cells {
		days = append(days, CalendarDayView{
			Date:    cell.Date,
			Day:     cell.Day,
			InMonth: cell.InMonth,
			IsToday: cell.IsToday,
			Shifts:  schedule.MapShifts(cell.Shifts, activeStaff),
		})
	}

	return &CustomerCalendarView{
		Year:       cursor.Year,
		Month:      int(cursor.Month),
		MonthLabel: monthLabel(cursor),
		Days:       days,
	}, nil
}
