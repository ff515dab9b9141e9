package handlers

import (
	"net/http"
	"strconv"
	"time"

	"shift_board_backend/internal/schedule"
	"shift_board_backend/internal/services"
	"shift_board_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the admin and customer month views.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// cursorFromQuery reads the optional year/month query parameters, defaulting
// to the current month. The caller owns the month cursor; the server keeps
// no current-month state between requests.
func cursorFromQuery(c *gin.Context, now time.Time) (schedule.MonthCursor, bool) {
	cursor := schedule.CursorFor(now)

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.RespondValidationFailed(c, "year must be a number")
			return schedule.MonthCursor{}, false
		}
		cursor.Year = year
	}
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			utils.RespondValidationFailed(c, "month must be a number between 1 and 12")
			return schedule.MonthCursor{}, false
		}
		cursor.Month = time.Month(month)
	}
	return cursor, true
}

// GetAdminSchedule handles the admin month listing: all shifts of the month,
// cancelled included.
func (h *ScheduleHandler) GetAdminSchedule(c *gin.Context) {
	cursor, ok := cursorFromQuery(c, time.Now())
	if !ok {
		return
	}

	view, err := h.scheduleService.AdminMonthSchedule(cursor)
	if err != nil {
		utils.LogError(err, "GetAdminSchedule: Error from scheduleService.AdminMonthSchedule")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build admin schedule.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCustomerCalendar handles the customer-facing month calendar grid.
func (h *ScheduleHandler) GetCustomerCalendar(c *gin.Context) {
	now := time.Now()
	cursor, ok := cursorFromQuery(c, now)
	if !ok {
		return
	}

	view, err := h.scheduleService.CustomerMonthCalendar(cursor, now)
	if err != nil {
		utils.LogError(err, "GetCustomerCalendar: Error from scheduleService.CustomerMonthCalendar")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build customer calendar.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, view)
}
