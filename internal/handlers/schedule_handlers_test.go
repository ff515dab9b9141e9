package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift_board_backend/internal/schedule"
	"shift_board_backend/internal/services"
)

// --- Stub schedule service ---

type stubScheduleService struct {
	adminResult    *services.AdminScheduleView
	adminErr       error
	customerResult *services.CustomerCalendarView
	customerErr    error

	gotCursor schedule.MonthCursor
}

func (s *stubScheduleService) AdminMonthSchedule(cursor schedule.MonthCursor) (*services.AdminScheduleView, error) {
	s.gotCursor = cursor
	return s.adminResult, s.adminErr
}

func (s *stubScheduleService) CustomerMonthCalendar(cursor schedule.MonthCursor, _ time.Time) (*services.CustomerCalendarView, error) {
	s.gotCursor = cursor
	return s.customerResult, s.customerErr
}

func newScheduleRouter(svc services.ScheduleService) *gin.Engine {
	engine := gin.New()
	h := NewScheduleHandler(svc)
	engine.GET("/api/v1/admin/schedule", h.GetAdminSchedule)
	engine.GET("/api/v1/customer/calendar", h.GetCustomerCalendar)
	return engine
}

func TestGetAdminSchedule(t *testing.T) {
	stub := &stubScheduleService{
		adminResult: &services.AdminScheduleView{
			Year:       2024,
			Month:      3,
			MonthLabel: "March 2024",
			Shifts:     []schedule.ShiftView{},
		},
	}
	engine := newScheduleRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule?year=2024&month=3", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, schedule.MonthCursor{Year: 2024, Month: time.March}, stub.gotCursor)

	var view services.AdminScheduleView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "March 2024", view.MonthLabel)
}

func TestGetAdminScheduleInvalidMonth(t *testing.T) {
	engine := newScheduleRouter(&stubScheduleService{})

	for _, query := range []string{"month=13", "month=0", "month=abc", "year=twenty"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule?"+query, nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestGetAdminScheduleDefaultsToCurrentMonth(t *testing.T) {
	stub := &stubScheduleService{
		adminResult: &services.AdminScheduleView{Shifts: []schedule.ShiftView{}},
	}
	engine := newScheduleRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, schedule.CursorFor(time.Now()), stub.gotCursor)
}

func TestGetCustomerCalendar(t *testing.T) {
	stub := &stubScheduleService{
		customerResult: &services.CustomerCalendarView{
			Year:       2023,
			Month:      12,
			MonthLabel: "December 2023",
			Days:       []services.CalendarDayView{},
		},
	}
	engine := newScheduleRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customer/calendar?year=2023&month=12", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, schedule.MonthCursor{Year: 2023, Month: time.December}, stub.gotCursor)
}

func TestGetCustomerCalendarStoreFailure(t *testing.T) {
	engine := newScheduleRouter(&stubScheduleService{customerErr: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customer/calendar", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
