package router

import (
	"shift_board_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStaffRoutes sets up the staff collection routes.
func SetupStaffRoutes(tablesGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := tablesGroup.Group("/staff")
	{
		staffRoutes.GET("", staffHandler.GetStaff)
		staffRoutes.POST("", staffHandler.CreateStaff)
		staffRoutes.GET("/:id", staffHandler.GetStaffByID)
		staffRoutes.PATCH("/:id", staffHandler.PatchStaff)
		staffRoutes.DELETE("/:id", staffHandler.DeleteStaff)
	}
}

// SetupShiftRoutes sets up the shifts collection routes.
func SetupShiftRoutes(tablesGroup *gin.RouterGroup, shiftHandler *handlers.ShiftHandler) {
	shiftRoutes := tablesGroup.Group("/shifts")
	{
		shiftRoutes.GET("", shiftHandler.GetShifts)
		shiftRoutes.POST("", shiftHandler.CreateShift)
		shiftRoutes.GET("/:id", shiftHandler.GetShiftByID)
		shiftRoutes.DELETE("/:id", shiftHandler.DeleteShift)
	}
}

// SetupScheduleRoutes sets up the month view routes.
func SetupScheduleRoutes(apiGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	apiGroup.GET("/admin/schedule", scheduleHandler.GetAdminSchedule)
	apiGroup.GET("/customer/calendar", scheduleHandler.GetCustomerCalendar)
}
