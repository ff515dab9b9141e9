package router

import (
	"database/sql"

	"shift_board_backend/internal/handlers"
	"shift_board_backend/internal/repositories"
	"shift_board_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	staffRepo := repositories.NewStaffRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)

	// Initialize Services
	staffService := services.NewStaffService(staffRepo, db)
	shiftService := services.NewShiftService(shiftRepo, db)
	scheduleService := services.NewScheduleService(staffRepo, shiftRepo)

	// Initialize Handlers
	staffHandler := handlers.NewStaffHandler(staffService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// The generic record store surface the browser views fetch against.
	tables := engine.Group("/tables")
	{
		SetupStaffRoutes(tables, staffHandler)
		SetupShiftRoutes(tables, shiftHandler)
	}

	// Server-built view models for the admin console and the customer page.
	apiV1 := engine.Group("/api/v1")
	SetupScheduleRoutes(apiV1, scheduleHandler)
}
