package handlers

import (
	"errors"
	"net/http"

	"shift_board_backend/internal/services"
	"shift_board_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ShiftHandler serves the shifts collection of the record store.
type ShiftHandler struct {
	shiftService services.ShiftService
}

// NewShiftHandler creates a new ShiftHandler.
func NewShiftHandler(ss services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: ss}
}

// GetShifts handles listing the shifts collection.
func (h *ShiftHandler) GetShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetShifts()
	if err != nil {
		utils.LogError(err, "GetShifts: Error from shiftService.GetShifts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch shifts.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": shifts})
}

// GetShiftByID handles fetching a single shift record.
func (h *ShiftHandler) GetShiftByID(c *gin.Context) {
	shift, err := h.shiftService.GetShiftByID(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetShiftByID: Error from shiftService.GetShiftByID for ID "+c.Param("id"))
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, shift)
}

// CreateShift handles the registration of a new shift.
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req services.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateShift: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shift, err := h.shiftService.CreateShift(req)
	if err != nil {
		utils.LogError(err, "CreateShift: Error from shiftService.CreateShift")
		switch {
		case errors.Is(err, services.ErrShiftDataValidation),
			errors.Is(err, services.ErrShiftDateFormat),
			errors.Is(err, services.ErrShiftTimeFormat),
			errors.Is(err, services.ErrShiftTimeOrder),
			errors.Is(err, services.ErrShiftStatusUnknown):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// DeleteShift handles deleting a shift record.
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	err := h.shiftService.DeleteShift(c.Param("id"))
	if err != nil {
		utils.LogError(err, "DeleteShift: Error from shiftService.DeleteShift for ID "+c.Param("id"))
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted successfully"})
}
