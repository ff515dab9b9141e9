package handlers

import (
	"errors"
	"net/http"

	"shift_board_backend/internal/services"
	"shift_board_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the staff collection of the record store.
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// GetStaff handles listing the staff collection.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staffList, err := h.staffService.GetStaff()
	if err != nil {
		utils.LogError(err, "GetStaff: Error from staffService.GetStaff")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": staffList})
}

// GetStaffByID handles fetching a single staff record.
func (h *StaffHandler) GetStaffByID(c *gin.Context) {
	staff, err := h.staffService.GetStaffByID(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetStaffByID: Error from staffService.GetStaffByID for ID "+c.Param("id"))
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff handles the creation of a new staff record.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStaff: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	staff, err := h.staffService.CreateStaff(req)
	if err != nil {
		utils.LogError(err, "CreateStaff: Error from staffService.CreateStaff")
		if errors.Is(err, services.ErrStaffDataValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// PatchStaff handles a partial update of a staff record.
func (h *StaffHandler) PatchStaff(c *gin.Context) {
	var req services.PatchStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PatchStaff: Failed to bind JSON for ID "+c.Param("id"))
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	staff, err := h.staffService.PatchStaff(c.Param("id"), req)
	if err != nil {
		utils.LogError(err, "PatchStaff: Error from staffService.PatchStaff for ID "+c.Param("id"))
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrStaffDataValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staff)
}

// DeleteStaff handles deleting a staff record. Shifts of the deleted staff
// member are left in place and render with a placeholder label.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	err := h.staffService.DeleteStaff(c.Param("id"))
	if err != nil {
		utils.LogError(err, "DeleteStaff: Error from staffService.DeleteStaff for ID "+c.Param("id"))
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
