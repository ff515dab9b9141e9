package services

import (
	"database/sql"
	"errors"
	"fmt"
	"shift_board_backend/internal/models"
	"shift_board_backend/internal/repositories"
	"strings"
	"time"
)

// --- Custom Service Errors for Shifts ---
var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftDataValidation = errors.New("shift data validation error")
	ErrShiftDateFormat     = errors.New("invalid shift date format, please use YYYY-MM-DD")
	ErrShiftTimeFormat     = errors.New("invalid shift time format, please use HH:MM or HH:MM:SS")
	ErrShiftTimeOrder      = errors.New("shift end time must be after start time")
	ErrShiftStatusUnknown  = errors.New("unknown shift status")
)

// --- Shift DTOs ---
type CreateShiftRequest struct {
	StaffID   string `json:"staff_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Status    string `json:"status"`
}

// --- ShiftService Interface ---
type ShiftService interface {
	CreateShift(req CreateShiftRequest) (*models.Shift, error)
	GetShiftByID(shiftID string) (*models.Shift, error)
	GetShifts() ([]models.Shift, error)
	DeleteShift(shiftID string) error
}

// --- shiftService Implementation ---
type shiftService struct {
	shiftRepo repositories.ShiftRepository
	db        *sql.DB
}

// NewShiftService creates a new instance of ShiftService.
func NewShiftService(sr repositories.ShiftRepository, db *sql.DB) ShiftService {
	return &shiftService{
		shiftRepo: sr,
		db:        db,
	}
}

// parseTimeOfDay accepts HH:MM or HH:MM:SS and returns the canonical
// HH:MM:SS form used for ordering comparisons. The raw value is what gets
// stored.
func parseTimeOfDay(raw string) (string, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		t, err = time.Parse("15:04:05", raw)
		if err != nil {
			return "", ErrShiftTimeFormat
		}
	}
	return t.Format("15:04:05"), nil
}

func (s *shiftService) CreateShift(req CreateShiftRequest) (*models.Shift, error) {
	if strings.TrimSpace(req.StaffID) == "" {
		return nil, fmt.Errorf("%w: staff_id cannot be empty", ErrShiftDataValidation)
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrShiftDateFormat
	}

	start, err := parseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	// Strict ordering: equal start and end is rejected too.
	if start >= end {
		return nil, ErrShiftTimeOrder
	}

	status, err := models.ParseShiftStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShiftStatusUnknown, err)
	}

	// StaffID is a weak reference: existence of the staff record is not
	// verified here, and orphaned shifts are a valid, rendered state.
	shift := &models.Shift{
		StaffID:   req.StaffID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
	}

	createdShift, err := s.shiftRepo.CreateShift(s.db, shift)
	if err != nil {
		return nil, fmt.Errorf("failed to create shift in repository: %w", err)
	}
	return createdShift, nil
}

func (s *shiftService) GetShiftByID(shiftID string) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift, nil
}

func (s *shiftService) GetShifts() ([]models.Shift, error) {
	shifts, err := s.shiftRepo.GetShifts()
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	return shifts, nil
}

func (s *shiftService) DeleteShift(shiftID string) error {
	err := s.shiftRepo.DeleteShift(s.db, shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift ID %s: %w", shiftID, err)
	}
	return nil
}
