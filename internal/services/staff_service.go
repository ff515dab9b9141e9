package services

import (
	"database/sql"
	"errors"
	"fmt"
	"shift_board_backend/internal/models"
	"shift_board_backend/internal/repositories"
	"strings"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrStaffDataValidation = errors.New("staff data validation error")
)

// --- Staff DTOs ---
type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name"`
	Active      *bool  `json:"active"`
}

// PatchStaffRequest carries a partial staff update. Absent fields are left
// unchanged, matching the PATCH contract of the store surface.
type PatchStaffRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Active      *bool   `json:"active"`
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaff(req CreateStaffRequest) (*models.Staff, error)
	GetStaffByID(staffID string) (*models.Staff, error)
	GetStaff() ([]models.Staff, error)
	PatchStaff(staffID string, req PatchStaffRequest) (*models.Staff, error)
	DeleteStaff(staffID string) error
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo repositories.StaffRepository
	db        *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(sr repositories.StaffRepository, db *sql.DB) StaffService {
	return &staffService{
		staffRepo: sr,
		db:        db,
	}
}

func (s *staffService) CreateStaff(req CreateStaffRequest) (*models.Staff, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrStaffDataValidation)
	}

	// The admin form stores the name as display name when none was given.
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = name
	}

	// New staff members are active unless explicitly created otherwise.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	staff := &models.Staff{
		Name:        name,
		DisplayName: displayName,
		Active:      active,
	}

	createdStaff, err := s.staffRepo.CreateStaff(s.db, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}
	return createdStaff, nil
}

func (s *staffService) GetStaffByID(staffID string) (*models.Staff, error) {
	staff, err := s.staffRepo.GetStaffByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaff() ([]models.Staff, error) {
	staffList, err := s.staffRepo.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}
	return staffList, nil
}

func (s *staffService) PatchStaff(staffID string, req PatchStaffRequest) (*models.Staff, error) {
	if req.Name == nil && req.DisplayName == nil && req.Active == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrStaffDataValidation)
	}

	patch := repositories.StaffPatch{
		DisplayName: req.DisplayName,
		Active:      req.Active,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrStaffDataValidation)
		}
		patch.Name = &name
	}

	staff, err := s.staffRepo.PatchStaff(s.db, staffID, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to patch staff member ID %s: %w", staffID, err)
	}
	return staff, nil
}

// DeleteStaff removes the staff record only. Shifts referencing it are NOT
// cascade-deleted; they stay behind as orphans and render with the
// unknown-staff placeholder.
func (s *staffService) DeleteStaff(staffID string) error {
	err := s.staffRepo.DeleteStaff(s.db, staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff member ID %s: %w", staffID, err)
	}
	return nil
}
