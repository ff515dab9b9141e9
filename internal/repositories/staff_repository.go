package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"shift_board_backend/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// StaffRepository defines the interface for staff record store operations.
type StaffRepository interface {
	CreateStaff(executor SQLExecutor, staff *models.Staff) (*models.Staff, error)
	GetStaffByID(id string) (*models.Staff, error)
	GetStaff() ([]models.Staff, error)
	PatchStaff(executor SQLExecutor, id string, fields StaffPatch) (*models.Staff, error)
	DeleteStaff(executor SQLExecutor, id string) error
}

// StaffPatch carries the partial fields of a staff update. Nil means
// "leave unchanged", matching the PATCH semantics of the store surface.
type StaffPatch struct {
	Name        *string
	DisplayName *string
	Active      *bool
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) CreateStaff(executor SQLExecutor, staff *models.Staff) (*models.Staff, error) {
	query := `INSERT INTO staff (id, name, display_name, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`

	currentTime := time.Now()
	staff.ID = uuid.NewString()
	staff.CreatedAt = currentTime
	staff.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		staff.ID, staff.Name, staff.DisplayName, staff.Active,
		staff.CreatedAt, staff.UpdatedAt,
	).Scan(&staff.CreatedAt, &staff.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: staff id %s already exists", ErrDuplicateKey, staff.ID)
		}
		return nil, fmt.Errorf("%w: creating staff: %v", ErrDatabaseError, err)
	}
	return staff, nil
}

func scanStaffRow(row scanner) (*models.Staff, error) {
	var staff models.Staff
	var displayName sql.NullString

	err := row.Scan(
		&staff.ID, &staff.Name, &displayName, &staff.Active,
		&staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning staff: %v", ErrDatabaseError, err)
	}

	if displayName.Valid {
		staff.DisplayName = displayName.String
	}
	return &staff, nil
}

func (r *staffRepository) GetStaffByID(id string) (*models.Staff, error) {
	query := `SELECT id, name, display_name, active, created_at, updated_at
	          FROM staff
	          WHERE id = $1`
	return scanStaffRow(r.db.QueryRow(query, id))
}

// GetStaff returns all staff records in creation order, the order the
// admin registered them and the order every view preserves.
func (r *staffRepository) GetStaff() ([]models.Staff, error) {
	staffList := []models.Staff{}

	query := `SELECT id, name, display_name, active, created_at, updated_at
	          FROM staff
	          ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		staff, err := scanStaffRow(rows)
		if err != nil {
			return nil, err
		}
		staffList = append(staffList, *staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff rows: %v", ErrDatabaseError, err)
	}
	return staffList, nil
}

func (r *staffRepository) PatchStaff(executor SQLExecutor, id string, fields StaffPatch) (*models.Staff, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if fields.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *fields.Name)
		argCount++
	}
	if fields.DisplayName != nil {
		setClauses = append(setClauses, fmt.Sprintf("display_name = $%d", argCount))
		args = append(args, *fields.DisplayName)
		argCount++
	}
	if fields.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", argCount))
		args = append(args, *fields.Active)
		argCount++
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE staff SET %s WHERE id = $%d
	          RETURNING id, name, display_name, active, created_at, updated_at`,
		strings.Join(setClauses, ", "), argCount)

	return scanStaffRow(executor.QueryRow(query, args...))
}

func (r *staffRepository) DeleteStaff(executor SQLExecutor, id string) error {
	// Shifts referencing this staff member are intentionally left in place:
	// staff_id is a weak reference and orphaned shifts render with a
	// placeholder label.
	query := `DELETE FROM staff WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting staff ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
