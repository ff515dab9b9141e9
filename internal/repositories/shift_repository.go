package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"shift_board_backend/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShiftRepository defines the interface for shift record store operations.
type ShiftRepository interface {
	CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	GetShiftByID(id string) (*models.Shift, error)
	GetShifts() ([]models.Shift, error)
	GetShiftsByDateRange(fromDate, toDate string) ([]models.Shift, error)
	DeleteShift(executor SQLExecutor, id string) error
}

type shiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a new instance of ShiftRepository.
func NewShiftRepository(db *sql.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	query := `INSERT INTO shifts (id, staff_id, date, start_time, end_time, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING created_at, updated_at`

	currentTime := time.Now()
	shift.ID = uuid.NewString()
	shift.CreatedAt = currentTime
	shift.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		shift.ID, shift.StaffID, shift.Date, shift.StartTime, shift.EndTime,
		shift.Status, shift.CreatedAt, shift.UpdatedAt,
	).Scan(&shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: shift id %s already exists", ErrDuplicateKey, shift.ID)
		}
		return nil, fmt.Errorf("%w: creating shift: %v", ErrDatabaseError, err)
	}
	return shift, nil
}

func scanShiftRow(row scanner) (*models.Shift, error) {
	var shift models.Shift
	var status string

	err := row.Scan(
		&shift.ID, &shift.StaffID, &shift.Date, &shift.StartTime, &shift.EndTime,
		&status, &shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning shift: %v", ErrDatabaseError, err)
	}

	// Stored rows can predate the current status set; carried through as-is
	// and mapped to an unknown label at presentation time.
	shift.Status = models.ShiftStatus(status)
	return &shift, nil
}

func (r *shiftRepository) GetShiftByID(id string) (*models.Shift, error) {
	query := `SELECT id, staff_id, date, start_time, end_time, status, created_at, updated_at
	          FROM shifts
	          WHERE id = $1`
	return scanShiftRow(r.db.QueryRow(query, id))
}

// GetShifts returns all shift records in creation order. Within-day ordering
// for the calendar views is applied by the schedule package, which needs the
// original collection order for stable tie-breaking.
func (r *shiftRepository) GetShifts() ([]models.Shift, error) {
	query := `SELECT id, staff_id, date, start_time, end_time, status, created_at, updated_at
	          FROM shifts
	          ORDER BY created_at ASC, id ASC`
	return r.queryShifts(query)
}

// GetShiftsByDateRange returns shifts whose date falls within [fromDate, toDate]
// inclusive. Dates are ISO YYYY-MM-DD strings, so lexicographic comparison in
// SQL matches calendar order.
func (r *shiftRepository) GetShiftsByDateRange(fromDate, toDate string) ([]models.Shift, error) {
	query := `SELECT id, staff_id, date, start_time, end_time, status, created_at, updated_at
	          FROM shifts
	          WHERE date >= $1 AND date <= $2
	          ORDER BY created_at ASC, id ASC`
	return r.queryShifts(query, fromDate, toDate)
}

func (r *shiftRepository) queryShifts(query string, args ...interface{}) ([]models.Shift, error) {
	shifts := []models.Shift{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shifts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		shift, err := scanShiftRow(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shift rows: %v", ErrDatabaseError, err)
	}
	return shifts, nil
}

func (r *shiftRepository) DeleteShift(executor SQLExecutor, id string) error {
	query := `DELETE FROM shifts WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting shift ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
