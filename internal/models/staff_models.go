package models

import (
	"fmt"
	"time"
)

// Staff represents a staff member shown on the shift board.
type Staff struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DisplayName string    `json:"display_name,omitempty" db:"display_name"` // Falls back to Name when empty
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ShiftStatus is the closed set of shift states. Raw strings are validated
// where they enter the system; reads tolerate unrecognized values and
// presentation maps them to an "unknown" label.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftConfirmed ShiftStatus = "confirmed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// ParseShiftStatus validates a raw status string at the write boundary.
// An empty string defaults to scheduled, matching the admin form default.
func ParseShiftStatus(raw string) (ShiftStatus, error) {
	switch ShiftStatus(raw) {
	case ShiftScheduled, ShiftConfirmed, ShiftCancelled:
		return ShiftStatus(raw), nil
	case "":
		return ShiftScheduled, nil
	}
	return "", fmt.Errorf("unknown shift status %q", raw)
}

// Shift represents a single work shift on a calendar date.
// StaffID is a weak reference: no referential integrity is enforced and a
// missing match is a valid state rendered with a placeholder staff label.
type Shift struct {
	ID        string      `json:"id" db:"id"`
	StaffID   string      `json:"staff_id" db:"staff_id"`
	Date      string      `json:"date" db:"date"`             // ISO YYYY-MM-DD, no time zone
	StartTime string      `json:"start_time" db:"start_time"` // HH:MM or HH:MM:SS, local time of day
	EndTime   string      `json:"end_time" db:"end_time"`
	Status    ShiftStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
