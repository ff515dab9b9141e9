package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shift_board_backend/internal/models"
)

func TestActiveStaff(t *testing.T) {
	staffList := []models.Staff{
		{ID: "1", Name: "Sato", Active: true},
		{ID: "2", Name: "Suzuki", Active: false},
		{ID: "3", Name: "Tanaka", Active: true},
	}

	active := ActiveStaff(staffList)

	assert.Equal(t, []string{"1", "3"}, staffIDs(active))
	assert.Equal(t, active, ActiveStaff(active), "must be idempotent")
	assert.Empty(t, ActiveStaff(nil))
}

func TestVisibleShifts(t *testing.T) {
	shifts := []models.Shift{
		{ID: "a", Status: models.ShiftScheduled},
		{ID: "b", Status: models.ShiftCancelled},
		{ID: "c", Status: models.ShiftConfirmed},
		{ID: "d", Status: models.ShiftStatus("weird")}, // legacy value, still visible
	}

	visible := VisibleShifts(shifts)

	assert.Equal(t, []string{"a", "c", "d"}, shiftIDs(visible))
	assert.Equal(t, visible, VisibleShifts(visible), "must be idempotent")
	assert.Empty(t, VisibleShifts(nil))
}

func TestMonthShifts(t *testing.T) {
	shifts := []models.Shift{
		{ID: "a", Date: "2024-03-20"},
		{ID: "b", Date: "2024-02-29"},
		{ID: "c", Date: "2024-03-05"},
		{ID: "d", Date: "2024-03-05"},
		{ID: "e", Date: "2024-04-01"},
	}

	monthly := MonthShifts(MonthCursor{Year: 2024, Month: time.March}, shifts)

	// Date ascending, stable between the two shifts on the 5th.
	assert.Equal(t, []string{"c", "d", "a"}, shiftIDs(monthly))
}

func staffIDs(staffList []models.Staff) []string {
	ids := []string{}
	for _, s := range staffList {
		ids = append(ids, s.ID)
	}
	return ids
}

func shiftIDs(shifts []models.Shift) []string {
	ids := []string{}
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	return ids
}
