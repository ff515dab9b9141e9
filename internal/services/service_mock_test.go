package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shift_board_backend/mocks"
)

type allMocks struct {
	mockStaffRepo *mocks.MockStaffRepository
	mockShiftRepo *mocks.MockShiftRepository
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStaffRepo: mocks.NewMockStaffRepository(ctrl),
		mockShiftRepo: mocks.NewMockShiftRepository(ctrl),
	}

	// validate service creation
	require.NotNil(t, NewStaffService(m.mockStaffRepo, nil))
	require.NotNil(t, NewShiftService(m.mockShiftRepo, nil))
	require.NotNil(t, NewScheduleService(m.mockStaffRepo, m.mockShiftRepo))

	return
}
