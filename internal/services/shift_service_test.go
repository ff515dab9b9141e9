package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shift_board_backend/internal/models"
	"shift_board_backend/internal/repositories"
)

func Test_shiftService_CreateShift(t *testing.T) {
	validReq := CreateShiftRequest{
		StaffID:   "staff-1",
		Date:      "2024-03-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	tests := []struct {
		name      string
		req       CreateShiftRequest
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should create a shift with default scheduled status",
			req:  validReq,
			buildMock: func(m allMocks) {
				m.mockShiftRepo.EXPECT().
					CreateShift(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ repositories.SQLExecutor, shift *models.Shift) (*models.Shift, error) {
						require.Equal(t, models.ShiftScheduled, shift.Status)
						require.Equal(t, "09:00", shift.StartTime, "raw time stored as submitted")
						shift.ID = "shift-1"
						return shift, nil
					}).Times(1)
			},
		},
		{
			name: "Should accept an explicit status and seconds precision times",
			req: CreateShiftRequest{
				StaffID:   "staff-1",
				Date:      "2024-03-15",
				StartTime: "09:00:00",
				EndTime:   "17:30:00",
				Status:    "confirmed",
			},
			buildMock: func(m allMocks) {
				m.mockShiftRepo.EXPECT().
					CreateShift(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ repositories.SQLExecutor, shift *models.Shift) (*models.Shift, error) {
						require.Equal(t, models.ShiftConfirmed, shift.Status)
						return shift, nil
					}).Times(1)
			},
		},
		{
			name: "Should reject end before start",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "2024-03-15",
				StartTime: "10:00", EndTime: "09:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftTimeOrder,
		},
		{
			name: "Should reject equal start and end",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "2024-03-15",
				StartTime: "10:00", EndTime: "10:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftTimeOrder,
		},
		{
			name: "Should reject equal times across precisions",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "2024-03-15",
				StartTime: "10:00", EndTime: "10:00:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftTimeOrder,
		},
		{
			name: "Should reject a malformed date",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "15-03-2024",
				StartTime: "09:00", EndTime: "17:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftDateFormat,
		},
		{
			name: "Should reject a malformed time",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "2024-03-15",
				StartTime: "9am", EndTime: "17:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftTimeFormat,
		},
		{
			name: "Should reject an unknown status",
			req: CreateShiftRequest{
				StaffID: "staff-1", Date: "2024-03-15",
				StartTime: "09:00", EndTime: "17:00",
				Status: "tentative",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftStatusUnknown,
		},
		{
			name: "Should reject a blank staff id",
			req: CreateShiftRequest{
				StaffID: " ", Date: "2024-03-15",
				StartTime: "09:00", EndTime: "17:00",
			},
			buildMock: func(m allMocks) {},
			wantErr:   ErrShiftDataValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			tt.buildMock(m)

			svc := NewShiftService(m.mockShiftRepo, nil)
			shift, err := svc.CreateShift(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, shift)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, shift)
		})
	}
}

func Test_shiftService_DeleteShift(t *testing.T) {
	t.Run("Should map repository not found", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockShiftRepo.EXPECT().DeleteShift(gomock.Any(), "missing").Return(repositories.ErrNotFound).Times(1)

		svc := NewShiftService(m.mockShiftRepo, nil)
		require.ErrorIs(t, svc.DeleteShift("missing"), ErrShiftNotFound)
	})
}
