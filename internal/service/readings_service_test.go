package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository/mocks"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/service"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

func TestLogGlucose(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	glucoseRepo := mocks.NewMockGlucoseRepositoryI(ctrl)
	bpRepo := mocks.NewMockBloodPressureRepositoryI(ctrl)
	serv := service.NewReadingsService(glucoseRepo, bpRepo)
	uid := uuid.New()
	ctx := context.Background()
	takenAt := time.Now().Add(-time.Hour)
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.LogGlucoseRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req:   &service.LogGlucoseRequest{MmolL: 6.2, Context: "fasting", TakenAt: takenAt},
			MockPrepFunc: func() {
				glucoseRepo.EXPECT().Create(gomock.Any(), &entity.GlucoseReading{
					UserID:  uid,
					MmolL:   6.2,
					Context: "fasting",
					TakenAt: takenAt,
				}).Return(nil)
			},
		},
		{
			Desc:         "value below range",
			Error:        errorvalues.ErrReadingOutOfRange,
			Req:          &service.LogGlucoseRequest{MmolL: 0.4, Context: "fasting", TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			// mg/dL typed into the mmol/L field
			Desc:         "value above range",
			Error:        errorvalues.ErrReadingOutOfRange,
			Req:          &service.LogGlucoseRequest{MmolL: 112, Context: "fasting", TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown context",
			Error:        errorvalues.ErrUnknownContext,
			Req:          &service.LogGlucoseRequest{MmolL: 6.2, Context: "midnight_snack", TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "note too long",
			Error: errorvalues.ErrNoteTooLong,
			Req: &service.LogGlucoseRequest{
				MmolL:   6.2,
				Context: "fasting",
				Note:    strings.Repeat("a", 501),
				TakenAt: takenAt,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "taken in the future",
			Error:        errorvalues.ErrReadingInFuture,
			Req:          &service.LogGlucoseRequest{MmolL: 6.2, Context: "fasting", TakenAt: time.Now().Add(time.Hour * 24)},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.LogGlucose(ctx, uid, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogBloodPressure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	glucoseRepo := mocks.NewMockGlucoseRepositoryI(ctrl)
	bpRepo := mocks.NewMockBloodPressureRepositoryI(ctrl)
	serv := service.NewReadingsService(glucoseRepo, bpRepo)
	uid := uuid.New()
	ctx := context.Background()
	takenAt := time.Now().Add(-time.Hour)
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.LogBloodPressureRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req:   &service.LogBloodPressureRequest{Systolic: 128, Diastolic: 82, Pulse: 70, TakenAt: takenAt},
			MockPrepFunc: func() {
				bpRepo.EXPECT().Create(gomock.Any(), &entity.BloodPressureReading{
					UserID:    uid,
					Systolic:  128,
					Diastolic: 82,
					Pulse:     70,
					TakenAt:   takenAt,
				}).Return(nil)
			},
		},
		{
			Desc:         "systolic out of range",
			Error:        errorvalues.ErrReadingOutOfRange,
			Req:          &service.LogBloodPressureRequest{Systolic: 300, Diastolic: 82, TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "diastolic out of range",
			Error:        errorvalues.ErrReadingOutOfRange,
			Req:          &service.LogBloodPressureRequest{Systolic: 128, Diastolic: 20, TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "systolic not above diastolic",
			Error:        errorvalues.ErrReadingOutOfRange,
			Req:          &service.LogBloodPressureRequest{Systolic: 80, Diastolic: 80, TakenAt: takenAt},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "taken in the future",
			Error:        errorvalues.ErrReadingInFuture,
			Req:          &service.LogBloodPressureRequest{Systolic: 128, Diastolic: 82, TakenAt: time.Now().Add(time.Hour * 24)},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.LogBloodPressure(ctx, uid, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetGlucoseReadings(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	glucoseRepo := mocks.NewMockGlucoseRepositoryI(ctrl)
	bpRepo := mocks.NewMockBloodPressureRepositoryI(ctrl)
	serv := service.NewReadingsService(glucoseRepo, bpRepo)
	uid := uuid.New()
	readings := []*entity.GlucoseReading{
		{ID: 1, UserID: uid, MmolL: 5.4, Context: "fasting"},
	}
	glucoseRepo.EXPECT().GetByUserID(gomock.Any(), uid, 10, 0).Return(readings, nil)
	got, err := serv.GetGlucoseReadings(context.Background(), uid, service.PaginationOpts{Limit: 10, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, readings, got)
}
