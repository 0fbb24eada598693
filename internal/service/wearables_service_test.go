package service_test

import (
	"context"
	"errors"
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

func TestParseCSV(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv := service.NewWearablesService(mocks.NewMockWearableSamplesRepositoryI(ctrl))

	t.Run("successful", func(t *testing.T) {
		body := "recorded_at,metric,value\n" +
			"2025-07-14T08:00:00Z,steps,8450\n" +
			"2025-07-14T08:00:00Z,Heart_Rate,72\n"
		samples, err := serv.ParseCSV(strings.NewReader(body))
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, "steps", samples[0].Metric)
		assert.Equal(t, 8450.0, samples[0].Value)
		// metric names are normalized to lowercase
		assert.Equal(t, "heart_rate", samples[1].Metric)
		assert.Equal(t, time.Date(2025, time.July, 14, 8, 0, 0, 0, time.UTC), samples[0].RecordedAt.UTC())
	})

	t.Run("wrong header", func(t *testing.T) {
		_, err := serv.ParseCSV(strings.NewReader("time,kind,amount\n2025-07-14T08:00:00Z,steps,1\n"))
		assert.ErrorIs(t, err, errorvalues.ErrMalformedSampleRow)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := serv.ParseCSV(strings.NewReader("recorded_at,metric,value\n14.07.2025,steps,1\n"))
		assert.ErrorIs(t, err, errorvalues.ErrMalformedSampleRow)
	})

	t.Run("bad value", func(t *testing.T) {
		_, err := serv.ParseCSV(strings.NewReader("recorded_at,metric,value\n2025-07-14T08:00:00Z,steps,many\n"))
		assert.ErrorIs(t, err, errorvalues.ErrMalformedSampleRow)
	})

	t.Run("wrong column count", func(t *testing.T) {
		_, err := serv.ParseCSV(strings.NewReader("recorded_at,metric,value\n2025-07-14T08:00:00Z,steps\n"))
		assert.ErrorIs(t, err, errorvalues.ErrMalformedSampleRow)
	})
}

func TestImport(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	samplesRepo := mocks.NewMockWearableSamplesRepositoryI(ctrl)
	serv := service.NewWearablesService(samplesRepo)
	uid := uuid.New()
	ctx := context.Background()
	recordedAt := time.Now().Add(-time.Hour)

	t.Run("successful", func(t *testing.T) {
		samples := []entity.WearableSample{
			{RecordedAt: recordedAt, Metric: "steps", Value: 8450},
			{RecordedAt: recordedAt, Metric: "sleep_minutes", Value: 431},
		}
		samplesRepo.EXPECT().InsertBatch(gomock.Any(), uid, samples).Return(nil)
		imported, err := serv.Import(ctx, uid, samples)
		require.NoError(t, err)
		assert.Equal(t, 2, imported)
	})

	t.Run("empty import", func(t *testing.T) {
		_, err := serv.Import(ctx, uid, nil)
		assert.ErrorIs(t, err, errorvalues.ErrEmptyImport)
	})

	t.Run("over sample cap rejects everything", func(t *testing.T) {
		samples := make([]entity.WearableSample, 1001)
		for i := range samples {
			samples[i] = entity.WearableSample{RecordedAt: recordedAt, Metric: "steps", Value: 1}
		}
		_, err := serv.Import(ctx, uid, samples)
		assert.ErrorIs(t, err, errorvalues.ErrTooManySamples)
	})

	t.Run("unknown metric rejects everything", func(t *testing.T) {
		samples := []entity.WearableSample{
			{RecordedAt: recordedAt, Metric: "steps", Value: 8450},
			{RecordedAt: recordedAt, Metric: "vo2max", Value: 41},
		}
		_, err := serv.Import(ctx, uid, samples)
		assert.ErrorIs(t, err, errorvalues.ErrUnknownMetric)
	})

	t.Run("future sample rejects everything", func(t *testing.T) {
		samples := []entity.WearableSample{
			{RecordedAt: time.Now().Add(time.Hour * 48), Metric: "steps", Value: 100},
		}
		_, err := serv.Import(ctx, uid, samples)
		assert.ErrorIs(t, err, errorvalues.ErrReadingInFuture)
	})

	t.Run("repository error", func(t *testing.T) {
		samples := []entity.WearableSample{
			{RecordedAt: recordedAt, Metric: "steps", Value: 1},
		}
		samplesRepo.EXPECT().InsertBatch(gomock.Any(), uid, samples).Return(errors.New("db error"))
		_, err := serv.Import(ctx, uid, samples)
		assert.EqualError(t, err, "repository error: db error")
	})
}
