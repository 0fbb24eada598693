package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository/mocks"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/service"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/plan"
)

// fixed reference week keeps window expectations stable
func fixedWeek() isoweek.YearWeek {
	return isoweek.YearWeek{Year: 2025, Week: 30}
}

func TestGetHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockWeeklyActivityRepositoryI(ctrl)
	serv := service.NewWeeklyActivityServiceWithClock(activityRepo, fixedWeek)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("free plan gets a one week window", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "free"}
		activityRepo.EXPECT().
			GetByUserAndWeeks(gomock.Any(), uid, []isoweek.YearWeek{{Year: 2025, Week: 30}}).
			Return([]*entity.WeeklyActivity{}, nil)
		history, err := serv.GetHistory(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, plan.Free, history.Plan)
		assert.Equal(t, 1, history.WeeksAllowed)
		assert.Equal(t, fixedWeek(), history.Current)
	})

	t.Run("premium plan gets a four week window", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "premium"}
		expectedWindow := []isoweek.YearWeek{
			{Year: 2025, Week: 30},
			{Year: 2025, Week: 29},
			{Year: 2025, Week: 28},
			{Year: 2025, Week: 27},
		}
		recs := []*entity.WeeklyActivity{
			{UserID: uid, ISOYear: 2025, ISOWeek: 30, Payload: entity.WeekPayload{"mon": {"sleep": true}}},
		}
		activityRepo.EXPECT().GetByUserAndWeeks(gomock.Any(), uid, expectedWindow).Return(recs, nil)
		history, err := serv.GetHistory(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 4, history.WeeksAllowed)
		assert.Equal(t, recs, history.Weeks)
	})

	t.Run("unknown plan falls back to free window", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "pro++"}
		activityRepo.EXPECT().
			GetByUserAndWeeks(gomock.Any(), uid, []isoweek.YearWeek{{Year: 2025, Week: 30}}).
			Return([]*entity.WeeklyActivity{}, nil)
		history, err := serv.GetHistory(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 1, history.WeeksAllowed)
	})

	t.Run("repository error", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "free"}
		activityRepo.EXPECT().GetByUserAndWeeks(gomock.Any(), uid, gomock.Any()).Return(nil, errors.New("db error"))
		_, err := serv.GetHistory(ctx, user)
		assert.EqualError(t, err, "repository error: db error")
	})

	t.Run("nil user", func(t *testing.T) {
		_, err := serv.GetHistory(ctx, nil)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestSaveCurrentWeek(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockWeeklyActivityRepositoryI(ctrl)
	serv := service.NewWeeklyActivityServiceWithClock(activityRepo, fixedWeek)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("success with case normalization", func(t *testing.T) {
		activityRepo.EXPECT().Upsert(gomock.Any(), &entity.WeeklyActivity{
			UserID:  uid,
			ISOYear: 2025,
			ISOWeek: 30,
			Payload: entity.WeekPayload{"mon": {"sleep": true, "movement": false}},
		}).Return(nil)
		week, err := serv.SaveCurrentWeek(ctx, uid, entity.WeekPayload{
			"MON": {"Sleep": true, "movement": false},
		})
		require.NoError(t, err)
		assert.Equal(t, fixedWeek(), week)
	})

	t.Run("unknown day key rejects whole write", func(t *testing.T) {
		_, err := serv.SaveCurrentWeek(ctx, uid, entity.WeekPayload{
			"mon":     {"sleep": true},
			"someday": {"sleep": true},
		})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPayload)
	})

	t.Run("unknown category key rejects whole write", func(t *testing.T) {
		_, err := serv.SaveCurrentWeek(ctx, uid, entity.WeekPayload{
			"mon": {"sleep": true, "nutrition": true},
		})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPayload)
	})

	t.Run("repository error", func(t *testing.T) {
		activityRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
		_, err := serv.SaveCurrentWeek(ctx, uid, entity.WeekPayload{"mon": {"sleep": true}})
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestGetWeek(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockWeeklyActivityRepositoryI(ctrl)
	serv := service.NewWeeklyActivityServiceWithClock(activityRepo, fixedWeek)
	uid := uuid.New()
	ctx := context.Background()
	twoWeeksBack := isoweek.YearWeek{Year: 2025, Week: 28}

	t.Run("free plan can't reach two weeks back", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "free"}
		_, err := serv.GetWeek(ctx, user, twoWeeksBack)
		assert.ErrorIs(t, err, errorvalues.ErrWeekOutsideWindow)
	})

	t.Run("premium plan reads two weeks back", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "premium"}
		rec := &entity.WeeklyActivity{
			UserID:  uid,
			ISOYear: 2025,
			ISOWeek: 28,
			Payload: entity.WeekPayload{"fri": {"mindfulness": true}},
		}
		activityRepo.EXPECT().GetByUserAndWeek(gomock.Any(), uid, twoWeeksBack).Return(rec, nil)
		got, err := serv.GetWeek(ctx, user, twoWeeksBack)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("within window but no record", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "premium"}
		activityRepo.EXPECT().GetByUserAndWeek(gomock.Any(), uid, twoWeeksBack).Return(nil, errorvalues.ErrWeekNotFound)
		_, err := serv.GetWeek(ctx, user, twoWeeksBack)
		assert.ErrorIs(t, err, errorvalues.ErrWeekNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		user := &entity.User{ID: uid, Name: "test_name", Plan: "premium"}
		activityRepo.EXPECT().GetByUserAndWeek(gomock.Any(), uid, twoWeeksBack).Return(nil, errors.New("db error"))
		_, err := serv.GetWeek(ctx, user, twoWeeksBack)
		assert.EqualError(t, err, "repository error: db error")
	})
}
