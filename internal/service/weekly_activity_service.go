package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/plan"
)

type WeeklyActivityService struct {
	repo repository.WeeklyActivityRepositoryI
	// injectable for tests, defaults to isoweek.Current
	currentWeek func() isoweek.YearWeek
}

func NewWeeklyActivityService(activityRepo repository.WeeklyActivityRepositoryI) *WeeklyActivityService {
	if activityRepo == nil {
		log.Fatal("on weekly activity service provided nil repo")
	}
	return &WeeklyActivityService{
		repo:        activityRepo,
		currentWeek: isoweek.Current,
	}
}

func NewWeeklyActivityServiceWithClock(activityRepo repository.WeeklyActivityRepositoryI, currentWeek func() isoweek.YearWeek) *WeeklyActivityService {
	serv := NewWeeklyActivityService(activityRepo)
	serv.currentWeek = currentWeek
	return serv
}

func (serv *WeeklyActivityService) GetHistory(ctx context.Context, user *entity.User) (*WeeklyHistory, error) {
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	tier := plan.Resolve(user)
	current := serv.currentWeek()
	allowed := isoweek.History(tier.HistoryWeeks(), current)
	weeks, err := serv.repo.GetByUserAndWeeks(ctx, user.ID, allowed)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &WeeklyHistory{
		Current:      current,
		Weeks:        weeks,
		Plan:         tier,
		WeeksAllowed: tier.HistoryWeeks(),
	}, nil
}

// SaveCurrentWeek always targets the server-computed current ISO week so
// clients can't backdate or forward-date entries.
func (serv *WeeklyActivityService) SaveCurrentWeek(ctx context.Context, uid uuid.UUID, payload entity.WeekPayload) (isoweek.YearWeek, error) {
	normalized, err := normalizeWeekPayload(payload)
	if err != nil {
		return isoweek.YearWeek{}, err
	}
	current := serv.currentWeek()
	err = serv.repo.Upsert(ctx, &entity.WeeklyActivity{
		UserID:  uid,
		ISOYear: current.Year,
		ISOWeek: current.Week,
		Payload: normalized,
	})
	if err != nil {
		return isoweek.YearWeek{}, errors.New("repository error: " + err.Error())
	}
	return current, nil
}

func (serv *WeeklyActivityService) GetWeek(ctx context.Context, user *entity.User, week isoweek.YearWeek) (*entity.WeeklyActivity, error) {
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	tier := plan.Resolve(user)
	allowed := isoweek.History(tier.HistoryWeeks(), serv.currentWeek())
	if !isoweek.Contains(allowed, week) {
		return nil, errorvalues.ErrWeekOutsideWindow
	}
	rec, err := serv.repo.GetByUserAndWeek(ctx, user.ID, week)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeekNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return rec, nil
}
