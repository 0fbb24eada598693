package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Changes user's subscription plan
	UpdatePlan(ctx context.Context, uid uuid.UUID, plan string) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type WeeklyActivityRepositoryI interface {
	// Writes the record for (user, iso year, iso week), replacing payload
	// wholesale if the row already exists
	Upsert(ctx context.Context, rec *entity.WeeklyActivity) error
	// Lists records matching exactly the given (year, week) pairs, newest first
	GetByUserAndWeeks(ctx context.Context, uid uuid.UUID, weeks []isoweek.YearWeek) ([]*entity.WeeklyActivity, error)
	// Fetches a single week's record
	GetByUserAndWeek(ctx context.Context, uid uuid.UUID, week isoweek.YearWeek) (*entity.WeeklyActivity, error)
}

type GlucoseRepositoryI interface {
	Create(ctx context.Context, reading *entity.GlucoseReading) error
	// Lists readings owned by uid, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.GlucoseReading, error)
}

type BloodPressureRepositoryI interface {
	Create(ctx context.Context, reading *entity.BloodPressureReading) error
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.BloodPressureReading, error)
}

type WearableSamplesRepositoryI interface {
	// Inserts the whole batch in a single statement. All-or-nothing
	InsertBatch(ctx context.Context, uid uuid.UUID, samples []entity.WearableSample) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
