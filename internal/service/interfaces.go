package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/plan"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type LogGlucoseRequest struct {
	MmolL   float64
	Context string
	Note    string
	TakenAt time.Time
}

type LogBloodPressureRequest struct {
	Systolic  int
	Diastolic int
	Pulse     int
	TakenAt   time.Time
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// WeeklyHistory is everything the weekly grid screen needs in one response.
type WeeklyHistory struct {
	Current      isoweek.YearWeek
	Weeks        []*entity.WeeklyActivity
	Plan         plan.Tier
	WeeksAllowed int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Persists a new subscription tier for the user. Rejects unknown tier names
	ChangePlan(ctx context.Context, id uuid.UUID, rawPlan string) (plan.Tier, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type WeeklyActivityServiceI interface {
	// Returns persisted weeks within the user's plan window, newest first
	GetHistory(ctx context.Context, user *entity.User) (*WeeklyHistory, error)
	// Validates the payload against the closed day/category sets and writes it
	// to the server-computed current ISO week
	SaveCurrentWeek(ctx context.Context, uid uuid.UUID, payload entity.WeekPayload) (isoweek.YearWeek, error)
	// Fetches one week if it lies within the user's plan window
	GetWeek(ctx context.Context, user *entity.User, week isoweek.YearWeek) (*entity.WeeklyActivity, error)
}

type ReadingsServiceI interface {
	LogGlucose(ctx context.Context, uid uuid.UUID, req *LogGlucoseRequest) error
	GetGlucoseReadings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.GlucoseReading, error)
	LogBloodPressure(ctx context.Context, uid uuid.UUID, req *LogBloodPressureRequest) error
	GetBloodPressureReadings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.BloodPressureReading, error)
}

type WearablesServiceI interface {
	// Parses a recorded_at,metric,value CSV body into samples
	ParseCSV(r io.Reader) ([]entity.WearableSample, error)
	// Validates metrics, enforces the per-request cap and batch inserts.
	// Returns the number of inserted samples
	Import(ctx context.Context, uid uuid.UUID, samples []entity.WearableSample) (int, error)
}
