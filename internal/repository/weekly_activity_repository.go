package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/cleanup"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
)

type WeeklyActivityRepository struct {
	conn PgConnection
}

func NewWeeklyActivityRepo(cfg DBConfig) *WeeklyActivityRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for weeklyActivityRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weeklyActivityRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WeeklyActivityRepository{
		conn: pool,
	}
}

func NewWeeklyActivityRepoWithConn(conn PgConnection) *WeeklyActivityRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weeklyActivityRepo: " + err.Error())
	}
	return &WeeklyActivityRepository{
		conn: conn,
	}
}

func (war *WeeklyActivityRepository) Upsert(ctx context.Context, rec *entity.WeeklyActivity) error {
	if rec == nil {
		return errors.New("weekly activity record is nil")
	}
	payload, err := sonic.ConfigDefault.Marshal(rec.Payload)
	if err != nil {
		return errors.New("marshalling payload error: " + err.Error())
	}
	// Payload is replaced wholesale, partial merges are never performed
	_, err = war.conn.Exec(
		ctx,
		`INSERT INTO weekly_activity (user_id, iso_year, iso_week, payload, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, iso_year, iso_week)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW();`,
		rec.UserID,
		rec.ISOYear,
		rec.ISOWeek,
		payload,
	)
	if err != nil {
		return errors.New("upserting weekly activity error: " + err.Error())
	}
	return nil
}

// GetByUserAndWeeks filters on exact (iso_year, iso_week) tuples. The
// predicate is built per pair so no week outside the allowed set can match,
// even when the set crosses a year boundary.
func (war *WeeklyActivityRepository) GetByUserAndWeeks(ctx context.Context, uid uuid.UUID, weeks []isoweek.YearWeek) ([]*entity.WeeklyActivity, error) {
	result := make([]*entity.WeeklyActivity, 0, len(weeks))
	if len(weeks) == 0 {
		return result, nil
	}
	query, args := buildWeeksQuery(uid, weeks)
	rows, err := war.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting weekly activity list error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		rec, err := scanWeeklyActivity(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected weekly activity rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (war *WeeklyActivityRepository) GetByUserAndWeek(ctx context.Context, uid uuid.UUID, week isoweek.YearWeek) (*entity.WeeklyActivity, error) {
	row := war.conn.QueryRow(
		ctx,
		`SELECT user_id, iso_year, iso_week, payload, updated_at FROM weekly_activity
		WHERE user_id = $1 AND iso_year = $2 AND iso_week = $3;`,
		uid,
		week.Year,
		week.Week,
	)
	rec, err := scanWeeklyActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeekNotFound
		}
		return nil, err
	}
	return rec, nil
}

func buildWeeksQuery(uid uuid.UUID, weeks []isoweek.YearWeek) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(weeks)*2+1)
	args = append(args, uid)
	sb.WriteString(`SELECT user_id, iso_year, iso_week, payload, updated_at FROM weekly_activity WHERE user_id = $1 AND (`)
	for i, w := range weeks {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("(iso_year = $" + strconv.Itoa(len(args)+1) + " AND iso_week = $" + strconv.Itoa(len(args)+2) + ")")
		args = append(args, w.Year, w.Week)
	}
	sb.WriteString(`) ORDER BY iso_year DESC, iso_week DESC;`)
	return sb.String(), args
}

func scanWeeklyActivity(row pgx.Row) (*entity.WeeklyActivity, error) {
	var rec entity.WeeklyActivity
	var payload []byte
	if err := row.Scan(&rec.UserID, &rec.ISOYear, &rec.ISOWeek, &payload, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, errors.New("weekly activity row parsing error: " + err.Error())
	}
	if err := sonic.ConfigDefault.Unmarshal(payload, &rec.Payload); err != nil {
		return nil, errors.New("unmarshalling payload error: " + err.Error())
	}
	return &rec, nil
}
