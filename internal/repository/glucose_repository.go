package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/cleanup"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

type GlucoseRepository struct {
	conn PgConnection
}

func NewGlucoseRepo(cfg DBConfig) *GlucoseRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for glucoseRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for glucoseRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GlucoseRepository{
		conn: pool,
	}
}

func NewGlucoseRepoWithConn(conn PgConnection) *GlucoseRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for glucoseRepo: " + err.Error())
	}
	return &GlucoseRepository{
		conn: conn,
	}
}

func (gr *GlucoseRepository) Create(ctx context.Context, reading *entity.GlucoseReading) error {
	if reading == nil {
		return errors.New("reading is nil")
	}
	_, err := gr.conn.Exec(
		ctx,
		`INSERT INTO glucose_readings (user_id, mmol_l, context, note, taken_at) VALUES ($1, $2, $3, $4, $5);`,
		reading.UserID,
		reading.MmolL,
		reading.Context,
		reading.Note,
		reading.TakenAt,
	)
	if err != nil {
		return errors.New("creating glucose reading error: " + err.Error())
	}
	return nil
}

func (gr *GlucoseRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.GlucoseReading, error) {
	readings := make([]*entity.GlucoseReading, 0)
	rows, err := gr.conn.Query(ctx, `SELECT id, user_id, mmol_l, context, note, taken_at, created_at
		FROM glucose_readings WHERE user_id = $1 ORDER BY taken_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting glucose readings by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.GlucoseReading{}
		err = rows.Scan(&r.ID, &r.UserID, &r.MmolL, &r.Context, &r.Note, &r.TakenAt, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("glucose reading row parsing error: " + err.Error())
		}
		readings = append(readings, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected glucose reading rows error: " + rows.Err().Error())
	}
	return readings, nil
}
