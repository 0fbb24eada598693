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

type BloodPressureRepository struct {
	conn PgConnection
}

func NewBloodPressureRepo(cfg DBConfig) *BloodPressureRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for bloodPressureRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for bloodPressureRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BloodPressureRepository{
		conn: pool,
	}
}

func NewBloodPressureRepoWithConn(conn PgConnection) *BloodPressureRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for bloodPressureRepo: " + err.Error())
	}
	return &BloodPressureRepository{
		conn: conn,
	}
}

func (bpr *BloodPressureRepository) Create(ctx context.Context, reading *entity.BloodPressureReading) error {
	if reading == nil {
		return errors.New("reading is nil")
	}
	_, err := bpr.conn.Exec(
		ctx,
		`INSERT INTO blood_pressure_readings (user_id, systolic, diastolic, pulse, taken_at) VALUES ($1, $2, $3, $4, $5);`,
		reading.UserID,
		reading.Systolic,
		reading.Diastolic,
		reading.Pulse,
		reading.TakenAt,
	)
	if err != nil {
		return errors.New("creating blood pressure reading error: " + err.Error())
	}
	return nil
}

func (bpr *BloodPressureRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.BloodPressureReading, error) {
	readings := make([]*entity.BloodPressureReading, 0)
	rows, err := bpr.conn.Query(ctx, `SELECT id, user_id, systolic, diastolic, pulse, taken_at, created_at
		FROM blood_pressure_readings WHERE user_id = $1 ORDER BY taken_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting blood pressure readings by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.BloodPressureReading{}
		err = rows.Scan(&r.ID, &r.UserID, &r.Systolic, &r.Diastolic, &r.Pulse, &r.TakenAt, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("blood pressure reading row parsing error: " + err.Error())
		}
		readings = append(readings, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected blood pressure reading rows error: " + rows.Err().Error())
	}
	return readings, nil
}
