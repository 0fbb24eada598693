package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/cleanup"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

type WearableSamplesRepository struct {
	conn PgConnection
}

func NewWearableSamplesRepo(cfg DBConfig) *WearableSamplesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for wearableSamplesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for wearableSamplesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WearableSamplesRepository{
		conn: pool,
	}
}

func NewWearableSamplesRepoWithConn(conn PgConnection) *WearableSamplesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for wearableSamplesRepo: " + err.Error())
	}
	return &WearableSamplesRepository{
		conn: conn,
	}
}

// InsertBatch writes all samples in one multi-VALUES statement, so a failure
// anywhere leaves nothing inserted.
func (wsr *WearableSamplesRepository) InsertBatch(ctx context.Context, uid uuid.UUID, samples []entity.WearableSample) error {
	if len(samples) == 0 {
		return nil
	}
	var sb strings.Builder
	args := make([]any, 0, len(samples)*3+1)
	args = append(args, uid)
	sb.WriteString(`INSERT INTO wearable_samples (user_id, recorded_at, metric, value) VALUES `)
	for i, s := range samples {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $" + strconv.Itoa(len(args)+1) + ", $" + strconv.Itoa(len(args)+2) + ", $" + strconv.Itoa(len(args)+3) + ")")
		args = append(args, s.RecordedAt, s.Metric, s.Value)
	}
	sb.WriteString(";")
	_, err := wsr.conn.Exec(ctx, sb.String(), args...)
	if err != nil {
		return errors.New("inserting wearable samples error: " + err.Error())
	}
	return nil
}
