package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

// Hard cap per import request. Exceeding it rejects the whole request,
// nothing is inserted.
const maxImportSamples = 1000

type WearablesService struct {
	repo repository.WearableSamplesRepositoryI
}

func NewWearablesService(samplesRepo repository.WearableSamplesRepositoryI) *WearablesService {
	if samplesRepo == nil {
		log.Fatal("on wearables service provided nil repo")
	}
	return &WearablesService{
		repo: samplesRepo,
	}
}

// ParseCSV reads an export with a "recorded_at,metric,value" header and
// RFC 3339 timestamps. Parsing stops at the first malformed row.
func (serv *WearablesService) ParseCSV(r io.Reader) ([]entity.WearableSample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	header, err := reader.Read()
	if err != nil {
		return nil, errorvalues.ErrMalformedSampleRow
	}
	if strings.ToLower(header[0]) != "recorded_at" || strings.ToLower(header[1]) != "metric" || strings.ToLower(header[2]) != "value" {
		return nil, errorvalues.ErrMalformedSampleRow
	}
	samples := make([]entity.WearableSample, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errorvalues.ErrMalformedSampleRow
		}
		recordedAt, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return nil, errorvalues.ErrMalformedSampleRow
		}
		value, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, errorvalues.ErrMalformedSampleRow
		}
		samples = append(samples, entity.WearableSample{
			RecordedAt: recordedAt,
			Metric:     strings.ToLower(strings.TrimSpace(row[1])),
			Value:      value,
		})
	}
	return samples, nil
}

func (serv *WearablesService) Import(ctx context.Context, uid uuid.UUID, samples []entity.WearableSample) (int, error) {
	if len(samples) == 0 {
		return 0, errorvalues.ErrEmptyImport
	}
	if len(samples) > maxImportSamples {
		return 0, errorvalues.ErrTooManySamples
	}
	for _, s := range samples {
		if !validWearableMetric(s.Metric) {
			return 0, errorvalues.ErrUnknownMetric
		}
		if s.RecordedAt.IsZero() || s.RecordedAt.After(time.Now()) {
			return 0, errorvalues.ErrReadingInFuture
		}
	}
	err := serv.repo.InsertBatch(ctx, uid, samples)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return len(samples), nil
}
