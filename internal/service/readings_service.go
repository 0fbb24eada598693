package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

// Plausibility bounds for manual reading entry. Values outside are almost
// certainly unit confusion (mg/dL typed into a mmol/L field) or typos.
const (
	minMmolL = 1.0
	maxMmolL = 35.0

	minSystolic  = 60
	maxSystolic  = 260
	minDiastolic = 30
	maxDiastolic = 160
	maxPulse     = 250

	// free-text note attached to a glucose reading, in bytes
	maxNoteLen = 500
)

type ReadingsService struct {
	glucoseRepo repository.GlucoseRepositoryI
	bpRepo      repository.BloodPressureRepositoryI
}

func NewReadingsService(glucoseRepo repository.GlucoseRepositoryI, bpRepo repository.BloodPressureRepositoryI) *ReadingsService {
	if glucoseRepo == nil || bpRepo == nil {
		log.Fatal("on readings service provided nil repos")
	}
	return &ReadingsService{
		glucoseRepo: glucoseRepo,
		bpRepo:      bpRepo,
	}
}

func (serv *ReadingsService) LogGlucose(ctx context.Context, uid uuid.UUID, req *LogGlucoseRequest) error {
	if req.MmolL < minMmolL || req.MmolL > maxMmolL {
		return errorvalues.ErrReadingOutOfRange
	}
	if !validGlucoseContext(req.Context) {
		return errorvalues.ErrUnknownContext
	}
	if len(req.Note) > maxNoteLen {
		return errorvalues.ErrNoteTooLong
	}
	if req.TakenAt.After(time.Now()) {
		return errorvalues.ErrReadingInFuture
	}
	err := serv.glucoseRepo.Create(ctx, &entity.GlucoseReading{
		UserID:  uid,
		MmolL:   req.MmolL,
		Context: req.Context,
		Note:    req.Note,
		TakenAt: req.TakenAt,
	})
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *ReadingsService) GetGlucoseReadings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.GlucoseReading, error) {
	readings, err := serv.glucoseRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return readings, nil
}

func (serv *ReadingsService) LogBloodPressure(ctx context.Context, uid uuid.UUID, req *LogBloodPressureRequest) error {
	if req.Systolic < minSystolic || req.Systolic > maxSystolic {
		return errorvalues.ErrReadingOutOfRange
	}
	if req.Diastolic < minDiastolic || req.Diastolic > maxDiastolic {
		return errorvalues.ErrReadingOutOfRange
	}
	if req.Systolic <= req.Diastolic {
		return errorvalues.ErrReadingOutOfRange
	}
	if req.Pulse < 0 || req.Pulse > maxPulse {
		return errorvalues.ErrReadingOutOfRange
	}
	if req.TakenAt.After(time.Now()) {
		return errorvalues.ErrReadingInFuture
	}
	err := serv.bpRepo.Create(ctx, &entity.BloodPressureReading{
		UserID:    uid,
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		Pulse:     req.Pulse,
		TakenAt:   req.TakenAt,
	})
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *ReadingsService) GetBloodPressureReadings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.BloodPressureReading, error) {
	readings, err := serv.bpRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return readings, nil
}
