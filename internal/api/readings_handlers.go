package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/service"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/httputil"
)

type LogGlucoseRequest struct {
	MmolL   float64   `json:"mmol_l"`
	Context string    `json:"context"`
	Note    string    `json:"note"`
	TakenAt time.Time `json:"taken_at"`
}

type LogBloodPressureRequest struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse"`
	TakenAt   time.Time `json:"taken_at"`
}

type GetGlucoseReadingsResponse struct {
	UserID   string                   `json:"uid"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
	Readings []*entity.GlucoseReading `json:"readings"`
}

type GetBloodPressureReadingsResponse struct {
	UserID   string                         `json:"uid"`
	Page     int                            `json:"page"`
	Limit    int                            `json:"limit"`
	Readings []*entity.BloodPressureReading `json:"readings"`
}

func paginationFromQuery(r *http.Request) (page, limit int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit
}

func (s *Server) LogGlucose(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log glucose error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogGlucoseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log glucose error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.readingsService.LogGlucose(ctx, uid, &service.LogGlucoseRequest{
		MmolL:   req.MmolL,
		Context: req.Context,
		Note:    req.Note,
		TakenAt: req.TakenAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReadingOutOfRange):
			logger.Error("log glucose error: value out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "glucose value is out of plausible range", nil)
		case errors.Is(err, errorvalues.ErrUnknownContext):
			logger.Error("log glucose error: unknown context")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown reading context", nil)
		case errors.Is(err, errorvalues.ErrNoteTooLong):
			logger.Error("log glucose error: note too long")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "reading note is too long", nil)
		case errors.Is(err, errorvalues.ErrReadingInFuture):
			logger.Error("log glucose error: future taken_at")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "reading can't be taken in the future", nil)
		default:
			logger.Error("log glucose error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging reading", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"ok": true})
	logger.Info("glucose reading logged")
}

func (s *Server) GetGlucoseReadings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get glucose readings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	readings, err := s.readingsService.GetGlucoseReadings(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("getting glucose readings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting readings list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGlucoseReadingsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Readings: readings,
	})
	logger.Info("glucose readings provided")
}

func (s *Server) LogBloodPressure(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log blood pressure error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogBloodPressureRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log blood pressure error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.readingsService.LogBloodPressure(ctx, uid, &service.LogBloodPressureRequest{
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		Pulse:     req.Pulse,
		TakenAt:   req.TakenAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReadingOutOfRange):
			logger.Error("log blood pressure error: values out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "blood pressure values are out of plausible range", nil)
		case errors.Is(err, errorvalues.ErrReadingInFuture):
			logger.Error("log blood pressure error: future taken_at")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "reading can't be taken in the future", nil)
		default:
			logger.Error("log blood pressure error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging reading", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"ok": true})
	logger.Info("blood pressure reading logged")
}

func (s *Server) GetBloodPressureReadings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get blood pressure readings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	readings, err := s.readingsService.GetBloodPressureReadings(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("getting blood pressure readings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting readings list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBloodPressureReadingsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Readings: readings,
	})
	logger.Info("blood pressure readings provided")
}
