package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/httputil"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/isoweek"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/plan"
)

type SaveWeeklyActivityRequest struct {
	Payload entity.WeekPayload `json:"payload"`
}

type GetWeeklyActivityResponse struct {
	Current      isoweek.YearWeek         `json:"current"`
	Weeks        []*entity.WeeklyActivity `json:"weeks"`
	Plan         string                   `json:"plan"`
	WeeksAllowed int                      `json:"weeks_allowed"`
}

func (s *Server) GetWeeklyActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get weekly activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	history, err := s.activityService.GetHistory(ctx, user)
	if err != nil {
		logger.Error("get weekly activity error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting weekly activity", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWeeklyActivityResponse{
		Current:      history.Current,
		Weeks:        history.Weeks,
		Plan:         history.Plan.String(),
		WeeksAllowed: history.WeeksAllowed,
	})
	logger.Info("weekly activity history provided")
}

func (s *Server) SaveWeeklyActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save weekly activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveWeeklyActivityRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save weekly activity error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	week, err := s.activityService.SaveCurrentWeek(ctx, uid, req.Payload)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidPayload) {
			logger.Error("save weekly activity error: unknown payload keys")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "payload contains unknown day or category keys", nil)
			return
		}
		logger.Error("save weekly activity error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving weekly activity", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"ok":       true,
		"iso_year": week.Year,
		"iso_week": week.Week,
		"saved_at": time.Now().UTC(),
	})
	logger.Info("weekly activity saved")
}

func (s *Server) GetWeekActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get week activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		logger.Error("get week activity error: invalid year in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	weekNum, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		logger.Error("get week activity error: invalid week in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week in path value", nil)
		return
	}
	week := isoweek.YearWeek{Year: year, Week: weekNum}
	if !week.Valid() {
		logger.Error("get week activity error: implausible year or week")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "year or week is out of plausible range", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	rec, err := s.activityService.GetWeek(ctx, user, week)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWeekOutsideWindow):
			weeksAllowed := plan.Resolve(user).HistoryWeeks()
			logger.Error("get week activity error: week outside plan window")
			// weeks_allowed is actionable upsell data, deliberately exposed
			httputil.WriteJSONResponse(w, http.StatusForbidden, map[string]any{
				"code":          http.StatusForbidden,
				"message":       fmt.Sprintf("your plan allows %d week(s) of history", weeksAllowed),
				"weeks_allowed": weeksAllowed,
			})
		case errors.Is(err, errorvalues.ErrWeekNotFound):
			logger.Error("get week activity error: no record for week")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no activity recorded for this week", nil)
		default:
			logger.Error("get week activity error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting week activity", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("week activity provided")
}
