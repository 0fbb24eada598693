package api

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/Glycoguide2025/glycoguide-app-sub002/internal/error_values"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/httputil"
)

type ImportWearablesRequest struct {
	Samples []entity.WearableSample `json:"samples"`
}

// ImportWearables accepts either a text/csv body (device export format) or a
// JSON body with a samples array.
func (s *Server) ImportWearables(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("wearables import error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	defer r.Body.Close()
	var samples []entity.WearableSample
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "text/csv":
		samples, err = s.wearablesService.ParseCSV(r.Body)
		if err != nil {
			logger.Error("wearables import error: malformed csv")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "malformed csv body", nil)
			return
		}
	default:
		var req ImportWearablesRequest
		err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("wearables import error: invalid body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		samples = req.Samples
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	imported, err := s.wearablesService.Import(ctx, uid, samples)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyImport):
			logger.Error("wearables import error: no samples")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "import contains no samples", nil)
		case errors.Is(err, errorvalues.ErrTooManySamples):
			logger.Error("wearables import error: over sample cap")
			httputil.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "too many samples in one import", nil)
		case errors.Is(err, errorvalues.ErrUnknownMetric):
			logger.Error("wearables import error: unknown metric")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown wearable metric", nil)
		case errors.Is(err, errorvalues.ErrReadingInFuture):
			logger.Error("wearables import error: future sample")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "samples can't be recorded in the future", nil)
		default:
			logger.Error("wearables import error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while importing samples", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"ok":       true,
		"imported": imported,
	})
	logger.Info("wearable samples imported", slog.Int("count", imported))
}
