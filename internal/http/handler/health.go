package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"paygate/internal/http/handler/middleware"

	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the backing stores answer.
type HealthHandler struct {
	logs   *zap.SugaredLogger
	checks map[string]Pinger
}

func NewHealthHandler(logger *zap.SugaredLogger, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		logs:   logger,
		checks: checks,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	code := http.StatusOK
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			h.logs.Errorw("health check failed",
				"check", name,
				"error", err,
				"handler", Health,
				"request_id", requestId)
			status[name] = "down"
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "up"
	}

	resp := Response{Message: "ok", Data: status}
	if code != http.StatusOK {
		resp = Response{Message: "degraded", Data: status, Error: oopsErr}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
