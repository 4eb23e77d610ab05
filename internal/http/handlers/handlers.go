package handlers

import (
	"context"
	"net/http"
	"time"

	"rider-dispatch/internal/logx"
)

// Probe checks one dependency for HEAD /healthcheck.
type Probe func(ctx context.Context) error

const probeTimeout = 2 * time.Second

// Handlers serves the service endpoints that carry no dispatch logic.
type Handlers struct {
	Logger logx.Logger
	probes map[string]Probe
}

// New creates Handlers. probes are keyed by dependency name; nil entries are skipped.
func New(logger logx.Logger, probes map[string]Probe) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	h := &Handlers{Logger: logger, probes: make(map[string]Probe, len(probes))}
	for name, p := range probes {
		if p != nil {
			h.probes[name] = p
		}
	}
	return h
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead answers 204 when every probe passes and 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for name, probe := range h.probes {
		if err := probe(ctx); err != nil {
			h.Logger.Warn("healthcheck failed", logx.String("dependency", name), logx.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}
