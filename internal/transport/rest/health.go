// Package rest serves the JSON probe endpoints.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Check is one dependency probe. A failing optional check marks the
// component as degraded without failing readiness.
type Check struct {
	Name     string
	Ping     func(ctx context.Context) error
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready is the readiness probe: 200 when every required check passes, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.now()})
}

// Health is the full health check with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// run pings every check. The overall status is "down" if a required check
// fails, "degraded" if only optional ones fail, and "ok" otherwise.
func (h *HealthHandler) run(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.checks))
	for _, c := range h.checks {
		start := time.Now()
		err := c.Ping(ctx)
		latency := time.Since(start)

		if err == nil {
			components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
			continue
		}

		components[c.Name] = CompStatus{Status: "down", Error: err.Error()}
		switch {
		case !c.Optional:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	return overall, components
}

func httpStatus(overall string) int {
	if overall == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
