package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type probe struct {
	name string
	p    pinger
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []probe
	version string
	now     func() time.Time
}

// NewHealthHandler probes the database. More dependencies are added with
// WithComponent.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		probes:  []probe{{name: "database", p: db}},
		version: version,
		now:     time.Now,
	}
}

func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.probes = append(h.probes, probe{name: name, p: p})
	return h
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready reports 503 while any dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	resp := HealthResponse{Status: "ok", Timestamp: h.now()}
	status := http.StatusOK
	if !ok {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Health is Ready with per-dependency detail and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comps, ok := h.check(r.Context())
	resp := HealthResponse{Status: "ok", Version: h.version, Components: comps, Timestamp: h.now()}
	status := http.StatusOK
	if !ok {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// check pings all dependencies concurrently under one deadline.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.probes))
	var wg sync.WaitGroup
	for i, pr := range h.probes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := pr.p.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).Round(time.Microsecond).String()}
		}()
	}
	wg.Wait()

	comps := make(map[string]CompStatus, len(results))
	ok := true
	for i, res := range results {
		comps[h.probes[i].name] = res
		ok = ok && res.Status == "ok"
	}
	return comps, ok
}
