package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// remotePinger checks that the remote store answers.
type remotePinger interface {
	Ping(ctx context.Context) error
}

// sessionCounter reports how many study sessions are held in memory.
type sessionCounter interface {
	ActiveSessions() int
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	remote   remotePinger
	sessions sessionCounter
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(remote remotePinger, sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{remote: remote, sessions: sessions, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status         string                `json:"status"`
	Version        string                `json:"version,omitempty"`
	Components     map[string]CompStatus `json:"components,omitempty"`
	ActiveSessions *int                  `json:"active_sessions,omitempty"`
	Timestamp      time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports that the process is serving. Always 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when the remote store is reachable, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	remote := h.pingRemote(r.Context())
	if remote.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the remote store with its latency, the number of live
// study sessions and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	remote := h.pingRemote(r.Context())

	resp := HealthResponse{
		Status:     remote.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"remote_store": remote},
		Timestamp:  time.Now(),
	}
	if h.sessions != nil {
		n := h.sessions.ActiveSessions()
		resp.ActiveSessions = &n
	}

	status := http.StatusOK
	if remote.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingRemote(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.remote.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
