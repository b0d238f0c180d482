package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/metrics"
)

// MetricsHandler exposes operational counters.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns the current counters as JSON. Counters reset on
// process restart.
//
// GET /metricsz
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(h.snapshotter.Snapshot())
}
