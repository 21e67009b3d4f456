package handler

import (
	"mammacheck/internal/cache"
	"net/http"
)

// StatsHandler handles the admin usage counters endpoint
type StatsHandler struct {
	stats cache.StatsCache
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats cache.StatsCache) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /v1/admin/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	counters, err := h.stats.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"counters": counters})
}
