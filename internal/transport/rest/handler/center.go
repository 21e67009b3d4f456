package handler

import (
	"encoding/json"
	"errors"
	"mammacheck/internal/model"
	"mammacheck/internal/service"
	"net/http"
	"strconv"
)

// CenterHandler handles screening center endpoints
type CenterHandler struct {
	centerSvc *service.CenterService
	syncSvc   *service.DirectorySyncService
}

// NewCenterHandler creates a new center handler
func NewCenterHandler(centerSvc *service.CenterService, syncSvc *service.DirectorySyncService) *CenterHandler {
	return &CenterHandler{
		centerSvc: centerSvc,
		syncSvc:   syncSvc,
	}
}

// List handles GET /v1/centers
func (h *CenterHandler) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}

	centers, err := h.centerSvc.List(r.Context(), city, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"centers": centers})
}

// Create handles POST /v1/admin/centers
func (h *CenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var center model.ScreeningCenter
	if err := json.NewDecoder(r.Body).Decode(&center); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.centerSvc.Create(r.Context(), &center)
	if err != nil {
		if errors.Is(err, service.ErrCenterInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Sync handles POST /v1/admin/centers/sync
func (h *CenterHandler) Sync(w http.ResponseWriter, r *http.Request) {
	count, err := h.syncSvc.SyncCenters(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrDirectoryNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"synced": count})
}
