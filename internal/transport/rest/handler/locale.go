package handler

import (
	"encoding/json"
	"mammacheck/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

// LocaleHandler handles localization bundle endpoints
type LocaleHandler struct {
	localeSvc *service.LocaleService
}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler(localeSvc *service.LocaleService) *LocaleHandler {
	return &LocaleHandler{localeSvc: localeSvc}
}

// Get handles GET /v1/locales/{lang}
func (h *LocaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]
	writeJSON(w, http.StatusOK, h.localeSvc.Bundle(r.Context(), lang))
}

// Languages handles GET /v1/locales
func (h *LocaleHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.localeSvc.Languages(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"languages": languages})
}

// UpsertLocaleRequest is the request body for storing a bundle override
type UpsertLocaleRequest struct {
	Entries map[string]string `json:"entries"`
}

// Upsert handles PUT /v1/admin/locales/{lang}
func (h *LocaleHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]

	var req UpsertLocaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Entries) == 0 {
		writeError(w, http.StatusBadRequest, "entries is required")
		return
	}

	if err := h.localeSvc.Upsert(r.Context(), lang, req.Entries); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "stored"})
}
