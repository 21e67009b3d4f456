package handler

import (
	"encoding/json"
	"errors"
	"mammacheck/internal/service"
	"mammacheck/internal/transport/rest/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

// SessionHandler handles self-check session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSessionRequest is the request body for opening a session
type CreateSessionRequest struct {
	Language string `json:"language"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.sessionSvc.Create(r.Context(), req.Language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Steps handles GET /v1/steps
func (h *SessionHandler) Steps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"steps": h.sessionSvc.Steps()})
}

// InitializeStep handles POST /v1/sessions/{id}/steps/{stepId}
func (h *SessionHandler) InitializeStep(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}
	stepID := mux.Vars(r)["stepId"]

	if err := h.sessionSvc.InitializeStep(r.Context(), id, stepID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// SubmitAnswerRequest is the request body for a quick-reply answer
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
	LabelKey   string `json:"labelKey"`
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	// Stale answers are dropped by the engine, so acceptance is uniform.
	if err := h.sessionSvc.SubmitAnswer(r.Context(), id, req.QuestionID, req.Value, req.LabelKey); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// ClarifyRequest is the request body for a free-text question
type ClarifyRequest struct {
	Text string `json:"text"`
}

// Clarify handles POST /v1/sessions/{id}/clarifications
func (h *SessionHandler) Clarify(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var req ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	bubble, err := h.sessionSvc.Clarify(r.Context(), id, req.Text)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bubble": bubble})
}

// Reset handles POST /v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}

	if err := h.sessionSvc.Reset(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "idle"})
}

// Transcript handles GET /v1/sessions/{id}/transcript
func (h *SessionHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}

	view, err := h.sessionSvc.Transcript(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Assessment handles GET /v1/sessions/{id}/assessment
func (h *SessionHandler) Assessment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorized(w, r)
	if !ok {
		return
	}

	result, err := h.sessionSvc.Assessment(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// authorized checks that the token in the request is scoped to the session
// in the path.
func (h *SessionHandler) authorized(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if middleware.GetSessionID(r.Context()) != id {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return "", false
	}
	return id, true
}

func (h *SessionHandler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
