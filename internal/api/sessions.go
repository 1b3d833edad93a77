package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"codebridge/internal/domain"
)

type createSessionRequest struct {
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	WorkingDir string `json:"working_dir"`
}

type validateSessionRequest struct {
	UserID int64 `json:"user_id"`
}

type endedResponse struct {
	Ended bool `json:"ended"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

// RegisterSessionRoutes registers session endpoints
func (h *Handler) RegisterSessionRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Get("/stats", h.SessionStats)
		r.Get("/export", h.ExportSessions)
		r.Post("/import", h.ImportSessions)
		r.Post("/{token}/validate", h.ValidateSession)
		r.Post("/{token}/touch", h.TouchSession)
		r.Delete("/{token}", h.EndSession)
	})
	r.Get("/users/{userID}/session", h.GetActiveSession)
	r.Delete("/users/{userID}/session", h.EndUserSession)
	r.Get("/users/{userID}/sessions", h.ListUserSessions)
}

// CreateSession starts a session and makes it the user's active one
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}
	if req.UserID == 0 {
		Error(w, badRequest("user_id is required"))
		return
	}

	session, err := h.sessions.CreateSession(r.Context(), req.UserID, req.UserName, req.WorkingDir)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, session)
}

// GetActiveSession returns the user's active session
func (h *Handler) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}

	session, err := h.sessions.GetActiveSession(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, session)
}

// ValidateSession checks a token against its owner and idle expiry
func (h *Handler) ValidateSession(w http.ResponseWriter, r *http.Request) {
	var req validateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	session, err := h.sessions.Validate(r.Context(), chi.URLParam(r, "token"), req.UserID)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, session)
}

// TouchSession refreshes a session's last use time
func (h *Handler) TouchSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Touch(r.Context(), chi.URLParam(r, "token")); err != nil {
		Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EndSession ends one session by token
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	ended := h.sessions.EndSession(r.Context(), chi.URLParam(r, "token"))
	JSON(w, http.StatusOK, endedResponse{Ended: ended})
}

// EndUserSession ends the user's active session
func (h *Handler) EndUserSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}

	ended := h.sessions.EndUserSession(r.Context(), userID)
	JSON(w, http.StatusOK, endedResponse{Ended: ended})
}

// ListUserSessions returns all of a user's sessions, newest first
func (h *Handler) ListUserSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.sessions.ListUserSessions(userID))
}

// SessionStats summarises the stored sessions
func (h *Handler) SessionStats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.sessions.Stats())
}

// ExportSessions returns every stored session, or one user's with ?user_id=
func (h *Handler) ExportSessions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		JSON(w, http.StatusOK, h.sessions.Export())
		return
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		Error(w, badRequest("invalid user_id "+strconv.Quote(raw)))
		return
	}
	JSON(w, http.StatusOK, h.sessions.ExportUser(userID))
}

// ImportSessions adds records whose tokens are not yet stored
func (h *Handler) ImportSessions(w http.ResponseWriter, r *http.Request) {
	var records []domain.Session
	if err := decodeJSON(r, &records); err != nil {
		Error(w, err)
		return
	}

	imported := h.sessions.Import(r.Context(), records)
	JSON(w, http.StatusOK, importResponse{Imported: imported})
}
