// Package api exposes the session, repository and diff core over HTTP for an
// out-of-process command layer.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"codebridge/internal/domain"
	"codebridge/internal/logging"
	"codebridge/internal/services"
)

// Handler holds the services shared by all route groups
type Handler struct {
	repos    *services.RepoService
	sessions *services.SessionService
}

// NewHandler creates a Handler
func NewHandler(sessions *services.SessionService, repos *services.RepoService) *Handler {
	return &Handler{
		repos:    repos,
		sessions: sessions,
	}
}

// errorResponse is the body of every failed request
type errorResponse struct {
	ErrorKind domain.ErrorKind `json:"error_kind,omitempty"`
	Message   string           `json:"message"`
	Success   bool             `json:"success"`
}

// errBadRequest marks request decoding and parameter errors
var errBadRequest = errors.New("bad request")

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error("Failed to encode response", "error", err)
	}
}

// Error writes err as a JSON error body, choosing the status from its kind
func Error(w http.ResponseWriter, err error) {
	kind, _ := domain.KindOf(err)
	status := statusFor(kind)
	if kind == "" && errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		logging.Logger.Error("Request failed", "error_kind", kind, "error", err)
	}

	JSON(w, status, errorResponse{
		ErrorKind: kind,
		Message:   err.Error(),
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidURL:
		return http.StatusBadRequest
	case domain.KindSessionExpired:
		return http.StatusUnauthorized
	case domain.KindSessionNotFound:
		return http.StatusNotFound
	case domain.KindCloneFailed, domain.KindUpdateFailed:
		return http.StatusBadGateway
	case domain.KindGitUnavailable:
		return http.StatusServiceUnavailable
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Routes builds the router serving every endpoint
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	h.RegisterSessionRoutes(r)
	h.RegisterRepoRoutes(r)
	h.RegisterDiffRoutes(r)
	return r
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}

func userIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID == 0 {
		return 0, badRequest("invalid user id " + strconv.Quote(raw))
	}
	return userID, nil
}

func badRequest(detail string) error {
	return fmt.Errorf("%w: %s", errBadRequest, detail)
}
