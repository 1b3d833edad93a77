package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codebridge/internal/domain"
)

type cloneRequest struct {
	URL string `json:"url"`
}

type cloneResponse struct {
	*domain.CloneResult
	Success bool `json:"success"`
}

// RegisterRepoRoutes registers repository endpoints
func (h *Handler) RegisterRepoRoutes(r chi.Router) {
	r.Post("/users/{userID}/repo", h.CloneOrUpdate)
	r.Get("/users/{userID}/repo", h.ActiveRepo)
	r.Get("/users/{userID}/repo/files", h.ListFiles)
}

// CloneOrUpdate mirrors a repository for the user and makes it active
func (h *Handler) CloneOrUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}

	var req cloneRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	// A client disconnect must not kill a clone halfway; git timeouts still apply
	result, err := h.repos.CloneOrUpdate(context.WithoutCancel(r.Context()), userID, req.URL)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cloneResponse{CloneResult: result, Success: true})
}

// ActiveRepo returns the user's active repository record
func (h *Handler) ActiveRepo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}

	record, ok := h.repos.ActiveRepo(userID)
	if !ok {
		JSON(w, http.StatusNotFound, errorResponse{Message: "no active repository"})
		return
	}
	JSON(w, http.StatusOK, record)
}

// ListFiles lists a directory of the user's active repository
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		Error(w, err)
		return
	}

	files, ok := h.repos.ListFiles(userID, r.URL.Query().Get("path"))
	if !ok {
		JSON(w, http.StatusNotFound, errorResponse{Message: "no active repository"})
		return
	}
	JSON(w, http.StatusOK, files)
}
