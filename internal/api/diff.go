package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"codebridge/internal/diff"
)

type diffRequest struct {
	Context  *int   `json:"context,omitempty"`
	Format   string `json:"format,omitempty"`
	FromFile string `json:"from_file,omitempty"`
	New      string `json:"new"`
	Old      string `json:"old"`
	ToFile   string `json:"to_file,omitempty"`
}

type diffResponse struct {
	Changed bool   `json:"changed"`
	Diff    string `json:"diff"`
}

// RegisterDiffRoutes registers the diff endpoint
func (h *Handler) RegisterDiffRoutes(r chi.Router) {
	r.Post("/diff", h.Diff)
}

// Diff renders a unified diff of two text blobs
func (h *Handler) Diff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	renderer, err := diff.RendererFor(req.Format)
	if err != nil {
		Error(w, badRequest(err.Error()))
		return
	}

	opts := diff.DefaultOptions()
	if req.Context != nil {
		opts.Context = *req.Context
	}
	if req.FromFile != "" {
		opts.FromFile = req.FromFile
	}
	if req.ToFile != "" {
		opts.ToFile = req.ToFile
	}

	text := diff.Unified(req.Old, req.New, opts)
	JSON(w, http.StatusOK, diffResponse{
		Changed: text != diff.NoChanges,
		Diff:    diff.Render(text, renderer),
	})
}
