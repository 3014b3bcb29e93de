// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/infrastructure/api/middleware"
	"github.com/creaselab/crease/infrastructure/api/v1/dto"
)

// ContentRouter handles the content library endpoints.
type ContentRouter struct {
	library *service.Library
	logger  *slog.Logger
}

// NewContentRouter creates a ContentRouter.
func NewContentRouter(library *service.Library, logger *slog.Logger) *ContentRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentRouter{library: library, logger: logger}
}

// Routes returns the chi router for content endpoints.
func (c *ContentRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", c.Save)
	router.Get("/", c.List)
	router.Get("/{id}", c.Get)
	router.Put("/{id}/metadata", c.UpdateMetadata)
	router.Delete("/{id}", c.Delete)

	return router
}

// Save handles POST /api/v1/content: fetch from the source URL, apply
// overrides, and persist.
func (c *ContentRouter) Save(w http.ResponseWriter, req *http.Request) {
	var body dto.SaveContentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			fmt.Errorf("%w: invalid request body", content.ErrValidation), c.logger)
		return
	}

	source, err := content.ParseSource(body.Source)
	if err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}

	item, err := c.library.SaveFromURL(req.Context(), service.SaveParams{
		Source:           source,
		URL:              body.URL,
		Title:            body.Title,
		Description:      body.Description,
		Author:           body.Author,
		DrillTags:        body.DrillTags,
		DrillDescription: body.DrillDescription,
		Difficulty:       body.Difficulty,
		Equipment:        body.Equipment,
		AgeGroup:         body.AgeGroup,
	})
	if err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.FromItem(item))
}

// List handles GET /api/v1/content: text search plus criteria filters.
func (c *ContentRouter) List(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("query")

	var criteria content.Criteria
	if s := req.URL.Query().Get("source"); s != "" {
		source, err := content.ParseSource(s)
		if err != nil {
			middleware.WriteError(w, req, err, c.logger)
			return
		}
		criteria.Source = source
	}
	if s := req.URL.Query().Get("content_type"); s != "" {
		contentType, err := content.ParseType(s)
		if err != nil {
			middleware.WriteError(w, req, err, c.logger)
			return
		}
		criteria.Type = contentType
	}
	criteria.Difficulty = req.URL.Query().Get("difficulty")

	limit := content.DefaultSearchLimit
	if s := req.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			middleware.WriteError(w, req,
				fmt.Errorf("%w: invalid limit %q", content.ErrValidation, s), c.logger)
			return
		}
		limit = n
	}

	items, err := c.library.Search(req.Context(), query, criteria, limit)
	if err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ContentListResponse{
		Items: dto.FromItems(items),
		Total: len(items),
	})
}

// Get handles GET /api/v1/content/{id}.
func (c *ContentRouter) Get(w http.ResponseWriter, req *http.Request) {
	item, err := c.library.Get(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.FromItem(item))
}

// UpdateMetadata handles PUT /api/v1/content/{id}/metadata: replace the
// provided coaching fields, leave the rest untouched.
func (c *ContentRouter) UpdateMetadata(w http.ResponseWriter, req *http.Request) {
	var body dto.UpdateMetadataRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			fmt.Errorf("%w: invalid request body", content.ErrValidation), c.logger)
		return
	}

	item, err := c.library.UpdateMetadata(req.Context(), chi.URLParam(req, "id"), service.MetadataParams{
		DrillTags:        body.DrillTags,
		DrillDescription: body.DrillDescription,
		Difficulty:       body.Difficulty,
		Equipment:        body.Equipment,
		AgeGroup:         body.AgeGroup,
	})
	if err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FromItem(item))
}

// Delete handles DELETE /api/v1/content/{id}. Returns 404 when the item
// does not exist.
func (c *ContentRouter) Delete(w http.ResponseWriter, req *http.Request) {
	if err := c.library.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		middleware.WriteError(w, req, err, c.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
