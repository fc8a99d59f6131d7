package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/recipex/internal/service"
	"github.com/utafrali/recipex/pkg/httputil"
)

// ImageHandler handles HTTP requests for presigned image URL endpoints.
type ImageHandler struct {
	service *service.ImageService
	logger  *slog.Logger
}

// NewImageHandler creates a new image HTTP handler.
func NewImageHandler(svc *service.ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		service: svc,
		logger:  logger,
	}
}

// ImageURLResponse carries an issued presigned URL.
type ImageURLResponse struct {
	RecipeID string `json:"recipe_id"`
	URL      string `json:"url"`
}

// IssueUploadURL handles POST /api/v1/image/{recipeId}
func (h *ImageHandler) IssueUploadURL(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := httputil.ParseID(w, chi.URLParam(r, "recipeId"))
	if !ok {
		return
	}

	url, err := h.service.IssueUploadURL(r.Context(), recipeID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: ImageURLResponse{
		RecipeID: recipeID,
		URL:      url,
	}})
}

// IssueDownloadURL handles GET /api/v1/image/{recipeId}
func (h *ImageHandler) IssueDownloadURL(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := httputil.ParseID(w, chi.URLParam(r, "recipeId"))
	if !ok {
		return
	}

	url, err := h.service.IssueDownloadURL(r.Context(), recipeID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ImageURLResponse{
		RecipeID: recipeID,
		URL:      url,
	}})
}
