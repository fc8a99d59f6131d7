package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/recipex/internal/domain"
	"github.com/utafrali/recipex/internal/service"
	"github.com/utafrali/recipex/pkg/httputil"
	"github.com/utafrali/recipex/pkg/validator"
)

// RecipeHandler handles HTTP requests for recipe endpoints.
type RecipeHandler struct {
	service *service.RecipeService
	logger  *slog.Logger
}

// NewRecipeHandler creates a new recipe HTTP handler.
func NewRecipeHandler(svc *service.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// RecipeDraftRequest is one element of the batch creation body.
type RecipeDraftRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=50"`
	Description  string   `json:"description" validate:"required,max=500"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string `json:"instructions" validate:"required,min=1,dive,required"`
	Tags         []string `json:"tags" validate:"omitempty,dive,required"`
}

// UpdateRecipeRequest is the JSON request body for a full recipe
// replacement. The id selects the document; owner_id in the payload is
// ignored in favor of the stored owner.
type UpdateRecipeRequest struct {
	ID           string          `json:"id" validate:"required,uuid"`
	OwnerID      string          `json:"owner_id"`
	Title        string          `json:"title" validate:"required,min=3,max=50"`
	Description  string          `json:"description" validate:"required,max=500"`
	Ingredients  []string        `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string        `json:"instructions" validate:"required,min=1,dive,required"`
	Tags         []string        `json:"tags" validate:"omitempty,dive,required"`
	Reviews      []domain.Review `json:"reviews"`
}

// --- Handlers ---

// CreateRecipes handles POST /api/v1/user/{userId}/recipes
func (h *RecipeHandler) CreateRecipes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httputil.ParseID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	var reqs []RecipeDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	drafts := make([]service.RecipeDraft, 0, len(reqs))
	for _, req := range reqs {
		if err := validator.Validate(req); err != nil {
			httputil.WriteValidationError(w, err)
			return
		}
		drafts = append(drafts, service.RecipeDraft{
			Title:        req.Title,
			Description:  req.Description,
			Ingredients:  req.Ingredients,
			Instructions: req.Instructions,
			Tags:         req.Tags,
		})
	}

	recipes, err := h.service.CreateRecipes(r.Context(), ownerID, drafts)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: recipes})
}

// GetRecipe handles GET /api/v1/recipe/{recipeId}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "recipeId"))
	if !ok {
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if recipe == nil {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "NOT_FOUND", Message: "recipe with id " + id + " not found"},
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: recipe})
}

// GetRecipesByTitle handles GET /api/v1/recipes/by-title/{title}
func (h *RecipeHandler) GetRecipesByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	recipes, err := h.service.GetRecipesByTitle(r.Context(), title)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: recipes})
}

// GetRecipesByTags handles GET /api/v1/recipes/by-tags?tags=a,b
func (h *RecipeHandler) GetRecipesByTags(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "tags query parameter is required"},
		})
		return
	}

	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	recipes, err := h.service.GetRecipesByTags(r.Context(), tags)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: recipes})
}

// UpdateRecipe handles PUT /api/v1/recipe
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var req UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), &domain.Recipe{
		ID:           req.ID,
		OwnerID:      req.OwnerID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Reviews:      req.Reviews,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: recipe})
}

// DeleteRecipe handles DELETE /api/v1/user/{userId}/recipes/{recipeId}
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httputil.ParseID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}
	recipeID, ok := httputil.ParseID(w, chi.URLParam(r, "recipeId"))
	if !ok {
		return
	}

	if err := h.service.DeleteRecipe(r.Context(), ownerID, recipeID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
