package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/utafrali/recipex/internal/domain"
	"github.com/utafrali/recipex/internal/event"
	"github.com/utafrali/recipex/internal/repository"
	apperrors "github.com/utafrali/recipex/pkg/errors"
	"github.com/utafrali/recipex/pkg/uid"
)

// RecipeService implements recipe creation, retrieval, update, and
// ownership-checked deletion. It holds no state between calls; every
// mutation re-reads from the store first.
type RecipeService struct {
	repo     repository.RecipeRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(repo repository.RecipeRepository, producer *event.Producer, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// RecipeDraft holds the caller-supplied fields of a new recipe.
type RecipeDraft struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	Tags         []string
}

// CreateRecipes assigns fresh identifiers and the canonical owner id
// to each draft, stamps the creation time, and persists the batch.
// There is no rollback: a mid-batch store failure leaves earlier
// documents written.
func (s *RecipeService) CreateRecipes(ctx context.Context, ownerID string, drafts []RecipeDraft) ([]domain.Recipe, error) {
	owner := uid.Canon(ownerID)
	now := time.Now().UTC()

	recipes := make([]domain.Recipe, 0, len(drafts))
	for _, draft := range drafts {
		recipes = append(recipes, domain.Recipe{
			ID:           uid.New(),
			OwnerID:      owner,
			Title:        draft.Title,
			Description:  draft.Description,
			Ingredients:  draft.Ingredients,
			Instructions: draft.Instructions,
			Tags:         draft.Tags,
			Reviews:      []domain.Review{},
			CreatedAt:    now,
		})
	}

	if err := s.repo.SaveAll(ctx, recipes); err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "recipes created",
		slog.String("owner_id", owner),
		slog.Int("count", len(recipes)),
	)

	for i := range recipes {
		if err := s.producer.PublishRecipeCreated(ctx, &recipes[i]); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish recipe.created event",
				slog.String("recipe_id", recipes[i].ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return recipes, nil
}

// GetRecipe retrieves a recipe by id. An absent recipe yields
// (nil, nil), not an error.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, uid.Canon(id))
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return recipe, nil
}

// GetRecipesByTitle returns all recipes with the exact given title,
// in store order.
func (s *RecipeService) GetRecipesByTitle(ctx context.Context, title string) ([]domain.Recipe, error) {
	recipes, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return recipes, nil
}

// GetRecipesByTags returns all recipes tagged with any of the given
// tags, in store order.
func (s *RecipeService) GetRecipesByTags(ctx context.Context, tags []string) ([]domain.Recipe, error) {
	recipes, err := s.repo.FindByTagsContaining(ctx, tags)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return recipes, nil
}

// UpdateRecipe replaces the stored document's fields with those of
// the supplied recipe, except id and ownerId, which are forced back to
// the stored values: an update can never change which recipe or owner
// a document represents. Updating an absent recipe is an error.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	id := uid.Canon(recipe.ID)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("recipe", id)
	}

	updated := *recipe
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = existing.CreatedAt
	}
	if updated.Reviews == nil {
		updated.Reviews = existing.Reviews
	}

	if err := s.repo.Save(ctx, &updated); err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "recipe updated",
		slog.String("recipe_id", updated.ID),
	)

	return &updated, nil
}

// DeleteRecipe removes a recipe only when the stored owner matches the
// canonicalized caller id. A missing recipe or an ownership mismatch
// is a silent success, which makes delete idempotent.
func (s *RecipeService) DeleteRecipe(ctx context.Context, callerOwnerID, recipeID string) error {
	caller := uid.Canon(callerOwnerID)
	id := uid.Canon(recipeID)

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}
	if recipe == nil {
		return nil
	}
	if recipe.OwnerID != caller {
		s.logger.WarnContext(ctx, "recipe delete skipped on ownership mismatch",
			slog.String("recipe_id", id),
			slog.String("caller_id", caller),
		)
		return nil
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "recipe deleted",
		slog.String("recipe_id", id),
		slog.String("owner_id", caller),
	)

	if err := s.producer.PublishRecipeDeleted(ctx, id, caller); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish recipe.deleted event",
			slog.String("recipe_id", id),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
