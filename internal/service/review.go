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

// ReviewService enforces the one-review-per-author rule on a recipe's
// embedded review list.
type ReviewService struct {
	repo     repository.RecipeRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.RecipeRepository, producer *event.Producer, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	AuthorID string
	Rating   int
	Comment  string
}

// SubmitReview creates or revises the author's review on the recipe.
// A first submission appends a fresh review; a resubmission by the
// same author replaces only the stored comment, in place, keeping the
// entry's id, rating, position, and timestamp.
//
// The returned review always carries the freshly built fields (new
// id, new timestamp, submitted rating), even on the revision branch,
// so it can diverge from what was persisted. Callers that need the
// stored entry should re-read the recipe.
func (s *ReviewService) SubmitReview(ctx context.Context, recipeID string, input SubmitReviewInput) (*domain.Review, error) {
	id := uid.Canon(recipeID)

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("recipe", id)
	}

	author := uid.Canon(input.AuthorID)
	submitted := domain.Review{
		ID:        uid.New(),
		RecipeID:  id,
		AuthorID:  author,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	revised := false
	if existing := recipe.ReviewByAuthor(author); existing != nil {
		existing.Comment = submitted.Comment
		revised = true
	} else {
		recipe.Reviews = append(recipe.Reviews, submitted)
	}

	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "review submitted",
		slog.String("recipe_id", id),
		slog.String("author_id", author),
		slog.Bool("revised", revised),
	)

	if err := s.producer.PublishReviewSubmitted(ctx, &submitted, revised); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.submitted event",
			slog.String("recipe_id", id),
			slog.String("error", err.Error()),
		)
	}

	return &submitted, nil
}

// GetReviews returns the recipe's review list in insertion order. An
// absent recipe yields an empty list, not an error.
func (s *ReviewService) GetReviews(ctx context.Context, recipeID string) ([]domain.Review, error) {
	recipe, err := s.repo.FindByID(ctx, uid.Canon(recipeID))
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if recipe == nil || recipe.Reviews == nil {
		return []domain.Review{}, nil
	}
	return recipe.Reviews, nil
}
