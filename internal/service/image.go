package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/utafrali/recipex/internal/repository"
	"github.com/utafrali/recipex/internal/storage"
	apperrors "github.com/utafrali/recipex/pkg/errors"
	"github.com/utafrali/recipex/pkg/uid"
)

// imageContentType is the content type presigned upload URLs allow.
const imageContentType = "image/jpeg"

// ImageService issues time-limited presigned URLs for recipe images.
// The object key is deterministic from the recipe id, so a URL can be
// issued even when the recipe document does not exist yet; in that
// case the URL is returned without being persisted.
type ImageService struct {
	repo      repository.RecipeRepository
	presigner storage.Presigner
	folder    string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewImageService creates a new image URL service.
func NewImageService(
	repo repository.RecipeRepository,
	presigner storage.Presigner,
	folder string,
	ttl time.Duration,
	logger *slog.Logger,
) *ImageService {
	return &ImageService{
		repo:      repo,
		presigner: presigner,
		folder:    folder,
		ttl:       ttl,
		logger:    logger,
	}
}

// IssueUploadURL presigns a PUT URL for the recipe's image key and
// stores it on the recipe document when the recipe exists.
func (s *ImageService) IssueUploadURL(ctx context.Context, recipeID string) (string, error) {
	id := uid.Canon(recipeID)

	url, err := s.presigner.PresignUpload(ctx, s.folder+id, imageContentType, s.ttl)
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}
	if recipe == nil {
		s.logger.DebugContext(ctx, "upload URL issued for absent recipe",
			slog.String("recipe_id", id),
		)
		return url, nil
	}

	recipe.ImageUploadURL = url
	if err := s.repo.Save(ctx, recipe); err != nil {
		return "", apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "upload URL issued",
		slog.String("recipe_id", id),
	)

	return url, nil
}

// IssueDownloadURL presigns a GET URL for the recipe's image key and
// stores it on the recipe document when the recipe exists.
func (s *ImageService) IssueDownloadURL(ctx context.Context, recipeID string) (string, error) {
	id := uid.Canon(recipeID)

	url, err := s.presigner.PresignDownload(ctx, s.folder+id, s.ttl)
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}
	if recipe == nil {
		s.logger.DebugContext(ctx, "download URL issued for absent recipe",
			slog.String("recipe_id", id),
		)
		return url, nil
	}

	recipe.ImageURL = url
	if err := s.repo.Save(ctx, recipe); err != nil {
		return "", apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "download URL issued",
		slog.String("recipe_id", id),
	)

	return url, nil
}
