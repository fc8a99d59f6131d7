package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/utafrali/recipex/internal/domain"
	"github.com/utafrali/recipex/internal/event"
	"github.com/utafrali/recipex/internal/repository"
	apperrors "github.com/utafrali/recipex/pkg/errors"
	"github.com/utafrali/recipex/pkg/uid"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// UserService implements the user lifecycle: registration with email
// uniqueness, enriched reads, and cascade deletion of owned recipes.
type UserService struct {
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		producer:   producer,
		logger:     logger,
	}
}

// CreateUserInput holds the parameters for registering a user.
type CreateUserInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

// CreateUser registers a new user. The email must not already be
// registered; the check is an exact, case-sensitive match. The
// password is bcrypt hashed before persistence.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("user", "email", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID: uid.New(),
		Username: domain.Username{
			Name:     input.Name,
			Surname:  input.Surname,
			Email:    input.Email,
			Password: string(hash),
		},
		Recipes: []domain.Recipe{},
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Username.Email),
	)

	if err := s.producer.PublishUserRegistered(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.registered event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	return user, nil
}

// GetUser fetches a user by id and attaches the derived recipes view.
// An absent user yields (nil, nil), not an error.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	canonical := uid.Canon(id)

	user, err := s.userRepo.FindByID(ctx, canonical)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if user == nil {
		return nil, nil
	}

	recipes, err := s.recipeRepo.FindByOwner(ctx, canonical)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	user.Recipes = recipes

	return user, nil
}

// DeleteUser removes the user document, then cascades deletion over
// all recipes the user owns. Deleting an absent user is a no-op.
// Per-recipe failures are logged and do not abort the cascade.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	canonical := uid.Canon(id)

	if err := s.userRepo.DeleteByID(ctx, canonical); err != nil {
		return apperrors.StoreUnavailable(err)
	}

	recipes, err := s.recipeRepo.FindByOwner(ctx, canonical)
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}

	deleted := 0
	for i := range recipes {
		if err := s.recipeRepo.DeleteByID(ctx, recipes[i].ID); err != nil {
			s.logger.ErrorContext(ctx, "failed to delete recipe during user cascade",
				slog.String("user_id", canonical),
				slog.String("recipe_id", recipes[i].ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		deleted++
	}

	s.logger.InfoContext(ctx, "user deleted",
		slog.String("user_id", canonical),
		slog.Int("recipes_deleted", deleted),
	)

	if err := s.producer.PublishUserDeleted(ctx, canonical, deleted); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.deleted event",
			slog.String("user_id", canonical),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
