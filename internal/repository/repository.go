package repository

import (
	"context"

	"github.com/utafrali/recipex/internal/domain"
)

// RecipeRepository defines the interface for recipe persistence
// operations. Lookups return (nil, nil) when no document matches;
// only transport and decoding failures surface as errors.
type RecipeRepository interface {
	// FindByID retrieves a recipe by its canonical identifier.
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)

	// FindByTitle returns all recipes with the exact given title,
	// in store order.
	FindByTitle(ctx context.Context, title string) ([]domain.Recipe, error)

	// FindByTagsContaining returns all recipes whose tag list
	// contains at least one of the given tags.
	FindByTagsContaining(ctx context.Context, tags []string) ([]domain.Recipe, error)

	// FindByOwner returns all recipes owned by the given user.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)

	// Save upserts a single recipe document keyed by its id.
	Save(ctx context.Context, recipe *domain.Recipe) error

	// SaveAll upserts a batch of recipe documents. There is no
	// transaction: a mid-batch failure leaves earlier writes in place.
	SaveAll(ctx context.Context, recipes []domain.Recipe) error

	// DeleteByID removes a recipe. Deleting an absent recipe is not
	// an error.
	DeleteByID(ctx context.Context, id string) error
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// FindByID retrieves a user by their canonical identifier.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmail retrieves a user by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Save upserts a user document keyed by its id.
	Save(ctx context.Context, user *domain.User) error

	// DeleteByID removes a user. Deleting an absent user is not an error.
	DeleteByID(ctx context.Context, id string) error
}
