package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/recipex/internal/domain"
	pkgkafka "github.com/utafrali/recipex/pkg/kafka"
)

// Kafka topic constants for recipex domain events.
const (
	TopicUserRegistered  = "recipex.user.registered"
	TopicUserDeleted     = "recipex.user.deleted"
	TopicRecipeCreated   = "recipex.recipe.created"
	TopicRecipeDeleted   = "recipex.recipe.deleted"
	TopicReviewSubmitted = "recipex.review.submitted"
)

// Aggregate type constants.
const (
	AggregateTypeUser   = "user"
	AggregateTypeRecipe = "recipe"
)

// Source identifier for events originating from this service.
const SourceRecipex = "recipex"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDeletedData is the payload for a user.deleted event.
type UserDeletedData struct {
	ID             string `json:"id"`
	RecipesDeleted int    `json:"recipes_deleted"`
}

// RecipeCreatedData is the payload for a recipe.created event.
type RecipeCreatedData struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
}

// RecipeDeletedData is the payload for a recipe.deleted event.
type RecipeDeletedData struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// ReviewSubmittedData is the payload for a review.submitted event.
type ReviewSubmittedData struct {
	ReviewID string `json:"review_id"`
	RecipeID string `json:"recipe_id"`
	AuthorID string `json:"author_id"`
	Rating   int    `json:"rating"`
	Revised  bool   `json:"revised"`
}

// Producer publishes recipex domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{
		ID:    user.ID,
		Name:  user.Username.Name,
		Email: user.Username.Email,
	}

	event, err := pkgkafka.NewEvent(TopicUserRegistered, user.ID, AggregateTypeUser, SourceRecipex, data)
	if err != nil {
		return fmt.Errorf("create user.registered event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserRegistered, event); err != nil {
		return fmt.Errorf("publish user.registered event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.registered event",
		slog.String("user_id", user.ID),
	)

	return nil
}

// PublishUserDeleted publishes a user.deleted event.
func (p *Producer) PublishUserDeleted(ctx context.Context, userID string, recipesDeleted int) error {
	data := UserDeletedData{
		ID:             userID,
		RecipesDeleted: recipesDeleted,
	}

	event, err := pkgkafka.NewEvent(TopicUserDeleted, userID, AggregateTypeUser, SourceRecipex, data)
	if err != nil {
		return fmt.Errorf("create user.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserDeleted, event); err != nil {
		return fmt.Errorf("publish user.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.deleted event",
		slog.String("user_id", userID),
		slog.Int("recipes_deleted", recipesDeleted),
	)

	return nil
}

// PublishRecipeCreated publishes a recipe.created event.
func (p *Producer) PublishRecipeCreated(ctx context.Context, recipe *domain.Recipe) error {
	data := RecipeCreatedData{
		ID:      recipe.ID,
		OwnerID: recipe.OwnerID,
		Title:   recipe.Title,
	}

	event, err := pkgkafka.NewEvent(TopicRecipeCreated, recipe.ID, AggregateTypeRecipe, SourceRecipex, data)
	if err != nil {
		return fmt.Errorf("create recipe.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicRecipeCreated, event); err != nil {
		return fmt.Errorf("publish recipe.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published recipe.created event",
		slog.String("recipe_id", recipe.ID),
	)

	return nil
}

// PublishRecipeDeleted publishes a recipe.deleted event.
func (p *Producer) PublishRecipeDeleted(ctx context.Context, recipeID, ownerID string) error {
	data := RecipeDeletedData{
		ID:      recipeID,
		OwnerID: ownerID,
	}

	event, err := pkgkafka.NewEvent(TopicRecipeDeleted, recipeID, AggregateTypeRecipe, SourceRecipex, data)
	if err != nil {
		return fmt.Errorf("create recipe.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicRecipeDeleted, event); err != nil {
		return fmt.Errorf("publish recipe.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published recipe.deleted event",
		slog.String("recipe_id", recipeID),
	)

	return nil
}

// PublishReviewSubmitted publishes a review.submitted event.
func (p *Producer) PublishReviewSubmitted(ctx context.Context, review *domain.Review, revised bool) error {
	data := ReviewSubmittedData{
		ReviewID: review.ID,
		RecipeID: review.RecipeID,
		AuthorID: review.AuthorID,
		Rating:   review.Rating,
		Revised:  revised,
	}

	event, err := pkgkafka.NewEvent(TopicReviewSubmitted, review.RecipeID, AggregateTypeRecipe, SourceRecipex, data)
	if err != nil {
		return fmt.Errorf("create review.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewSubmitted, event); err != nil {
		return fmt.Errorf("publish review.submitted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.submitted event",
		slog.String("recipe_id", review.RecipeID),
		slog.String("author_id", review.AuthorID),
	)

	return nil
}
