package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/utafrali/recipex/internal/domain"
)

// RecipeRepository implements repository.RecipeRepository backed by
// the recipes collection.
type RecipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository creates a recipe repository on the given database.
func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{coll: db.Collection(recipesCollection)}
}

// FindByID retrieves a recipe by id. A missing document yields
// (nil, nil), not an error.
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// FindByTitle returns all recipes with the exact given title.
func (r *RecipeRepository) FindByTitle(ctx context.Context, title string) ([]domain.Recipe, error) {
	return r.findAll(ctx, bson.M{"title": title})
}

// FindByTagsContaining returns all recipes tagged with any of the
// given tags.
func (r *RecipeRepository) FindByTagsContaining(ctx context.Context, tags []string) ([]domain.Recipe, error) {
	return r.findAll(ctx, bson.M{"tags": bson.M{"$in": tags}})
}

// FindByOwner returns all recipes owned by the given user.
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	return r.findAll(ctx, bson.M{"owner_id": ownerID})
}

func (r *RecipeRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Recipe, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []domain.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

// Save upserts a single recipe document keyed by its id.
func (r *RecipeRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe, opts); err != nil {
		return fmt.Errorf("save recipe %s: %w", recipe.ID, err)
	}
	return nil
}

// SaveAll upserts a batch of recipes with a single bulk write. Models
// execute in order; a failure partway leaves earlier writes applied.
func (r *RecipeRepository) SaveAll(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(recipes))
	for i := range recipes {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": recipes[i].ID}).
			SetReplacement(&recipes[i]).
			SetUpsert(true))
	}

	opts := options.BulkWrite().SetOrdered(true)
	if _, err := r.coll.BulkWrite(ctx, models, opts); err != nil {
		return fmt.Errorf("save %d recipes: %w", len(recipes), err)
	}
	return nil
}

// DeleteByID removes a recipe. Absence is not an error.
func (r *RecipeRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	return nil
}
