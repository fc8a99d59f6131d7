package memory

import (
	"context"
	"sync"

	"github.com/utafrali/recipex/internal/domain"
)

// RecipeRepository implements repository.RecipeRepository with an
// in-memory map. Used by tests and offline runs; results preserve
// insertion order so they are stable across calls.
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes map[string]domain.Recipe
	order   []string
}

// NewRecipeRepository creates an empty in-memory recipe repository.
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{recipes: make(map[string]domain.Recipe)}
}

// FindByID retrieves a recipe by id, or (nil, nil) when absent.
func (r *RecipeRepository) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	out := cloneRecipe(recipe)
	return &out, nil
}

// FindByTitle returns all recipes with the exact given title.
func (r *RecipeRepository) FindByTitle(_ context.Context, title string) ([]domain.Recipe, error) {
	return r.filter(func(rec *domain.Recipe) bool {
		return rec.Title == title
	}), nil
}

// FindByTagsContaining returns all recipes tagged with any of the
// given tags.
func (r *RecipeRepository) FindByTagsContaining(_ context.Context, tags []string) ([]domain.Recipe, error) {
	want := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		want[t] = struct{}{}
	}
	return r.filter(func(rec *domain.Recipe) bool {
		for _, t := range rec.Tags {
			if _, ok := want[t]; ok {
				return true
			}
		}
		return false
	}), nil
}

// FindByOwner returns all recipes owned by the given user.
func (r *RecipeRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Recipe, error) {
	return r.filter(func(rec *domain.Recipe) bool {
		return rec.OwnerID == ownerID
	}), nil
}

func (r *RecipeRepository) filter(match func(*domain.Recipe) bool) []domain.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Recipe{}
	for _, id := range r.order {
		recipe := r.recipes[id]
		if match(&recipe) {
			out = append(out, cloneRecipe(recipe))
		}
	}
	return out
}

// Save upserts a single recipe.
func (r *RecipeRepository) Save(_ context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(*recipe)
	return nil
}

// SaveAll upserts a batch of recipes.
func (r *RecipeRepository) SaveAll(_ context.Context, recipes []domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range recipes {
		r.store(recipes[i])
	}
	return nil
}

func (r *RecipeRepository) store(recipe domain.Recipe) {
	if _, exists := r.recipes[recipe.ID]; !exists {
		r.order = append(r.order, recipe.ID)
	}
	r.recipes[recipe.ID] = cloneRecipe(recipe)
}

// DeleteByID removes a recipe. Absence is not an error.
func (r *RecipeRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recipes[id]; !exists {
		return nil
	}
	delete(r.recipes, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneRecipe deep-copies a recipe so callers cannot mutate stored state.
func cloneRecipe(recipe domain.Recipe) domain.Recipe {
	out := recipe
	if recipe.Ingredients != nil {
		out.Ingredients = append([]string(nil), recipe.Ingredients...)
	}
	if recipe.Instructions != nil {
		out.Instructions = append([]string(nil), recipe.Instructions...)
	}
	if recipe.Tags != nil {
		out.Tags = append([]string(nil), recipe.Tags...)
	}
	if recipe.Reviews != nil {
		out.Reviews = append([]domain.Review(nil), recipe.Reviews...)
	}
	return out
}
