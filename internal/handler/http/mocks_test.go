package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/recipex/internal/domain"
	"github.com/utafrali/recipex/internal/event"
	"github.com/utafrali/recipex/internal/service"
	storagememory "github.com/utafrali/recipex/internal/storage/memory"
	"github.com/utafrali/recipex/pkg/httputil"
	pkgkafka "github.com/utafrali/recipex/pkg/kafka"
)

// =============================================================================
// Mock repositories
// =============================================================================

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) FindByTitle(ctx context.Context, title string) ([]domain.Recipe, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) FindByTagsContaining(ctx context.Context, tags []string) ([]domain.Recipe, error) {
	args := m.Called(ctx, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) FindByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Save(ctx context.Context, recipe *domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepo) SaveAll(ctx context.Context, recipes []domain.Recipe) error {
	args := m.Called(ctx, recipes)
	return args.Error(0)
}

func (m *mockRecipeRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Test helpers
// =============================================================================

const (
	testUserID   = "550E8400-E29B-41D4-A716-446655440001"
	testRecipeID = "550E8400-E29B-41D4-A716-446655440002"
	testAuthorID = "550E8400-E29B-41D4-A716-446655440003"
)

func handlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func handlerTestEventProducer() *event.Producer {
	logger := handlerTestLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}

// testRouter builds the full API router over mock repositories.
func testRouter(userRepo *mockUserRepo, recipeRepo *mockRecipeRepo) *chi.Mux {
	logger := handlerTestLogger()
	producer := handlerTestEventProducer()
	presigner := storagememory.New("https://bucket.test")

	svcs := Services{
		Users:   service.NewUserService(userRepo, recipeRepo, producer, logger),
		Recipes: service.NewRecipeService(recipeRepo, producer, logger),
		Reviews: service.NewReviewService(recipeRepo, producer, logger),
		Images:  service.NewImageService(recipeRepo, presigner, "images/", 30*time.Minute, logger),
	}

	userHandler := NewUserHandler(svcs.Users, logger)
	recipeHandler := NewRecipeHandler(svcs.Recipes, logger)
	reviewHandler := NewReviewHandler(svcs.Reviews, logger)
	imageHandler := NewImageHandler(svcs.Images, logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Get("/user/{userId}", userHandler.GetUser)
		r.Delete("/user/{userId}", userHandler.DeleteUser)
		r.Post("/user/{userId}/recipes", recipeHandler.CreateRecipes)
		r.Delete("/user/{userId}/recipes/{recipeId}", recipeHandler.DeleteRecipe)
		r.Get("/recipe/{recipeId}", recipeHandler.GetRecipe)
		r.Put("/recipe", recipeHandler.UpdateRecipe)
		r.Get("/recipes/by-title/{title}", recipeHandler.GetRecipesByTitle)
		r.Get("/recipes/by-tags", recipeHandler.GetRecipesByTags)
		r.Post("/recipe/{recipeId}/reviews", reviewHandler.SubmitReview)
		r.Get("/recipe/{recipeId}/reviews", reviewHandler.GetReviews)
		r.Post("/image/{recipeId}", imageHandler.IssueUploadURL)
		r.Get("/image/{recipeId}", imageHandler.IssueDownloadURL)
	})
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

func sampleRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:           testRecipeID,
		OwnerID:      testUserID,
		Title:        "Guacamole",
		Description:  "fresh and fast",
		Ingredients:  []string{"avocado", "lime"},
		Instructions: []string{"mash", "mix"},
		Tags:         []string{"Mexican"},
		Reviews:      []domain.Review{},
		CreatedAt:    time.Now().UTC(),
	}
}
