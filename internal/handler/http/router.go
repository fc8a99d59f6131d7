package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/recipex/internal/service"
	"github.com/utafrali/recipex/pkg/health"
	"github.com/utafrali/recipex/pkg/middleware"
)

// Services groups the service dependencies of the router.
type Services struct {
	Users   *service.UserService
	Recipes *service.RecipeService
	Reviews *service.ReviewService
	Images  *service.ImageService
}

// NewRouter creates a chi router with all recipex routes registered.
func NewRouter(
	svcs Services,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig middleware.CORSConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing("recipex"))
	r.Use(middleware.PrometheusMetrics("recipex"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	userHandler := NewUserHandler(svcs.Users, logger)
	recipeHandler := NewRecipeHandler(svcs.Recipes, logger)
	reviewHandler := NewReviewHandler(svcs.Reviews, logger)
	imageHandler := NewImageHandler(svcs.Images, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Users
		r.Post("/register", userHandler.Register)
		r.Get("/user/{userId}", userHandler.GetUser)
		r.Delete("/user/{userId}", userHandler.DeleteUser)

		// Recipes
		r.Post("/user/{userId}/recipes", recipeHandler.CreateRecipes)
		r.Delete("/user/{userId}/recipes/{recipeId}", recipeHandler.DeleteRecipe)
		r.Get("/recipe/{recipeId}", recipeHandler.GetRecipe)
		r.Put("/recipe", recipeHandler.UpdateRecipe)
		r.Get("/recipes/by-title/{title}", recipeHandler.GetRecipesByTitle)
		r.Get("/recipes/by-tags", recipeHandler.GetRecipesByTags)

		// Reviews
		r.Post("/recipe/{recipeId}/reviews", reviewHandler.SubmitReview)
		r.Get("/recipe/{recipeId}/reviews", reviewHandler.GetReviews)

		// Images
		r.Post("/image/{recipeId}", imageHandler.IssueUploadURL)
		r.Get("/image/{recipeId}", imageHandler.IssueDownloadURL)
	})

	return r
}
