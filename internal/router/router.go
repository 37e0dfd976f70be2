// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/config"
	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/handlers"
	"github.com/javajoker/shelflife/internal/middleware"
	"github.com/javajoker/shelflife/internal/services"
)

// Dependencies are the long-lived services the HTTP layer talks to.
type Dependencies struct {
	Store       *services.ProductStore
	Catalog     *services.Catalog
	Preferences *services.PreferencesService
	Clock       expiry.Clock
	Logger      logrus.FieldLogger
}

// Initialize builds the engine. Background work started for it (rate limiter
// sweepers) stops when ctx is cancelled.
func Initialize(ctx context.Context, cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Clock == nil {
		deps.Clock = expiry.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	// Initialize handlers
	productHandler := handlers.NewProductHandler(deps.Store, deps.Catalog, deps.Preferences, deps.Clock)
	preferencesHandler := handlers.NewPreferencesHandler(deps.Preferences)
	dateHandler := handlers.NewDateHandler(deps.Clock)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.RateLimit(ctx, cfg.Server.RateLimit, cfg.Server.RateBurst))
	mutationLimit := middleware.RateLimit(ctx, cfg.Server.MutationRateLimit, cfg.Server.MutationRateBurst)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"products": deps.Store.Count(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/launch", preferencesHandler.Launch)
		v1.GET("/themes", preferencesHandler.GetThemes)

		onboarding := v1.Group("/onboarding")
		{
			onboarding.GET("", preferencesHandler.GetOnboarding)
			onboarding.POST("/complete", preferencesHandler.CompleteOnboarding)
		}

		preferences := v1.Group("/preferences")
		{
			preferences.GET("", preferencesHandler.GetPreferences)
			preferences.PUT("", mutationLimit, preferencesHandler.SavePreferences)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			mutations := products.Group("")
			mutations.Use(mutationLimit)
			{
				mutations.POST("", productHandler.AddProduct)
				mutations.POST("/sample", productHandler.AddSampleProduct)
				mutations.POST("/reset", productHandler.ResetProducts)
				mutations.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Positional addressing, kept for list views that only know row numbers.
		positions := v1.Group("/positions")
		{
			positions.GET("/:index", productHandler.GetProductAt)
			positions.DELETE("/:index", mutationLimit, productHandler.DeleteProductAt)
		}

		v1.GET("/dates/convert", dateHandler.Convert)
	}

	return r
}
