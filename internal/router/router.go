// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/config"
	"github.com/anvogue/anvogue-admin/internal/handlers"
	"github.com/anvogue/anvogue-admin/internal/middleware"
	"github.com/anvogue/anvogue-admin/internal/services"
)

// Services bundles what the HTTP surface is built on.
type Services struct {
	Catalog    *services.CatalogService
	Auth       *services.AuthService
	Workspaces *services.Workspaces
}

// Initialize builds the admin engine. Background cleanup of the rate limiters stops with ctx.
func Initialize(ctx context.Context, cfg *config.Config, svc Services, log *logrus.Logger) *gin.Engine {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(svc.Auth, svc.Workspaces)
	articleHandler := handlers.NewArticleHandler(svc.Catalog, svc.Workspaces)
	varieteHandler := handlers.NewVarieteHandler(svc.Catalog, svc.Workspaces)
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)

	limits := middleware.NewRateLimits(cfg.RateLimit)
	limits.Start(ctx)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(limits.General.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"articles": svc.Catalog.Store().Snapshot().Len(),
		})
	})

	authRequired := middleware.AuthRequired(cfg.Auth)

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(limits.Auth.Middleware())
		{
			auth.POST("/connexion", authHandler.Connexion)
			auth.POST("/login", authHandler.Login)
			auth.POST("/inscription", limits.Upload.Middleware(), authHandler.Inscription)
			auth.POST("/signin", limits.Upload.Middleware(), authHandler.Signin)
			auth.GET("/profile", authRequired, authHandler.GetProfile)
			auth.POST("/logout", authRequired, authHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/categories", catalogHandler.GetCategories)
			protected.GET("/collections", catalogHandler.GetCollections)

			// Article routes
			articles := protected.Group("/articles")
			{
				articles.GET("", articleHandler.GetArticles)
				articles.POST("/reload", articleHandler.ReloadArticles)
				articles.DELETE("/:id", articleHandler.DeleteArticle)

				articles.POST("/dialog", articleHandler.OpenCreate)
				articles.GET("/dialog", articleHandler.GetDialog)
				articles.PATCH("/dialog", articleHandler.UpdateFields)
				articles.DELETE("/dialog", articleHandler.Cancel)
				articles.POST("/dialog/rows", articleHandler.AppendRow)
				articles.PATCH("/dialog/rows/:index", articleHandler.UpdateRow)
				articles.DELETE("/dialog/rows/:index", articleHandler.RemoveRow)
				articles.PUT("/dialog/image", limits.Upload.Middleware(), articleHandler.SetImage)
				articles.DELETE("/dialog/image", articleHandler.ClearImage)
				articles.POST("/dialog/submit", articleHandler.Submit)

				articles.POST("/:id/dialog", articleHandler.OpenEdit)
				articles.POST("/:id/varietes/dialog", varieteHandler.OpenCreate)
				articles.POST("/:id/varietes/:vid/dialog", varieteHandler.OpenEdit)
			}

			// Variete routes
			varietes := protected.Group("/varietes")
			{
				varietes.GET("/dialog", varieteHandler.GetDialog)
				varietes.PATCH("/dialog", varieteHandler.UpdateFields)
				varietes.DELETE("/dialog", varieteHandler.Cancel)
				varietes.POST("/dialog/rows", varieteHandler.AppendRow)
				varietes.PATCH("/dialog/rows/:index", varieteHandler.UpdateRow)
				varietes.DELETE("/dialog/rows/:index", varieteHandler.RemoveRow)
				varietes.POST("/dialog/images", limits.Upload.Middleware(), varieteHandler.AddImages)
				varietes.DELETE("/dialog/images/:index", varieteHandler.RemoveImage)
				varietes.POST("/dialog/submit", varieteHandler.Submit)
				varietes.DELETE("/:id", varieteHandler.DeleteVariete)
			}
		}
	}

	return r
}
