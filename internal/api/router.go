package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velstore/commerce-api/internal/api/handler"
	"github.com/velstore/commerce-api/internal/api/middleware"
	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/service"
	mongostore "github.com/velstore/commerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/velstore/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	tokenRepo := mongostore.NewTokenRepository(db)
	guestRepo := mongostore.NewGuestRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	reviewRepo := mongostore.NewReviewRepository(db)
	cartRepo := mongostore.NewCartRepository(db)

	tokenCache := redisstore.NewTokenCache(rdb, log)

	authService := service.NewAuthService(userRepo, tokenRepo, guestRepo, tokenCache, log)
	productService := service.NewProductService(productRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)

	bearer := func(scope domain.Scope) echo.MiddlewareFunc {
		return middleware.Auth(authService, scope)
	}
	guest := middleware.Guest(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Storefront ---
	v1 := e.Group("/v1")
	v1.GET("/products", productHandler.List, bearer(domain.ScopeProductsList))
	v1.GET("/products/:id", productHandler.Get, bearer(domain.ScopeProductsRead))
	v1.GET("/categories", categoryHandler.List, bearer(domain.ScopeCategoriesList))

	// Any authenticated account may submit a review or use its cart; no
	// scope is required beyond a valid token.
	v1.POST("/products/:id/reviews", reviewHandler.Submit, bearer(""))
	v1.GET("/cart", cartHandler.Get, bearer(""))
	v1.POST("/cart/items", cartHandler.AddItem, bearer(""))

	// --- Guest cart ---
	v1.GET("/guest/cart", cartHandler.GuestGet, guest)
	v1.POST("/guest/cart/items", cartHandler.AddItem, guest)

	// --- Admin ---
	admin := v1.Group("/admin")

	admin.GET("/products", productHandler.AdminList, bearer(domain.ScopeProductsList))
	admin.GET("/products/:id", productHandler.AdminGet, bearer(domain.ScopeProductsRead))
	admin.POST("/products", productHandler.Create, bearer(domain.ScopeProductsCreate))
	admin.PUT("/products/:id", productHandler.Update, bearer(domain.ScopeProductsUpdate))
	admin.DELETE("/products/:id", productHandler.Delete, bearer(domain.ScopeProductsDelete))

	admin.GET("/categories", categoryHandler.AdminList, bearer(domain.ScopeCategoriesList))
	admin.GET("/categories/:id", categoryHandler.AdminGet, bearer(domain.ScopeCategoriesRead))
	admin.POST("/categories", categoryHandler.Create, bearer(domain.ScopeCategoriesCreate))
	admin.PUT("/categories/:id", categoryHandler.Update, bearer(domain.ScopeCategoriesUpdate))
	admin.DELETE("/categories/:id", categoryHandler.Delete, bearer(domain.ScopeCategoriesDelete))

	admin.GET("/reviews", reviewHandler.AdminList, bearer(domain.ScopeReviewsList))
	admin.GET("/reviews/:id", reviewHandler.AdminGet, bearer(domain.ScopeReviewsRead))
	admin.PUT("/reviews/:id", reviewHandler.Moderate, bearer(domain.ScopeReviewsUpdate))
	admin.DELETE("/reviews/:id", reviewHandler.Delete, bearer(domain.ScopeReviewsDelete))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
