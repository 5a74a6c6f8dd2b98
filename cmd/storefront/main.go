//go:generate swag init -g main.go -d .,../../internal/api/handlers,../../internal/models,../../internal/utils/response -o ../../docs

//	@title						Gradwear Storefront API
//	@version					1.0
//	@description				Storefront backend-for-frontend for graduation apparel.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/gradwear/storefront/docs"
	"github.com/gradwear/storefront/internal/api/handlers"
	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/config"
	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/health"
	"github.com/gradwear/storefront/internal/metrics"
	repository "github.com/gradwear/storefront/internal/repositories"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/store"
	"github.com/gradwear/storefront/internal/tracing"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	tp, err := tracing.Init(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Redis setup, shared by the draft store and the event bridge
	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb, err = store.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Database setup
	var db *sql.DB
	if cfg.Drafts.Driver == config.DraftDriverPostgres {
		db, err = store.OpenPostgres(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := store.Migrate(ctx, db); err != nil {
			slog.Error("❌ Error migrating the database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	drafts, err := store.New(cfg, rdb, db)
	if err != nil {
		slog.Error("❌ Error creating the draft store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := drafts.Close(); err != nil {
			slog.Error("⚠️ Error closing draft store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Draft store closed")
		}
	}()

	// Event bus, bridged across instances when a channel is configured
	bus := events.NewBus()
	bus.Observe(func(e events.Event) { metrics.RecordEventPublished(string(e.Topic)) })

	var markers handlers.ChangeMarker
	if cfg.Events.Channel != "" {
		bridge := events.NewRedisBridge(rdb, cfg.Events.Channel, uuid.NewString(), bus)
		bus.AddForwarder(bridge)
		markers = bridge

		go func() {
			if err := bridge.Run(ctx); err != nil {
				slog.Error("⚠️ Event bridge stopped", slog.String("error", err.Error()))
			}
		}()
	}

	client := repository.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	repos := repository.New(client)
	validate := utils.NewValidator()

	optionsService := service.NewOptionsService(repos.Product, drafts, bus, cfg.Drafts)
	productService := service.NewProductService(repos.Product, repos.Category, optionsService, validate)
	categoryService := service.NewCategoryService(repos.Category, validate)
	cartService := service.NewCartService(repos.Cart, repos.Product, optionsService, bus)
	wishlistService := service.NewWishlistService(repos.Wishlist, bus)
	couponService := service.NewCouponService(repos.Coupon, validate)
	reviewService := service.NewReviewService(repos.Review)
	badgeService := service.NewBadgeService(repos.Cart, repos.Wishlist, bus, cfg.Events.Debounce)

	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, productService)
	optionsHandler := handlers.NewOptionsHandler(optionsService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	couponHandler := handlers.NewCouponHandler(couponService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	eventsHandler := handlers.NewEventsHandler(bus, badgeService, markers, cfg.Events.Heartbeat)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, client)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("drafts", cfg.Drafts.Driver), slog.String("version", health.Version))

	// Setup router
	routerMux := http.NewServeMux()
	route := func(pattern string, h http.Handler) {
		routerMux.Handle(pattern, metrics.Instrument(pattern, h))
	}
	admin := func(h http.Handler) http.Handler {
		return authMiddleware.Authenticate(middleware.RequireAdmin(h))
	}

	route("GET /api/v1/products", productHandler.ListProducts())
	route("GET /api/v1/products/{slug}", authMiddleware.Optional(productHandler.GetProduct()))
	route("PUT /api/v1/products/{id}/selection", authMiddleware.Authenticate(optionsHandler.UpdateSelection()))
	route("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviews())
	route("POST /api/v1/products/{id}/reviews", authMiddleware.Authenticate(reviewHandler.CreateReview()))
	route("GET /api/v1/product-types", productHandler.ProductTypes())
	route("GET /api/v1/product-types/{type}/default-options", productHandler.DefaultOptions())

	route("GET /api/v1/categories", categoryHandler.ListCategories())
	route("GET /api/v1/categories/{slug}", categoryHandler.GetCategory())
	route("GET /api/v1/categories/{slug}/products", categoryHandler.ListCategoryProducts())

	route("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	route("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	route("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	route("PATCH /api/v1/cart/items/{productId}", authMiddleware.Authenticate(cartHandler.UpdateItem()))
	route("DELETE /api/v1/cart/items/{productId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	route("GET /api/v1/cart/validation", authMiddleware.Authenticate(cartHandler.ValidateCart()))
	route("POST /api/v1/cart/checkout", authMiddleware.Authenticate(cartHandler.Checkout()))

	route("GET /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.ListWishlist()))
	route("GET /api/v1/wishlist/{productId}", authMiddleware.Authenticate(wishlistHandler.CheckWishlist()))
	route("POST /api/v1/wishlist/{productId}/toggle", authMiddleware.Authenticate(wishlistHandler.ToggleWishlist()))

	route("GET /api/v1/badges", authMiddleware.Authenticate(badgeHandler.GetBadges()))
	route("GET /api/v1/events", authMiddleware.Authenticate(eventsHandler.Stream()))

	route("POST /api/v1/admin/products", admin(productHandler.CreateProduct()))
	route("PUT /api/v1/admin/products/{id}", admin(productHandler.UpdateProduct()))
	route("POST /api/v1/admin/categories", admin(categoryHandler.CreateCategory()))
	route("PUT /api/v1/admin/categories/{id}", admin(categoryHandler.UpdateCategory()))
	route("GET /api/v1/admin/coupons", admin(couponHandler.ListCoupons()))
	route("POST /api/v1/admin/coupons", admin(couponHandler.CreateCoupon()))
	route("POST /api/v1/admin/coupons/generate-code", admin(couponHandler.GenerateCode()))
	route("GET /api/v1/admin/coupons/{id}", admin(couponHandler.GetCoupon()))
	route("PUT /api/v1/admin/coupons/{id}", admin(couponHandler.UpdateCoupon()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown; open event streams end when their request contexts are cancelled
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if rdb != nil {
		_ = rdb.Close()
	}
}
