package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nairmahesh/diwali-delights/internal/api/handlers"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/cache"
	"github.com/nairmahesh/diwali-delights/internal/config"
	"github.com/nairmahesh/diwali-delights/internal/health"
	"github.com/nairmahesh/diwali-delights/internal/kvstore"
	"github.com/nairmahesh/diwali-delights/internal/metrics"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/pkg/renderer"
	sendgridclient "github.com/nairmahesh/diwali-delights/pkg/sendgrid"
	stripeClient "github.com/nairmahesh/diwali-delights/pkg/stripe"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// External clients
	stripeGateway := stripeClient.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgridclient.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	chromeRenderer := renderer.NewChromeRenderer(cfg.Renderer)

	// Storage wiring: carts live in redis with an in-memory fallback so a
	// cache outage never blocks browsing; settings share the redis instance.
	cartRepo := repository.NewFallbackCartRepo(
		repository.NewCartRepo(redisClient, cfg.Cart.SessionTTL),
		repository.NewMemoryCartRepo(),
	)
	settingsStore := kvstore.NewRedisStore(redisClient)
	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Services
	settingsService := service.NewSettingsService(settingsStore)
	catalogService := service.NewCatalogService(repos.Product, settingsService, catalogCache, cfg.Cache.DefaultTTL, logger)
	cartService := service.NewCartService(cartRepo, catalogService)
	productService := service.NewProductService(repos.Product, catalogService)
	orderService := service.NewOrderService(repos.Order, cartService, settingsService, stripeGateway, cfg.Stripe.Currency, logger)
	shareService := service.NewShareService(cfg.Share.BaseURL)
	greetingService := service.NewGreetingService(shareService)
	cardService := service.NewCardService(greetingService, chromeRenderer)
	contactService := service.NewContactService(repos.Contact)
	reviewService := service.NewReviewService(repos.Review, repos.Order, repos.Contact, emailService, cfg.Share.BaseURL, logger)
	analyticsService := service.NewAnalyticsService(repos.Analytics, repos.Review, logger)
	authService := service.NewAuthService(cfg.Admin, logger)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	greetingHandler := handlers.NewGreetingHandler(greetingService, cardService)
	shareHandler := handlers.NewShareHandler(shareService)
	productHandler := handlers.NewProductHandler(productService)
	contactHandler := handlers.NewContactHandler(contactService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	authHandler := handlers.NewAuthHandler(authService)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeGateway,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Storefront
	routerMux.HandleFunc("GET /api/v1/catalog", catalogHandler.GetCatalog())
	routerMux.HandleFunc("GET /api/v1/catalog/items/{id}", catalogHandler.GetItem())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{itemId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.Checkout())
	routerMux.HandleFunc("POST /api/v1/payments/webhook", orderHandler.StripeWebhook())
	routerMux.HandleFunc("GET /api/v1/settings", settingsHandler.GetSettings())
	routerMux.HandleFunc("POST /api/v1/analytics/track", analyticsHandler.Track())
	routerMux.HandleFunc("GET /api/v1/reviews", reviewHandler.ListReviews(false))
	routerMux.HandleFunc("POST /api/v1/reviews", reviewHandler.SubmitReview())

	// Greeting composer
	routerMux.HandleFunc("GET /api/v1/greetings/relationships", greetingHandler.Relationships())
	routerMux.HandleFunc("GET /api/v1/greetings/templates/{relationship}", greetingHandler.Templates())
	routerMux.HandleFunc("GET /api/v1/greetings/artworks", greetingHandler.Artworks())
	routerMux.HandleFunc("POST /api/v1/greetings/preview", greetingHandler.Preview())
	routerMux.HandleFunc("POST /api/v1/greetings/card", greetingHandler.DownloadCard())
	routerMux.HandleFunc("GET /greetings/shared", shareHandler.SharedGreeting())

	// Admin
	routerMux.HandleFunc("POST /api/v1/admin/login", authHandler.Login())
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}", authMiddleware.Authenticate(orderHandler.UpdateOrder()))
	routerMux.HandleFunc("POST /api/v1/admin/orders/{id}/payment", authMiddleware.Authenticate(orderHandler.RequestPayment()))
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/admin/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/admin/contacts", authMiddleware.Authenticate(contactHandler.CreateContact()))
	routerMux.HandleFunc("POST /api/v1/admin/contacts/import", authMiddleware.Authenticate(contactHandler.BulkImport()))
	routerMux.HandleFunc("GET /api/v1/admin/contacts", authMiddleware.Authenticate(contactHandler.ListContacts()))
	routerMux.HandleFunc("DELETE /api/v1/admin/contacts/{id}", authMiddleware.Authenticate(contactHandler.DeleteContact()))
	routerMux.HandleFunc("GET /api/v1/admin/reviews/summary", authMiddleware.Authenticate(reviewHandler.Summary()))
	routerMux.HandleFunc("POST /api/v1/admin/reviews/requests", authMiddleware.Authenticate(reviewHandler.SendRequests()))
	routerMux.HandleFunc("GET /api/v1/admin/reviews/requests", authMiddleware.Authenticate(reviewHandler.ListRequests()))
	routerMux.HandleFunc("GET /api/v1/admin/reviews", authMiddleware.Authenticate(reviewHandler.ListReviews(true)))
	routerMux.HandleFunc("PATCH /api/v1/admin/reviews/{id}/visibility", authMiddleware.Authenticate(reviewHandler.SetVisibility()))
	routerMux.HandleFunc("GET /api/v1/admin/analytics/dashboard", authMiddleware.Authenticate(analyticsHandler.Dashboard()))
	routerMux.HandleFunc("PUT /api/v1/admin/settings", authMiddleware.Authenticate(settingsHandler.UpdateSettings()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
