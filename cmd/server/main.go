package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/config"
	"github.com/sanctuary-tracker/api/internal/database"
	"github.com/sanctuary-tracker/api/internal/gametime"
	"github.com/sanctuary-tracker/api/internal/handlers"
	"github.com/sanctuary-tracker/api/internal/logger"
	"github.com/sanctuary-tracker/api/internal/middleware"
	"github.com/sanctuary-tracker/api/internal/services/auth"
	"github.com/sanctuary-tracker/api/internal/telemetry"
)

const serviceName = "sanctuary-tracker-api"

// version is set at build time via -ldflags
var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.Int("game_time_offset_hours", cfg.GameTimeOffsetHours),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// OpenTelemetry tracing (optional)
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), serviceName, cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Warn("failed_to_close_database_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_database")

	if err := db.Migrate(); err != nil {
		zapLogger.Fatal("failed_to_run_migrations", zap.Error(err))
	}
	zapLogger.Info("migrations_applied")

	// Redis for rate limiting
	redisLimiter, err := middleware.NewRedisRateLimiter(cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
	}
	defer func() {
		if err := redisLimiter.Close(); err != nil {
			zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_redis")

	publicRateLimit, err := middleware.RateLimitUnauthenticated(redisLimiter)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}
	authedRateLimit, err := middleware.RateLimitAuthenticated(redisLimiter)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// Repositories
	userRepo := database.NewUserRepository(db)
	activityRepo := database.NewActivityRepository(db)
	eventRepo := database.NewEventRepository(db)
	rewardRepo := database.NewRewardRepository(db)
	progressRepo := database.NewProgressRepository(db)

	// Services
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	clock := gametime.New(cfg.GameTimeOffsetHours)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, zapLogger)
	activityHandler := handlers.NewActivityHandler(activityRepo, zapLogger)
	eventHandler := handlers.NewEventHandler(eventRepo, clock, zapLogger)
	rewardHandler := handlers.NewRewardHandler(rewardRepo, zapLogger)
	progressHandler := handlers.NewProgressHandler(progressRepo, activityRepo, zapLogger)
	healthHandler := handlers.NewHealthHandler(db, redisLimiter, version, zapLogger)
	openAPIHandler := handlers.NewOpenAPIHandler(filepath.Join("api", "openapi", "openapi.yaml"), zapLogger)

	authMW := middleware.Auth(authService, userRepo, zapLogger)

	// Router and middleware chain, outermost first
	r := mux.NewRouter()
	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware(serviceName))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORSFromEnv(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Audit(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	// Public routes
	r.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/version", healthHandler.Version).Methods("GET")

	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/openapi.yaml", openAPIHandler.ServeYAML).Methods("GET")
	apiRouter.HandleFunc("/openapi.json", openAPIHandler.ServeJSON).Methods("GET")

	// Registration and login, rate-limited at the unauthenticated tier
	publicAuthRouter := apiRouter.PathPrefix("/auth").Subrouter()
	publicAuthRouter.Use(publicRateLimit)
	publicAuthRouter.HandleFunc("/register", authHandler.Register).Methods("POST")
	publicAuthRouter.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Everything else requires a Bearer token
	protected := apiRouter.PathPrefix("").Subrouter()
	protected.Use(authMW)
	protected.Use(authedRateLimit)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	protected.HandleFunc("/activities", activityHandler.GetActivities).Methods("GET")
	protected.HandleFunc("/activities/{id}", activityHandler.GetActivity).Methods("GET")

	// /events/upcoming must register before /events/{id}
	protected.HandleFunc("/events/upcoming", eventHandler.GetUpcoming).Methods("GET")
	protected.HandleFunc("/events", eventHandler.GetEvents).Methods("GET")
	protected.HandleFunc("/events/{id}", eventHandler.GetEvent).Methods("GET")

	protected.HandleFunc("/rewards", rewardHandler.GetRewards).Methods("GET")
	protected.HandleFunc("/rewards/{id}/activities", rewardHandler.GetActivitiesByReward).Methods("GET")
	protected.HandleFunc("/rewards/{id}/events", rewardHandler.GetEventsByReward).Methods("GET")

	protected.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/progress/date/{date}", progressHandler.GetProgressByDate).Methods("GET")
	protected.HandleFunc("/progress/{activityId}", progressHandler.ToggleProgress).Methods("PUT")

	// Preflight requests fall through the CORS middleware to here
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting",
			zap.String("port", cfg.ServerPort),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
