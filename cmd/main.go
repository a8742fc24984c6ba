package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/staffhub-dev/staffhub/internal/handlers"
	"github.com/staffhub-dev/staffhub/internal/jwt"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/middlewares"
	"github.com/staffhub-dev/staffhub/internal/repositories"
	"github.com/staffhub-dev/staffhub/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/staffhub-dev/staffhub/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title staffhub API
// @version 1.0.0
// @description Recruiting administration service: users, companies, candidates and an activity feed
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisExpSecond int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "staffhub")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "30")); err != nil {
		return
	}

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "staffhub.activity")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisExpSecond int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events, optional
	var kafkaWriter *kafka.Writer
	if kafkaAddr != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Kafka activity events enabled, topic %s", kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	companyReadRepo := repositories.NewCompanyReadRepository(db)
	companyWriteRepo := repositories.NewCompanyWriteRepository(db)
	candidateReadRepo := repositories.NewCandidateReadRepository(db)
	candidateWriteRepo := repositories.NewCandidateWriteRepository(db)
	activityWriteRepo := repositories.NewActivityWriteRepository(db)
	activityReadRepo := repositories.NewActivityReadRepository(db)
	activityCacheRepo := repositories.NewActivityCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	statsReadRepo := repositories.NewStatsReadRepository(db)

	// Initialize services
	activityService := services.NewActivityService(activityWriteRepo, activityReadRepo, activityCacheRepo, kafkaWriterOrNil(kafkaWriter))
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	userService := services.NewUserService(userReadRepo, userWriteRepo, activityService)
	companyService := services.NewCompanyService(companyReadRepo, companyWriteRepo, activityService)
	candidateService := services.NewCandidateService(candidateReadRepo, candidateWriteRepo, activityService)
	statsService := services.NewStatsService(statsReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/health", handlers.NewHealthHandler(db))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/users", handlers.NewListUsersHandler(userService))
			r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
			r.Get("/users/search/{term}", handlers.NewSearchUsersHandler(userService))
			r.Post("/users", handlers.NewCreateUserHandler(userService))
			r.Put("/users/{id}", handlers.NewUpdateUserHandler(userService))
			r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))

			r.Get("/companies", handlers.NewListCompaniesHandler(companyService))
			r.Get("/companies/{id}", handlers.NewGetCompanyHandler(companyService))
			r.Get("/companies/search/{term}", handlers.NewSearchCompaniesHandler(companyService))
			r.Post("/companies", handlers.NewCreateCompanyHandler(companyService))
			r.Put("/companies/{id}", handlers.NewUpdateCompanyHandler(companyService))
			r.Delete("/companies/{id}", handlers.NewDeleteCompanyHandler(companyService))

			r.Get("/candidates", handlers.NewListCandidatesHandler(candidateService))
			r.Get("/candidates/{id}", handlers.NewGetCandidateHandler(candidateService))
			r.Get("/candidates/search/{term}", handlers.NewSearchCandidatesHandler(candidateService))
			r.Get("/candidates/status/{status}", handlers.NewCandidatesByStatusHandler(candidateService))
			r.Post("/candidates", handlers.NewCreateCandidateHandler(candidateService))
			r.Put("/candidates/{id}", handlers.NewUpdateCandidateHandler(candidateService))
			r.Delete("/candidates/{id}", handlers.NewDeleteCandidateHandler(candidateService))

			r.Get("/activities", handlers.NewActivitiesHandler(activityService))
			r.Get("/stats", handlers.NewStatsHandler(statsService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// kafkaWriterOrNil keeps the typed-nil *kafka.Writer from masquerading as a
// non-nil KafkaWriter interface inside the activity service.
func kafkaWriterOrNil(w *kafka.Writer) services.KafkaWriter {
	if w == nil {
		return nil
	}
	return w
}
