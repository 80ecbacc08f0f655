package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"school-backend/internal/cache"
	"school-backend/internal/config"
	"school-backend/internal/delivery/httpd"
	"school-backend/internal/repository"
	"school-backend/internal/service"
	"school-backend/internal/service/integration"
)

type App struct {
	server     *http.Server
	logger     zerolog.Logger
	config     *config.Config
	db         *sql.DB
	publisher  integration.EventPublisher
	statsCache *cache.Cache
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	publisher, err := integration.NewRabbitMQPublisher(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.RoutingKey,
		cfg.RabbitMQ.QueueName,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ publisher")
		// The service keeps working without the broker; saves just go
		// unannounced.
	}

	statsCache, err := cache.New(cfg.Redis, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
		// Same policy: dashboard statistics are served uncached.
	}

	studentRepo := repository.NewStudentRepository(db, log)
	teacherRepo := repository.NewTeacherRepository(db, log)
	adminRepo := repository.NewAdminRepository(db, log)
	resultRepo := repository.NewResultRepository(db, log)

	authService := service.NewAuthService(studentRepo, teacherRepo, adminRepo, log)
	studentService := service.NewStudentService(studentRepo, log)
	teacherService := service.NewTeacherService(teacherRepo, log)
	adminService := service.NewAdminService(adminRepo, log)
	resultService := service.NewResultService(resultRepo, publisher, log)
	statsService := service.NewStatsService(
		studentRepo,
		teacherRepo,
		resultRepo,
		statsCache,
		cfg.Redis.StatsTTL,
		log,
	)

	handler := httpd.NewHandler(
		authService,
		studentService,
		teacherService,
		adminService,
		resultService,
		statsService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:     server,
		logger:     log,
		config:     cfg,
		db:         db,
		publisher:  publisher,
		statsCache: statsCache,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting school backend on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down school backend...")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.statsCache != nil {
		if err := a.statsCache.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
