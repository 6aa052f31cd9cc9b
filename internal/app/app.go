package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelf-life/pkg/cache"
	"shelf-life/pkg/config"
	"shelf-life/pkg/database"
	"shelf-life/pkg/jwt"
	"shelf-life/pkg/logger"
	"shelf-life/pkg/middleware"
	"shelf-life/pkg/s3"

	apphttp "shelf-life/internal/controller/http"
	"shelf-life/internal/repo/persistent"
	"shelf-life/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "shelf-life/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs the auth rate limiter; run without it.
		log.Warn("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	workRepo := persistent.NewWorkRepository(a.db)
	sessionRepo := persistent.NewSessionRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo)
	workUseCase := usecase.NewWorkUseCase(workRepo, userRepo, a.s3Client, a.log)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, workRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, workRepo, userRepo)

	// HTTP handlers
	authHandler := apphttp.NewAuthHandler(authUseCase)
	userHandler := apphttp.NewUserHandler(userUseCase)
	workHandler := apphttp.NewWorkHandler(workUseCase)
	sessionHandler := apphttp.NewSessionHandler(sessionUseCase)
	reviewHandler := apphttp.NewReviewHandler(reviewUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		if a.redisClient != nil {
			auth.Use(middleware.RateLimitMiddleware(a.redisClient, 20, time.Minute))
		}
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/users/me", userHandler.Me)
			protected.DELETE("/users/me", userHandler.DeleteMe)

			protected.GET("/works", workHandler.List)
			protected.POST("/works", workHandler.Create)
			protected.GET("/works/:id", workHandler.Get)
			protected.PUT("/works/:id", workHandler.Update)
			protected.DELETE("/works/:id", workHandler.Delete)
			protected.POST("/works/:id/cover", workHandler.UploadCover)

			protected.GET("/works/:id/sessions", sessionHandler.ListForWork)
			protected.POST("/works/:id/sessions", sessionHandler.CreateForWork)

			protected.GET("/works/:id/review", reviewHandler.GetForWork)
			protected.PUT("/works/:id/review", reviewHandler.UpsertForWork)

			protected.GET("/sessions", sessionHandler.List)
			protected.POST("/sessions", sessionHandler.Create)
			protected.GET("/sessions/:id", sessionHandler.Get)
			protected.PUT("/sessions/:id", sessionHandler.Update)
			protected.DELETE("/sessions/:id", sessionHandler.Delete)

			protected.GET("/reviews", reviewHandler.List)
			protected.GET("/reviews/:id", reviewHandler.Get)
			protected.DELETE("/reviews/:id", reviewHandler.Delete)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Shelf Life API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The server gets five seconds to finish in-flight requests.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Shelf Life API exited")
	return nil
}
