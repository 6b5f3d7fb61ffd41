package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsportal/database"
	"newsportal/docs"
	"newsportal/internal/auth"
	"newsportal/internal/cache"
	"newsportal/internal/config"
	"newsportal/internal/controllers"
	"newsportal/internal/extract"
	"newsportal/internal/logging"
	"newsportal/internal/middleware"
	"newsportal/internal/publisher"
	"newsportal/internal/repository"
	"newsportal/internal/services"
	"newsportal/internal/upload"
	"newsportal/internal/utils"
	"newsportal/routes"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Newsportal API"
	docs.SwaggerInfo.Description = "Bilingual English and Kannada news portal for students."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var articleRepo repository.ArticleRepository
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, trending cache disabled")
			articleRepo = repository.NewArticleRepository(db, log)
		} else {
			defer redisClient.Close()
			articleRepo = repository.NewCachedArticleRepository(db, redisClient, cfg.Redis.TrendingTTL, log)
			log.Info("Trending cache enabled")
		}
	} else {
		articleRepo = repository.NewArticleRepository(db, log)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	curationRepos := services.CurationRepositories{
		Articles:        articleRepo,
		Submissions:     repository.NewSubmissionRepository(db),
		RawArticles:     repository.NewRawArticleRepository(db),
		WordSubmissions: repository.NewWordSubmissionRepository(db),
	}

	var notifier publisher.Notifier = publisher.Nop{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.EventsRoutingKey,
		}, log)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, publication events disabled")
		} else {
			defer rabbit.Close()
			notifier = rabbit
		}
	}

	store, err := upload.NewImageStore(cfg.Upload)
	if err != nil {
		log.Fatalf("Failed to configure image storage: %v", err)
	}
	uploader := upload.NewUploader(upload.Policies(cfg.Upload), store, upload.Compressor{
		MaxWidth:    cfg.Upload.MaxImageWidth,
		JPEGQuality: cfg.Upload.JPEGQuality,
	}, log)
	var localUploadDir string
	if local, ok := store.(*upload.LocalStore); ok {
		localUploadDir = local.Dir()
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	strategy, err := services.NewVerificationStrategy(cfg.Auth.VerificationMethod, cfg.Auth.OTPTTL, cfg.Auth.LinkTTL, cfg.Auth.FrontendURL)
	if err != nil {
		log.Fatalf("Failed to configure email verification: %v", err)
	}

	authService := services.NewAuthService(userRepo, strategy, utils.NewMailer(cfg.Mail, log), tokens, cfg.Auth.ResetTTL, cfg.Auth.FrontendURL, log)
	articleService := services.NewArticleService(articleRepo, notifier, log)
	curationService := services.NewCurationService(database.NewTransactionManager(db), curationRepos, extract.NewExtractor(extract.DocxConverter{MaxBytes: 8 * cfg.Upload.DocumentMaxBytes}), notifier, log)

	// Initialize controllers
	articleController := controllers.NewArticleController(articleRepo, articleService, userRepo, log)
	userController := controllers.NewUserController(authService, userRepo, articleRepo, log)
	submissionController := controllers.NewSubmissionController(curationService, log)
	wordSubmissionController := controllers.NewWordSubmissionController(curationService, uploader, log)
	uploadController := controllers.NewUploadController(uploader, log)
	eventController := controllers.NewEventController(eventRepo, log)
	healthController := controllers.NewHealthController(func() error { return database.Ping(db) }, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Newsportal API is running",
			"version": "1.0.0",
		})
	})

	authMiddleware := middleware.AuthMiddleware(tokens, userRepo, log)
	routes.RegisterArticleRoutes(router, articleController, authMiddleware)
	routes.RegisterUserRoutes(router, userController, authMiddleware)
	routes.RegisterSubmissionRoutes(router, submissionController, authMiddleware)
	routes.RegisterWordSubmissionRoutes(router, wordSubmissionController, authMiddleware)
	routes.RegisterUploadRoutes(router, uploadController, authMiddleware, localUploadDir)
	routes.RegisterEventRoutes(router, eventController, authMiddleware)
	routes.RegisterHealthRoutes(router, healthController)
	routes.RegisterSwaggerRoutes(router)

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Server.Port)
		log.Infof("API Documentation: http://localhost:%s/swagger/index.html", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
