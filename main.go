package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/clubcaddy/backend/clients"
	"github.com/clubcaddy/backend/controllers"
	"github.com/clubcaddy/backend/database"
	"github.com/clubcaddy/backend/kafka"
	"github.com/clubcaddy/backend/logger"
	"github.com/clubcaddy/backend/middleware"
	"github.com/clubcaddy/backend/repository"
	"github.com/clubcaddy/backend/routes"
	"github.com/clubcaddy/backend/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- 1. Infrastructure ---

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDBName); err != nil {
		zap.L().Fatal("Could not connect to MongoDB", zap.Error(err))
	}

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure indexes", zap.Error(err))
	}
	indexCancel()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Failed to parse REDIS_URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)

	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.ReservationTopic)
		zap.L().Info("Kafka producer initialized", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// --- 2. Dependency injection ---

	booqable := clients.NewBooqableClient(cfg.BooqableURL, cfg.BooqableKey, 15*time.Second)

	catalogueService := services.NewCatalogueService(booqable)
	availabilityService := services.NewAvailabilityService(booqable, catalogueService)

	favouriteRepo := repository.NewFavouriteRepository(database.DB)
	reservationRepo := repository.NewReservationRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	deletionLogRepo := repository.NewDeletionLogRepository(database.DB)
	tokenStore := repository.NewRedisLoginTokenStore(redisClient)

	favouriteService := services.NewFavouriteService(favouriteRepo, deletionLogRepo, catalogueService)
	reservationService := services.NewReservationService(reservationRepo, favouriteService, catalogueService, producer)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	var mailer services.Mailer
	if cfg.SMTPEmail != "" {
		mailer = services.NewSMTPMailer(services.SMTPConfig{
			Server:     cfg.SMTPServer,
			Port:       cfg.SMTPPort,
			Sender:     cfg.SMTPEmail,
			Password:   cfg.SMTPPassword,
			SenderName: cfg.SMTPSenderName,
		})
	}
	authService := services.NewAuthService(userRepo, tokenStore, tokenService, mailer, cfg.ClientURL)

	authController := controllers.NewAuthController(authService)
	clubController := controllers.NewClubController(catalogueService, availabilityService)
	courseController := controllers.NewCourseController(catalogueService, availabilityService)
	favouriteController := controllers.NewFavouriteController(favouriteService)
	reservationController := controllers.NewReservationController(reservationService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	authLimiter := middleware.NewRateLimiter(rate.Limit(1), 5, 10*time.Minute)
	routes.RegisterRoutes(r, tokenService, authLimiter,
		authController, clubController, courseController,
		favouriteController, reservationController)

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("ClubCaddy backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if producer != nil {
		producer.Close()
	}
	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Stopped gracefully")
}
