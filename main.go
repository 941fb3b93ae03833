package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Warn().Msg("no .env file found, relying on process environment")
	}

	// Fail fast on required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatal().Str("var", envVar).Msg("required environment variable is not set")
		}
	}

	utils.InitValidator()
}

type dependencies struct {
	userService  *usecase.UserService
	notesService *usecase.NotesService
	tokenService *services.TokenService
	redisClient  *redis.Client
}

func setupRouter(deps *dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", func(c *gin.Context) {
				handler.SignupHandler(c, deps.userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, deps.userService, deps.tokenService)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	if deps.redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(deps.redisClient, 10, time.Second))
	}
	protected.Use(middleware.AuthMiddleware(deps.tokenService))
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, deps.notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, deps.notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, deps.notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, deps.notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, deps.notesService)
			})
			notes.POST("/:id/share", func(c *gin.Context) {
				handler.ShareNoteHandler(c, deps.notesService)
			})
		}

		protected.GET("/search", func(c *gin.Context) {
			handler.SearchNotesHandler(c, deps.notesService)
		})
	}

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "notes-api").
		Logger()

	ctx := context.Background()

	// Storage
	dbConfig := config.LoadDatabaseConfig()
	mongoClient, err := repository.NewMongoClient(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	if err := repository.SetupIndexes(mongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Services, constructed once and passed by reference
	tokenTTL := time.Duration(utils.GetEnvAsInt("JWT_EXPIRATION_TIME", 3600)) * time.Second
	tokenService := services.NewTokenService(os.Getenv("JWT_SECRET_KEY"), tokenTTL)

	userRepo := repository.GetUserRepo(mongoClient, dbConfig.DatabaseName)
	notesRepo := repository.GetNotesRepo(mongoClient, dbConfig.DatabaseName)

	deps := &dependencies{
		userService:  usecase.NewUserService(userRepo),
		notesService: usecase.NewNotesService(notesRepo),
		tokenService: tokenService,
	}

	// Rate limiting is enabled when a redis instance is configured
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		deps.redisClient = redis.NewClient(opts)
		if err := deps.redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, rate limiting will fail open")
		}
	}

	utils.StartSystemMetrics(15 * time.Second)

	router := setupRouter(deps)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", serverAddr).Msg("server starting")
	if err := router.Run(serverAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
