package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"melodia/internal/handlers"
	"melodia/internal/middleware"
	"melodia/internal/models"
	"melodia/internal/repositories"
	"melodia/internal/services"
	"melodia/pkg/rabbitmq"
	"melodia/pkg/tokenstore"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	_ = godotenv.Load() // .env is optional; real env vars win either way
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=melodia port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASS", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour
	bcryptCost := viper.GetInt("BCRYPT_COST")

	// --- Database ---
	// TranslateError turns driver constraint failures into the gorm
	// sentinels the repositories classify on.
	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Artist{},
		&models.Album{},
		&models.Song{},
	); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	// --- Token revocation store (optional) ---
	var revoked *tokenstore.Store
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		revoked = tokenstore.New(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, token revocation is disabled")
	}

	// --- RabbitMQ client (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			logrus.Fatalf("failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		logrus.Warn("RABBITMQ_URL not set, catalog events are disabled")
	}

	// --- Repositories ---
	roleRepo := repositories.NewGORMRoleRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	artistRepo := repositories.NewGORMArtistRepository(db)
	albumRepo := repositories.NewGORMAlbumRepository(db)
	songRepo := repositories.NewGORMSongRepository(db)

	// --- Services ---
	roleService := services.NewRoleService(roleRepo)
	userService := services.NewUserService(userRepo, bcryptCost)
	artistService := services.NewArtistService(artistRepo, mqClient)
	albumService := services.NewAlbumService(albumRepo, mqClient)
	songService := services.NewSongService(songRepo, mqClient)
	authService := services.NewAuthService(userRepo, revoked, jwtSecret, tokenTTL, bcryptCost)

	// --- Handlers ---
	roleHandler := handlers.NewRoleHandler(roleService)
	userHandler := handlers.NewUserHandler(userService)
	artistHandler := handlers.NewArtistHandler(artistService)
	albumHandler := handlers.NewAlbumHandler(albumService)
	songHandler := handlers.NewSongHandler(songService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New())

	// Mutating routes require a bearer token; reads and the auth routes
	// themselves are public.
	authGuard := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(app, authGuard)
	roleHandler.RegisterRoutes(app, authGuard)
	userHandler.RegisterRoutes(app, authGuard)
	artistHandler.RegisterRoutes(app, authGuard)
	albumHandler.RegisterRoutes(app, authGuard)
	songHandler.RegisterRoutes(app, authGuard)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("server listening on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			logrus.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	logrus.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("error during shutdown: %v", err)
	}
	logrus.Info("server stopped")
}
