package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"communitycalendar/config"
	_ "communitycalendar/docs"
	jwtauth "communitycalendar/internal/adapters/auth"
	"communitycalendar/internal/adapters/upload"
	delivery "communitycalendar/internal/delivery/http"
	"communitycalendar/internal/delivery/http/controllers"
	"communitycalendar/internal/delivery/http/middleware"
	"communitycalendar/internal/domain"
	"communitycalendar/internal/repository/postgres"
	"communitycalendar/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const serviceTimeout = 5 * time.Second

// @title Community Calendar API
// @version 1.0
// @description Event calendar for community meetups. Admins manage events; visitors browse them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)

	hasher := jwtauth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := jwtauth.NewJWTManager(cfg.JWTSecret)
	fileStore := upload.NewDiskStore(cfg.UploadDir)

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry)
	uploadService := services.NewUploadService(fileStore)

	if err := seedAdmin(ctx, logger, userRepo, hasher, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewAuthController(logger, authService),
		controllers.NewUploadController(logger, uploadService),
		tokens,
		cfg.UploadDir,
		cfg.StaticDir,
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// seedAdmin creates the initial admin account when the users table is empty.
// Skipped when ADMIN_EMAIL or ADMIN_PASSWORD is not configured.
func seedAdmin(ctx context.Context, logger *slog.Logger, users domain.UserRepository, hasher domain.PasswordHasher, email, password string) error {
	if email == "" || password == "" {
		logger.Warn("admin credentials not configured, skipping seed")
		return nil
	}

	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	if err := users.Create(ctx, &domain.User{
		Email:        email,
		Name:         "Admin",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Info("seeded initial admin account", "email", email)
	return nil
}
