package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bokasafn/internal/app"
	"bokasafn/internal/config"
	"bokasafn/internal/platform/postgres"
	"bokasafn/internal/platform/s3"
	"bokasafn/internal/repository"
	httptransport "bokasafn/internal/transport/http"
)

type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Postgres *gorm.DB

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger, err := newLogger(cfg.App.GinMode)
	if err != nil {
		return nil, fmt.Errorf("build logger failed: %w", err)
	}

	db, err := postgres.New(ctx, cfg.Postgres.URL, cfg.Postgres.MigrationsDir, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Postgres:  db,
		StartedAt: time.Now(),
	}, nil
}

// RouterDeps wires the gorm repositories into the service layer. The image
// uploader is optional: without a configured bucket the profile upload
// endpoint reports an upload failure instead of refusing to boot.
func (a *App) RouterDeps(ctx context.Context) httptransport.Deps {
	userRepo := repository.NewUserRepository(a.Postgres)
	bookRepo := repository.NewBookRepository(a.Postgres)
	categoryRepo := repository.NewCategoryRepository(a.Postgres)
	readRepo := repository.NewReadRepository(a.Postgres)

	var uploader app.ImageUploader
	if a.Config.S3.Bucket != "" {
		client, err := s3.New(ctx, a.Config.S3)
		if err != nil {
			a.Logger.Warn("image host unavailable, profile uploads will fail", zap.Error(err))
		} else {
			uploader = client
		}
	} else {
		a.Logger.Warn("no image host bucket configured, profile uploads will fail")
	}

	tokenLifetime := time.Duration(a.Config.Auth.TokenLifetimeSeconds) * time.Second
	return httptransport.Deps{
		JWTSecret:  a.Config.Auth.JWTSecret,
		Auth:       app.NewAuthService(userRepo, a.Config.Auth.JWTSecret, tokenLifetime),
		Users:      app.NewUserService(userRepo),
		Books:      app.NewBookService(bookRepo, categoryRepo),
		Categories: app.NewCategoryService(categoryRepo),
		Reads:      app.NewReadService(readRepo),
		Images:     app.NewImageService(userRepo, uploader),
		UserLoader: userRepo,
	}
}

func (a *App) Close() error {
	var closeErr error
	if a.Postgres != nil {
		sqlDB, err := a.Postgres.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return closeErr
}

func newLogger(ginMode string) (*zap.Logger, error) {
	if ginMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
