package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/config"
	"github.com/navbryce/next-blog-be/db"
	"github.com/navbryce/next-blog-be/db/inmemory"
	"github.com/navbryce/next-blog-be/db/migrations"
	"github.com/navbryce/next-blog-be/db/planetscale"
	"github.com/navbryce/next-blog-be/logging"
	"github.com/navbryce/next-blog-be/middleware"
	"github.com/navbryce/next-blog-be/routes"
	"github.com/navbryce/next-blog-be/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	storageType := flag.String("storage", "mysql", "Storage type (mysql or in-memory)")
	flag.Parse()

	cfg := config.MustLoad()
	logger := logging.New(cfg.AppEnv)

	database, err := openDatabase(cfg, *storageType)
	if err != nil {
		log.Fatal().Err(err).Str("storage", *storageType).Msg("failed to open the database")
	}
	defer database.Close()

	var images services.ImageStore
	if cfg.ImageBucket != "" {
		bucket, err := openImageBucket(context.Background(), cfg.ImageBucket)
		if err != nil {
			log.Fatal().Err(err).Msg("an error occurred while connecting to the image bucket")
		}
		images = bucket
	}

	tokens := services.NewTokenService(services.TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	}, database)
	sweeper, err := services.NewTokenSweeper(database, cfg.TokenSweepSchedule, logger)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.TokenSweepSchedule).Msg("invalid token sweep schedule")
	}
	sweeper.Start()
	defer sweeper.Stop()

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	housekeeping := cron.New()
	if _, err := housekeeping.AddFunc("@every 10m", limiter.Cleanup); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule rate limiter cleanup")
	}
	housekeeping.Start()
	defer housekeeping.Stop()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FEOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	routes.Register(r, &routes.Deps{
		Database: database,
		Tokens:   tokens,
		Images:   images,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", *storageType).Msg("starting web server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("error when attempting to run web server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openDatabase(cfg *config.Config, storageType string) (db.Database, error) {
	switch storageType {
	case "in-memory":
		return inmemory.New(), nil
	case "mysql":
		database, err := planetscale.GetDatabase(&planetscale.Options{
			DSN:      cfg.DSN(),
			MaxConns: cfg.DBMaxConns,
		})
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			if err := migrations.Apply(context.Background(), database.GetSQLDB()); err != nil {
				database.Close()
				return nil, err
			}
			log.Info().Int("count", migrations.Count()).Msg("migrations applied")
		}
		return database, nil
	}
	return nil, fmt.Errorf("unknown storage type %q", storageType)
}

func openImageBucket(ctx context.Context, bucketName string) (*services.StorageBucket, error) {
	if err := configureFirebaseCredentials(); err != nil {
		return nil, fmt.Errorf("configuring firebase credentials: %w", err)
	}
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase: %w", err)
	}
	return services.NewStorageBucket(ctx, app, bucketName)
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Info().Str("path", credentialsPath).Msg("credentials path detected in env")
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Info().Msg("credentials JSON string detected in env")
		if err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400); err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		if err := os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile); err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
