package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/config"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/handler"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/middleware"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/shared/maps"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting mia-logistics-manager service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	grid, err := initGrid(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to init grid backend", zap.Error(err))
	}
	zapLogger.Info("Grid backend ready", zap.String("backend", cfg.Grid.Backend))

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, distance cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	store := sheetstore.New(grid)
	repos := repository.NewRepositories(store)
	if err := repos.Initialize(context.Background()); err != nil {
		zapLogger.Fatal("Failed to initialize sheets", zap.Error(err))
	}
	distance := maps.NewDistanceClient(
		cfg.Distance.EndpointURL,
		cfg.Distance.Timeout,
		rdb,
		cfg.Distance.CacheTTL,
		zapLogger,
	)
	services := service.NewServices(repos, distance, zapLogger)
	handlers := handler.NewHandlers(services, store)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
	})

	api := router.Group("/api")
	if cfg.JWT.Secret != "" {
		api.Use(middleware.JWTAuth(cfg.JWT.Secret))
	}
	handler.RegisterRoutes(api, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

// initGrid selects the cell backend: the Google Sheets API in production,
// or an embedded sqlite cell table for credential-free local runs.
func initGrid(cfg *config.Config) (sheets.Grid, error) {
	switch cfg.Grid.Backend {
	case "sqlite":
		return sheets.NewSQLGrid(cfg.Grid.SQLitePath)
	case "sheets", "":
		if cfg.Sheets.SpreadsheetID == "" {
			return nil, fmt.Errorf("GOOGLE_SPREADSHEET_ID is required for the sheets backend")
		}
		return sheets.NewClient(
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.ServiceAccountEmail,
			cfg.Sheets.PrivateKey,
		)
	default:
		return nil, fmt.Errorf("unknown grid backend %q", cfg.Grid.Backend)
	}
}
