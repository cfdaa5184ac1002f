package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/farmstore/backend/internal/application/catalog"
	identityapp "github.com/farmstore/backend/internal/application/identity"
	inventoryapp "github.com/farmstore/backend/internal/application/inventory"
	preorderapp "github.com/farmstore/backend/internal/application/preorder"
	salesapp "github.com/farmstore/backend/internal/application/sales"
	"github.com/farmstore/backend/internal/infrastructure/auth"
	"github.com/farmstore/backend/internal/infrastructure/config"
	"github.com/farmstore/backend/internal/infrastructure/logger"
	"github.com/farmstore/backend/internal/infrastructure/persistence"
	"github.com/farmstore/backend/internal/infrastructure/session"
	"github.com/farmstore/backend/internal/infrastructure/storage"
	"github.com/farmstore/backend/internal/interfaces/http/handler"
	"github.com/farmstore/backend/internal/interfaces/http/middleware"
	"github.com/farmstore/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Session drafts live in Redis so tills survive server restarts
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	pingCancel()
	defer func() {
		_ = redisClient.Close()
	}()
	draftStore := session.NewRedisDraftStore(redisClient)
	supplyDrafts := draftStore.SupplyDrafts()
	saleDrafts := draftStore.SaleDrafts()

	// Object storage for product and category images
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.AccessKeyID != "" {
		s3Storage, err := storage.NewS3ObjectStorage(cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage not configured, using stub storage")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	writeOffRepo := persistence.NewGormWriteOffRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	preorderRepo := persistence.NewGormPreorderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	productService := catalogapp.NewProductService(productRepo, batchRepo, objectStorage, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, objectStorage, log)
	supplyService := inventoryapp.NewSupplyService(productRepo, supplyDrafts, txScope)
	writeOffService := inventoryapp.NewWriteOffService(productRepo, writeOffRepo, txScope)
	stockService := inventoryapp.NewStockService(batchRepo, productRepo, cfg.Ledger.ExpiryWindowDays)
	salesService := salesapp.NewSalesService(productRepo, saleRepo, saleDrafts, txScope)
	preorderService := preorderapp.NewService(preorderRepo, productRepo, userRepo, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(
		logger.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
	)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := &router.API{
		Auth:         handler.NewAuthHandler(authService),
		Product:      handler.NewProductHandler(productService),
		Category:     handler.NewCategoryHandler(categoryService),
		Supply:       handler.NewSupplyHandler(supplyService),
		Sales:        handler.NewSalesHandler(salesService),
		Stock:        handler.NewStockHandler(stockService),
		WriteOff:     handler.NewWriteOffHandler(writeOffService),
		Preorder:     handler.NewPreorderHandler(preorderService),
		Authenticate: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{JWTService: jwtService, Logger: log}),
	}
	router.NewRouter(engine).Register(api).Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
