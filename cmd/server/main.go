package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appos "github.com/rangipos/terminal/internal/application/pos"
	"github.com/rangipos/terminal/internal/infrastructure/auth"
	"github.com/rangipos/terminal/internal/infrastructure/cache"
	"github.com/rangipos/terminal/internal/infrastructure/config"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
	"github.com/rangipos/terminal/internal/infrastructure/logger"
	"github.com/rangipos/terminal/internal/infrastructure/persistence"
	"github.com/rangipos/terminal/internal/interfaces/http/handler"
	"github.com/rangipos/terminal/internal/interfaces/http/middleware"
	"github.com/rangipos/terminal/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting rangipos terminal",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("register", cfg.Terminal.RegisterID),
		zap.String("port", cfg.App.Port),
	)

	// Local session storage
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Storage, gormLog)
	if err != nil {
		log.Fatal("Failed to open session storage", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing session storage", zap.Error(err))
		}
	}()
	sessionStore := persistence.NewGormSessionStore(db.DB, cfg.Terminal.RegisterID)

	// ERP backend client
	erp := erpclient.New(cfg.ERP.BaseURL, cfg.ERP.Token, cfg.ERP.TenantID,
		erpclient.WithTimeout(cfg.ERP.Timeout),
		erpclient.WithLogger(log),
	)

	summaryCache := cache.New(cfg, log)

	// Application services
	cartService := appos.NewCartService()
	sessionService := appos.NewSessionService(sessionStore, erp, summaryCache, cfg.Terminal.PreferredProfile, log)
	summaryService := appos.NewSummaryService(erp, summaryCache, log)
	checkoutService := appos.NewCheckoutService(cartService, sessionService, summaryService, erp, log)

	// Restore any session persisted earlier today
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 10*time.Second)
	if session, err := sessionService.Restore(restoreCtx); err != nil {
		log.Warn("Session restore failed", zap.Error(err))
	} else if session != nil {
		log.Info("Resumed cash session",
			zap.String("session_id", session.ID.String()),
			zap.String("pos_profile", session.POSProfileID))
	}
	cancelRestore()

	// HTTP surface
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsCfg))

	verifier := auth.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)
	engine.Use(middleware.CashierAuth(verifier))

	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "storage": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "register": cfg.Terminal.RegisterID})
	})

	router.NewRouter(engine).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewSessionHandler(sessionService)).
		Register(handler.NewSummaryHandler(summaryService, sessionService)).
		Register(handler.NewPaymentHandler(erp)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
