package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tareas/internal/auth"
	"tareas/internal/config"
	"tareas/internal/database"
	"tareas/internal/handler"
	"tareas/internal/i18n"
	"tareas/internal/logger"
	"tareas/internal/middleware"
	"tareas/internal/repository"
	"tareas/internal/throttle"
	"tareas/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	redis  *redis.Client
}

func Init(cfg *config.Config) (*Server, error) {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cfg.LogOutput
	logCfg.FilePath = cfg.LogFile
	if err := logger.Init(logCfg); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to database", "driver", cfg.DBDriver)

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg, db); err != nil {
			return nil, err
		}
		logger.Info("Database schema is up to date")
	}

	s := &Server{DB: db, Config: cfg}

	var limiter throttle.Limiter = throttle.Nop{}
	if cfg.RedisAddr != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = throttle.NewRedisLimiter(s.redis, "tareas:login", cfg.LoginMaxAttempts, cfg.LoginWindow)
		logger.Info("Login throttling enabled", "redis", cfg.RedisAddr)
	}

	gin.SetMode(cfg.GinMode)
	s.Engine, err = NewRouter(cfg, db, limiter)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewRouter wires repositories, handlers and middleware into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, limiter throttle.Limiter) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.Session(tokens, cfg.CookieSecure),
		i18n.Middleware(),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userRepo, tokens, limiter, cfg.CookieSecure)
	profileHandler := handler.NewProfileHandler(userRepo, tokens, cfg.CookieSecure)
	taskHandler := handler.NewTaskHandler(taskRepo, cfg.EnforceTaskOwnership)
	healthHandler := handler.NewHealthHandler(db)

	r.StaticFS("/static", web.Static())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", healthHandler.Check)

	// Public routes
	r.GET("/login/", authHandler.LoginPage)
	r.POST("/login/", authHandler.Login)
	r.GET("/registro/", authHandler.RegisterPage)
	r.POST("/registro/", authHandler.Register)
	r.POST("/i18n/", i18n.SetLanguage(cfg.CookieSecure))

	// Protected routes - require a session
	authorized := r.Group("/")
	authorized.Use(middleware.LoginRequired())
	{
		authorized.GET("/logout/", authHandler.Logout)
		authorized.POST("/logout/", authHandler.Logout)

		authorized.GET("/editar-perfil/:id/", profileHandler.Edit)
		authorized.POST("/editar-perfil/:id/", profileHandler.Update)

		// Task routes
		authorized.GET("/", taskHandler.List)
		authorized.GET("/tarea/:id", taskHandler.Detail)
		authorized.GET("/crear-tarea/", taskHandler.CreatePage)
		authorized.POST("/crear-tarea/", taskHandler.Create)
		authorized.GET("/editar-tarea/:id", taskHandler.EditPage)
		authorized.POST("/editar-tarea/:id", taskHandler.Update)
		authorized.GET("/eliminar-tarea/:id", taskHandler.DeletePage)
		authorized.POST("/eliminar-tarea/:id", taskHandler.Delete)
	}

	r.NoRoute(handler.NotFound)

	return r, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	s.Close()
	logger.Info("Server exited properly")
}

// Close releases the database pool and the redis client.
func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}
}
