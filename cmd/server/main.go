package main

import (
	"context"

	"github.com/Callymags/task-manager-api/internal/config"
	"github.com/Callymags/task-manager-api/internal/constants"
	"github.com/Callymags/task-manager-api/internal/database"
	"github.com/Callymags/task-manager-api/internal/handlers"
	"github.com/Callymags/task-manager-api/internal/logger"
	"github.com/Callymags/task-manager-api/internal/middleware"
	"github.com/Callymags/task-manager-api/internal/repository"
	"github.com/Callymags/task-manager-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to the document store
	ctx := context.Background()
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from document store")
		}
	}()

	db := client.Database(cfg.MongoDBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Session middleware: signed cookie store by default, Redis when configured
	store, err := sessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session store")
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	authService := services.NewAuthService(userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, categoryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// Public routes
	r.GET("/", taskHandler.List)
	r.GET("/tasks", taskHandler.List)
	r.POST("/search", taskHandler.Search)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/categories", categoryHandler.List)

	// Authenticated routes
	auth := r.Group("", middleware.RequireAuth())
	{
		auth.GET("/profile/:username", authHandler.Profile)
		auth.POST("/profile/:username", authHandler.Profile)

		auth.GET("/tasks/new", taskHandler.NewForm)
		auth.POST("/tasks/new", taskHandler.Create)
		auth.GET("/tasks/:id/edit", taskHandler.EditForm)
		auth.POST("/tasks/:id/edit", taskHandler.Update)
		auth.GET("/tasks/:id/delete", taskHandler.Delete)

		auth.GET("/categories/new", categoryHandler.NewForm)
		auth.POST("/categories/new", categoryHandler.Create)
		auth.GET("/categories/:id/edit", categoryHandler.EditForm)
		auth.POST("/categories/:id/edit", categoryHandler.Update)
		auth.GET("/categories/:id/delete", categoryHandler.Delete)
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func sessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisAddr != "" {
		return redisStore.NewStore(10, "tcp", cfg.RedisAddr, "", "", []byte(cfg.SessionSecret))
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	return store, nil
}
