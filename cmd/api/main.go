package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/notecart/backend/internal/config"
	"github.com/user/notecart/backend/internal/database"
	"github.com/user/notecart/backend/internal/handler"
	"github.com/user/notecart/backend/internal/middleware"
	"github.com/user/notecart/backend/internal/repository"
	"github.com/user/notecart/backend/internal/service"
	"github.com/user/notecart/backend/pkg/jwt"
)

func main() {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize JWT manager
	jwtManager := jwt.NewManager(cfg.JWTSecret)

	// Select the storage backend once at startup: Postgres when configured,
	// the file-backed store otherwise.
	var (
		listStore     repository.ListStore
		userDirectory repository.UserDirectory
		userRepo      *repository.UserRepository
	)

	if cfg.HasDatabase() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		userRepo = repository.NewUserRepository(db)
		listStore = repository.NewListRepository(db)
		userDirectory = userRepo
	} else {
		log.Printf("DATABASE_URL not set, using file-backed store under %s", cfg.DataDir)
		fileStore, err := repository.NewFileListStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open file store: %v", err)
		}
		listStore = fileStore
		// No identity directory in file mode: share targets never resolve.
		userDirectory = repository.NewMemoryUserDirectory()
	}

	// Initialize services
	listService := service.NewListService(listStore, userDirectory)
	shareService := service.NewShareService(listStore, userDirectory)

	// Initialize handlers
	listHandler := handler.NewListHandler(listService)
	shareHandler := handler.NewShareHandler(shareService)

	// Set up Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// Rate limiter: 100 requests per minute
	rateLimiter := middleware.NewRateLimiter(100, time.Minute)
	r.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "app": "notecart"})
	})

	// Unauthenticated share-link projection
	r.GET("/api/lists/:id/public", listHandler.GetPublic)

	// Auth endpoints need the users table, so they exist only with a database
	if userRepo != nil {
		authService := service.NewAuthService(userRepo, jwtManager)
		userService := service.NewUserService(userRepo)
		authHandler := handler.NewAuthHandler(authService, userService)

		r.POST("/api/auth/google", authHandler.GoogleLogin)
		r.POST("/api/auth/refresh", authHandler.Refresh)

		me := r.Group("/api/me", middleware.AuthMiddleware(jwtManager))
		me.GET("", authHandler.Me)
		me.PUT("", authHandler.UpdateMe)
	}

	// Authenticated list endpoints
	lists := r.Group("/api/lists", middleware.AuthMiddleware(jwtManager))
	lists.GET("", listHandler.List)
	lists.POST("", listHandler.Create)
	lists.GET("/shared", listHandler.Shared)
	lists.GET("/:id", listHandler.Get)
	lists.PUT("/:id", listHandler.Update)
	lists.DELETE("/:id", listHandler.Delete)

	lists.POST("/:id/share", shareHandler.Share)
	lists.DELETE("/:id/share", shareHandler.Unshare)
	lists.GET("/:id/share", shareHandler.SharedUsers)

	lists.POST("/:id/items", listHandler.AddItem)
	lists.PUT("/:id/items/:itemId", listHandler.UpdateItem)
	lists.POST("/:id/items/:itemId/quantity", listHandler.AdjustItemQuantity)
	lists.DELETE("/:id/items/:itemId", listHandler.RemoveItem)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting NoteCart API server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
