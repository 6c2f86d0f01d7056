package server

import (
	"fmt"
	"os"

	"github.com/adriantr/eventhub/config"
	"github.com/adriantr/eventhub/internal/handlers"
	"github.com/adriantr/eventhub/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/dashboard", handlers.Dashboard)

	events := r.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.GET("/new", handlers.NewEvent)
		events.POST("/new", handlers.CreateEvent)
		events.GET("/:id", handlers.GetEvent)
		events.GET("/:id/edit", handlers.EditEvent)
		events.POST("/:id/edit", handlers.UpdateEvent)
		events.GET("/:id/delete", handlers.ConfirmDeleteEvent)
		events.POST("/:id/delete", handlers.DeleteEvent)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", handlers.ListCategories)
		categories.GET("/new", handlers.NewCategory)
		categories.POST("/new", handlers.CreateCategory)
		categories.GET("/:id", handlers.GetCategory)
		categories.GET("/:id/edit", handlers.EditCategory)
		categories.POST("/:id/edit", handlers.UpdateCategory)
		categories.GET("/:id/delete", handlers.ConfirmDeleteCategory)
		categories.POST("/:id/delete", handlers.DeleteCategory)
	}

	participants := r.Group("/participants")
	{
		participants.GET("", handlers.ListParticipants)
		participants.GET("/new", handlers.NewParticipant)
		participants.POST("/new", handlers.CreateParticipant)
		participants.GET("/:id", handlers.GetParticipant)
		participants.GET("/:id/edit", handlers.EditParticipant)
		participants.POST("/:id/edit", handlers.UpdateParticipant)
		participants.GET("/:id/delete", handlers.ConfirmDeleteParticipant)
		participants.POST("/:id/delete", handlers.DeleteParticipant)
	}
}
