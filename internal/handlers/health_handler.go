package handlers

import (
	"net/http"

	"github.com/adriantr/eventhub/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthCheck runs one trivial read against the store. Any failure is
// reported as a structured error payload, never a panic.
func HealthCheck(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "database connection not found",
		})
		return
	}
	gormDB := db.(*gorm.DB)

	var count int64
	if err := gormDB.Model(&models.Event{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    "OK",
		"event_count": count,
		"debug":       gin.Mode() != gin.ReleaseMode,
	})
}
