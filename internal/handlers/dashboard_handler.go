package handlers

import (
	"log"
	"net/http"

	"github.com/adriantr/eventhub/internal/helpers"
	"github.com/adriantr/eventhub/internal/models"
	"github.com/adriantr/eventhub/internal/queries"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard serves the aggregate counters and a filtered event list. The
// filter parameter selects all, upcoming or past events, bounded to the
// first 10 by (date, time). Requests marked as XMLHttpRequest get only the
// denormalized event summaries.
//
// A failing aggregate query degrades to zeroed stats instead of an error
// response; the failure is logged.
func Dashboard(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	filter := c.DefaultQuery("filter", "all")
	if filter != "upcoming" && filter != "past" {
		filter = "all"
	}

	stats, err := queries.Stats(gormDB)
	var events []models.Event
	if err == nil {
		events, err = queries.EventsByFilter(gormDB, filter)
	}
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		respondDashboard(c, queries.DashboardStats{}, nil, "all")
		return
	}

	respondDashboard(c, stats, events, filter)
}

func respondDashboard(c *gin.Context, stats queries.DashboardStats, events []models.Event, filter string) {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		summaries := make([]gin.H, 0, len(events))
		for _, event := range events {
			summaries = append(summaries, gin.H{
				"name":               event.Name,
				"date":               event.Date.Format("2006-01-02"),
				"time":               event.Time,
				"location":           event.Location,
				"category":           event.Category.Name,
				"participants_count": len(event.Participants),
				"url":                "/events/" + event.ID.String(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"events": summaries})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_participants": stats.TotalParticipants,
		"total_events":       stats.TotalEvents,
		"upcoming_events":    stats.UpcomingEvents,
		"past_events":        stats.PastEvents,
		"today_events":       stats.TodayEvents,
		"events":             events,
		"filter_type":        filter,
	})
}
