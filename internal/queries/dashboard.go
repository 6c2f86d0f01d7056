package queries

import (
	"github.com/adriantr/eventhub/internal/models"
	"gorm.io/gorm"
)

// DashboardLimit bounds the event list shown on the dashboard.
const DashboardLimit = 10

type DashboardStats struct {
	TotalParticipants int64
	TotalEvents       int64
	UpcomingEvents    int64
	PastEvents        int64
	TodayEvents       []models.Event
}

// Stats gathers the dashboard counters plus today's events.
func Stats(db *gorm.DB) (DashboardStats, error) {
	var stats DashboardStats
	today := models.Today()

	if err := db.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Event{}).Count(&stats.TotalEvents).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Event{}).Where("date >= ?", today).Count(&stats.UpcomingEvents).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Event{}).Where("date < ?", today).Count(&stats.PastEvents).Error; err != nil {
		return stats, err
	}

	err := db.Preload("Category").Preload("Participants").
		Where("date = ?", today).Order("date, time").Find(&stats.TodayEvents).Error
	return stats, err
}

// EventsByFilter returns the dashboard's event subset: "upcoming", "past" or
// everything for any other value, first DashboardLimit rows by (date, time).
func EventsByFilter(db *gorm.DB, filter string) ([]models.Event, error) {
	query := db.Preload("Category").Preload("Participants")

	switch filter {
	case "upcoming":
		query = query.Where("date >= ?", models.Today())
	case "past":
		query = query.Where("date < ?", models.Today())
	}

	var events []models.Event
	err := query.Order("date, time").Limit(DashboardLimit).Find(&events).Error
	return events, err
}
