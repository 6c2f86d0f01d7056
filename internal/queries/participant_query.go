package queries

import (
	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParticipants returns one page of participants ordered by name with
// their event sets preloaded. A negative limit returns everything.
func ListParticipants(db *gorm.DB, offset, limit int) ([]models.Participant, error) {
	var participants []models.Participant
	err := db.Preload("Events").Order("name").Offset(offset).Limit(limit).Find(&participants).Error
	return participants, err
}

// ParticipantByID loads one participant with their events and each event's
// category.
func ParticipantByID(db *gorm.DB, id uuid.UUID) (*models.Participant, error) {
	var participant models.Participant
	err := db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("date, time")
	}).Preload("Events.Category").Where("id = ?", id).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}
