package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Participant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Events    []Event   `gorm:"many2many:event_participants;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (participant *Participant) BeforeCreate(tx *gorm.DB) (err error) {
	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}
	return
}

// EventCount is the number of events the participant is registered for.
// Meaningful once Events has been preloaded.
func (participant *Participant) EventCount() int {
	return len(participant.Events)
}
