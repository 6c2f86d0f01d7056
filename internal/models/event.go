package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"not null"`
	Description  string    `gorm:"not null"`
	Date         time.Time `gorm:"type:date;not null"`
	Time         string    `gorm:"type:varchar(5);not null"`
	Location     string    `gorm:"not null"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Category     Category
	Participants []Participant `gorm:"many2many:event_participants;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

// Today is the current date at UTC midnight, the reference point for the
// date predicates below and for the dashboard counters.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// IsUpcoming reports whether the event is today or later.
func (event *Event) IsUpcoming() bool {
	return !event.Date.Before(Today())
}

func (event *Event) IsPast() bool {
	return event.Date.Before(Today())
}

func (event *Event) IsToday() bool {
	return event.Date.Equal(Today())
}
