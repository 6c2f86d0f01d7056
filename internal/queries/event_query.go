package queries

import (
	"strings"

	"github.com/adriantr/eventhub/internal/forms"
	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilteredEvents composes the event listing query: the base relation with
// category and participants preloaded, narrowed by whichever filters are
// set and ordered by (date, time). Callers paginate on the result.
func FilteredEvents(db *gorm.DB, search forms.EventSearch) *gorm.DB {
	query := db.Model(&models.Event{}).Preload("Category").Preload("Participants")

	if search.Query != "" {
		pattern := "%" + escapeLike(search.Query) + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(location) LIKE LOWER(?) ESCAPE '\\'", pattern, pattern)
	}
	if search.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", search.CategoryID)
	}
	if search.DateFrom != nil {
		query = query.Where("date >= ?", *search.DateFrom)
	}
	if search.DateTo != nil {
		query = query.Where("date <= ?", *search.DateTo)
	}

	return query.Order("date, time")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE metacharacters so a search term matches
// literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// UpcomingEvents lists the events still open for registration, ordered by
// (date, time). Used for the participant form's event choices.
func UpcomingEvents(db *gorm.DB) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("date >= ?", models.Today()).Order("date, time").Find(&events).Error
	return events, err
}

// EventByID loads one event with its category and participants.
func EventByID(db *gorm.DB, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := db.Preload("Category").Preload("Participants").Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
