package forms

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

// EventValues holds the parsed, normalized fields of a valid submission.
type EventValues struct {
	Name        string
	Description string
	Date        time.Time
	Time        string
	Location    string
	CategoryID  uuid.UUID
}

func (f EventForm) Validate(db *gorm.DB) (EventValues, Errors, error) {
	errs := Errors{}
	values := EventValues{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
	}

	if values.Name == "" {
		errs.Add("name", requiredMessage)
	} else if utf8.RuneCountInString(values.Name) < 3 {
		errs.Add("name", "Event name must be at least 3 characters long.")
	}

	if values.Description == "" {
		errs.Add("description", requiredMessage)
	}

	if f.Date == "" {
		errs.Add("date", requiredMessage)
	} else if date, err := time.ParseInLocation(DateLayout, f.Date, time.UTC); err != nil {
		errs.Add("date", invalidDateMessage)
	} else if date.Before(models.Today()) {
		errs.Add("date", "Event date cannot be in the past.")
	} else {
		values.Date = date
	}

	if f.Time == "" {
		errs.Add("time", requiredMessage)
	} else if parsed, err := time.Parse(TimeLayout, f.Time); err != nil {
		errs.Add("time", invalidTimeMessage)
	} else {
		values.Time = parsed.Format(TimeLayout)
	}

	if values.Location == "" {
		errs.Add("location", requiredMessage)
	} else if utf8.RuneCountInString(values.Location) < 3 {
		errs.Add("location", "Location must be at least 3 characters long.")
	}

	if f.Category == "" {
		errs.Add("category", requiredMessage)
	} else if id, err := uuid.Parse(f.Category); err != nil {
		errs.Add("category", invalidChoiceMessage)
	} else {
		var category models.Category
		if err := db.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Add("category", invalidChoiceMessage)
			} else {
				return values, nil, err
			}
		} else {
			values.CategoryID = category.ID
		}
	}

	return values, errs, nil
}
