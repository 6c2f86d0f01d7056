package forms

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantForm struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	EventIDs []string `json:"event_ids"`
}

// ParticipantValues holds the normalized fields of a valid submission. Events
// are the resolved registration choices; only upcoming events are selectable.
type ParticipantValues struct {
	Name   string
	Email  string
	Events []models.Event
}

func (f ParticipantForm) Validate(db *gorm.DB, editing uuid.UUID) (ParticipantValues, Errors, error) {
	errs := Errors{}
	values := ParticipantValues{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.ToLower(strings.TrimSpace(f.Email)),
	}

	if values.Name == "" {
		errs.Add("name", requiredMessage)
	} else {
		if utf8.RuneCountInString(values.Name) < 2 {
			errs.Add("name", "Name must be at least 2 characters long.")
		}
		if !lettersAndSpacesOnly(values.Name) {
			errs.Add("name", "Name should only contain letters and spaces.")
		}
	}

	if values.Email == "" {
		errs.Add("email", requiredMessage)
	} else if addr, err := mail.ParseAddress(values.Email); err != nil || addr.Address != values.Email {
		errs.Add("email", invalidEmailMessage)
	} else {
		taken, err := participantEmailTaken(db, values.Email, editing)
		if err != nil {
			return values, nil, err
		}
		if taken {
			errs.Add("email", "A participant with this email already exists.")
		}
	}

	events, ok, err := resolveEventChoices(db, f.EventIDs)
	if err != nil {
		return values, nil, err
	}
	if !ok {
		errs.Add("events", invalidChoiceMessage)
	} else {
		values.Events = events
	}

	return values, errs, nil
}

func lettersAndSpacesOnly(name string) bool {
	for _, r := range strings.ReplaceAll(name, " ", "") {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func participantEmailTaken(db *gorm.DB, email string, editing uuid.UUID) (bool, error) {
	query := db.Model(&models.Participant{}).Where("LOWER(email) = ?", email)
	if editing != uuid.Nil {
		query = query.Where("id <> ?", editing)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveEventChoices loads the selected events, accepting only ids that
// name an upcoming event. ok is false when any id is unknown, malformed or
// refers to a past event.
func resolveEventChoices(db *gorm.DB, rawIDs []string) ([]models.Event, bool, error) {
	if len(rawIDs) == 0 {
		return nil, true, nil
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, false, nil
		}
		ids = append(ids, id)
	}

	var events []models.Event
	err := db.Where("id IN ?", ids).Where("date >= ?", models.Today()).Find(&events).Error
	if err != nil {
		return nil, false, err
	}
	if len(events) != len(ids) {
		return nil, false, nil
	}
	return events, true, nil
}
