package forms

import (
	"fmt"
	"strings"
	"testing"

	"github.com/adriantr/eventhub/config"
	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.Category{}, &models.Event{}, &models.Participant{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := config.CreateUniqueIndexes(db); err != nil {
		t.Fatalf("failed to create unique indexes: %v", err)
	}

	return db
}

func hasError(errs Errors, field, message string) bool {
	for _, m := range errs[field] {
		if m == message {
			return true
		}
	}
	return false
}

func TestCategoryFormValidate(t *testing.T) {
	db := newTestDB(t)
	tech := models.Category{Name: "Tech", Description: "Technology events"}
	if err := db.Create(&tech).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	t.Run("trims and accepts a new name", func(t *testing.T) {
		form, errs, err := CategoryForm{Name: "  Music  ", Description: " Concerts "}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !errs.Empty() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if form.Name != "Music" || form.Description != "Concerts" {
			t.Errorf("normalized form = %+v", form)
		}
	})

	t.Run("rejects a short name", func(t *testing.T) {
		_, errs, err := CategoryForm{Name: " A ", Description: "x"}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "name", "Category name must be at least 2 characters long.") {
			t.Errorf("missing short-name error, got %v", errs)
		}
	})

	t.Run("rejects a duplicate name regardless of case", func(t *testing.T) {
		_, errs, err := CategoryForm{Name: "tech", Description: "x"}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "name", "A category with this name already exists.") {
			t.Errorf("missing duplicate-name error, got %v", errs)
		}
	})

	t.Run("allows a category to keep its own name", func(t *testing.T) {
		_, errs, err := CategoryForm{Name: "Tech", Description: "x"}.Validate(db, tech.ID)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !errs.Empty() {
			t.Errorf("self-edit should pass, got %v", errs)
		}
	})

	t.Run("requires a description", func(t *testing.T) {
		_, errs, err := CategoryForm{Name: "Music", Description: "   "}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "description", "This field is required.") {
			t.Errorf("missing required-description error, got %v", errs)
		}
	})
}

func TestEventFormValidate(t *testing.T) {
	db := newTestDB(t)
	tech := models.Category{Name: "Tech", Description: "Technology events"}
	if err := db.Create(&tech).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	today := models.Today()
	tomorrow := today.AddDate(0, 0, 1).Format(DateLayout)
	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)

	t.Run("accepts a valid submission", func(t *testing.T) {
		values, errs, err := EventForm{
			Name:        " Conf ",
			Description: "A conference",
			Date:        tomorrow,
			Time:        "10:00",
			Location:    "Hall A",
			Category:    tech.ID.String(),
		}.Validate(db)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !errs.Empty() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if values.Name != "Conf" || values.Time != "10:00" || values.CategoryID != tech.ID {
			t.Errorf("normalized values = %+v", values)
		}
		if values.Date.Format(DateLayout) != tomorrow {
			t.Errorf("Date = %v, want %s", values.Date, tomorrow)
		}
	})

	t.Run("rejects a past date", func(t *testing.T) {
		_, errs, err := EventForm{
			Name:        "Conf",
			Description: "A conference",
			Date:        yesterday,
			Time:        "10:00",
			Location:    "Hall A",
			Category:    tech.ID.String(),
		}.Validate(db)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "date", "Event date cannot be in the past.") {
			t.Errorf("missing past-date error, got %v", errs)
		}
	})

	t.Run("accepts today's date", func(t *testing.T) {
		_, errs, err := EventForm{
			Name:        "Conf",
			Description: "A conference",
			Date:        today.Format(DateLayout),
			Time:        "10:00",
			Location:    "Hall A",
			Category:    tech.ID.String(),
		}.Validate(db)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if len(errs["date"]) > 0 {
			t.Errorf("today must not count as past, got %v", errs)
		}
	})

	t.Run("collects every failing field", func(t *testing.T) {
		_, errs, err := EventForm{
			Name:        "Go",
			Description: "x",
			Date:        yesterday,
			Time:        "25:99",
			Location:    "A",
			Category:    tech.ID.String(),
		}.Validate(db)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		for _, field := range []string{"name", "date", "time", "location"} {
			if len(errs[field]) == 0 {
				t.Errorf("expected an error for %s, got %v", field, errs)
			}
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, errs, err := EventForm{
			Name:        "Conf",
			Description: "A conference",
			Date:        tomorrow,
			Time:        "10:00",
			Location:    "Hall A",
			Category:    uuid.NewString(),
		}.Validate(db)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if len(errs["category"]) == 0 {
			t.Errorf("missing invalid-category error, got %v", errs)
		}
	})
}

func TestParticipantFormValidate(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&models.Participant{Name: "Jane", Email: "a@b.com"}).Error; err != nil {
		t.Fatalf("failed to seed participant: %v", err)
	}

	t.Run("normalizes the email", func(t *testing.T) {
		values, errs, err := ParticipantForm{Name: "John Doe", Email: "  John.DOE@Example.COM "}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !errs.Empty() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if values.Email != "john.doe@example.com" {
			t.Errorf("Email = %q, want %q", values.Email, "john.doe@example.com")
		}
	})

	t.Run("rejects a duplicate email regardless of case", func(t *testing.T) {
		_, errs, err := ParticipantForm{Name: "John", Email: "A@B.com"}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "email", "A participant with this email already exists.") {
			t.Errorf("missing duplicate-email error, got %v", errs)
		}
	})

	t.Run("rejects a name with digits", func(t *testing.T) {
		_, errs, err := ParticipantForm{Name: "John 2nd", Email: "j2@b.com"}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if !hasError(errs, "name", "Name should only contain letters and spaces.") {
			t.Errorf("missing letters-only error, got %v", errs)
		}
	})

	t.Run("accepts letters and spaces", func(t *testing.T) {
		_, errs, err := ParticipantForm{Name: "Mary Jane Watson", Email: "mj@b.com"}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if len(errs["name"]) > 0 {
			t.Errorf("unexpected name errors: %v", errs)
		}
	})

	t.Run("rejects registration for a past event", func(t *testing.T) {
		category := models.Category{Name: "Tech" + t.Name(), Description: "x"}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("failed to seed category: %v", err)
		}
		past := models.Event{
			Name:        "Old Conf",
			Description: "x",
			Date:        models.Today().AddDate(0, 0, -7),
			Time:        "10:00",
			Location:    "Hall A",
			CategoryID:  category.ID,
		}
		if err := db.Create(&past).Error; err != nil {
			t.Fatalf("failed to seed event: %v", err)
		}

		_, errs, err := ParticipantForm{
			Name:     "John",
			Email:    "jp@b.com",
			EventIDs: []string{past.ID.String()},
		}.Validate(db, uuid.Nil)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if len(errs["events"]) == 0 {
			t.Errorf("past event must not be selectable, got %v", errs)
		}
	})
}

func TestEventSearchFormValidate(t *testing.T) {
	t.Run("parses the supplied filters", func(t *testing.T) {
		search, errs := EventSearchForm{
			SearchQuery: " hall ",
			DateFrom:    "2030-01-01",
			DateTo:      "2030-02-01",
		}.Validate()
		if !errs.Empty() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if search.Query != "hall" || search.DateFrom == nil || search.DateTo == nil {
			t.Errorf("search = %+v", search)
		}
	})

	t.Run("rejects a reversed date range", func(t *testing.T) {
		_, errs := EventSearchForm{DateFrom: "2030-02-01", DateTo: "2030-01-01"}.Validate()
		if !hasError(errs, "date_from", "Start date cannot be after end date.") {
			t.Errorf("missing reversed-range error, got %v", errs)
		}
	})

	t.Run("leaves absent filters untouched", func(t *testing.T) {
		search, errs := EventSearchForm{}.Validate()
		if !errs.Empty() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if search.Query != "" || search.CategoryID != uuid.Nil || search.DateFrom != nil || search.DateTo != nil {
			t.Errorf("empty form must produce a zero filter set, got %+v", search)
		}
	})
}
