package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate normalizes the submitted fields and returns them with any field
// errors. editing is the id of the category being updated, or uuid.Nil on
// create; it is excluded from the duplicate-name check so a record can be
// saved under its own name. The returned error is a store failure, not a
// validation failure.
func (f CategoryForm) Validate(db *gorm.DB, editing uuid.UUID) (CategoryForm, Errors, error) {
	errs := Errors{}
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)

	if f.Name == "" {
		errs.Add("name", requiredMessage)
	} else if utf8.RuneCountInString(f.Name) < 2 {
		errs.Add("name", "Category name must be at least 2 characters long.")
	} else {
		taken, err := categoryNameTaken(db, f.Name, editing)
		if err != nil {
			return f, nil, err
		}
		if taken {
			errs.Add("name", "A category with this name already exists.")
		}
	}

	if f.Description == "" {
		errs.Add("description", requiredMessage)
	}

	return f, errs, nil
}

func categoryNameTaken(db *gorm.DB, name string, editing uuid.UUID) (bool, error) {
	query := db.Model(&models.Category{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if editing != uuid.Nil {
		query = query.Where("id <> ?", editing)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
