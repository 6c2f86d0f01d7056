package queries

import (
	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryCount pairs a category with the number of events it owns.
type CategoryCount struct {
	Category   models.Category
	EventCount int64
}

// ListCategories returns one page of categories ordered by name, each
// annotated with its owned-event count. A negative limit returns everything.
func ListCategories(db *gorm.DB, offset, limit int) ([]CategoryCount, error) {
	var categories []models.Category
	if err := db.Order("name").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return []CategoryCount{}, nil
	}

	ids := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}

	type row struct {
		CategoryID uuid.UUID
		N          int64
	}
	var rows []row
	err := db.Model(&models.Event{}).
		Select("category_id, COUNT(*) AS n").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.N
	}

	annotated := make([]CategoryCount, 0, len(categories))
	for _, category := range categories {
		annotated = append(annotated, CategoryCount{Category: category, EventCount: counts[category.ID]})
	}
	return annotated, nil
}

// CategoryByID loads one category with its events ordered by (date, time),
// participants included.
func CategoryByID(db *gorm.DB, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("date, time")
	}).Preload("Events.Participants").Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
