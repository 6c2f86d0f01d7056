package queries

import (
	"github.com/adriantr/eventhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteCategory removes a category and every event it owns in one
// transaction. The deleted events' registration rows go with them so no
// participant keeps a membership in a vanished event.
func DeleteCategory(db *gorm.DB, category *models.Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uuid.UUID
		err := tx.Model(&models.Event{}).Where("category_id = ?", category.ID).Pluck("id", &eventIDs).Error
		if err != nil {
			return err
		}

		if len(eventIDs) > 0 {
			if err := tx.Exec("DELETE FROM event_participants WHERE event_id IN ?", eventIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", eventIDs).Delete(&models.Event{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(category).Error
	})
}

// DeleteEvent removes an event and clears it from every participant's
// registration set.
func DeleteEvent(db *gorm.DB, event *models.Event) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(event).Association("Participants").Clear(); err != nil {
			return err
		}
		return tx.Delete(event).Error
	})
}

// DeleteParticipant removes a participant and only that participant's
// membership rows. Events are never deleted here.
func DeleteParticipant(db *gorm.DB, participant *models.Participant) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(participant).Association("Events").Clear(); err != nil {
			return err
		}
		return tx.Delete(participant).Error
	})
}
