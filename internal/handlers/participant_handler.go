package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adriantr/eventhub/internal/forms"
	"github.com/adriantr/eventhub/internal/helpers"
	"github.com/adriantr/eventhub/internal/models"
	"github.com/adriantr/eventhub/internal/queries"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListParticipants(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	var totalCount int64
	if err := gormDB.Model(&models.Participant{}).Count(&totalCount).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participants.")
		return
	}

	offset := (pageNum - 1) * PageSize
	participants, err := queries.ListParticipants(gormDB, offset, PageSize)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participants.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participants": participants,
		"total":        totalCount,
		"page":         pageNum,
		"limit":        PageSize,
		"total_pages":  (totalCount + PageSize - 1) / PageSize,
	})
}

func GetParticipant(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
		return
	}

	participant, err := queries.ParticipantByID(gormDB, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participant.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participant": participant,
		"event_count": participant.EventCount(),
	})
}

// NewParticipant serves the registration choices for the create form. Only
// upcoming events can be selected.
func NewParticipant(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	events, err := queries.UpcomingEvents(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func CreateParticipant(c *gin.Context) {
	var form forms.ParticipantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	values, fieldErrs, err := form.Validate(gormDB, uuid.Nil)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating participant.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	participant := models.Participant{
		Name:   values.Name,
		Email:  values.Email,
		Events: values.Events,
	}

	if err := gormDB.Create(&participant).Error; err != nil {
		// Unique index on email backs up the validator's read check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithFieldErrors(c, http.StatusConflict, forms.Errors{
				"email": {"A participant with this email already exists."},
			}, form)
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create participant.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("Participant %q was created successfully!", participant.Name),
		"participant": participant,
		"redirect":    "/participants/" + participant.ID.String(),
	})
}

// EditParticipant serves the record plus registration choices for the edit
// form.
func EditParticipant(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
		return
	}

	participant, err := queries.ParticipantByID(gormDB, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participant.")
		return
	}

	events, err := queries.UpcomingEvents(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"participant": participant, "events": events})
}

func UpdateParticipant(c *gin.Context) {
	var form forms.ParticipantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
		return
	}

	var participant models.Participant
	if err := gormDB.Where("id = ?", participantID).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding participant.")
		return
	}

	values, fieldErrs, err := form.Validate(gormDB, participant.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating participant.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	participant.Name = values.Name
	participant.Email = values.Email

	// One transaction so a failed registration swap never leaves the
	// renamed record behind.
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&participant).Error; err != nil {
			return err
		}
		return tx.Model(&participant).Association("Events").Replace(values.Events)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithFieldErrors(c, http.StatusConflict, forms.Errors{
				"email": {"A participant with this email already exists."},
			}, form)
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update participant.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Participant %q was updated successfully!", participant.Name),
		"participant": participant,
		"redirect":    "/participants/" + participant.ID.String(),
	})
}

// ConfirmDeleteParticipant serves the confirmation step preceding deletion.
func ConfirmDeleteParticipant(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
		return
	}

	participant, err := queries.ParticipantByID(gormDB, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participant.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participant": participant,
		"prompt":      fmt.Sprintf("Are you sure you want to delete %q?", participant.Name),
	})
}

func DeleteParticipant(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
		return
	}

	var participant models.Participant
	if err := gormDB.Where("id = ?", participantID).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Participant not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding participant.")
		return
	}

	if err := queries.DeleteParticipant(gormDB, &participant); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete participant.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Participant %q was deleted successfully!", participant.Name),
		"redirect": "/participants",
	})
}
