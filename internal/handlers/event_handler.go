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

// PageSize is the number of records per listing page.
const PageSize = 12

func ListEvents(c *gin.Context) {
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

	searchForm := forms.EventSearchForm{
		SearchQuery: c.Query("search_query"),
		Category:    c.Query("category"),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
	}
	search, searchErrs := searchForm.Validate()
	if !searchErrs.Empty() {
		// An invalid search form lists everything, same as an empty one.
		search = forms.EventSearch{}
	}

	var totalCount int64
	if err := queries.FilteredEvents(gormDB, search).Count(&totalCount).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	var events []models.Event
	offset := (pageNum - 1) * PageSize
	err = queries.FilteredEvents(gormDB, search).Offset(offset).Limit(PageSize).Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	response := gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       PageSize,
		"total_pages": (totalCount + PageSize - 1) / PageSize,
	}
	if !searchErrs.Empty() {
		response["search_errors"] = searchErrs
	}
	c.JSON(http.StatusOK, response)
}

func GetEvent(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	event, err := queries.EventByID(gormDB, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

// NewEvent serves the data backing the create form: category choices
// ordered by name.
func NewEvent(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var categories []models.Category
	if err := gormDB.Order("name").Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func CreateEvent(c *gin.Context) {
	var form forms.EventForm
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

	values, fieldErrs, err := form.Validate(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating event.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	event := models.Event{
		Name:        values.Name,
		Description: values.Description,
		Date:        values.Date,
		Time:        values.Time,
		Location:    values.Location,
		CategoryID:  values.CategoryID,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Event %q was created successfully!", event.Name),
		"event":    event,
		"redirect": "/events/" + event.ID.String(),
	})
}

// EditEvent serves the record plus category choices for the edit form.
func EditEvent(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	event, err := queries.EventByID(gormDB, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	var categories []models.Category
	if err := gormDB.Order("name").Find(&categories).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "categories": categories})
}

func UpdateEvent(c *gin.Context) {
	var form forms.EventForm
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

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	values, fieldErrs, err := form.Validate(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating event.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	event.Name = values.Name
	event.Description = values.Description
	event.Date = values.Date
	event.Time = values.Time
	event.Location = values.Location
	event.CategoryID = values.CategoryID

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Event %q was updated successfully!", event.Name),
		"event":    event,
		"redirect": "/events/" + event.ID.String(),
	})
}

// ConfirmDeleteEvent serves the confirmation step preceding deletion.
func ConfirmDeleteEvent(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	event, err := queries.EventByID(gormDB, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":  event,
		"prompt": fmt.Sprintf("Are you sure you want to delete %q?", event.Name),
	})
}

func DeleteEvent(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if err := queries.DeleteEvent(gormDB, &event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Event %q was deleted successfully!", event.Name),
		"redirect": "/events",
	})
}
