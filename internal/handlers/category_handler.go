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

func ListCategories(c *gin.Context) {
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
	if err := gormDB.Model(&models.Category{}).Count(&totalCount).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	offset := (pageNum - 1) * PageSize
	annotated, err := queries.ListCategories(gormDB, offset, PageSize)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":  annotated,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       PageSize,
		"total_pages": (totalCount + PageSize - 1) / PageSize,
	})
}

func GetCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
		return
	}

	category, err := queries.CategoryByID(gormDB, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving category.")
		return
	}

	c.JSON(http.StatusOK, category)
}

// NewCategory serves the create form. The category form has no choice
// fields, so there is nothing to preload.
func NewCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": forms.CategoryForm{}})
}

func CreateCategory(c *gin.Context) {
	var form forms.CategoryForm
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

	form, fieldErrs, err := form.Validate(gormDB, uuid.Nil)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating category.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	category := models.Category{
		Name:        form.Name,
		Description: form.Description,
	}

	if err := gormDB.Create(&category).Error; err != nil {
		// The validator's read check can lose a race; the unique index on
		// LOWER(name) is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithFieldErrors(c, http.StatusConflict, forms.Errors{
				"name": {"A category with this name already exists."},
			}, form)
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Category %q was created successfully!", category.Name),
		"category": category,
		"redirect": "/categories/" + category.ID.String(),
	})
}

// EditCategory serves the record backing the edit form.
func EditCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
		return
	}

	var category models.Category
	if err := gormDB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

func UpdateCategory(c *gin.Context) {
	var form forms.CategoryForm
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

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
		return
	}

	var category models.Category
	if err := gormDB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding category.")
		return
	}

	form, fieldErrs, err := form.Validate(gormDB, category.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error validating category.")
		return
	}
	if !fieldErrs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, fieldErrs, form)
		return
	}

	category.Name = form.Name
	category.Description = form.Description

	if err := gormDB.Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithFieldErrors(c, http.StatusConflict, forms.Errors{
				"name": {"A category with this name already exists."},
			}, form)
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Category %q was updated successfully!", category.Name),
		"category": category,
		"redirect": "/categories/" + category.ID.String(),
	})
}

// ConfirmDeleteCategory serves the confirmation step preceding deletion.
// Deleting a category also deletes every event it owns.
func ConfirmDeleteCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
		return
	}

	category, err := queries.CategoryByID(gormDB, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"prompt":   fmt.Sprintf("Are you sure you want to delete %q? Its %d event(s) will be deleted too.", category.Name, len(category.Events)),
	})
}

func DeleteCategory(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
		return
	}

	var category models.Category
	if err := gormDB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding category.")
		return
	}

	if err := queries.DeleteCategory(gormDB, &category); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Category %q was deleted successfully!", category.Name),
		"redirect": "/categories",
	})
}
