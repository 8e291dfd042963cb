package dishControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arielcolab/dishly-api/models"
)

type DishInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Kind        string  `json:"kind"`
	CookID      string  `json:"cook_id" binding:"required"`
	CookName    string  `json:"cook_name" binding:"required"`
	Image       string  `json:"image"`
}

// GetDishes returns the browsable menu. Query params: cook_id, kind.
// GET /dishes
func GetDishes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("available = ?", true)
		if cookID := c.Query("cook_id"); cookID != "" {
			query = query.Where("cook_id = ?", cookID)
		}
		if kind := c.Query("kind"); kind != "" {
			query = query.Where("kind = ?", kind)
		}

		var dishes []models.Dish
		if err := query.Order("created_at DESC").Find(&dishes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dishes"})
			return
		}
		c.JSON(http.StatusOK, dishes)
	}
}

// GetDishByID returns a single dish.
// URL param: /dishes/:id
func GetDishByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish ID"})
			return
		}

		var dish models.Dish
		if err := db.First(&dish, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dish"})
			}
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

// CreateDish creates a new dish (admin).
// POST /admin/dishes
func CreateDish(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DishInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		kind, err := mapDishKind(input.Kind)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dish := models.Dish{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Kind:        kind,
			CookID:      input.CookID,
			CookName:    input.CookName,
			Image:       input.Image,
			Available:   true,
		}
		if err := db.Create(&dish).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
			return
		}
		c.JSON(http.StatusCreated, dish)
	}
}

// UpdateDish updates price, availability and display fields (admin).
// PUT /admin/dishes/:id
func UpdateDish(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var dish models.Dish
		if err := db.First(&dish, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
			return
		}

		var input struct {
			Name        *string  `json:"name"`
			Description *string  `json:"description"`
			Price       *float64 `json:"price"`
			Image       *string  `json:"image"`
			Available   *bool    `json:"available"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			dish.Name = *input.Name
		}
		if input.Description != nil {
			dish.Description = *input.Description
		}
		if input.Price != nil {
			dish.Price = *input.Price
		}
		if input.Image != nil {
			dish.Image = *input.Image
		}
		if input.Available != nil {
			dish.Available = *input.Available
		}

		if err := db.Save(&dish).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

// DeleteDish removes a dish from the catalog (admin). Carts holding a
// snapshot of it are unaffected.
// DELETE /admin/dishes/:id
func DeleteDish(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Dish{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dish"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
	}
}

func mapDishKind(kind string) (models.DishKind, error) {
	switch kind {
	case "", string(models.DishKindStandard):
		return models.DishKindStandard, nil
	case string(models.DishKindClass):
		return models.DishKindClass, nil
	case string(models.DishKindMealPrep):
		return models.DishKindMealPrep, nil
	}
	return "", errors.New("invalid dish kind")
}
