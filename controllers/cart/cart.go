package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arielcolab/dishly-api/cart"
	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/pricing"
)

type CartItemInput struct {
	DishID   uint `json:"dish_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	DishID   uint `json:"dish_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		store := registry.ForUser(userIDVal.(string))
		c.JSON(http.StatusOK, store.Lines())
	}
}

// POST /user/cart
// Fetches the live dish row, freezes it into a snapshot, and merges it into
// the shopper's cart. The cart never re-reads the dish after this point.
func AddCartItem(db *gorm.DB, registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var dish models.Dish
		if err := db.First(&dish, "id = ?", input.DishID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate dish"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Dish does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		if !dish.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish is not available"})
			return
		}

		store := registry.ForUser(userIDVal.(string))
		if err := store.AddItem(dish.Snapshot(), input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, store.Lines())
	}
}

// PUT /user/cart
func UpdateCartItem(registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantities below 1 and pinned kinds are no-ops inside the store.
		store := registry.ForUser(userIDVal.(string))
		store.UpdateQuantity(input.DishID, input.Quantity)
		c.JSON(http.StatusOK, store.Lines())
	}
}

// DELETE /user/cart/:dish_id
func DeleteCartItem(registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		dishID, err := strconv.ParseUint(c.Param("dish_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish ID"})
			return
		}

		store := registry.ForUser(userIDVal.(string))
		store.RemoveItem(uint(dishID))
		c.JSON(http.StatusOK, store.Lines())
	}
}

// DELETE /user/cart
func ClearCart(registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		registry.ForUser(userIDVal.(string)).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/quote?promo=SAVE10
// Recomputes the full price breakdown for the current cart.
func QuoteCart(registry *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		store := registry.ForUser(userIDVal.(string))
		breakdown := pricing.Compute(store.Lines(), c.Query("promo"))
		c.JSON(http.StatusOK, breakdown)
	}
}
