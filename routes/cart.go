package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arielcolab/dishly-api/cart"
	cartControllers "github.com/arielcolab/dishly-api/controllers/cart"
	"github.com/arielcolab/dishly-api/middleware"
)

// SetupCartRoutes registers all “/user/cart/*” endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, registry *cart.Registry) {
	cartGroup := r.Group("/user/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(registry))                // GET /user/cart
		cartGroup.GET("/quote", cartControllers.QuoteCart(registry))         // GET /user/cart/quote
		cartGroup.POST("/", cartControllers.AddCartItem(db, registry))       // POST /user/cart
		cartGroup.PUT("/", cartControllers.UpdateCartItem(registry))         // PUT /user/cart
		cartGroup.DELETE("/:dish_id", cartControllers.DeleteCartItem(registry)) // DELETE /user/cart/:dish_id
		cartGroup.DELETE("/", cartControllers.ClearCart(registry))           // DELETE /user/cart
	}
}
