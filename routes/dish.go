package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dishControllers "github.com/arielcolab/dishly-api/controllers/dish"
	"github.com/arielcolab/dishly-api/middleware"
)

func SetupDishRoutes(r *gin.Engine, db *gorm.DB) {
	// Public browsing
	dishes := r.Group("/dishes")
	{
		dishes.GET("/", dishControllers.GetDishes(db))
		dishes.GET("/:id", dishControllers.GetDishByID(db))
	}

	// Admin catalog management (API‐Key‐protected)
	admin := r.Group("/admin/dishes")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/", dishControllers.CreateDish(db))
		admin.PUT("/:id", dishControllers.UpdateDish(db))
		admin.DELETE("/:id", dishControllers.DeleteDish(db))
	}
}
