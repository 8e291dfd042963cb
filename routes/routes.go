package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arielcolab/dishly-api/cart"
	orderControllers "github.com/arielcolab/dishly-api/controllers/order"
	"github.com/arielcolab/dishly-api/orders"
)

// SetupRoutes is the single entry‐point that wires up the Dish, Cart, and
// Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, registry *cart.Registry, sim *orders.Simulator, hub *orderControllers.Hub) {
	// 1️⃣ Public dish browsing + admin dish management
	SetupDishRoutes(r, db)

	// 2️⃣ Cart routes (JWT‐protected)
	SetupCartRoutes(r, db, registry)

	// 3️⃣ Order routes (JWT‐protected) + public websocket feed
	SetupOrderRoutes(r, registry, sim, hub)
}
