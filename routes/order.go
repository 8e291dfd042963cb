package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arielcolab/dishly-api/cart"
	orderControllers "github.com/arielcolab/dishly-api/controllers/order"
	"github.com/arielcolab/dishly-api/middleware"
	"github.com/arielcolab/dishly-api/orders"
)

func SetupOrderRoutes(r *gin.Engine, registry *cart.Registry, sim *orders.Simulator, hub *orderControllers.Hub) {
	// websocket endpoint for real-time order status updates
	r.GET("/orders/ws", hub.Handler())

	userOrders := r.Group("/user/orders")
	userOrders.Use(middleware.ValidateToken)
	{
		// Checkout: create a new order from the current cart
		userOrders.POST("/checkout", orderControllers.CheckoutHandler(registry, sim))

		// In-flight orders for the tracking view
		userOrders.GET("/active", orderControllers.GetActiveOrdersHandler(sim))

		// Completed orders, most recent first
		userOrders.GET("/history", orderControllers.GetOrderHistoryHandler(sim))

		// Order history spreadsheet download
		userOrders.GET("/export", orderControllers.ExportOrderHistoryToExcel(sim))

		// Single order lookup
		userOrders.GET("/:orderID", orderControllers.GetOrderByIDHandler(sim))

		// Rebuild the cart from a past order
		userOrders.POST("/:orderID/reorder", orderControllers.ReorderHandler(registry, sim))
	}
}
