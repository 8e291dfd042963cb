package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arielcolab/dishly-api/cart"
	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/orders"
	"github.com/arielcolab/dishly-api/pricing"
)

// -------- Request Structs --------
type CheckoutRequest struct {
	DeliveryMethod string `json:"delivery_method" binding:"required"` // "delivery" or "self_pickup"
	PromoCode      string `json:"promo_code"`
}

// -------- Helpers --------

// Map string to DeliveryMethod
func mapDeliveryMethod(method string) (models.DeliveryMethod, error) {
	switch strings.ToLower(method) {
	case string(models.DeliveryMethodCourier):
		return models.DeliveryMethodCourier, nil
	case string(models.DeliveryMethodPickup):
		return models.DeliveryMethodPickup, nil
	default:
		return "", errors.New("invalid delivery method")
	}
}

func buyerFromContext(c *gin.Context) (models.Buyer, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return models.Buyer{}, false
	}
	buyer := models.Buyer{ID: userIDVal.(string)}
	if name, ok := c.Get("user_name"); ok {
		buyer.Name, _ = name.(string)
	}
	return buyer, true
}

// -------- Handlers --------

// POST /user/orders/checkout
// All or nothing: either an order is created and the cart cleared, or the
// cart stays untouched. The cart is cleared only after CreateOrder succeeds.
func CheckoutHandler(registry *cart.Registry, sim *orders.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer, ok := buyerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method, err := mapDeliveryMethod(req.DeliveryMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store := registry.ForUser(buyer.ID)
		lines := store.Lines()
		breakdown := pricing.Compute(lines, req.PromoCode)

		order, err := sim.CreateOrder(lines, buyer, method, breakdown.Total)
		if err != nil {
			if errors.Is(err, orders.ErrEmptyOrder) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		store.Clear()

		c.JSON(http.StatusCreated, gin.H{"order": order, "breakdown": breakdown})
	}
}

// GET /user/orders/active
func GetActiveOrdersHandler(sim *orders.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, forBuyer(sim.Active(), userIDVal.(string)))
	}
}

// GET /user/orders/history
func GetOrderHistoryHandler(sim *orders.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, forBuyer(sim.History(), userIDVal.(string)))
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(sim *orders.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		order, ok := sim.Get(c.Param("orderID"))
		if !ok || order.BuyerID != userIDVal.(string) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:orderID/reorder
// Rebuilds the cart from a historical order by feeding its line items back
// through the cart store. The simulator's data stays read-only.
func ReorderHandler(registry *cart.Registry, sim *orders.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		order, ok := sim.Get(c.Param("orderID"))
		if !ok || order.BuyerID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		store := registry.ForUser(userID)
		for _, item := range order.Items {
			if err := store.AddItem(item.Dish, item.Quantity); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rebuild cart"})
				return
			}
		}
		c.JSON(http.StatusOK, store.Lines())
	}
}

func forBuyer(list []models.Order, buyerID string) []models.Order {
	out := make([]models.Order, 0, len(list))
	for _, o := range list {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out
}
