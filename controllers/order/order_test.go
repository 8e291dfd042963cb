package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielcolab/dishly-api/cart"
	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/notify"
	"github.com/arielcolab/dishly-api/orders"
)

var silent = notify.Func(func(string, notify.Severity) {})

func testRouter(t *testing.T, userID string) (*gin.Engine, *cart.Registry, *orders.Simulator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := cart.NewRegistry(cart.NewMemoryRepository(), silent)
	sim := orders.NewSimulator(orders.NewScheduler(), silent)
	t.Cleanup(sim.Stop)

	r := gin.New()
	group := r.Group("/user/orders")
	group.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_name", "Dana")
	})
	group.POST("/checkout", CheckoutHandler(registry, sim))
	group.GET("/active", GetActiveOrdersHandler(sim))
	group.GET("/history", GetOrderHistoryHandler(sim))
	group.GET("/:orderID", GetOrderByIDHandler(sim))
	group.POST("/:orderID/reorder", ReorderHandler(registry, sim))
	return r, registry, sim
}

func dishSnapshot(id uint, price float64) models.DishSnapshot {
	return models.DishSnapshot{ID: id, Name: "Plov", Price: price, Kind: models.DishKindStandard, CookID: "c1", CookName: "Maria"}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	r, registry, sim := testRouter(t, "u1")
	store := registry.ForUser("u1")
	require.NoError(t, store.AddItem(dishSnapshot(1, 30), 2))

	w := doJSON(t, r, http.MethodPost, "/user/orders/checkout",
		gin.H{"delivery_method": "delivery", "promo_code": "SAVE10"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order     models.Order          `json:"order"`
		Breakdown models.PriceBreakdown `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, "u1", resp.Order.BuyerID)
	assert.InDelta(t, 6.0, resp.Breakdown.PromoDiscountAmount, 1e-9)

	// all or nothing: order exists and the cart is gone
	assert.Empty(t, store.Lines())
	assert.Len(t, sim.Active(), 1)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r, _, sim := testRouter(t, "u1")

	w := doJSON(t, r, http.MethodPost, "/user/orders/checkout", gin.H{"delivery_method": "delivery"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sim.Active())
}

func TestCheckoutInvalidDeliveryMethod(t *testing.T) {
	r, registry, _ := testRouter(t, "u1")
	store := registry.ForUser("u1")
	require.NoError(t, store.AddItem(dishSnapshot(1, 30), 1))

	w := doJSON(t, r, http.MethodPost, "/user/orders/checkout", gin.H{"delivery_method": "drone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// cart untouched on rejection
	assert.Len(t, store.Lines(), 1)
}

func TestActiveOrdersFilteredByBuyer(t *testing.T) {
	r, _, sim := testRouter(t, "u1")
	lines := []models.CartLine{{DishID: 1, Dish: dishSnapshot(1, 30), Quantity: 1}}
	mine, err := sim.CreateOrder(lines, models.Buyer{ID: "u1"}, models.DeliveryMethodCourier, 30)
	require.NoError(t, err)
	_, err = sim.CreateOrder(lines, models.Buyer{ID: "someone-else"}, models.DeliveryMethodCourier, 30)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/user/orders/active", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestGetOrderHidesOtherBuyers(t *testing.T) {
	r, _, sim := testRouter(t, "u1")
	lines := []models.CartLine{{DishID: 1, Dish: dishSnapshot(1, 30), Quantity: 1}}
	other, err := sim.CreateOrder(lines, models.Buyer{ID: "someone-else"}, models.DeliveryMethodCourier, 30)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/user/orders/"+other.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorderRebuildsCart(t *testing.T) {
	r, registry, sim := testRouter(t, "u1")
	lines := []models.CartLine{
		{DishID: 1, Dish: dishSnapshot(1, 30), Quantity: 2},
		{DishID: 2, Dish: dishSnapshot(2, 12), Quantity: 3},
	}
	order, err := sim.CreateOrder(lines, models.Buyer{ID: "u1"}, models.DeliveryMethodCourier, 75)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/user/orders/"+order.ID+"/reorder", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rebuilt := registry.ForUser("u1").Lines()
	require.Len(t, rebuilt, 2)
	assert.Equal(t, lines[0].DishID, rebuilt[0].DishID)
	assert.Equal(t, lines[0].Quantity, rebuilt[0].Quantity)
	assert.Equal(t, lines[1].DishID, rebuilt[1].DishID)
	assert.Equal(t, lines[1].Quantity, rebuilt[1].Quantity)
}
