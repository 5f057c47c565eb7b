package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/controllers"
	"github.com/kendall-kelly/kitchenpos-api/middleware"
	"github.com/kendall-kelly/kitchenpos-api/tests/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newKitchenRouter mirrors the production routes, authenticating every
// write as a staff member holding scopes
func newKitchenRouter(scopes ...string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	staff := testutil.MockAuthMiddleware("auth0|staff", scopes...)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", controllers.ListProducts)
		v1.GET("/menus", controllers.ListMenus)
		v1.GET("/orders", controllers.ListOrders)
		v1.GET("/tables", controllers.ListTables)

		menus := v1.Group("", staff, middleware.RequireScope(middleware.ScopeManageMenus))
		menus.POST("/products", controllers.CreateProduct)
		menus.POST("/menu-groups", controllers.CreateMenuGroup)
		menus.POST("/menus", controllers.CreateMenu)

		orders := v1.Group("", staff, middleware.RequireScope(middleware.ScopeManageOrders))
		orders.POST("/orders", controllers.CreateOrder)
		orders.PUT("/orders/:id/order-status", controllers.ChangeOrderStatus)

		tables := v1.Group("", staff, middleware.RequireScope(middleware.ScopeManageTables))
		tables.POST("/tables", controllers.CreateTable)
		tables.PUT("/tables/:id/empty", controllers.ChangeTableEmpty)
		tables.PUT("/tables/:id/number-of-guests", controllers.ChangeTableNumberOfGuests)
		tables.POST("/table-groups", controllers.CreateTableGroup)
		tables.DELETE("/table-groups/:id", controllers.UngroupTables)
	}

	return router
}

func request(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func idPath(prefix string, id uint, suffix string) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10) + suffix
}
