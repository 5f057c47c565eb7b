package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/repositories"
	"github.com/kendall-kelly/kitchenpos-api/services"
	"github.com/kendall-kelly/kitchenpos-api/tests/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// setupServices installs services over a fresh database and returns it
func setupServices(t *testing.T, mockS3 *services.MockS3Service) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	var images services.ImageService
	if mockS3 != nil {
		images = services.NewImageService(mockS3)
	}
	services.Set(services.NewServices(repositories.NewGormStore(db), images))
	return db
}

func newRouter() *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/products", CreateProduct)
		v1.GET("/products", ListProducts)
		v1.POST("/menu-groups", CreateMenuGroup)
		v1.GET("/menu-groups", ListMenuGroups)
		v1.POST("/menus", CreateMenu)
		v1.GET("/menus", ListMenus)
		v1.POST("/menus/:id/image", UploadMenuImage)
		v1.POST("/orders", CreateOrder)
		v1.GET("/orders", ListOrders)
		v1.PUT("/orders/:id/order-status", ChangeOrderStatus)
		v1.POST("/tables", CreateTable)
		v1.GET("/tables", ListTables)
		v1.PUT("/tables/:id/empty", ChangeTableEmpty)
		v1.PUT("/tables/:id/number-of-guests", ChangeTableNumberOfGuests)
		v1.POST("/table-groups", CreateTableGroup)
		v1.DELETE("/table-groups/:id", UngroupTables)
	}
	return router
}

// doJSON sends body (marshalled unless it is already a string) and decodes the envelope
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w.Code, resp
}

func decodeData(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func mustStatus(t *testing.T, want, got int, resp apiResponse) {
	t.Helper()
	require.Equal(t, want, got, "unexpected status, error: %s %s", resp.Error.Code, resp.Error.Message)
}

