package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/services"
	"github.com/kendall-kelly/kitchenpos-api/utils"
)

// MenuImageField is the multipart form field carrying a menu picture
const MenuImageField = "image"

// CreateMenu handles POST /api/v1/menus
func CreateMenu(c *gin.Context) {
	var req services.MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	menu, err := services.Get().Menus.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create menu")
		return
	}

	respondData(c, http.StatusCreated, menu)
}

// ListMenus handles GET /api/v1/menus
func ListMenus(c *gin.Context) {
	menus, err := services.Get().Menus.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch menus")
		return
	}

	respondData(c, http.StatusOK, menus)
}

// UploadMenuImage handles POST /api/v1/menus/:id/image - stores a PNG picture for the menu
func UploadMenuImage(c *gin.Context) {
	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile(MenuImageField)
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the \"image\" field")
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			respondErrorCode(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondErrorCode(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		return
	}

	menu, err := services.Get().Menus.UploadImage(c.Request.Context(), menuID, fileHeader)
	if errors.Is(err, services.ErrImageStorageUnavailable) {
		respondErrorCode(c, http.StatusServiceUnavailable, "IMAGE_STORAGE_UNAVAILABLE", "Image storage is not configured")
		return
	}
	if err != nil {
		respondServiceError(c, err, "Failed to upload menu image")
		return
	}

	respondData(c, http.StatusOK, menu)
}
