package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/services"
)

// CreateMenuGroup handles POST /api/v1/menu-groups
func CreateMenuGroup(c *gin.Context) {
	var req services.MenuGroupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := services.Get().MenuGroups.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create menu group")
		return
	}

	respondData(c, http.StatusCreated, group)
}

// ListMenuGroups handles GET /api/v1/menu-groups
func ListMenuGroups(c *gin.Context) {
	groups, err := services.Get().MenuGroups.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch menu groups")
		return
	}

	respondData(c, http.StatusOK, groups)
}
