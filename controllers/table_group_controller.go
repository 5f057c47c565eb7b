package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/services"
)

// CreateTableGroup handles POST /api/v1/table-groups - seats a party across several empty tables
func CreateTableGroup(c *gin.Context) {
	var req services.TableGroupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := services.Get().TableGroups.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to group tables")
		return
	}

	respondData(c, http.StatusCreated, group)
}

// UngroupTables handles DELETE /api/v1/table-groups/:id
func UngroupTables(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.Get().TableGroups.Ungroup(c.Request.Context(), groupID); err != nil {
		respondServiceError(c, err, "Failed to ungroup tables")
		return
	}

	c.Status(http.StatusNoContent)
}
