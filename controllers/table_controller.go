package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/services"
)

// CreateTable handles POST /api/v1/tables
func CreateTable(c *gin.Context) {
	var req services.OrderTableCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	table, err := services.Get().Tables.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create table")
		return
	}

	respondData(c, http.StatusCreated, table)
}

// ListTables handles GET /api/v1/tables
func ListTables(c *gin.Context) {
	tables, err := services.Get().Tables.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch tables")
		return
	}

	respondData(c, http.StatusOK, tables)
}

// ChangeTableEmpty handles PUT /api/v1/tables/:id/empty - seats or clears a table
func ChangeTableEmpty(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ChangeEmptyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	table, err := services.Get().Tables.ChangeEmpty(c.Request.Context(), tableID, *req.Empty)
	if err != nil {
		respondServiceError(c, err, "Failed to change table")
		return
	}

	respondData(c, http.StatusOK, table)
}

// ChangeTableNumberOfGuests handles PUT /api/v1/tables/:id/number-of-guests
func ChangeTableNumberOfGuests(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ChangeNumberOfGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	table, err := services.Get().Tables.ChangeNumberOfGuests(c.Request.Context(), tableID, *req.NumberOfGuests)
	if err != nil {
		respondServiceError(c, err, "Failed to change table")
		return
	}

	respondData(c, http.StatusOK, table)
}
