package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/kitchenpos-api/logger"
	"github.com/kendall-kelly/kitchenpos-api/models"
	"go.uber.org/zap"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// respondServiceError writes a ValidationError as 400 with its code and
// anything else as a 500 carrying failureMessage
func respondServiceError(c *gin.Context, err error, failureMessage string) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		respondErrorCode(c, http.StatusBadRequest, ve.Code, ve.Message)
		return
	}

	logger.Error(failureMessage, zap.Error(err))
	_ = c.Error(err)
	respondErrorCode(c, http.StatusInternalServerError, "DATABASE_ERROR", failureMessage)
}

// parseIDParam reads a positive numeric path parameter, writing a 400 when it is malformed
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "A valid numeric id is required")
		return 0, false
	}
	return uint(id), true
}
