package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Check API status
// @Description Returns a simple pong to check that the API is alive
// @Tags Network
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}
