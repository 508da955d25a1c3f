package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ServiceName = "inavora-chatbot"

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: ServiceName})
}
