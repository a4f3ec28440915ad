package handlers

import (
	"net/http"

	"tutorlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientLogHandler accepts log lines forwarded by the frontend and writes
// them through the server logger so client-side failures land in one
// place.
func ClientLogHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
		Level   string `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	logger := utils.GetLogger()
	fields := []zap.Field{
		zap.String("source", "client"),
		zap.String("clientIP", c.ClientIP()),
	}

	switch req.Level {
	case "error":
		logger.Error(req.Message, fields...)
	case "warn":
		logger.Warn(req.Message, fields...)
	case "debug":
		logger.Debug(req.Message, fields...)
	default:
		logger.Info(req.Message, fields...)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log recorded"})
}
