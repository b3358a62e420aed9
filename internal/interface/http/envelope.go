package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape shared by every endpoint.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

func respondSuccess(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func errorEnvelope(message string) Envelope {
	return Envelope{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
