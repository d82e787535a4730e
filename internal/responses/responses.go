package responses

import "github.com/gin-gonic/gin"

// Envelope — единый формат всех ответов API.
type Envelope struct {
	Status  string `json:"status"` // success | error
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "error", Message: message})
}

func AbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Status: "error", Message: message})
}
