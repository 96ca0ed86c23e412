package utils

import "github.com/gin-gonic/gin"

// Envelope is the body of every API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

func JSONSuccess[T any](c *gin.Context, code int, message string, data T) {
	c.JSON(code, Envelope[T]{Success: true, Message: message, Data: &data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope[struct{}]{Success: false, Message: message})
}

// AbortJSONError is JSONError for middleware that must stop the chain.
func AbortJSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope[struct{}]{Success: false, Message: message})
}
