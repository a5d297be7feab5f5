// Package response provides the shared JSON envelope used by every handler:
// {success, data?, message?, error?, errors?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard API response shape.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Message writes a 200 response carrying only a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Error writes an error response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

// ErrorWithDetail writes an error response including machine detail. Callers
// must only pass detail in development mode.
func ErrorWithDetail(c *gin.Context, status int, message, detail string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, Error: detail})
}

// ValidationFailed writes a 400 response with a field-to-reason map.
func ValidationFailed(c *gin.Context, errors map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound writes a 404 response for the named resource.
func NotFound(c *gin.Context, resource string) {
	Error(c, http.StatusNotFound, resource+" not found")
}

// Conflict writes a 409 response for the named resource.
func Conflict(c *gin.Context, resource string) {
	Error(c, http.StatusConflict, resource+" already exists")
}
