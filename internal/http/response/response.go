// Package response defines the JSON envelope shared by every API
// endpoint: {"success": bool, "message": string, "data": any}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 success envelope with data.
func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, "", data)
}

// Message writes a 200 success envelope with a message and no data.
func Message(c *gin.Context, message string) {
	write(c, http.StatusOK, message, nil)
}

// OKWithMessage writes a 200 success envelope with data and a message.
func OKWithMessage(c *gin.Context, data any, message string) {
	write(c, http.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data any, message string) {
	write(c, http.StatusCreated, message, data)
}

// write assembles the success envelope.
func write(c *gin.Context, code int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// Error writes a failure envelope with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// AbortError writes a failure envelope and aborts the handler chain.
func AbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": message})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Forbidden writes a 403 failure envelope.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// ValidationError writes a 422 failure envelope with field errors.
func ValidationError(c *gin.Context, errors any) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errors,
	})
}

// ServerError writes a 500 failure envelope.
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
