package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a 200 response with the given payload.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Error writes a failure as {"error": message} with the given status.
// Every failing endpoint uses this shape so form components can surface the
// message inline.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
