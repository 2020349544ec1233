// Package controllers translates HTTP requests into validated DTOs, calls
// the matching service, and shapes the response. All failures are forwarded
// to the centralized error handler; controllers never build error responses
// themselves.
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/middleware"
)

// authedUserID returns the canonical user ID set by the auth middleware.
func authedUserID(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextUserIDKey)
}

// pathID parses a positive numeric path parameter.
func pathID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation(name + " must be a positive number")
	}
	return uint(id), nil
}
