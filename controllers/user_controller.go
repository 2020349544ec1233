package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/dto"
	"github.com/duoblog/duoblog/middleware"
	"github.com/duoblog/duoblog/pagination"
	"github.com/duoblog/duoblog/services"
	"github.com/duoblog/duoblog/utils"
)

// UserController handles registration, login, and account management.
type UserController struct {
	users  services.UserService
	tokens *utils.TokenManager
}

// NewUserController creates a UserController.
func NewUserController(users services.UserService, tokens *utils.TokenManager) *UserController {
	return &UserController{users: users, tokens: tokens}
}

// Register creates a new account. The response never carries the password.
func (c *UserController) Register(ctx *gin.Context) {
	var d dto.CreateUser
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	user, err := c.users.Create(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Created(ctx, gin.H{"user": user})
}

// Login verifies credentials and returns a signed token.
func (c *UserController) Login(ctx *gin.Context) {
	var d dto.LoginUser
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	token, err := c.users.Login(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"token": token})
}

// Logout revokes the presented token until its natural expiration.
func (c *UserController) Logout(ctx *gin.Context) {
	token := ctx.GetString(middleware.ContextTokenKey)
	if claims, err := c.tokens.Parse(token); err == nil && claims.ExpiresAt != nil {
		utils.BlacklistToken(token, claims.ExpiresAt.Time)
	}
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's public profile.
func (c *UserController) Me(ctx *gin.Context) {
	user, err := c.users.GetByID(ctx.Request.Context(), authedUserID(ctx))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// GetUser returns a user's public profile by ID.
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.users.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// UpdateUser edits the authenticated user's own profile.
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var d dto.UpdateUser
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	user, err := c.users.Update(ctx.Request.Context(), ctx.Param("id"), d, authedUserID(ctx))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// DeleteUser removes the authenticated user's own account.
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if id != authedUserID(ctx) {
		ctx.Error(apperr.Unauthorized("not authorized to delete this user"))
		return
	}
	if err := c.users.Delete(ctx.Request.Context(), id); err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"message": "user deleted"})
}

// ListUsers returns a paginated page of public profiles.
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, limit := pagination.Derive(ctx.Query("page"), ctx.Query("limit"))
	envelope, err := c.users.List(ctx.Request.Context(), page, limit)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, envelope)
}
