package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/dto"
	"github.com/duoblog/duoblog/services"
	"github.com/duoblog/duoblog/utils"
)

// PostController manages post CRUD.
type PostController struct {
	posts services.PostService
}

// NewPostController creates a PostController.
func NewPostController(posts services.PostService) *PostController {
	return &PostController{posts: posts}
}

// CreatePost publishes a new post authored by the authenticated user.
func (c *PostController) CreatePost(ctx *gin.Context) {
	var d dto.CreatePost
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	d.UserID = authedUserID(ctx)
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	post, err := c.posts.Create(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Created(ctx, gin.H{"post": post})
}

// ListPosts returns paginated posts with hydrated authors.
func (c *PostController) ListPosts(ctx *gin.Context) {
	d := dto.NewListPosts(ctx.Query("page"), ctx.Query("limit"))
	envelope, err := c.posts.List(ctx.Request.Context(), d.Page, d.Limit)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, envelope)
}

// GetPost returns a single post. Absence is answered with a plain 404, not
// an error-path response.
func (c *PostController) GetPost(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ctx.Error(err)
		return
	}

	post, found, err := c.posts.GetByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.Error(err)
		return
	}
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// UpdatePost applies a partial update to the author's own post.
func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ctx.Error(err)
		return
	}

	var d dto.UpdatePost
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	d.ID = id
	d.UserID = authedUserID(ctx)
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	post, err := c.posts.Update(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost removes the author's own post; comments cascade with it.
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		ctx.Error(err)
		return
	}

	d := dto.DeletePost{ID: id, UserID: authedUserID(ctx)}
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	if err := c.posts.Delete(ctx.Request.Context(), d); err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"message": "post deleted"})
}
