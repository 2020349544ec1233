package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/dto"
	"github.com/duoblog/duoblog/services"
	"github.com/duoblog/duoblog/utils"
)

// CommentController manages comments under posts.
type CommentController struct {
	comments services.CommentService
}

// NewCommentController creates a CommentController.
func NewCommentController(comments services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// CreateComment adds a comment to the post in the path.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		ctx.Error(err)
		return
	}

	var d dto.CreateComment
	if err := ctx.ShouldBindJSON(&d); err != nil {
		ctx.Error(apperr.Validation("invalid request payload"))
		return
	}
	d.PostID = postID
	d.UserID = authedUserID(ctx)
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	comment, err := c.comments.Create(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Created(ctx, gin.H{"comment": comment})
}

// ListComments returns one page of a post's comments, newest first.
func (c *CommentController) ListComments(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		ctx.Error(err)
		return
	}

	d, err := dto.NewListComments(postID, ctx.Query("page"), ctx.Query("limit"))
	if err != nil {
		ctx.Error(err)
		return
	}

	envelope, err := c.comments.ListByPost(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, envelope)
}

// UpdateComment replaces the content of the author's own comment.
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	id, err := pathID(ctx, "commentId")
	if err != nil {
		ctx.Error(err)
		return
	}

	var d dto.UpdateComment
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

	comment, err := c.comments.Update(ctx.Request.Context(), d)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"comment": comment})
}

// DeleteComment removes the author's own comment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, err := pathID(ctx, "commentId")
	if err != nil {
		ctx.Error(err)
		return
	}

	d := dto.DeleteComment{ID: id, UserID: authedUserID(ctx)}
	if err := d.Validate(); err != nil {
		ctx.Error(err)
		return
	}

	if err := c.comments.Delete(ctx.Request.Context(), d); err != nil {
		ctx.Error(err)
		return
	}
	utils.Success(ctx, gin.H{"message": "comment deleted"})
}
