package controllers

import (
	"errors"
	"net/http"

	"blogcomments/app/auth"
	"blogcomments/app/models"
	"blogcomments/app/repositories"
	"blogcomments/app/response"
	"blogcomments/app/serializers"
	"blogcomments/app/services"

	"github.com/gorilla/mux"
)

const (
	msgGetCommentsFailed   = "Failed to get comments"
	msgPostCommentFailed   = "Failed to post comment"
	msgUpdateCommentFailed = "Failed to update comment"
	msgDeleteCommentFailed = "Failed to delete comment"
	msgCommentNotDeleted   = "Unable to delete comment"
	msgCommentDeleted      = "Comment deleted successfully"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// NewCommentControllerWithStore wires a CommentController to an open store
func NewCommentControllerWithStore(store *repositories.Store) *CommentController {
	return NewCommentController(services.NewCommentService(store.Comments, store.Blogs))
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

// Index lists the comments of a blog, newest first
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["blogId"]

	comments, err := cc.commentService.ListBlogComments(r.Context(), blogID)
	if err != nil {
		fail(w, r, err, msgGetCommentsFailed)
		return
	}

	serialized, err := serializers.SerializeComments(comments)
	if err != nil {
		fail(w, r, err, msgGetCommentsFailed)
		return
	}

	_ = response.OK(w, map[string]any{"comments": serialized})
}

// Create posts a comment as the authenticated caller
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		_ = response.Unauthorized(w)
		return
	}

	var req models.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := cc.commentService.PostComment(r.Context(), userID, req)
	if err != nil {
		fail(w, r, err, msgPostCommentFailed)
		return
	}

	serialized, err := serializers.SerializeComment(comment)
	if err != nil {
		fail(w, r, err, msgPostCommentFailed)
		return
	}

	_ = response.OK(w, map[string]any{"comment": serialized})
}

// Update replaces the content of a comment the caller wrote. Someone else's
// comment gets the same response as a missing one.
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		_ = response.Unauthorized(w)
		return
	}
	commentID := mux.Vars(r)["commentId"]

	var req models.UpdateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := cc.commentService.UpdateComment(r.Context(), commentID, userID, req)
	if err != nil {
		fail(w, r, err, msgUpdateCommentFailed)
		return
	}

	serialized, err := serializers.SerializeComment(comment)
	if err != nil {
		fail(w, r, err, msgUpdateCommentFailed)
		return
	}

	_ = response.OK(w, map[string]any{"comment": serialized})
}

// Delete removes a comment the caller wrote
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		_ = response.Unauthorized(w)
		return
	}
	commentID := mux.Vars(r)["commentId"]

	err := cc.commentService.DeleteComment(r.Context(), commentID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		fail(w, r, err, msgCommentNotDeleted)
		return
	}
	if err != nil {
		fail(w, r, err, msgDeleteCommentFailed)
		return
	}

	_ = response.Message(w, msgCommentDeleted)
}
