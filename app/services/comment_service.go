package services

import (
	"context"
	"errors"
	"fmt"

	"blogcomments/app/models"
	"blogcomments/app/repositories"

	"github.com/rs/zerolog"
)

// ErrCommentNotCreated means the store accepted the insert but produced no
// document.
var ErrCommentNotCreated = errors.New("comment was not created")

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	blogRepo    repositories.BlogRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// ListBlogComments returns every comment on blogID, newest first. The blog
// itself is not looked up, so an unknown blog yields an empty list.
func (s *CommentService) ListBlogComments(ctx context.Context, blogID string) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("list comments of blog %s: %w", blogID, err)
	}
	return comments, nil
}

// PostComment stores a comment by userID and bumps the blog's comment
// counter. A failed bump is logged and otherwise ignored; the comment stays.
func (s *CommentService) PostComment(ctx context.Context, userID string, req models.CommentRequest) (*models.Comment, error) {
	comment := models.NewComment(req, userID)
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if comment.ID == "" {
		return nil, ErrCommentNotCreated
	}

	if err := s.blogRepo.IncrementComments(ctx, comment.BlogID, 1); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("blog_id", comment.BlogID).
			Str("comment_id", comment.ID).
			Msg("failed to increment blog comment counter")
	}

	return comment, nil
}

// UpdateComment replaces the content of a comment userID wrote. A missing
// comment and someone else's comment both return repositories.ErrNotFound.
func (s *CommentService) UpdateComment(ctx context.Context, id, userID string, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.UpdateContent(ctx, id, userID, req.Content)
	if err != nil {
		return nil, fmt.Errorf("update comment %s: %w", id, err)
	}
	return comment, nil
}

// DeleteComment removes a comment userID wrote. It returns
// repositories.ErrNotFound when nothing was deleted. The blog counter is left
// alone.
func (s *CommentService) DeleteComment(ctx context.Context, id, userID string) error {
	deleted, err := s.commentRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	if deleted == 0 {
		return fmt.Errorf("delete comment %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}
