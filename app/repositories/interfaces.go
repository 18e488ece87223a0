package repositories

import (
	"context"

	"blogcomments/app/models"
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	// IncrementComments adds delta to the blog's comment counter. It returns
	// ErrNotFound when no blog has that id.
	IncrementComments(ctx context.Context, id string, delta int) error
}

// CommentRepository defines the interface for comment data access.
//
// UpdateContent and DeleteOwned match on the comment id and its author in a
// single store operation, so a comment owned by someone else behaves exactly
// like a missing one.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByBlog returns the blog's comments newest first.
	ListByBlog(ctx context.Context, blogID string) ([]*models.Comment, error)
	UpdateContent(ctx context.Context, id, ownerID, content string) (*models.Comment, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (int64, error)
}
