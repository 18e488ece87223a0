// Package serializers maps stored documents to their public JSON shape.
package serializers

import (
	"errors"
	"time"

	"blogcomments/app/models"
)

// ErrNilDocument is returned when asked to serialize a nil document.
var ErrNilDocument = errors.New("cannot serialize a nil document")

// Comment is the public representation of a comment.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	BlogID    string    `json:"blogId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Blog is the public representation of a blog.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SerializeComment maps a stored comment to its public shape.
func SerializeComment(comment *models.Comment) (Comment, error) {
	if comment == nil {
		return Comment{}, ErrNilDocument
	}
	return Comment{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedBy: comment.CreatedBy,
		BlogID:    comment.BlogID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}, nil
}

// SerializeComments keeps the input order and never returns nil, so an empty
// list encodes as [] rather than null.
func SerializeComments(comments []*models.Comment) ([]Comment, error) {
	out := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		serialized, err := SerializeComment(comment)
		if err != nil {
			return nil, err
		}
		out = append(out, serialized)
	}
	return out, nil
}

// SerializeBlog maps a stored blog to its public shape.
func SerializeBlog(blog *models.Blog) (Blog, error) {
	if blog == nil {
		return Blog{}, ErrNilDocument
	}
	return Blog{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		CreatedBy: blog.CreatedBy,
		Comments:  blog.Comments,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}, nil
}
