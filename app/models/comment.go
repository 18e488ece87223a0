package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewComment builds an unsaved comment authored by createdBy.
func NewComment(req CommentRequest, createdBy string) *Comment {
	return &Comment{
		Content:   req.Content,
		BlogID:    req.BlogID,
		CreatedBy: createdBy,
	}
}

// BeforeCreate assigns an id and timestamps to fields that are still empty.
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
}

// OwnedBy reports whether userID authored the comment.
func (c *Comment) OwnedBy(userID string) bool {
	return userID != "" && c.CreatedBy == userID
}

// NewerThan orders comments newest first, falling back to the id when two
// comments share a timestamp.
func (c *Comment) NewerThan(other *Comment) bool {
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.After(other.CreatedAt)
	}
	return c.ID > other.ID
}
