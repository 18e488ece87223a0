package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewBlog builds an unsaved blog with a zero comment counter.
func NewBlog(req BlogRequest, createdBy string) *Blog {
	return &Blog{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: createdBy,
	}
}

// BeforeCreate sets up any necessary fields before creation
func (b *Blog) BeforeCreate() {
	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
}
