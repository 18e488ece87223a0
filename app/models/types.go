package models

import "time"

// Blog is the parent document a comment is attached to. Comments is a
// denormalized counter bumped on every new comment and never decremented.
type Blog struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	Comments  int       `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Comment represents a comment on a blog.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	BlogID    string    `json:"blogId" bson:"blogId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=1000"`
	BlogID  string `json:"blogId" validate:"required,notblank,max=64"`
}

// UpdateCommentRequest is the body of a comment edit.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=1000"`
}

// BlogRequest is the body of a new blog.
type BlogRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=100"`
	Content string `json:"content" validate:"required,min=10"`
}
