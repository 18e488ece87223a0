package services

import (
	"context"
	"fmt"

	"blogcomments/app/models"
	"blogcomments/app/repositories"
)

// BlogService handles business logic for blogs
type BlogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// CreateBlog stores a blog owned by userID with no comments.
func (s *BlogService) CreateBlog(ctx context.Context, userID string, req models.BlogRequest) (*models.Blog, error) {
	blog := models.NewBlog(req, userID)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog %s: %w", id, err)
	}
	return blog, nil
}
