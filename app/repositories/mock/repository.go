package mock

import (
	"context"
	"sync"
	"time"

	"blogcomments/app/models"
	"blogcomments/app/repositories"
)

// BlogRepository is an in-memory BlogRepository. Setting Err makes every
// call fail with it.
type BlogRepository struct {
	Err error

	blogs map[string]*models.Blog
	mutex sync.RWMutex
}

// CommentRepository is an in-memory CommentRepository. Setting Err makes
// every call fail with it.
type CommentRepository struct {
	Err error

	comments map[string]*models.Comment
	mutex    sync.RWMutex
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{
		blogs: make(map[string]*models.Blog),
	}
}

func (m *BlogRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blogs = make(map[string]*models.Blog)
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string]*models.Comment),
	}
}

func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments = make(map[string]*models.Comment)
}

// BlogRepository implementation
func (m *BlogRepository) Create(_ context.Context, blog *models.Blog) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog.BeforeCreate()
	stored := *blog
	m.blogs[blog.ID] = &stored
	return nil
}

func (m *BlogRepository) GetByID(_ context.Context, id string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *blog
	return &found, nil
}

func (m *BlogRepository) IncrementComments(_ context.Context, id string, delta int) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog, exists := m.blogs[id]
	if !exists {
		return repositories.ErrNotFound
	}
	blog.Comments += delta
	return nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(_ context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.BeforeCreate()
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *CommentRepository) GetByID(_ context.Context, id string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *comment
	return &found, nil
}

func (m *CommentRepository) ListByBlog(_ context.Context, blogID string) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.BlogID == blogID {
			found := *comment
			comments = append(comments, &found)
		}
	}
	repositories.SortNewestFirst(comments)
	return comments, nil
}

func (m *CommentRepository) UpdateContent(_ context.Context, id, ownerID, content string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment, exists := m.comments[id]
	if !exists || !comment.OwnedBy(ownerID) {
		return nil, repositories.ErrNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	updated := *comment
	return &updated, nil
}

func (m *CommentRepository) DeleteOwned(_ context.Context, id, ownerID string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment, exists := m.comments[id]
	if !exists || !comment.OwnedBy(ownerID) {
		return 0, nil
	}
	delete(m.comments, id)
	return 1, nil
}

// Count returns the number of stored comments.
func (m *CommentRepository) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.comments)
}

var (
	_ repositories.BlogRepository    = (*BlogRepository)(nil)
	_ repositories.CommentRepository = (*CommentRepository)(nil)
)
