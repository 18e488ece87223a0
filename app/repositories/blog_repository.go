package repositories

import (
	"context"
	"errors"
	"fmt"

	"blogcomments/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Create creates a new blog
func (r *BadgerBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blog.BeforeCreate()

	data, err := marshalEntity(blog)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blogKey(blog.ID), data)
	})
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blog *models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		blog, err = getBlog(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// IncrementComments bumps the comment counter inside a single transaction.
// Concurrent increments of the same blog are serialized, none is dropped.
func (r *BadgerBlogRepository) IncrementComments(ctx context.Context, id string, delta int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return updateTxn(ctx, r.db, func(txn *badger.Txn) error {
		blog, err := getBlog(txn, id)
		if err != nil {
			return err
		}
		blog.Comments += delta

		data, err := marshalEntity(blog)
		if err != nil {
			return err
		}
		return txn.Set(blogKey(id), data)
	})
}

func getBlog(txn *badger.Txn, id string) (*models.Blog, error) {
	item, err := txn.Get(blogKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var blog models.Blog
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &blog)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read blog %s: %w", id, err)
	}
	return &blog, nil
}
