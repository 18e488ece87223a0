package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogcomments/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
// Comments live under comment:<id>; a per-blog index key lets ListByBlog
// avoid a full scan.
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create stores a new comment together with its blog index entry
func (r *BadgerCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	comment.BeforeCreate()

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(commentKey(comment.ID), data); err != nil {
			return err
		}
		return txn.Set(blogCommentIndexKey(comment.BlogID, comment.ID), nil)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var comment *models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		comment, err = getComment(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByBlog retrieves all comments for a blog, newest first
func (r *BadgerCommentRepository) ListByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := blogCommentsPrefix(blogID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			commentID := string(it.Item().Key()[len(prefix):])
			comment, err := getComment(txn, commentID)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			// Blog ids containing ':' can share a prefix with another blog.
			if comment.BlogID != blogID {
				continue
			}
			comments = append(comments, comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SortNewestFirst(comments)
	return comments, nil
}

// UpdateContent replaces the content of a comment owned by ownerID. The read
// and the write happen in one transaction; concurrent updates by the owner
// are applied one after another and the last one wins.
func (r *BadgerCommentRepository) UpdateContent(ctx context.Context, id, ownerID, content string) (*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated *models.Comment
	err := updateTxn(ctx, r.db, func(txn *badger.Txn) error {
		comment, err := getComment(txn, id)
		if err != nil {
			return err
		}
		if !comment.OwnedBy(ownerID) {
			return ErrNotFound
		}

		comment.Content = content
		comment.UpdatedAt = time.Now().UTC()

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		if err := txn.Set(commentKey(id), data); err != nil {
			return err
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOwned deletes a comment owned by ownerID and reports how many
// comments were removed
func (r *BadgerCommentRepository) DeleteOwned(ctx context.Context, id, ownerID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var deleted int64
	err := updateTxn(ctx, r.db, func(txn *badger.Txn) error {
		deleted = 0
		comment, err := getComment(txn, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !comment.OwnedBy(ownerID) {
			return nil
		}

		if err := txn.Delete(commentKey(id)); err != nil {
			return err
		}
		if err := txn.Delete(blogCommentIndexKey(comment.BlogID, id)); err != nil {
			return err
		}
		deleted = 1
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func getComment(txn *badger.Txn, id string) (*models.Comment, error) {
	item, err := txn.Get(commentKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &comment)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read comment %s: %w", id, err)
	}
	return &comment, nil
}
