package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"blogcomments/app/models"

	"github.com/dgraph-io/badger/v4"
)

var ErrNotFound = errors.New("record not found")

const (
	// Key prefixes for different entity types
	BlogKeyPrefix    = "blog:"
	CommentKeyPrefix = "comment:"

	// BlogCommentsIndexPrefix keys are idx:blog_comments:<blogId>:<commentId>
	// with an empty value.
	BlogCommentsIndexPrefix = "idx:blog_comments:"
)

func blogKey(id string) []byte {
	return []byte(BlogKeyPrefix + id)
}

func commentKey(id string) []byte {
	return []byte(CommentKeyPrefix + id)
}

func blogCommentsPrefix(blogID string) []byte {
	return []byte(BlogCommentsIndexPrefix + blogID + ":")
}

func blogCommentIndexKey(blogID, commentID string) []byte {
	return append(blogCommentsPrefix(blogID), commentID...)
}

// updateTxn runs fn in a read-write transaction, rerunning it while Badger
// reports a conflict with a concurrent transaction. fn must be safe to rerun.
func updateTxn(ctx context.Context, db *badger.DB, fn func(txn *badger.Txn) error) error {
	for {
		err := db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// SortNewestFirst orders comments by creation time, newest first.
func SortNewestFirst(comments []*models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].NewerThan(comments[j])
	})
}
