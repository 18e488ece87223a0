package repositories

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore owns a Badger database and hands out the repositories backed
// by it.
type BadgerStore struct {
	db       *badger.DB
	mutex    sync.Mutex
	closed   bool
	dbPath   string
	isTestDB bool
}

// NewBadgerStore opens (or creates) a Badger database at path. An empty path
// opens a throwaway database in a fresh temporary directory that
// is removed on Close.
func NewBadgerStore(path string) (*BadgerStore, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "blogcomments_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %w", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if isTest {
		opts = opts.WithSyncWrites(false).WithNumGoroutines(1)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

// NewInMemoryBadgerStore opens a Badger database that never touches disk.
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// DB exposes the underlying database.
func (s *BadgerStore) DB() *badger.DB {
	return s.db
}

func (s *BadgerStore) Comments() *BadgerCommentRepository {
	return NewBadgerCommentRepository(s.db)
}

func (s *BadgerStore) Blogs() *BadgerBlogRepository {
	return NewBadgerBlogRepository(s.db)
}

// Ping reports whether the database is still open.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return badger.ErrDBClosed
	}
	return nil
}

// Clear drops every key in the database.
func (s *BadgerStore) Clear() error {
	return s.db.DropAll()
}

// Backup writes a full dump of the database to w.
func (s *BadgerStore) Backup(w io.Writer) (uint64, error) {
	return s.db.Backup(w, 0)
}

// Restore loads a dump produced by Backup.
func (s *BadgerStore) Restore(r io.Reader) error {
	return s.db.Load(r, 256)
}

func (s *BadgerStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return err
	}

	// Clean up test database
	if s.isTestDB {
		if err := os.RemoveAll(s.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test database: %w", err)
		}
	}
	return nil
}
