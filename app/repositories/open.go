package repositories

import (
	"context"
	"fmt"

	"blogcomments/app/config"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Comments CommentRepository
	Blogs    BlogRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
	mongo *MongoStore
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverBadger:
		badgerStore, err := NewBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return NewBadgerBackedStore(badgerStore), nil
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		mongoStore := NewMongoStore(client, cfg.MongoDatabase)
		return &Store{
			Comments: mongoStore.Comments(),
			Blogs:    mongoStore.Blogs(),
			ping:     mongoStore.Ping,
			close:    mongoStore.Close,
			mongo:    mongoStore,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// NewBadgerBackedStore wraps an already open Badger store.
func NewBadgerBackedStore(s *BadgerStore) *Store {
	return &Store{
		Comments: s.Comments(),
		Blogs:    s.Blogs(),
		ping:     s.Ping,
		close: func(context.Context) error {
			return s.Close()
		},
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// EnsureIndexes creates the Mongo indexes. It reports false for backends
// without secondary indexes.
func (s *Store) EnsureIndexes(ctx context.Context) (bool, error) {
	if s.mongo == nil {
		return false, nil
	}
	return true, EnsureIndexes(ctx, s.mongo.Database())
}
