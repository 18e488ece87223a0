package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	BlogsCollection    = "blogs"
	CommentsCollection = "comments"
)

// ConnectMongo connects to uri and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// MongoStore hands out the repositories backed by one Mongo database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

func (s *MongoStore) Comments() *MongoCommentRepository {
	return NewMongoCommentRepository(s.db)
}

func (s *MongoStore) Blogs() *MongoBlogRepository {
	return NewMongoBlogRepository(s.db)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the comment queries rely on, skipping
// the ones that already exist.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	comments := db.Collection(CommentsCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("blogId_createdAt"),
		},
		{
			Keys:    bson.D{{Key: "createdBy", Value: 1}},
			Options: options.Index().SetName("createdBy"),
		},
	}

	for _, index := range indexes {
		if err := createIndexIfNotExists(ctx, comments, index); err != nil {
			return err
		}
	}
	return nil
}

func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, index mongo.IndexModel) error {
	logger := zerolog.Ctx(ctx)
	indexName := *index.Options.Name

	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var existing bson.M
		if err := cursor.Decode(&existing); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}
		if name, ok := existing["name"].(string); ok && name == indexName {
			logger.Debug().Str("index", indexName).Str("collection", coll.Name()).Msg("index already exists")
			return nil
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}
	logger.Info().Str("index", indexName).Str("collection", coll.Name()).Msg("created index")
	return nil
}

// mongoTime truncates t to the millisecond precision BSON dates keep.
func mongoTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
