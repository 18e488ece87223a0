package repositories

import (
	"context"
	"errors"

	"blogcomments/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBlogRepository implements BlogRepository on a Mongo collection
type MongoBlogRepository struct {
	coll *mongo.Collection
}

func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{coll: db.Collection(BlogsCollection)}
}

func (r *MongoBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.BeforeCreate()
	blog.CreatedAt = mongoTime(blog.CreatedAt)
	blog.UpdatedAt = mongoTime(blog.UpdatedAt)

	_, err := r.coll.InsertOne(ctx, blog)
	return err
}

func (r *MongoBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *MongoBlogRepository) IncrementComments(ctx context.Context, id string, delta int) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"comments": delta}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
