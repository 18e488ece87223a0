package repositories

import (
	"context"
	"errors"
	"time"

	"blogcomments/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommentRepository implements CommentRepository on a Mongo collection
type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(CommentsCollection)}
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.BeforeCreate()
	comment.CreatedAt = mongoTime(comment.CreatedAt)
	comment.UpdatedAt = mongoTime(comment.UpdatedAt)

	_, err := r.coll.InsertOne(ctx, comment)
	return err
}

func (r *MongoCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *MongoCommentRepository) ListByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"blogId": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *MongoCommentRepository) UpdateContent(ctx context.Context, id, ownerID, content string) (*models.Comment, error) {
	filter := bson.M{"_id": id, "createdBy": ownerID}
	update := bson.M{
		"$set": bson.M{
			"content":   content,
			"updatedAt": mongoTime(time.Now()),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *MongoCommentRepository) DeleteOwned(ctx context.Context, id, ownerID string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "createdBy": ownerID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
