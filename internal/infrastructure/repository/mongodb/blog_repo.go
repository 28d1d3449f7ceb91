package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/acmchapter/portal-api/internal/domain/contract"
	"github.com/acmchapter/portal-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepository represents the MongoDB implementation of the IBlogRepository interface.
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

// parseBlogID validates the identifier against the ObjectID hex format.
func parseBlogID(blogID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("blog id '%s': %w", blogID, contract.ErrInvalidBlogID)
	}
	return oid, nil
}

// GetBlogByID retrieves a single blog post by its unique id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	oid, err := parseBlogID(blogID)
	if err != nil {
		return nil, err
	}

	var blog entity.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id '%s': %w", blogID, contract.ErrBlogNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}

	return &blog, nil
}

// RecordUpvote adds clientID to the blog's upvoters set and increments the
// upvote counter as a single conditional update on the blog document. The
// filter excludes documents that already contain clientID, so the membership
// test, $addToSet and $inc are one indivisible step from the store's point
// of view. Concurrent calls with the same clientID match the filter at most
// once; the losers fall through to the duplicate path.
func (r *BlogRepository) RecordUpvote(ctx context.Context, blogID, clientID string) (*contract.UpvoteResult, error) {
	oid, err := parseBlogID(blogID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id":      oid,
		"upvoters": bson.M{"$ne": clientID},
	}
	update := bson.M{
		"$addToSet": bson.M{"upvoters": clientID},
		"$inc":      bson.M{"upvoteCount": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog entity.Blog
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog)
	if err == nil {
		return &contract.UpvoteResult{UpvoteCount: blog.UpvoteCount, Recorded: true}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to record upvote: %w", err)
	}

	// No match: either the blog does not exist, or this client already
	// upvoted. Disambiguate with a plain read.
	existing, err := r.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return &contract.UpvoteResult{UpvoteCount: existing.UpvoteCount, Recorded: false}, nil
}
