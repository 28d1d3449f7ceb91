package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a published blog post and its upvote state
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
	// Upvoters has membership-only semantics: the stored array carries no
	// ordering meaning and never holds duplicates.
	Upvoters    []string `bson:"upvoters,omitempty" json:"-"`
	UpvoteCount int      `bson:"upvoteCount" json:"upvoteCount"`
}

// HasUpvoter reports whether the given client identifier has already upvoted
// this blog. Documents written before upvote tracking existed have no
// upvoters field at all; a nil slice reads as the empty set.
func (b *Blog) HasUpvoter(clientID string) bool {
	for _, v := range b.Upvoters {
		if v == clientID {
			return true
		}
	}
	return false
}
