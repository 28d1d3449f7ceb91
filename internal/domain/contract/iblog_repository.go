package contract

import (
	"context"
	"errors"

	"github.com/acmchapter/portal-api/internal/domain/entity"
)

// ErrBlogNotFound is returned when no blog exists for the given identifier.
var ErrBlogNotFound = errors.New("blog not found")

// ErrInvalidBlogID is returned when the identifier is not a valid ObjectID hex.
var ErrInvalidBlogID = errors.New("invalid blog id")

// UpvoteResult reports the outcome of a RecordUpvote call. Recorded is false
// when the client had already upvoted and the call was a no-op.
type UpvoteResult struct {
	UpvoteCount int  `json:"upvoteCount"`
	Recorded    bool `json:"recorded"`
}

// IBlogRepository provides methods for reading blogs and recording upvotes.
type IBlogRepository interface {
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	// RecordUpvote must perform the membership test, set insert and counter
	// increment as one atomic operation on the blog document.
	RecordUpvote(ctx context.Context, blogID, clientID string) (*UpvoteResult, error)
}
