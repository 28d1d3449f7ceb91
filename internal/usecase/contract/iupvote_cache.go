package usecasecontract

import "context"

// IUpvoteCache defines optional caching for upvote lookups. Only positive
// membership is ever cached: an upvote can never be retracted, so a cached
// "has upvoted" answer can never go stale while the blog exists. Negative
// answers always come from the store. One known window: deleting a blog does
// not purge its cached entries, so a check against a deleted blog may answer
// "has upvoted" instead of not-found until the membership TTL lapses.
// Never-cached identifiers are unaffected and still report not-found.
type IUpvoteCache interface {
	MarkUpvoted(ctx context.Context, blogID, clientID string) error
	HasUpvoted(ctx context.Context, blogID, clientID string) (bool, error)

	// Abuse detection cache helpers
	AddRecentUpvoteByIP(ctx context.Context, ip, blogID string, ttlSeconds int64) error
	GetRecentUpvoteCountByIP(ctx context.Context, ip string) (int64, error)
}
