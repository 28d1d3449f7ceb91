package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UpvoteCacheStore is the Redis implementation of IUpvoteCache. It caches
// positive upvote membership (safe to cache forever since upvotes are never
// retracted; a TTL bounds memory anyway) and tracks recent upvote activity
// per client IP for abuse detection.
type UpvoteCacheStore struct {
	rdb           *redis.Client
	membershipTTL time.Duration
}

func NewUpvoteCacheStore(rdb *redis.Client) *UpvoteCacheStore {
	return &UpvoteCacheStore{
		rdb:           rdb,
		membershipTTL: 24 * time.Hour,
	}
}

func upvotedKey(blogID, clientID string) string {
	return fmt.Sprintf("blog:upvoted:%s:%s", blogID, clientID)
}

// MarkUpvoted records that clientID has upvoted the blog.
func (c *UpvoteCacheStore) MarkUpvoted(ctx context.Context, blogID, clientID string) error {
	return c.rdb.Set(ctx, upvotedKey(blogID, clientID), "1", c.membershipTTL).Err()
}

// HasUpvoted reports a cached positive membership. A miss means "ask the
// store", never "no".
func (c *UpvoteCacheStore) HasUpvoted(ctx context.Context, blogID, clientID string) (bool, error) {
	err := c.rdb.Get(ctx, upvotedKey(blogID, clientID)).Err()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --- Abuse detection ---
// Redis sets with TTL track which blogs each IP has upvoted recently.
func recentUpvotesByIPKey(ip string) string { return fmt.Sprintf("blog:recentupvotes:ip:%s", ip) }

// AddRecentUpvoteByIP adds a blogID to the recent upvotes set for an IP, with TTL (ttlSeconds)
func (c *UpvoteCacheStore) AddRecentUpvoteByIP(ctx context.Context, ip, blogID string, ttlSeconds int64) error {
	key := recentUpvotesByIPKey(ip)
	if err := c.rdb.SAdd(ctx, key, blogID).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, time.Duration(ttlSeconds)*time.Second).Err()
}

// GetRecentUpvoteCountByIP returns the count of distinct blogs this IP upvoted in the window
func (c *UpvoteCacheStore) GetRecentUpvoteCountByIP(ctx context.Context, ip string) (int64, error) {
	return c.rdb.SCard(ctx, recentUpvotesByIPKey(ip)).Result()
}
