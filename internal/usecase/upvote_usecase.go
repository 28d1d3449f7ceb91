package usecase

import (
	"context"
	"fmt"

	"github.com/acmchapter/portal-api/internal/domain/contract"
	"github.com/acmchapter/portal-api/internal/infrastructure/metrics"
	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
)

// UpvoteUsecase handles the business logic for checking and recording
// blog upvotes. The client identifier is whatever the transport layer
// resolved from the request; it is a de-duplication key, not an identity.
type UpvoteUsecase struct {
	blogRepo contract.IBlogRepository
	logger   usecasecontract.IAppLogger

	// Optional: positive-membership cache plus per-IP activity tracking.
	upvoteCache     usecasecontract.IUpvoteCache
	recentWindowSec int64
	flagThreshold   int64
}

// NewUpvoteUsecase creates and returns a new UpvoteUsecase instance.
func NewUpvoteUsecase(blogRepo contract.IBlogRepository, logger usecasecontract.IAppLogger) *UpvoteUsecase {
	return &UpvoteUsecase{
		blogRepo:        blogRepo,
		logger:          logger,
		recentWindowSec: 3600,
		flagThreshold:   10,
	}
}

// SetUpvoteCache enables the optional Redis-backed cache.
func (u *UpvoteUsecase) SetUpvoteCache(cache usecasecontract.IUpvoteCache) {
	u.upvoteCache = cache
}

// SetRecentUpvoteWindow overrides the TTL of the per-IP recent-upvote set.
func (u *UpvoteUsecase) SetRecentUpvoteWindow(seconds int64) {
	if seconds > 0 {
		u.recentWindowSec = seconds
	}
}

// SetRecentUpvoteFlagThreshold overrides how many distinct blogs one IP may
// upvote inside the window before recorded upvotes from it are flagged.
func (u *UpvoteUsecase) SetRecentUpvoteFlagThreshold(n int64) {
	if n > 0 {
		u.flagThreshold = n
	}
}

// CheckUpvoted reports whether clientID has already upvoted the blog.
// A pure read: no document is created or mutated.
func (u *UpvoteUsecase) CheckUpvoted(ctx context.Context, blogID, clientID string) (bool, error) {
	if u.upvoteCache != nil {
		hit, err := u.upvoteCache.HasUpvoted(ctx, blogID, clientID)
		if err != nil {
			u.logger.Warnf("upvote cache lookup failed for blog %s: %v", blogID, err)
		} else if hit {
			return true, nil
		}
	}

	blog, err := u.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		u.logger.Errorf("CheckUpvoted: blog %s: %v", blogID, err)
		return false, fmt.Errorf("failed to check upvote status: %w", err)
	}

	hasUpvoted := blog.HasUpvoter(clientID)
	if hasUpvoted && u.upvoteCache != nil {
		if err := u.upvoteCache.MarkUpvoted(ctx, blogID, clientID); err != nil {
			u.logger.Warnf("upvote cache backfill failed for blog %s: %v", blogID, err)
		}
	}
	return hasUpvoted, nil
}

// RecordUpvote records an upvote from clientID on the blog. Calling it again
// with the same client is a no-op: the result carries Recorded=false and the
// unchanged count. The membership test and increment happen atomically in
// the repository, so concurrent calls from the same client settle on exactly
// one increment.
func (u *UpvoteUsecase) RecordUpvote(ctx context.Context, blogID, clientID string) (*contract.UpvoteResult, error) {
	result, err := u.blogRepo.RecordUpvote(ctx, blogID, clientID)
	if err != nil {
		u.logger.Errorf("RecordUpvote: blog %s: %v", blogID, err)
		return nil, fmt.Errorf("failed to record upvote: %w", err)
	}

	if result.Recorded {
		u.logger.Infof("upvote recorded for blog %s (count=%d)", blogID, result.UpvoteCount)
	}

	// Cache writes are best effort; the store already holds the truth.
	if u.upvoteCache != nil {
		if err := u.upvoteCache.MarkUpvoted(ctx, blogID, clientID); err != nil {
			u.logger.Warnf("upvote cache write failed for blog %s: %v", blogID, err)
		}
		if result.Recorded {
			u.trackUpvoteVelocity(ctx, clientID, blogID)
		}
	}

	return result, nil
}

// trackUpvoteVelocity records the upvote in the per-IP activity set and
// flags clients that upvote more distinct blogs inside the window than the
// threshold allows. Flagging is observational: the upvote already stands,
// de-duplication is the only enforcement. Header-derived identities are
// spoofable, so a hard block here would punish shared NATs more than abusers.
func (u *UpvoteUsecase) trackUpvoteVelocity(ctx context.Context, clientID, blogID string) {
	if err := u.upvoteCache.AddRecentUpvoteByIP(ctx, clientID, blogID, u.recentWindowSec); err != nil {
		u.logger.Warnf("recent-upvote tracking failed for %s: %v", clientID, err)
		return
	}
	count, err := u.upvoteCache.GetRecentUpvoteCountByIP(ctx, clientID)
	if err != nil {
		u.logger.Warnf("recent-upvote count lookup failed for %s: %v", clientID, err)
		return
	}
	if count > u.flagThreshold {
		metrics.UpvotesFlagged.Inc()
		u.logger.Warnf("upvote velocity: client %s upvoted %d blogs within %ds (threshold %d)", clientID, count, u.recentWindowSec, u.flagThreshold)
	}
}

// GetUpvoteCount returns the current upvote total for the blog.
func (u *UpvoteUsecase) GetUpvoteCount(ctx context.Context, blogID string) (int, error) {
	blog, err := u.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		u.logger.Errorf("GetUpvoteCount: blog %s: %v", blogID, err)
		return 0, fmt.Errorf("failed to get upvote count: %w", err)
	}
	return blog.UpvoteCount, nil
}
