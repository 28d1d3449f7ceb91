package usecasecontract

import (
	"context"

	"github.com/acmchapter/portal-api/internal/domain/contract"
)

type IUpvoteUseCase interface {
	CheckUpvoted(ctx context.Context, blogID, clientID string) (bool, error)
	RecordUpvote(ctx context.Context, blogID, clientID string) (*contract.UpvoteResult, error)
	GetUpvoteCount(ctx context.Context, blogID string) (int, error)
}
