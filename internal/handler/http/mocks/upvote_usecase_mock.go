package mocks

import (
	"context"

	"github.com/acmchapter/portal-api/internal/domain/contract"
	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
)

// MockUpvoteUsecase is a mock implementation of the IUpvoteUseCase interface
type MockUpvoteUsecase struct {
	// Control mock behavior
	FailWith error // returned from every call when non-nil

	// Return values
	MockHasUpvoted  bool
	MockUpvoteCount int
	MockRecorded    bool

	// Captured arguments from the last call
	LastBlogID   string
	LastClientID string
}

// Ensure MockUpvoteUsecase implements the interface handler.NewUpvoteHandler expects
var _ usecasecontract.IUpvoteUseCase = (*MockUpvoteUsecase)(nil)

func NewMockUpvoteUsecase() *MockUpvoteUsecase {
	return &MockUpvoteUsecase{
		MockUpvoteCount: 7,
		MockRecorded:    true,
	}
}

func (m *MockUpvoteUsecase) CheckUpvoted(ctx context.Context, blogID, clientID string) (bool, error) {
	m.LastBlogID, m.LastClientID = blogID, clientID
	if m.FailWith != nil {
		return false, m.FailWith
	}
	return m.MockHasUpvoted, nil
}

func (m *MockUpvoteUsecase) RecordUpvote(ctx context.Context, blogID, clientID string) (*contract.UpvoteResult, error) {
	m.LastBlogID, m.LastClientID = blogID, clientID
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return &contract.UpvoteResult{UpvoteCount: m.MockUpvoteCount, Recorded: m.MockRecorded}, nil
}

func (m *MockUpvoteUsecase) GetUpvoteCount(ctx context.Context, blogID string) (int, error) {
	m.LastBlogID = blogID
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return m.MockUpvoteCount, nil
}
