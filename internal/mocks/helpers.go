package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockClientForTest creates a new mock peerswap Client for testing
func NewMockClientForTest(t *testing.T) *MockClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockClient(ctrl)
}
