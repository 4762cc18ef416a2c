package mockstoryfetcher

import (
	"context"

	"story-pipeline/internal/client"
	"story-pipeline/internal/model"

	"github.com/stretchr/testify/mock"
)

type Fetcher struct {
	mock.Mock
}

// Interface compliance check
var _ client.StoryFetcher = &Fetcher{}

func (m *Fetcher) FetchStories(ctx context.Context, storyID string) ([]model.Story, error) {
	args := m.Called(ctx, storyID)
	if v := args.Get(0); v != nil {
		return v.([]model.Story), args.Error(1)
	}
	return nil, args.Error(1)
}
