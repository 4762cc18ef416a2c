package service

import (
	"context"
	"log"

	"story-pipeline/internal/client"
	"story-pipeline/internal/model"
	"story-pipeline/internal/testgen"
)

// TestService turns stories into generated automation tests. Stories come
// from the story service over HTTP, not from the store directly.
type TestService interface {
	GenerateTests(ctx context.Context, storyID string) ([]model.Test, error)
}

type testService struct {
	stories client.StoryFetcher
}

// NewTestService constructs a testService.
func NewTestService(stories client.StoryFetcher) TestService {
	return &testService{stories: stories}
}

func (s *testService) GenerateTests(ctx context.Context, storyID string) ([]model.Test, error) {
	stories, err := s.stories.FetchStories(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		log.Printf("no stories found for story_id=%q", storyID)
		return nil, nil
	}

	tests := make([]model.Test, 0, len(stories))
	for _, story := range stories {
		tests = append(tests, testgen.FromStory(story))
	}
	return tests, nil
}
