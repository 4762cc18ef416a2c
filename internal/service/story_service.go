package service

import (
	"context"
	"fmt"
	"log"

	"story-pipeline/internal/model"
	"story-pipeline/internal/repository"
	"story-pipeline/internal/story"
)

// Cache is the TTL store the story read path uses.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Flush()
}

// StoryService builds, stores and reads user stories and reports behavioral
// patterns over them.
type StoryService interface {
	SaveStories(ctx context.Context, events []model.Event) (int, error)
	GetStories(ctx context.Context, filter model.StoryFilter) ([]model.Story, error)
	GetPatterns(ctx context.Context, sessionID string) (model.PatternReport, error)
}

type storyService struct {
	repo  repository.Repository
	cache Cache
}

// NewStoryService constructs a storyService.
func NewStoryService(repo repository.Repository, cache Cache) StoryService {
	return &storyService{repo: repo, cache: cache}
}

// SaveStories groups the supplied events into stories and upserts them.
// Grouping is a full recompute over exactly the events passed in: a repeated
// call for the same user REPLACES the stored story, it does not merge.
// Callers wanting cumulative narratives must resend the full event history.
func (s *storyService) SaveStories(ctx context.Context, events []model.Event) (int, error) {
	if len(events) == 0 {
		return 0, &ValidationError{Message: "no events provided"}
	}
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return 0, &ValidationError{Message: fmt.Sprintf("event %d: %v", i, err)}
		}
	}

	stories := story.BuildStories(events)
	if len(stories) == 0 {
		return 0, &ValidationError{Message: "no valid stories could be built from the batch"}
	}

	if err := s.repo.UpsertStories(ctx, stories); err != nil {
		return 0, fmt.Errorf("persist stories: %w", err)
	}
	s.cache.Flush()

	return len(stories), nil
}

// GetStories reads stored story documents matching the filter, coercing each
// into a Story. A document that fails coercion is logged and skipped.
func (s *storyService) GetStories(ctx context.Context, filter model.StoryFilter) ([]model.Story, error) {
	key := storiesCacheKey(filter)
	if cached, ok := s.cache.Get(key); ok {
		if stories, ok := cached.([]model.Story); ok {
			return stories, nil
		}
	}

	docs, err := s.repo.FindStories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find stories: %w", err)
	}

	stories := make([]model.Story, 0, len(docs))
	for _, doc := range docs {
		st, err := model.StoryFromJSON(doc)
		if err != nil {
			log.Printf("skipping malformed story document: %v", err)
			continue
		}
		stories = append(stories, st)
	}

	s.cache.Set(key, stories)
	return stories, nil
}

// GetPatterns runs pattern detection over stored stories, optionally
// restricted to one session. An empty story set yields an empty report.
func (s *storyService) GetPatterns(ctx context.Context, sessionID string) (model.PatternReport, error) {
	stories, err := s.GetStories(ctx, model.StoryFilter{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return story.DetectPatterns(stories), nil
}

func storiesCacheKey(filter model.StoryFilter) string {
	return "stories:" + filter.SessionID + ":" + filter.StoryID
}
