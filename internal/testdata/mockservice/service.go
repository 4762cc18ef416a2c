package mockservice

import (
	"context"

	"story-pipeline/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventService struct {
	mock.Mock
}

func (m *EventService) ProcessEvents(ctx context.Context, events []model.Event) (model.ProcessResult, error) {
	args := m.Called(ctx, events)
	return args.Get(0).(model.ProcessResult), args.Error(1)
}

type StoryService struct {
	mock.Mock
}

func (m *StoryService) SaveStories(ctx context.Context, events []model.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *StoryService) GetStories(ctx context.Context, filter model.StoryFilter) ([]model.Story, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]model.Story), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoryService) GetPatterns(ctx context.Context, sessionID string) (model.PatternReport, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(model.PatternReport), args.Error(1)
	}
	return nil, args.Error(1)
}

type TestService struct {
	mock.Mock
}

func (m *TestService) GenerateTests(ctx context.Context, storyID string) ([]model.Test, error) {
	args := m.Called(ctx, storyID)
	if v := args.Get(0); v != nil {
		return v.([]model.Test), args.Error(1)
	}
	return nil, args.Error(1)
}
