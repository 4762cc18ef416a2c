package mockrepository

import (
	"context"

	"story-pipeline/internal/model"
	"story-pipeline/internal/repository"

	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

// Interface compliance check
var _ repository.Repository = &Repository{}

func (m *Repository) UpsertEvents(ctx context.Context, events []model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *Repository) UpsertSessions(ctx context.Context, sessions []model.SessionSet) error {
	args := m.Called(ctx, sessions)
	return args.Error(0)
}

func (m *Repository) UpsertStories(ctx context.Context, stories []model.Story) error {
	args := m.Called(ctx, stories)
	return args.Error(0)
}

func (m *Repository) FindStories(ctx context.Context, filter model.StoryFilter) ([][]byte, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([][]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
