package mocknotifier

import (
	"context"

	"story-pipeline/internal/model"
	"story-pipeline/internal/notify"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

// Interface compliance check
var _ notify.Notifier = &Notifier{}

func (m *Notifier) NotifyProcessed(ctx context.Context, events []model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
