package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"story-pipeline/internal/model"
	"story-pipeline/internal/notify"
	"story-pipeline/internal/repository"
)

// EventService ingests raw event batches: validate, derive session sets,
// persist, then notify the story service best-effort.
type EventService interface {
	ProcessEvents(ctx context.Context, events []model.Event) (model.ProcessResult, error)
}

type eventService struct {
	repo          repository.Repository
	notifier      notify.Notifier
	notifyTimeout time.Duration
}

// NewEventService constructs an eventService.
func NewEventService(repo repository.Repository, notifier notify.Notifier, notifyTimeout time.Duration) EventService {
	return &eventService{
		repo:          repo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// ProcessEvents persists a validated batch and its derived sessions. Any
// persistence failure aborts and surfaces to the caller; the downstream
// notification runs detached and can only ever log its failure.
func (s *eventService) ProcessEvents(ctx context.Context, events []model.Event) (model.ProcessResult, error) {
	if len(events) == 0 {
		return model.ProcessResult{}, &ValidationError{Message: "no events provided"}
	}
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return model.ProcessResult{}, &ValidationError{Message: fmt.Sprintf("event %d: %v", i, err)}
		}
	}

	sessions := deriveSessionSets(events)

	if err := s.repo.UpsertEvents(ctx, events); err != nil {
		return model.ProcessResult{}, fmt.Errorf("persist events: %w", err)
	}
	if err := s.repo.UpsertSessions(ctx, sessions); err != nil {
		return model.ProcessResult{}, fmt.Errorf("persist sessions: %w", err)
	}

	go s.notifyDetached(events)

	return model.ProcessResult{
		Status:  "success",
		Message: fmt.Sprintf("%d events processed", len(events)),
	}, nil
}

// notifyDetached runs outside the request path with its own deadline, so a
// slow or dead story service never rolls back completed persistence.
func (s *eventService) notifyDetached(events []model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyProcessed(ctx, events); err != nil {
		log.Printf("notify stories service: %v", err)
	}
}

// deriveSessionSets deduplicates session ids per user. Output is sorted on
// both levels so persisted rows are reproducible for identical input.
func deriveSessionSets(events []model.Event) []model.SessionSet {
	byUser := make(map[string]map[string]struct{})
	for _, event := range events {
		distinctID := event.Properties.DistinctID
		if byUser[distinctID] == nil {
			byUser[distinctID] = make(map[string]struct{})
		}
		byUser[distinctID][event.Properties.SessionID] = struct{}{}
	}

	sets := make([]model.SessionSet, 0, len(byUser))
	for distinctID, sessionIDs := range byUser {
		sessions := make([]string, 0, len(sessionIDs))
		for sessionID := range sessionIDs {
			sessions = append(sessions, sessionID)
		}
		sort.Strings(sessions)
		sets = append(sets, model.SessionSet{DistinctID: distinctID, Sessions: sessions})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].DistinctID < sets[j].DistinctID })
	return sets
}
