package story

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"story-pipeline/internal/model"
)

// BuildStories groups a batch of events into one story per distinct_id.
// Input order is irrelevant: each group is sorted chronologically by parsed
// timestamp before the story is assembled, so mixed "Z" and "+00:00"
// representations compare correctly. A group that cannot be assembled is
// logged and skipped rather than failing the whole batch. The result is
// ordered by story id.
func BuildStories(events []model.Event) []model.Story {
	groups := make(map[string][]model.Event)
	for _, event := range events {
		distinctID := event.Properties.DistinctID
		groups[distinctID] = append(groups[distinctID], event)
	}

	stories := make([]model.Story, 0, len(groups))
	for distinctID, group := range groups {
		story, err := buildStory(distinctID, group)
		if err != nil {
			log.Printf("skipping story for distinct_id=%s: %v", distinctID, err)
			continue
		}
		stories = append(stories, story)
	}

	sort.Slice(stories, func(i, j int) bool { return stories[i].ID < stories[j].ID })
	return stories
}

type timedEvent struct {
	at    time.Time
	event model.Event
}

func buildStory(distinctID string, events []model.Event) (model.Story, error) {
	timed := make([]timedEvent, len(events))
	for i, event := range events {
		at, err := model.ParseTimestamp(event.Timestamp)
		if err != nil {
			return model.Story{}, err
		}
		timed[i] = timedEvent{at: at, event: event}
	}
	sort.SliceStable(timed, func(i, j int) bool { return timed[i].at.Before(timed[j].at) })

	first := timed[0].event
	last := timed[len(timed)-1].event

	actions := make([]model.Action, len(timed))
	for i, te := range timed {
		actions[i] = model.Action{
			Type:   te.event.Properties.EventType,
			Target: te.event.Properties.ElementType,
			Value:  te.event.Properties.ElementText,
		}
	}

	networkRequests, err := collectNetworkRequests(timed)
	if err != nil {
		return model.Story{}, err
	}

	return model.Story{
		ID:              "story-" + distinctID,
		SessionID:       first.Properties.SessionID,
		Title:           fmt.Sprintf("User Story %s", distinctID),
		StartTimestamp:  first.Timestamp,
		EndTimestamp:    last.Timestamp,
		InitialState:    map[string]string{"url": first.Properties.CurrentURL},
		FinalState:      map[string]string{"url": last.Properties.CurrentURL},
		Actions:         actions,
		NetworkRequests: networkRequests,
	}, nil
}

var jsonNull = []byte("null")

// collectNetworkRequests keeps, in chronological order, the networkRequest
// payload of every event that carries the key. An explicit null stays in the
// list as a nil entry.
func collectNetworkRequests(timed []timedEvent) ([]map[string]any, error) {
	requests := make([]map[string]any, 0)
	for _, te := range timed {
		raw := te.event.Properties.NetworkRequest
		if len(raw) == 0 {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			requests = append(requests, nil)
			continue
		}
		var request map[string]any
		if err := json.Unmarshal(raw, &request); err != nil {
			return nil, fmt.Errorf("decode networkRequest: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, nil
}
