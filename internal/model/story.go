package model

import (
	"encoding/json"
	"fmt"
)

// Story is the ordered narrative of one user's actions, keyed by distinct_id.
type Story struct {
	ID              string            `json:"id"`
	SessionID       string            `json:"session_id"`
	Title           string            `json:"title"`
	StartTimestamp  string            `json:"startTimestamp"`
	EndTimestamp    string            `json:"endTimestamp"`
	InitialState    map[string]string `json:"initialState"`
	FinalState      map[string]string `json:"finalState"`
	Actions         []Action          `json:"actions"`
	NetworkRequests []map[string]any  `json:"networkRequests"`
}

// StoryFilter selects stories by session or by id. Zero value matches all.
type StoryFilter struct {
	SessionID string
	StoryID   string
}

// StoryFromJSON decodes one stored or transported story document. Documents
// missing required fields are rejected so callers can drop them with a
// warning instead of carrying partial records into detection or generation.
func StoryFromJSON(doc []byte) (Story, error) {
	var story Story
	if err := json.Unmarshal(doc, &story); err != nil {
		return Story{}, fmt.Errorf("decode story: %w", err)
	}
	if story.ID == "" {
		return Story{}, fmt.Errorf("story document missing id")
	}
	if story.SessionID == "" {
		return Story{}, fmt.Errorf("story %s missing session_id", story.ID)
	}
	if story.Title == "" {
		return Story{}, fmt.Errorf("story %s missing title", story.ID)
	}
	if story.StartTimestamp == "" || story.EndTimestamp == "" {
		return Story{}, fmt.Errorf("story %s missing timestamps", story.ID)
	}
	return story, nil
}
