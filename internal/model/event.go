package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ElementAttributes carries the subset of DOM attributes the tracker reports.
type ElementAttributes struct {
	Class *string `json:"class,omitempty"`
	Href  *string `json:"href,omitempty"`
}

// Properties holds the telemetry payload captured with each interaction.
// Field names prefixed with "$" follow the tracker's wire format.
type Properties struct {
	DistinctID        string             `json:"distinct_id"`
	SessionID         string             `json:"session_id"`
	JourneyID         *string            `json:"journey_id,omitempty"`
	CurrentURL        string             `json:"$current_url"`
	Host              string             `json:"$host"`
	Pathname          string             `json:"$pathname"`
	Browser           string             `json:"$browser"`
	Device            string             `json:"$device"`
	ScreenHeight      int                `json:"$screen_height"`
	ScreenWidth       int                `json:"$screen_width"`
	EventType         string             `json:"eventType"`
	ElementType       string             `json:"elementType"`
	ElementText       string             `json:"elementText"`
	ElementAttributes *ElementAttributes `json:"elementAttributes,omitempty"`
	Timestamp         string             `json:"timestamp"`
	X                 int                `json:"x"`
	Y                 int                `json:"y"`
	MouseButton       int                `json:"mouseButton"`
	CtrlKey           bool               `json:"ctrlKey"`
	ShiftKey          bool               `json:"shiftKey"`
	AltKey            bool               `json:"altKey"`
	MetaKey           bool               `json:"metaKey"`
	// NetworkRequest stays raw: absent for most events, and an explicit
	// null must be distinguishable from a missing key.
	NetworkRequest json.RawMessage `json:"networkRequest,omitempty"`
}

// Event is one raw interaction record, persisted exactly as received.
type Event struct {
	EventName  string     `json:"event"`
	Properties Properties `json:"properties"`
	Timestamp  string     `json:"timestamp"`
}

// SessionSet is the deduplicated set of sessions observed for one user.
type SessionSet struct {
	DistinctID string   `json:"distinct_id"`
	Sessions   []string `json:"sessions"`
}

// ProcessResult summarizes one ingestion call.
type ProcessResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	isoOffsetLayout = "2006-01-02T15:04:05.999999999-07:00"
	isoNaiveLayout  = "2006-01-02T15:04:05.999999999"
)

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" is normalized
// to an explicit offset first; a timestamp without any offset is read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	normalized := value
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}
	if ts, err := time.Parse(isoOffsetLayout, normalized); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation(isoNaiveLayout, normalized, time.UTC); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid ISO 8601 timestamp: %q", value)
}

// Validate checks the fields the pipeline depends on. Events failing
// validation are rejected at the boundary and never persisted.
func (e Event) Validate() error {
	if e.EventName == "" {
		return fmt.Errorf("event name is required")
	}
	if e.Properties.DistinctID == "" {
		return fmt.Errorf("properties.distinct_id is required")
	}
	if e.Properties.SessionID == "" {
		return fmt.Errorf("properties.session_id is required")
	}
	if e.Timestamp == "" {
		return fmt.Errorf("timestamp is required")
	}
	if _, err := ParseTimestamp(e.Timestamp); err != nil {
		return err
	}
	if _, err := ParseTimestamp(e.Properties.Timestamp); err != nil {
		return fmt.Errorf("properties.timestamp: %w", err)
	}
	return nil
}
