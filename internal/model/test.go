package model

// Test is a generated automation script for one story. Tests are computed on
// demand and never persisted here.
type Test struct {
	StoryID    string `json:"story_id"`
	TestScript string `json:"test_script"`
}

// PatternReport maps pattern name to per-story occurrence counts. Patterns
// with no matches are absent rather than present with zero.
type PatternReport map[string]map[string]int
