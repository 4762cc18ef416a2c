package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"story-pipeline/internal/model"
)

// StoryFetcher retrieves stories from the story service.
type StoryFetcher interface {
	FetchStories(ctx context.Context, storyID string) ([]model.Story, error)
}

// HTTPStoryClient fetches stories over the story service's GET endpoint.
// Records that fail schema validation are dropped with a warning; an
// upstream 404 is an empty result, not an error.
type HTTPStoryClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStoryClient creates a client for the given story service URL.
func NewHTTPStoryClient(baseURL string, timeout time.Duration) *HTTPStoryClient {
	return &HTTPStoryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type storiesResponse struct {
	Stories []json.RawMessage `json:"stories"`
}

func (c *HTTPStoryClient) FetchStories(ctx context.Context, storyID string) ([]model.Story, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("stories service url is not configured")
	}

	target := c.baseURL
	if storyID != "" {
		target += "?story_id=" + url.QueryEscape(storyID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stories service returned %d: %s", resp.StatusCode, string(detail))
	}

	var payload storiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode stories response: %w", err)
	}

	stories := make([]model.Story, 0, len(payload.Stories))
	for _, doc := range payload.Stories {
		story, err := model.StoryFromJSON(doc)
		if err != nil {
			log.Printf("dropping invalid story record: %v", err)
			continue
		}
		stories = append(stories, story)
	}
	return stories, nil
}
