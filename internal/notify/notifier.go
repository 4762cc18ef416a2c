package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"story-pipeline/internal/model"
)

// Notifier submits a processed event batch to the story service.
type Notifier interface {
	NotifyProcessed(ctx context.Context, events []model.Event) error
}

// HTTPNotifier posts event batches as JSON. An unset destination URL makes
// every call a no-op; callers treat failures as log-and-continue.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

// NewHTTPNotifier creates a notifier for the given destination.
func NewHTTPNotifier(url string, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *HTTPNotifier) NotifyProcessed(ctx context.Context, events []model.Event) error {
	if n.url == "" {
		log.Printf("stories service url not configured, skipping notification")
		return nil
	}

	body, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to stories service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stories service returned %d: %s", resp.StatusCode, truncate(string(detail), 200))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
