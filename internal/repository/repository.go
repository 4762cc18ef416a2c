package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"story-pipeline/internal/model"
)

// Repository defines the document-store operations the pipeline requires.
type Repository interface {
	// UpsertEvents writes a batch of events keyed by
	// (distinct_id, session_id, timestamp); rewrites are idempotent.
	UpsertEvents(ctx context.Context, events []model.Event) error

	// UpsertSessions merges per-user session sets (set union on sessions).
	UpsertSessions(ctx context.Context, sessions []model.SessionSet) error

	// UpsertStories replaces stored stories keyed by story id.
	UpsertStories(ctx context.Context, stories []model.Story) error

	// FindStories returns raw story documents matching the filter.
	FindStories(ctx context.Context, filter model.StoryFilter) ([][]byte, error)
}

type storeRepository struct {
	conn clickhouse.Conn
}

// New creates a Repository backed by ClickHouse.
func New(conn clickhouse.Conn) Repository {
	return &storeRepository{conn: conn}
}

const (
	insertEventsQuery   = `INSERT INTO events (distinct_id, session_id, ts, doc)`
	insertSessionsQuery = `INSERT INTO sessions (distinct_id, session_id)`
	insertStoriesQuery  = `INSERT INTO stories (id, session_id, doc)`

	selectStoriesQuery          = `SELECT doc FROM stories FINAL ORDER BY id`
	selectStoriesBySessionQuery = `SELECT doc FROM stories FINAL WHERE session_id = ? ORDER BY id`
	selectStoriesByIDQuery      = `SELECT doc FROM stories FINAL WHERE id = ? ORDER BY id`
)

func (r *storeRepository) UpsertEvents(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		// The document is the event exactly as received; the key columns
		// are duplicated out of it for ordering only.
		doc, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		if err := batch.Append(
			event.Properties.DistinctID,
			event.Properties.SessionID,
			event.Timestamp,
			string(doc),
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send events batch: %w", err)
	}
	return nil
}

func (r *storeRepository) UpsertSessions(ctx context.Context, sessions []model.SessionSet) error {
	if len(sessions) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSessionsQuery)
	if err != nil {
		return fmt.Errorf("prepare sessions batch: %w", err)
	}

	for _, set := range sessions {
		for _, sessionID := range set.Sessions {
			if err := batch.Append(set.DistinctID, sessionID); err != nil {
				return fmt.Errorf("append session: %w", err)
			}
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send sessions batch: %w", err)
	}
	return nil
}

func (r *storeRepository) UpsertStories(ctx context.Context, stories []model.Story) error {
	if len(stories) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertStoriesQuery)
	if err != nil {
		return fmt.Errorf("prepare stories batch: %w", err)
	}

	for _, story := range stories {
		doc, err := json.Marshal(story)
		if err != nil {
			return fmt.Errorf("marshal story %s: %w", story.ID, err)
		}
		if err := batch.Append(story.ID, story.SessionID, string(doc)); err != nil {
			return fmt.Errorf("append story: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send stories batch: %w", err)
	}
	return nil
}

func (r *storeRepository) FindStories(ctx context.Context, filter model.StoryFilter) ([][]byte, error) {
	query := selectStoriesQuery
	args := []any{}
	switch {
	case filter.SessionID != "":
		query = selectStoriesBySessionQuery
		args = append(args, filter.SessionID)
	case filter.StoryID != "":
		query = selectStoriesByIDQuery
		args = append(args, filter.StoryID)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		docs = append(docs, []byte(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read stories: %w", err)
	}
	return docs, nil
}
