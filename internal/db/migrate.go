package db

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// The ReplacingMergeTree ORDER BY keys carry the upsert contract: a row
// inserted with an existing key replaces the previous version, so writes are
// idempotent per key and reads through FINAL see last-write-wins documents.
var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS events
(
	distinct_id String,
	session_id  String,
	ts          String,
	doc         String,
	ingested_at DateTime DEFAULT now()
)
ENGINE = ReplacingMergeTree(ingested_at)
ORDER BY (distinct_id, session_id, ts)
SETTINGS index_granularity = 8192;
`,
	`
CREATE TABLE IF NOT EXISTS sessions
(
	distinct_id String,
	session_id  String
)
ENGINE = ReplacingMergeTree
ORDER BY (distinct_id, session_id)
SETTINGS index_granularity = 8192;
`,
	`
CREATE TABLE IF NOT EXISTS stories
(
	id         String,
	session_id String,
	doc        String,
	updated_at DateTime DEFAULT now()
)
ENGINE = ReplacingMergeTree(updated_at)
ORDER BY id
SETTINGS index_granularity = 8192;
`,
}

// RunMigrations ensures required tables exist. This keeps the services
// self-contained without an external migration step.
func RunMigrations(ctx context.Context, conn clickhouse.Conn) error {
	for _, ddl := range migrations {
		if err := conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
