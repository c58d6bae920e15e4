package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over turn questions and answers from the
// session history API.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_turns_user_message_gin
		ON chat_turns USING gin(to_tsvector('english', user_message))`)
	if err != nil {
		return fmt.Errorf("failed to create user_message GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_turns_final_response_gin
		ON chat_turns USING gin(to_tsvector('english', COALESCE(final_response, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_response GIN index: %w", err)
	}

	return nil
}
