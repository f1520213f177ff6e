// Package postgres provides a PostgreSQL-backed checkpoint saver, an
// alternative to the in-memory default for deployments that want
// checkpoints to outlive the process.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/checkpoint"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/pkg/serialization"
)

// Schema is the table definition expected by Saver. thread_id is the
// primary key: one row per thread, upserted on every save.
const Schema = `
CREATE TABLE IF NOT EXISTS thread_checkpoints (
	thread_id  TEXT PRIMARY KEY,
	id         TEXT NOT NULL,
	state      BYTEA NOT NULL,
	next_node  TEXT NOT NULL DEFAULT '',
	step       INTEGER NOT NULL,
	timestamp  TIMESTAMPTZ NOT NULL
);`

// Saver implements checkpoint.Saver for PostgreSQL.
type Saver struct {
	pool       *pgxpool.Pool
	serializer *serialization.Serializer
	tableName  string
}

// NewSaver creates a new PostgreSQL checkpoint saver. The serializer
// should use the JSON codec if the state column is meant to stay
// inspectable from SQL.
func NewSaver(pool *pgxpool.Pool, serializer *serialization.Serializer) *Saver {
	if serializer == nil {
		serializer = serialization.NewSerializer(serialization.Config{Codec: serialization.JSONCodec{}})
	}
	return &Saver{
		pool:       pool,
		serializer: serializer,
		tableName:  "thread_checkpoints",
	}
}

// Save upserts the latest checkpoint for its thread.
func (s *Saver) Save(ctx context.Context, cp *checkpoint.Checkpoint) error {
	if cp == nil {
		return checkpoint.ErrInvalidCheckpointID
	}
	if err := cp.Validate(); err != nil {
		return fmt.Errorf("checkpoint validation failed: %w", err)
	}

	data, err := s.serializer.Serialize(cp.State)
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint state: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (thread_id, id, state, next_node, step, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (thread_id) DO UPDATE SET
			id = EXCLUDED.id,
			state = EXCLUDED.state,
			next_node = EXCLUDED.next_node,
			step = EXCLUDED.step,
			timestamp = EXCLUDED.timestamp
	`, s.tableName)

	_, err = s.pool.Exec(ctx, query,
		cp.ThreadID, cp.ID, data, cp.NextNode, cp.Step, cp.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %v", checkpoint.ErrSaveFailed, err)
	}
	return nil
}

// Load retrieves the latest checkpoint for a thread.
func (s *Saver) Load(ctx context.Context, threadID string) (*checkpoint.Checkpoint, error) {
	if threadID == "" {
		return nil, checkpoint.ErrInvalidThreadID
	}

	query := fmt.Sprintf(`
		SELECT thread_id, id, state, next_node, step, timestamp
		FROM %s
		WHERE thread_id = $1
	`, s.tableName)

	var cp checkpoint.Checkpoint
	var data []byte
	err := s.pool.QueryRow(ctx, query, threadID).Scan(
		&cp.ThreadID, &cp.ID, &data, &cp.NextNode, &cp.Step, &cp.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, checkpoint.ErrCheckpointNotFound
		}
		return nil, fmt.Errorf("%w: %v", checkpoint.ErrLoadFailed, err)
	}

	if err := s.serializer.Deserialize(data, &cp.State); err != nil {
		return nil, fmt.Errorf("failed to deserialize checkpoint state: %w", err)
	}
	return &cp, nil
}

// Exists reports whether a checkpoint row is stored for a thread.
func (s *Saver) Exists(ctx context.Context, threadID string) (bool, error) {
	if threadID == "" {
		return false, checkpoint.ErrInvalidThreadID
	}

	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE thread_id = $1`, s.tableName)
	var one int
	err := s.pool.QueryRow(ctx, query, threadID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", checkpoint.ErrLoadFailed, err)
	}
	return true, nil
}

// Delete removes the checkpoint row for a thread.
func (s *Saver) Delete(ctx context.Context, threadID string) error {
	if threadID == "" {
		return checkpoint.ErrInvalidThreadID
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE thread_id = $1`, s.tableName)
	tag, err := s.pool.Exec(ctx, query, threadID)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkpoint.ErrCheckpointNotFound
	}
	return nil
}
