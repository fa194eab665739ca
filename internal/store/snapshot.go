package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Snapshot is a point-in-time capture of a session's state, stored as
// opaque JSON so the session package owns its own schema.
type Snapshot struct {
	ID        int
	Timestamp time.Time
	Topic     string
	Data      []byte
}

// SnapshotRepo stores and retrieves session snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, topic string, data []byte) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the keep most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) Save(ctx context.Context, topic string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_snapshots (topic, data) VALUES (?, ?)`,
		topic, string(data))
	return err
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, topic, data FROM session_snapshots ORDER BY id DESC LIMIT 1`)

	var s Snapshot
	var data string
	if err := row.Scan(&s.ID, &s.Timestamp, &s.Topic, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.Data = []byte(data)
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_snapshots WHERE id NOT IN
		 (SELECT id FROM session_snapshots ORDER BY id DESC LIMIT ?)`, keep)
	return err
}
