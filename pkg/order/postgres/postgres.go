package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"

	"frontdesk/pkg/order"
)

// Schema creates the journal table. seq orders events that share a timestamp.
const Schema = `CREATE TABLE IF NOT EXISTS order_events (
	id TEXT PRIMARY KEY,
	seq BIGSERIAL,
	kind TEXT NOT NULL,
	position INT NOT NULL,
	payload JSONB NOT NULL,
	at TIMESTAMPTZ NOT NULL
);
ALTER TABLE order_events ADD COLUMN IF NOT EXISTS seq BIGSERIAL`

// Journal appends registry events to PostgreSQL. It is write-only: the
// registry never reads the journal back.
type Journal struct {
	db *sql.DB
}

// New creates a journal over db.
func New(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Open connects to dsn and ensures the journal table exists.
func Open(ctx context.Context, dsn string) (*Journal, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, err
	}
	return New(db), nil
}

// Publish inserts e.
func (j *Journal) Publish(ctx context.Context, e order.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = j.db.ExecContext(ctx,
		"INSERT INTO order_events (id,kind,position,payload,at) VALUES ($1,$2,$3,$4,$5)",
		e.ID.String(), string(e.Kind), e.Position, payload, e.At)
	return err
}

// Recent returns up to limit journaled events, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]order.Event, error) {
	rows, err := j.db.QueryContext(ctx, "SELECT payload FROM order_events ORDER BY at DESC, seq DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var events []order.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var e order.Event
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
