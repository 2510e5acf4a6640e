// Package stream publishes registry events to a Redis stream so other
// front-of-house screens can follow the desk.
package stream

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"frontdesk/pkg/order"
)

// Publisher appends events to a capped Redis stream.
type Publisher struct {
	rdb    redis.UniversalClient
	stream string
	maxLen int64
}

// New creates a publisher writing to stream, trimmed to roughly maxLen entries.
func New(rdb redis.UniversalClient, stream string, maxLen int64) *Publisher {
	return &Publisher{rdb: rdb, stream: stream, maxLen: maxLen}
}

// Publish adds e to the stream with its kind, position and JSON body.
func (p *Publisher) Publish(ctx context.Context, e order.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":       e.ID.String(),
			"kind":     string(e.Kind),
			"position": e.Position,
			"event":    body,
		},
	}).Err()
}

// Recent returns up to limit events, newest first.
func (p *Publisher) Recent(ctx context.Context, limit int) ([]order.Event, error) {
	msgs, err := p.rdb.XRevRangeN(ctx, p.stream, "+", "-", int64(limit)).Result()
	if err != nil {
		return nil, err
	}
	events := make([]order.Event, 0, len(msgs))
	for _, m := range msgs {
		raw, _ := m.Values["event"].(string)
		var e order.Event
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
