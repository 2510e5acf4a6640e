// Package ws pushes registry events to connected front-of-house screens.
package ws

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"frontdesk/pkg/order"
)

// TopicAll receives every event.
const TopicAll = "all"

// Topic returns the room an event kind is routed to: "order", "urgent" or "reservation".
func Topic(kind order.Kind) string {
	topic, _, _ := strings.Cut(string(kind), ".")
	return topic
}

// Hub maintains the set of active clients and broadcasts events to them.
type Hub struct {
	// Registered clients by topic
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan order.Event
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan order.Event, 256),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return nil

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.topic] == nil {
				h.rooms[client.topic] = make(map[*Client]bool)
			}
			h.rooms[client.topic][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case e := <-h.broadcast:
			message, err := json.Marshal(e)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for _, topic := range []string{Topic(e.Kind), TopicAll} {
				for client := range h.rooms[topic] {
					select {
					case client.send <- message:
					default:
						// Slow client, drop it
						h.remove(client)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// join reports false once Run has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues e for broadcast. It blocks only while the broadcast buffer is full.
func (h *Hub) Publish(ctx context.Context, e order.Event) error {
	select {
	case h.broadcast <- e:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clients counts connected clients across all topics.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.rooms {
		n += len(clients)
	}
	return n
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.topic]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.topic)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, clients := range h.rooms {
		for client := range clients {
			close(client.send)
		}
		delete(h.rooms, topic)
	}
}
