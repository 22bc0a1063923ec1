package services

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Event types published on the notification bus.
const (
	EventAgentInstalled = "agent_installed"
	EventAgentsChanged  = "agents_changed"
)

// Event is a notification delivered to bus subscribers.
type Event struct {
	Type    string `json:"type"`
	Payload string `json:"payload,omitempty"`
}

// NotificationService is an in-memory pub/sub bus. Services publish here so
// interested parts of the application can react without direct coupling.
//
// Publish is non-blocking: a subscriber whose channel is full misses the
// event rather than stalling the publisher.
type NotificationService struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

// NewNotificationService creates an empty bus.
func NewNotificationService() *NotificationService {
	return &NotificationService{
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe registers a new listener and returns its ID and receive channel.
func (b *NotificationService) Subscribe(bufSize int) (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Event, bufSize)
	b.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a subscription. The channel is not closed so a reader
// draining it concurrently never sees a spurious close.
func (b *NotificationService) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, id)
}

// Publish delivers an event to all subscribers without blocking.
func (b *NotificationService) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("⚠️ [EVENT-BUS] Subscriber %s full, dropping %s", id, event.Type)
		}
	}
}
