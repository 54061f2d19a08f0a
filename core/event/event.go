package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope a dispatched value travels in.
type Event struct {
	ID        string    `json:"id"`         // Unique identifier for the event
	Name      string    `json:"name"`       // Event name chosen by the sink (e.g., "price.updated")
	Payload   any       `json:"payload"`    // The emitted value
	CreatedAt time.Time `json:"created_at"` // When the value was dispatched
}

// New creates an Event with a generated ID.
//
// Example:
//
//	evt := event.New("price.updated", Price{Symbol: "ACME", Value: 42}, time.Now())
func New(name string, payload any, at time.Time) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      name,
		Payload:   payload,
		CreatedAt: at,
	}
}
