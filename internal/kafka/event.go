package kafka

import "time"

type EventType string

const (
	EventTypeAdd      EventType = "add"
	EventTypeRemove   EventType = "remove"
	EventTypeCheckout EventType = "checkout"
)

// Event событие изменения корзины
type Event struct {
	CartID    string    `json:"cart_id"`
	Type      EventType `json:"type"`
	Item      string    `json:"item,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Total     float64   `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
