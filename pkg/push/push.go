package push

import "context"

// Message is a single push notification.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender delivers push notifications. Implementations must return a
// non-nil error whenever delivery was not confirmed, so callers can
// retry without marking the notification sent.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
