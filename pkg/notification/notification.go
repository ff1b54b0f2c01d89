package notification

import (
	"context"
	"time"
)

// Notification is one match announcement, independent of the transport that
// delivers it.
type Notification struct {
	MatchID   int64
	Content   string
	Author    Author
	Title     string
	Color     int
	Fields    []Field
	Timestamp time.Time
}

type Author struct {
	Name    string
	URL     string
	IconURL string
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Sender delivers notifications to one destination.
type Sender interface {
	// Name identifies the destination in logs.
	Name() string
	// Send delivers n or reports why it could not.
	Send(ctx context.Context, n Notification) error
}
