package events

import (
	"context"
	"time"
)

const (
	TopicUser = "user_events"
	TopicItem = "item_events"
)

const (
	UserRegistered = "user_registered"
	UserLoggedIn   = "user_logged_in"
	ItemCreated    = "item_created"
	ItemUpdated    = "item_updated"
	ItemDeleted    = "item_deleted"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	ItemID     uint      `json:"item_id,omitempty"`
	ItemName   string    `json:"item_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event Event) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, string, string, Event) error { return nil }
func (Nop) Close() error                                        { return nil }
