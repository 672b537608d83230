// Package eventbroker publishes post lifecycle events to NATS.
package eventbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Event names, appended to the subject prefix.
const (
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
)

// RequestIDHeader carries the originating request id on every message.
const RequestIDHeader = "X-Request-Id"

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	PublishMsg(m *nats.Msg) error
}

// Connect dials the NATS server with reconnects enabled.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("yatube-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

// PostEvent is the JSON payload of every post event.
type PostEvent struct {
	ID             int64     `json:"id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	GroupSlug      *string   `json:"group_slug,omitempty"`
	Preview        string    `json:"preview"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Publisher sends post events on "<prefix>.<event>" subjects.
type Publisher struct {
	conn   Conn
	prefix string
}

// NewPublisher creates a Publisher. An empty prefix publishes bare event names.
func NewPublisher(conn Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

// PostCreated publishes EventPostCreated for p.
func (p *Publisher) PostCreated(ctx context.Context, post *domain.Post) error {
	return p.publish(ctx, EventPostCreated, post)
}

// PostUpdated publishes EventPostUpdated for p.
func (p *Publisher) PostUpdated(ctx context.Context, post *domain.Post) error {
	return p.publish(ctx, EventPostUpdated, post)
}

// Subject returns the full subject for an event name.
func (p *Publisher) Subject(event string) string {
	if p.prefix == "" {
		return event
	}
	return p.prefix + "." + event
}

func (p *Publisher) publish(ctx context.Context, event string, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(PostEvent{
		ID:             post.ID,
		AuthorID:       post.AuthorID.String(),
		AuthorUsername: post.AuthorUsername,
		GroupSlug:      post.GroupSlug,
		Preview:        post.String(),
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event, err)
	}

	msg := &nats.Msg{
		Subject: p.Subject(event),
		Data:    data,
		Header:  nats.Header{},
	}
	if reqID := ctxutil.RequestIDFromCtx(ctx); reqID != "" {
		msg.Header.Set(RequestIDHeader, reqID)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	return nil
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PostCreated(context.Context, *domain.Post) error { return nil }
func (Noop) PostUpdated(context.Context, *domain.Post) error { return nil }
