package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Channel is a public or private channel listed by the provider.
type Channel struct {
	ID   string
	Name string
}

// Key returns the conversation identifier.
func (c Channel) Key() string { return c.ID }

// Label returns the display name.
func (c Channel) Label() string { return c.Name }

// User is a workspace member that can be messaged directly.
type User struct {
	ID   string
	Name string
}

// Key returns the user identifier.
func (u User) Key() string { return u.ID }

// Label returns the display name.
func (u User) Label() string { return u.Name }

// Conversation identifies the stream currently shown. ID and Name are always
// replaced together.
type Conversation struct {
	ID   string
	Name string
}

// IsZero reports whether no conversation has been selected yet.
func (c Conversation) IsZero() bool {
	return c.ID == ""
}

// Message is a single entry of a conversation history.
type Message struct {
	Author    string
	Text      string
	Timestamp string
}

// Time parses the provider timestamp ("seconds.micros"). Unparseable values
// return the zero time.
func (m Message) Time() time.Time {
	whole, _, _ := strings.Cut(m.Timestamp, ".")
	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

// Provider is the remote data source the UI consumes.
type Provider interface {
	FetchTeams(ctx context.Context) ([]string, error)
	FetchChannels(ctx context.Context) ([]Channel, error)
	FetchUsers(ctx context.Context) ([]User, error)
	// FetchMessages returns the history of a conversation, oldest first.
	FetchMessages(ctx context.Context, conversationID string) ([]Message, error)
	SendMessage(ctx context.Context, conversationID, text string) (bool, error)
}

// ProviderError reports a failed provider operation.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// WrapError tags err with the operation name. Nil errors stay nil.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Op: op, Err: err}
}
