package slack

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/slack-tui/internal/chat"
	api "github.com/slack-go/slack"
)

const pageLimit = 200

// Client implements chat.Provider on the Slack Web API. The OAuth token is
// held by the underlying API client.
type Client struct {
	api *api.Client

	mu    sync.Mutex
	names map[string]string
	dms   map[string]string
}

// New creates a client for token. apiURL overrides the Web API endpoint and
// may be empty.
func New(token, apiURL string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("slack token required")
	}
	opts := []api.Option{}
	if trimmed := strings.TrimSpace(apiURL); trimmed != "" {
		if !strings.HasSuffix(trimmed, "/") {
			trimmed += "/"
		}
		opts = append(opts, api.OptionAPIURL(trimmed))
	}
	return &Client{
		api:   api.New(token, opts...),
		names: make(map[string]string),
		dms:   make(map[string]string),
	}, nil
}

var _ chat.Provider = (*Client)(nil)

// FetchTeams returns the workspace the token belongs to.
func (c *Client) FetchTeams(ctx context.Context) ([]string, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return nil, chat.WrapError("fetch teams", err)
	}
	if resp.Team == "" {
		return nil, nil
	}
	return []string{resp.Team}, nil
}

// FetchChannels lists every non-archived channel the token can see.
func (c *Client) FetchChannels(ctx context.Context) ([]chat.Channel, error) {
	params := &api.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           pageLimit,
		Types:           []string{"public_channel", "private_channel"},
	}
	var out []chat.Channel
	for {
		page, next, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, chat.WrapError("fetch channels", err)
		}
		for _, ch := range page {
			out = append(out, chat.Channel{ID: ch.ID, Name: ch.Name})
		}
		if next == "" {
			return out, nil
		}
		params.Cursor = next
	}
}

// FetchUsers lists active workspace members and refreshes the author name
// cache used for message rendering.
func (c *Client) FetchUsers(ctx context.Context) ([]chat.User, error) {
	members, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, chat.WrapError("fetch users", err)
	}
	out := make([]chat.User, 0, len(members))
	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
		if member.Deleted {
			continue
		}
		out = append(out, chat.User{ID: member.ID, Name: member.Name})
	}
	c.mu.Lock()
	c.names = names
	c.mu.Unlock()
	return out, nil
}

// FetchMessages returns the latest history of a conversation, oldest first.
// User IDs are resolved to their direct-message channel.
func (c *Client) FetchMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	channelID, err := c.resolve(ctx, conversationID)
	if err != nil {
		return nil, chat.WrapError("fetch messages", err)
	}
	resp, err := c.api.GetConversationHistoryContext(ctx, &api.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     pageLimit,
	})
	if err != nil {
		return nil, chat.WrapError("fetch messages", err)
	}
	out := make([]chat.Message, len(resp.Messages))
	// Slack returns history newest first.
	for i, msg := range resp.Messages {
		out[len(resp.Messages)-1-i] = chat.Message{
			Author:    c.authorName(msg.Msg),
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		}
	}
	return out, nil
}

// SendMessage posts text to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, text string) (bool, error) {
	channelID, err := c.resolve(ctx, conversationID)
	if err != nil {
		return false, chat.WrapError("send message", err)
	}
	if _, _, err := c.api.PostMessageContext(ctx, channelID, api.MsgOptionText(text, false)); err != nil {
		return false, chat.WrapError("send message", err)
	}
	return true, nil
}

func (c *Client) resolve(ctx context.Context, id string) (string, error) {
	if !isUserID(id) {
		return id, nil
	}
	c.mu.Lock()
	cached, ok := c.dms[id]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}
	ch, _, _, err := c.api.OpenConversationContext(ctx, &api.OpenConversationParameters{
		Users:    []string{id},
		ReturnIM: true,
	})
	if err != nil {
		return "", fmt.Errorf("open direct message with %s: %w", id, err)
	}
	c.mu.Lock()
	c.dms[id] = ch.ID
	c.mu.Unlock()
	return ch.ID, nil
}

func (c *Client) authorName(msg api.Msg) string {
	if msg.User != "" {
		c.mu.Lock()
		name, ok := c.names[msg.User]
		c.mu.Unlock()
		if ok && name != "" {
			return name
		}
		return msg.User
	}
	if msg.Username != "" {
		return msg.Username
	}
	return msg.BotID
}

func isUserID(id string) bool {
	return strings.HasPrefix(id, "U") || strings.HasPrefix(id, "W")
}
