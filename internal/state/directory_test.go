package state

import (
	"testing"

	"github.com/atomicstack/slack-tui/internal/chat"
)

func TestDirectoryStoreCopiesSnapshots(t *testing.T) {
	store := NewDirectoryStore()
	channels := []chat.Channel{{ID: "C1", Name: "general"}}
	store.SetChannels(channels)
	channels[0].Name = "mutated"
	if got := store.Channels()[0].Name; got != "general" {
		t.Fatalf("expected stored copy, got %q", got)
	}
	out := store.Channels()
	out[0].Name = "changed"
	if got := store.Channels()[0].Name; got != "general" {
		t.Fatalf("expected returned copy, got %q", got)
	}
}

func TestDirectoryStoreSnapshots(t *testing.T) {
	store := NewDirectoryStore()
	store.SetChannels([]chat.Channel{{ID: "C1", Name: "general"}})
	store.SetUsers([]chat.User{{ID: "U1", Name: "ada"}})
	store.SetTeams([]string{"Acme"})
	if got := store.Users(); len(got) != 1 || got[0].Name != "ada" {
		t.Fatalf("expected ada, got %#v", got)
	}
	if len(store.Teams()) != 1 {
		t.Fatalf("expected one team")
	}
	if store.Users() == nil {
		t.Fatalf("expected users snapshot")
	}
}
