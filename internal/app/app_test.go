package app

import (
	"strings"
	"testing"
)

func TestRunRequiresToken(t *testing.T) {
	err := Run(Config{})
	if err == nil || !strings.Contains(err.Error(), "create slack client") {
		t.Fatalf("expected client error, got %v", err)
	}
}
