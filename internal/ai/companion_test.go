package ai

import (
	"context"
	"slices"
	"testing"
)

func TestCannedCompanionReplyIsFromFixedSet(t *testing.T) {
	c := NewCannedCompanion()

	for range 50 {
		reply, err := c.Generate(context.Background(), "I had a rough day")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !slices.Contains(CannedReplies, reply) {
			t.Fatalf("reply %q is not one of the canned replies", reply)
		}
	}
}

func TestCannedCompanionCoversWholeSet(t *testing.T) {
	c := NewCannedCompanion()

	seen := map[string]bool{}
	// 1000 uniform draws over 10 replies miss one with probability ~1e-45.
	for range 1000 {
		reply, err := c.Generate(context.Background(), "")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		seen[reply] = true
	}

	if len(seen) != len(CannedReplies) {
		t.Errorf("observed %d distinct replies over 1000 draws, want %d", len(seen), len(CannedReplies))
	}
}
