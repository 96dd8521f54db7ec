package redis

import (
	"testing"
	"time"
)

func TestSearchCache_KeyNormalization(t *testing.T) {
	c := NewSearchCache(nil, time.Minute)

	if got := c.key("Bob@X.com"); got != "search:bob@x.com" {
		t.Fatalf("unexpected key: %q", got)
	}
	// Identical queries differing only in case share one entry.
	if c.key("ABC") != c.key("abc") {
		t.Fatalf("expected case-insensitive keys to collide")
	}
}

func TestSearchCache_DefaultTTL(t *testing.T) {
	c := NewSearchCache(nil, 0)
	if c.ttl != defaultSearchTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
}
