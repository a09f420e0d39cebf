package cache

import (
	"testing"
	"time"
)

func TestSetGetAndExpire(t *testing.T) {
	c := New(time.Minute)
	key := "expire-key"

	// ensure no value
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected no value initially")
	}

	// set with ttl
	c.Set(key, "hello", 50*time.Millisecond)
	if v, ok := c.Get(key); !ok || v.(string) != "hello" {
		t.Fatalf("expected value 'hello', got %v ok=%v", v, ok)
	}

	// wait for expiry; Get drops the stale entry lazily
	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected expired value to be gone")
	}
}

func TestNoExpiry(t *testing.T) {
	c := New(time.Minute)
	c.Set("forever", 1, 0)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("forever"); !ok {
		t.Fatalf("expected zero-ttl value to persist")
	}
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)
	c.Set("delete-key", 42, time.Second)
	if v, ok := c.Get("delete-key"); !ok || v.(int) != 42 {
		t.Fatalf("expected 42 present before delete, got %v ok=%v", v, ok)
	}
	c.Delete("delete-key")
	if _, ok := c.Get("delete-key"); ok {
		t.Fatalf("expected deleted value to be absent")
	}
}
