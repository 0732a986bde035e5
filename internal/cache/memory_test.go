package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get() = (%v, %v), want (value, true)", got, ok)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("Get() hit for a key never set")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("short-lived", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("short-lived"); ok {
		t.Error("Get() hit after the TTL elapsed")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get() hit after Delete")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("Get() hit after Clear")
	}
}

func TestSnapshotKey(t *testing.T) {
	a := SnapshotKey("canon.yaml", "")
	b := SnapshotKey("canon.yaml", "climate")
	c := SnapshotKey("other.yaml", "")

	if a == b || a == c {
		t.Error("keys should differ by source and domain filter")
	}
	if a != SnapshotKey("canon.yaml", "") {
		t.Error("keys should be stable for identical inputs")
	}
}
