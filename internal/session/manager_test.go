package session

import (
	"testing"
	"time"
)

func TestManagerCreateGetRemove(t *testing.T) {
	m := NewManager()
	s := m.Create()
	if s.ID == "" {
		t.Fatalf("session id not assigned")
	}
	got, ok := m.Get(s.ID)
	if !ok || got != s {
		t.Fatalf("get did not return created session")
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatalf("unknown id must not resolve")
	}
	m.Remove(s.ID)
	if _, ok := m.Get(s.ID); ok {
		t.Fatalf("removed session still resolvable")
	}
	if m.Len() != 0 {
		t.Fatalf("manager not empty after removal")
	}
}

func TestSweepIdle(t *testing.T) {
	m := NewManager()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := base
	m.now = func() time.Time { return now }

	stale := m.Create()
	now = base.Add(40 * time.Minute)
	fresh := m.Create()

	removed := m.SweepIdle(30 * time.Minute)
	if removed != 1 {
		t.Fatalf("want 1 removed, got %d", removed)
	}
	if _, ok := m.Get(stale.ID); ok {
		t.Fatalf("stale session survived sweep")
	}
	if _, ok := m.Get(fresh.ID); !ok {
		t.Fatalf("fresh session removed by sweep")
	}

	// Touch refreshes the clock for the sweep.
	now = base.Add(80 * time.Minute)
	m.Touch(fresh.ID)
	now = base.Add(100 * time.Minute)
	if removed := m.SweepIdle(30 * time.Minute); removed != 0 {
		t.Fatalf("touched session must survive, removed %d", removed)
	}
}
