package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorderAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "interactions.jsonl")
	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	events := []Event{
		{Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), SessionID: "s1", VehicleID: "VW-1", UserMessage: "hi", AssistantResponse: "hello", FrustrationScore: 5},
		{Timestamp: time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC), SessionID: "s1", VehicleID: "VW-1", UserMessage: "brakes squeal", AssistantResponse: "let's check", FrustrationScore: 80, Escalated: true},
	}
	for _, ev := range events {
		if err := r.AppendInteraction(ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 events, got %d", len(got))
	}
	if got[0].UserMessage != "hi" || got[1].UserMessage != "brakes squeal" {
		t.Fatalf("chronological order not preserved: %+v", got)
	}
	if !got[1].Escalated || got[1].FrustrationScore != 80 {
		t.Fatalf("outcome fields not round-tripped: %+v", got[1])
	}
}

func TestFileRecorderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.jsonl")
	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	got, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no events, got %d", len(got))
	}
}
