package respond

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/triage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/twin"
)

type fakeLLM struct {
	resp    llm.Response
	err     error
	gotMsgs []llm.Message
}

func (f *fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	f.gotMsgs = msgs
	return f.resp, f.err
}

func testState() twin.VehicleState {
	return twin.VehicleState{
		VehicleID:      "VW-ABCD1234",
		Model:          "Volkswagen Taigun Highline",
		Year:           2023,
		Mileage:        15000,
		HealthScore:    92,
		LastService:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		NextServiceDue: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateGroundsPromptAndOrdersMessages(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "Happy to help with your brakes."}}
	r := NewResponder(f)

	history := []llm.Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	out, err := r.Generate(context.Background(), "my brakes squeal", history, testState())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "Happy to help with your brakes." {
		t.Fatalf("unexpected reply: %q", out)
	}

	if len(f.gotMsgs) != 4 {
		t.Fatalf("want system + 2 history + utterance, got %d messages", len(f.gotMsgs))
	}
	sys := f.gotMsgs[0]
	if sys.Role != "system" {
		t.Fatalf("first message must be system, got %s", sys.Role)
	}
	for _, want := range []string{"VW-ABCD1234", "15000 km", "92/100", "2025-03-01", "2025-09-01"} {
		if !strings.Contains(sys.Content, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, sys.Content)
		}
	}
	last := f.gotMsgs[len(f.gotMsgs)-1]
	if last.Role != "user" || last.Content != "my brakes squeal" {
		t.Fatalf("utterance must come last, got %+v", last)
	}
}

func TestGenerateFailure(t *testing.T) {
	r := NewResponder(&fakeLLM{err: errors.New("boom")})
	if _, err := r.Generate(context.Background(), "hi", nil, testState()); err == nil {
		t.Fatalf("want error so the orchestrator can substitute the apology")
	}

	r = NewResponder(&fakeLLM{resp: llm.Response{Content: ""}})
	if _, err := r.Generate(context.Background(), "hi", nil, testState()); err == nil {
		t.Fatalf("empty text must be treated as failure")
	}
}

func TestTrimHistory(t *testing.T) {
	var history []llm.Message
	for i := 0; i < 10; i++ {
		history = append(history, llm.Message{Role: "user", Content: string(rune('a' + i))})
	}
	trimmed := TrimHistory(history)
	if len(trimmed) != HistoryWindow {
		t.Fatalf("want %d, got %d", HistoryWindow, len(trimmed))
	}
	if trimmed[0].Content != "e" || trimmed[len(trimmed)-1].Content != "j" {
		t.Fatalf("wrong window: %+v", trimmed)
	}
	short := history[:3]
	if got := TrimHistory(short); len(got) != 3 {
		t.Fatalf("short history must pass through, got %d", len(got))
	}
}

func TestAnnotatePrecedence(t *testing.T) {
	calm := sentiment.Reading{}
	upset := sentiment.Reading{EscalationNeeded: true}

	cases := []struct {
		name       string
		cls        triage.Classification
		reading    sentiment.Reading
		wantOrder  []string
		notPresent []string
	}{
		{
			name:      "ar assistance",
			cls:       triage.Classification{SuggestedAction: triage.ActionARAssistance},
			reading:   calm,
			wantOrder: []string{"AR visual guidance"},
		},
		{
			name:      "service center",
			cls:       triage.Classification{SuggestedAction: triage.ActionServiceCenter},
			reading:   calm,
			wantOrder: []string{"physical inspection"},
		},
		{
			name:      "critical severity",
			cls:       triage.Classification{SuggestedAction: triage.ActionEmergency, Severity: triage.SeverityCritical},
			reading:   calm,
			wantOrder: []string{"URGENT"},
		},
		{
			name:       "ar wins over critical",
			cls:        triage.Classification{SuggestedAction: triage.ActionARAssistance, Severity: triage.SeverityCritical},
			reading:    calm,
			wantOrder:  []string{"AR visual guidance"},
			notPresent: []string{"URGENT"},
		},
		{
			name:      "critical then escalation notice",
			cls:       triage.Classification{SuggestedAction: triage.ActionEmergency, Severity: triage.SeverityCritical},
			reading:   upset,
			wantOrder: []string{"URGENT", "Auto-Escalation"},
		},
		{
			name:      "escalation notice alone",
			cls:       triage.Classification{SuggestedAction: triage.ActionAIResolution},
			reading:   upset,
			wantOrder: []string{"Auto-Escalation"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Annotate("base reply", tc.cls, tc.reading)
			if !strings.HasPrefix(out, "base reply") {
				t.Fatalf("annotations must be additive: %q", out)
			}
			pos := -1
			for _, want := range tc.wantOrder {
				i := strings.Index(out, want)
				if i < 0 {
					t.Fatalf("missing %q in %q", want, out)
				}
				if i < pos {
					t.Fatalf("suffix %q out of order in %q", want, out)
				}
				pos = i
			}
			for _, bad := range tc.notPresent {
				if strings.Contains(out, bad) {
					t.Fatalf("suffix %q must not appear in %q", bad, out)
				}
			}
		})
	}
}

func TestAnnotateNoSuffixes(t *testing.T) {
	out := Annotate("plain", triage.Classification{SuggestedAction: triage.ActionAIResolution}, sentiment.Reading{})
	if out != "plain" {
		t.Fatalf("no annotations expected: %q", out)
	}
}
