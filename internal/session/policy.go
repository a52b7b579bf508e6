package session

import "github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"

// EscalationThreshold is the frustration score above which a human hand-off
// is triggered.
const EscalationThreshold = 70

// ShouldEscalate is the entire escalation decision surface: the model flagged
// it, or the frustration score crossed the threshold. No hysteresis; the
// orchestrator makes the resulting session flag monotonic.
func ShouldEscalate(r sentiment.Reading) bool {
	return r.EscalationNeeded || r.FrustrationScore > EscalationThreshold
}
