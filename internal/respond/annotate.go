package respond

import (
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/triage"
)

const (
	arSuffix         = "\n\nRecommendation: This issue would benefit from AR visual guidance. Would you like to start an AR session with our expert?"
	serviceSuffix    = "\n\nRecommendation: This requires physical inspection. I can help you schedule an appointment at the nearest service center."
	criticalSuffix   = "\n\nURGENT: This appears to be a safety-critical issue. I'm escalating this to our emergency support team immediately."
	escalationSuffix = "\n\nAuto-Escalation: I've detected your frustration. Connecting you with a senior service advisor now..."
)

// Annotate appends the policy-driven suffixes to a generated reply. The
// action/severity chain is first-match-wins in the order ar_assistance,
// service_center, critical severity; the escalation notice is independent of
// that chain and always comes last. Annotations never replace the reply text.
func Annotate(reply string, cls triage.Classification, reading sentiment.Reading) string {
	switch {
	case cls.SuggestedAction == triage.ActionARAssistance:
		reply += arSuffix
	case cls.SuggestedAction == triage.ActionServiceCenter:
		reply += serviceSuffix
	case cls.Severity == triage.SeverityCritical:
		reply += criticalSuffix
	}
	if reading.EscalationNeeded {
		reply += escalationSuffix
	}
	return reply
}
