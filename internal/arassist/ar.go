package arassist

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/ledger"
)

// Session is a simulated AR remote-assistance session. No real AR rendering
// or media transport happens here; the session exists so the conversation can
// offer it and the ledger can record the outcome.
type Session struct {
	ID                string   `json:"session_id"`
	Expert            string   `json:"expert_assigned"`
	ConnectionQuality string   `json:"connection_quality"`
	Features          []string `json:"ar_features"`
}

func Start() Session {
	return Session{
		ID:                uuid.NewString(),
		Expert:            "VW Expert - Rajesh Kumar",
		ConnectionQuality: "Excellent",
		Features: []string{
			"Live Camera Feed",
			"Digital Annotations",
			"Component Highlighting",
			"3D Model Overlay",
			"Real-time Diagnostics",
		},
	}
}

// End closes the session and appends the zero-cost diagnostic record to the
// ledger.
func End(s Session, l *ledger.Ledger, vehicleID string) ledger.Record {
	return l.Append(vehicleID, "AR Remote Assistance",
		fmt.Sprintf("Session with %s - Issue diagnosed remotely", s.Expert), 0)
}
