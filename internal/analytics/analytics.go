package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/storage"
)

// DailyStats summarizes the emotional trend of one day of interactions.
type DailyStats struct {
	Date            string         `json:"date"`
	TotalTurns      int            `json:"total_turns"`
	UniqueSessions  int            `json:"unique_sessions"`
	AvgFrustration  float64        `json:"avg_frustration"`
	PeakFrustration int            `json:"peak_frustration"`
	EscalatedTurns  int            `json:"escalated_turns"`
	BySession       map[string]int `json:"turns_by_session"`
}

// AnalyzeDailyLogs aggregates recorded interactions for the given date.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:      startOfDay.Format("2006-01-02"),
		BySession: make(map[string]int),
	}

	sum := 0
	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		if event.UserMessage == "" {
			continue
		}
		stats.TotalTurns++
		stats.BySession[event.SessionID]++
		sum += event.FrustrationScore
		if event.FrustrationScore > stats.PeakFrustration {
			stats.PeakFrustration = event.FrustrationScore
		}
		if event.Escalated {
			stats.EscalatedTurns++
		}
	}
	stats.UniqueSessions = len(stats.BySession)
	if stats.TotalTurns > 0 {
		stats.AvgFrustration = float64(sum) / float64(stats.TotalTurns)
	}
	return stats
}

// GenerateReportSummary renders the daily stats as plain text for the report
// log.
func (ds *DailyStats) GenerateReportSummary() string {
	summary := fmt.Sprintf(`NexaServe interaction report for %s:

- Total turns: %d
- Unique sessions: %d
- Average frustration: %.1f/100
- Peak frustration: %d/100
- Turns with escalation active: %d
`, ds.Date, ds.TotalTurns, ds.UniqueSessions, ds.AvgFrustration, ds.PeakFrustration, ds.EscalatedTurns)
	return summary
}

// ToJSON serializes the stats for detailed analysis.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
