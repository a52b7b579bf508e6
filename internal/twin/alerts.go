package twin

import (
	"fmt"
	"time"
)

type AlertSeverity string

const (
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

type Alert struct {
	Severity      AlertSeverity `json:"severity"`
	Component     string        `json:"component"`
	Message       string        `json:"message"`
	PredictedDate time.Time     `json:"predicted_date"`
}

// Alerts derives predictive-maintenance alerts from fixed threshold rules.
// Rules evaluate independently per component; result order follows rule
// declaration order (engine, brakes, battery), not severity. The function is
// pure: the same state and clock always yield the same alerts.
func Alerts(state VehicleState, now time.Time) []Alert {
	var alerts []Alert

	if state.Components.Engine.NextOilChangeKm < 2000 {
		alerts = append(alerts, Alert{
			Severity:      AlertSeverityMedium,
			Component:     "Engine Oil",
			Message:       fmt.Sprintf("Oil change recommended in %d km", state.Components.Engine.NextOilChangeKm),
			PredictedDate: now.AddDate(0, 0, 30),
		})
	}

	if state.Components.Brakes.FrontPadWearPct > 50 {
		alerts = append(alerts, Alert{
			Severity:      AlertSeverityHigh,
			Component:     "Brake Pads",
			Message:       fmt.Sprintf("Front brake pads showing significant wear (%d%%)", state.Components.Brakes.FrontPadWearPct),
			PredictedDate: now.AddDate(0, 0, 45),
		})
	}

	if state.Components.Battery.HealthPct < 85 {
		alerts = append(alerts, Alert{
			Severity:      AlertSeverityMedium,
			Component:     "Battery",
			Message:       fmt.Sprintf("Battery health at %d%%. Consider replacement soon.", state.Components.Battery.HealthPct),
			PredictedDate: now.AddDate(0, 0, 90),
		})
	}

	return alerts
}
