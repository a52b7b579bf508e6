package twin

import "time"

// VehicleState is the digital-twin snapshot of a single vehicle. It is
// generated once per session at login and treated as immutable afterwards;
// predictive alerts are derived from it on each read, never stored.
type VehicleState struct {
	VehicleID      string    `json:"vehicle_id"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Mileage        int       `json:"mileage"`
	LastService    time.Time `json:"last_service"`
	NextServiceDue time.Time `json:"next_service_due"`
	HealthScore    int       `json:"health_score"`
	Components     Components `json:"components"`
}

type Components struct {
	Engine       Engine       `json:"engine"`
	Brakes       Brakes       `json:"brakes"`
	Transmission Transmission `json:"transmission"`
	Battery      Battery      `json:"battery"`
	Tires        Tires        `json:"tires"`
	Suspension   Suspension   `json:"suspension"`
}

type Engine struct {
	Health          int `json:"health"`
	TemperatureC    int `json:"temperature"`
	OilLevelPct     int `json:"oil_level"`
	NextOilChangeKm int `json:"next_oil_change"`
}

type Brakes struct {
	FrontPadWearPct int `json:"front_pad_wear"`
	RearPadWearPct  int `json:"rear_pad_wear"`
	FluidLevelPct   int `json:"fluid_level"`
	Health          int `json:"health"`
}

type Transmission struct {
	Health         int    `json:"health"`
	FluidCondition string `json:"fluid_condition"`
	Performance    int    `json:"performance"`
}

type Battery struct {
	Voltage          float64 `json:"voltage"`
	HealthPct        int     `json:"health"`
	EstimatedLifeMon int     `json:"estimated_life"`
}

type Tires struct {
	FrontLeft      int    `json:"front_left"`
	FrontRight     int    `json:"front_right"`
	RearLeft       int    `json:"rear_left"`
	RearRight      int    `json:"rear_right"`
	PressureStatus string `json:"pressure_status"`
}

type Suspension struct {
	Health         int    `json:"health"`
	ShockAbsorbers string `json:"shock_absorbers"`
}
