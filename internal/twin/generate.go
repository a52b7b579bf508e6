package twin

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generate synthesizes a plausible snapshot for a freshly bound vehicle.
// The rand source and clock are injected so tests can pin fixtures instead of
// depending on nondeterministic values.
func Generate(rng *rand.Rand, now time.Time) VehicleState {
	return VehicleState{
		VehicleID:      "VW-" + strings.ToUpper(uuid.NewString()[:8]),
		Model:          "Volkswagen Taigun Highline",
		Year:           2023,
		Mileage:        randRange(rng, 5000, 25000),
		LastService:    now.AddDate(0, 0, -randRange(rng, 30, 180)),
		NextServiceDue: now.AddDate(0, 0, randRange(rng, 10, 90)),
		HealthScore:    randRange(rng, 75, 98),
		Components: Components{
			Engine: Engine{
				Health:          randRange(rng, 85, 100),
				TemperatureC:    randRange(rng, 85, 95),
				OilLevelPct:     randRange(rng, 70, 100),
				NextOilChangeKm: randRange(rng, 1000, 5000),
			},
			Brakes: Brakes{
				FrontPadWearPct: randRange(rng, 20, 60),
				RearPadWearPct:  randRange(rng, 25, 55),
				FluidLevelPct:   randRange(rng, 80, 100),
				Health:          randRange(rng, 75, 95),
			},
			Transmission: Transmission{
				Health:         randRange(rng, 85, 98),
				FluidCondition: "Good",
				Performance:    randRange(rng, 90, 100),
			},
			Battery: Battery{
				Voltage:          round2(12.4 + rng.Float64()*0.4),
				HealthPct:        randRange(rng, 80, 100),
				EstimatedLifeMon: randRange(rng, 12, 36),
			},
			Tires: Tires{
				FrontLeft:      randRange(rng, 60, 95),
				FrontRight:     randRange(rng, 60, 95),
				RearLeft:       randRange(rng, 65, 95),
				RearRight:      randRange(rng, 65, 95),
				PressureStatus: "Optimal",
			},
			Suspension: Suspension{
				Health:         randRange(rng, 75, 95),
				ShockAbsorbers: "Good",
			},
		},
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
