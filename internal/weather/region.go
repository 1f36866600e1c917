package weather

import (
	"log/slog"
	"math/rand/v2"
)

// RegionRecord is one row of the external region table: a region id
// plus the ten chance weights, in canonical id order, expected to sum
// to 100.
type RegionRecord struct {
	ID      string
	Chances []int
}

// RegionWeather is one region's election state: the chance weights and
// the currently chosen type. Invalid means "expired, elect on next
// query".
type RegionWeather struct {
	weather ID
	chances []int
}

func newRegionWeather(rec RegionRecord) RegionWeather {
	chances := make([]int, len(rec.Chances))
	copy(chances, rec.Chances)
	return RegionWeather{weather: Invalid, chances: chances}
}

// Weather returns the chosen type, electing a fresh one first if the
// previous choice expired. The choice sticks until SetWeather or the
// manager's scheduled expiry replaces it.
func (r *RegionWeather) Weather(rng *rand.Rand, logger *slog.Logger) ID {
	if r.weather == Invalid {
		r.chooseNewWeather(rng, logger)
	}
	return r.weather
}

// SetWeather forces the chosen type; Invalid expires the choice.
func (r *RegionWeather) SetWeather(id ID) {
	r.weather = id
}

// SetChances replaces the whole weight slice. When the new weights no
// longer support the chosen type, a new one is elected immediately.
func (r *RegionWeather) SetChances(chances []int, rng *rand.Rand, logger *slog.Logger) {
	r.chances = make([]int, len(chances))
	copy(r.chances, chances)

	if r.weather == Invalid || int(r.weather) >= len(r.chances) || r.chances[r.weather] == 0 {
		r.chooseNewWeather(rng, logger)
	}
}

// chooseNewWeather draws 1..100 and walks the cumulative weights,
// electing the first index whose running sum reaches the draw. Weights
// summing short of the draw clamp the choice to the last index so the
// elected id always stays in range.
func (r *RegionWeather) chooseNewWeather(rng *rand.Rand, logger *slog.Logger) {
	draw := rng.IntN(100) + 1
	sum := 0
	for i, weight := range r.chances {
		sum += weight
		if draw <= sum {
			r.weather = ID(i)
			return
		}
	}
	r.weather = ID(len(r.chances) - 1)
	if logger != nil {
		logger.Warn("regional weather weights sum short of the draw",
			"draw", draw, "sum", sum, "clamped_to", r.weather)
	}
}
