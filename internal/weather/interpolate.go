package weather

// TimeSettings holds the derived day-cycle boundaries shared by every
// interpolated channel during one update pass. All fields are game
// hours.
type TimeSettings struct {
	NightStart  float64
	NightEnd    float64
	DayStart    float64
	DayEnd      float64
	SunriseTime float64
}

// NewTimeSettings derives the boundaries from the configured sunrise
// and sunset times and their durations.
func NewTimeSettings(sunrise, sunset, sunriseDuration, sunsetDuration float64) TimeSettings {
	return TimeSettings{
		NightStart:  sunset + sunsetDuration,
		NightEnd:    sunrise - 0.5,
		DayStart:    sunrise + sunriseDuration,
		DayEnd:      sunset,
		SunriseTime: sunrise,
	}
}

type dayAnchor int

const (
	anchorSunrise dayAnchor = iota
	anchorDay
	anchorSunset
	anchorNight
)

// blendAt maps a game hour onto a pair of day anchors and the blend
// factor between them. The factor is deliberately not clamped:
// configurations whose durations undershoot the fixed window widths
// extrapolate past the anchor values.
func blendAt(hour float64, t TimeSettings) (from, to dayAnchor, factor float64) {
	switch {
	case hour <= t.NightEnd || hour >= t.NightStart+1:
		return anchorNight, anchorNight, 0
	case hour >= t.NightEnd && hour <= t.DayStart+1:
		if hour <= t.SunriseTime {
			return anchorSunrise, anchorNight, (t.SunriseTime - hour) / 0.5
		}
		return anchorSunrise, anchorDay, (hour - t.SunriseTime) / 3
	case hour >= t.DayStart+1 && hour <= t.DayEnd-1:
		return anchorDay, anchorDay, 0
	case hour >= t.DayEnd-1 && hour <= t.NightStart+1:
		if hour <= t.DayEnd+1 {
			return anchorSunset, anchorDay, (t.DayEnd + 1 - hour) / 2
		}
		return anchorSunset, anchorNight, (hour - (t.DayEnd + 1)) / 2
	default:
		return anchorNight, anchorNight, 0
	}
}

// FloatCurve interpolates a scalar across the four day anchors.
type FloatCurve struct {
	Sunrise, Day, Sunset, Night float64
}

func (c FloatCurve) at(anchor dayAnchor) float64 {
	switch anchor {
	case anchorSunrise:
		return c.Sunrise
	case anchorDay:
		return c.Day
	case anchorSunset:
		return c.Sunset
	default:
		return c.Night
	}
}

// Value samples the curve at the given game hour.
func (c FloatCurve) Value(hour float64, t TimeSettings) float64 {
	from, to, factor := blendAt(hour, t)
	return lerp(c.at(from), c.at(to), factor)
}

// ColorCurve interpolates a color across the four day anchors.
type ColorCurve struct {
	Sunrise, Day, Sunset, Night RGBA
}

func (c ColorCurve) at(anchor dayAnchor) RGBA {
	switch anchor {
	case anchorSunrise:
		return c.Sunrise
	case anchorDay:
		return c.Day
	case anchorSunset:
		return c.Sunset
	default:
		return c.Night
	}
}

// Value samples the curve at the given game hour.
func (c ColorCurve) Value(hour float64, t TimeSettings) RGBA {
	from, to, factor := blendAt(hour, t)
	return c.at(from).Lerp(c.at(to), factor)
}
