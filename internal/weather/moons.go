package weather

import "math"

// MoonPhase buckets the lunar cycle into the eight classic phases,
// starting from full and waning first.
type MoonPhase int

const (
	PhaseFull MoonPhase = iota
	PhaseWaningGibbous
	PhaseThirdQuarter
	PhaseWaningCrescent
	PhaseNew
	PhaseWaxingCrescent
	PhaseFirstQuarter
	PhaseWaxingGibbous
)

var phaseNames = [...]string{
	"Full", "Waning Gibbous", "Third Quarter", "Waning Crescent",
	"New", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
}

func (p MoonPhase) String() string {
	if int(p) < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// MoonState is the render-ready snapshot of one moon at one instant.
type MoonState struct {
	// RotationFromHorizon is the angle travelled along the rise-to-set
	// arc, in degrees; 0 means at or below the horizon.
	RotationFromHorizon float64
	// AxisOffset tilts the arc plane, in degrees.
	AxisOffset float64
	Phase      MoonPhase
	// ShadowBlend is the textured-surface vs solid-disk ratio in [0,1].
	ShadowBlend float64
	// Alpha is the final transparency in [0,1], combining the angular
	// early fade with the hour-of-day fade.
	Alpha float64
}

// Moon models one moon's kinematics from the Moons_<Name>_* fallback
// keys. All methods are pure: equal inputs give equal states.
type Moon struct {
	name string

	fadeInStart          float64
	fadeInFinish         float64
	fadeOutStart         float64
	fadeOutFinish        float64
	axisOffset           float64
	speed                float64
	dailyIncrement       float64
	fadeStartAngle       float64
	fadeEndAngle         float64
	shadowEarlyFadeAngle float64
}

func newMoon(name string, values Values) Moon {
	prefix := "Moons_" + name + "_"
	m := Moon{
		name:                 name,
		fadeInStart:          values.Float(prefix + "Fade_In_Start"),
		fadeInFinish:         values.Float(prefix + "Fade_In_Finish"),
		fadeOutStart:         values.Float(prefix + "Fade_Out_Start"),
		fadeOutFinish:        values.Float(prefix + "Fade_Out_Finish"),
		axisOffset:           values.Float(prefix + "Axis_Offset"),
		speed:                values.Float(prefix + "Speed"),
		dailyIncrement:       values.Float(prefix + "Daily_Increment"),
		fadeStartAngle:       values.Float(prefix + "Fade_Start_Angle"),
		fadeEndAngle:         values.Float(prefix + "Fade_End_Angle"),
		shadowEarlyFadeAngle: values.Float(prefix + "Moon_Shadow_Early_Fade_Angle"),
	}
	// A moon must be able to finish its 180 degree arc inside a single
	// day, so the speed has a ceiling.
	m.speed = math.Min(m.speed, 180.0/23.0)
	return m
}

// State computes the moon's render state for the given time.
func (m Moon) State(t GameTime) MoonState {
	angle := m.angle(t)
	return MoonState{
		RotationFromHorizon: angle,
		AxisOffset:          m.axisOffset,
		Phase:               m.phase(t),
		ShadowBlend:         m.shadowBlend(angle),
		Alpha:               m.earlyShadowAlpha(angle) * m.hourlyAlpha(t.Hour),
	}
}

// angle returns degrees travelled along the rise-to-set arc. Three
// cases: the moon rose earlier today; it rose yesterday and has not
// set (yesterday's partial arc carries over); it has not risen yet.
// A finished arc (>= 180) reads as 0, back at the horizon.
func (m Moon) angle(t GameTime) float64 {
	riseToday := m.riseHour(t.Day)
	angle := 0.0
	if t.Hour < riseToday {
		riseYesterday := m.riseHour(t.Day - 1)
		if riseYesterday < 24 {
			angleYesterday := m.rotation(24 - riseYesterday)
			if angleYesterday < 180 {
				angle = m.rotation(t.Hour) + angleYesterday
			}
		}
	} else {
		angle = m.rotation(t.Hour - riseToday)
	}
	if angle >= 180 {
		angle = 0
	}
	return angle
}

// riseHour drifts later by the daily increment each day. The epoch
// constant anchors the cycle sixteen days into the calendar month the
// game starts in. No modulo after the final increment: callers need to
// see rise hours >= 24, which postpone the rise to the next day.
func (m Moon) riseHour(day int) float64 {
	const epochDay = 16
	return m.dailyIncrement + math.Mod(float64(day-1+epochDay)*m.dailyIncrement, 24)
}

// rotation converts hours since rise to degrees travelled: 15 degrees
// per hour, scaled by the moon's speed.
func (m Moon) rotation(hours float64) float64 {
	return 15 * m.speed * hours
}

// phase advances every third day and flips at the daily rise, so a
// moon still up from yesterday keeps yesterday's face.
func (m Moon) phase(t GameTime) MoonPhase {
	if t.Hour < m.riseHour(t.Day) {
		return MoonPhase((t.Day / 3) % 8)
	}
	return MoonPhase(((t.Day + 1) / 3) % 8)
}

// shadowBlend ramps between the solid sky-colored disk and the
// textured surface: solid below the fade end angle, textured between
// the fade start angles, linear in the two bands between, mirrored
// around the 90 degree zenith.
func (m Moon) shadowBlend(angle float64) float64 {
	fadeAngle := m.fadeStartAngle - m.fadeEndAngle
	fadeEndAngle2 := 180 - m.fadeEndAngle
	fadeStartAngle2 := 180 - m.fadeStartAngle
	switch {
	case angle >= m.fadeEndAngle && angle < m.fadeStartAngle:
		return (angle - m.fadeEndAngle) / fadeAngle
	case angle >= m.fadeStartAngle && angle < fadeStartAngle2:
		return 1
	case angle >= fadeStartAngle2 && angle < fadeEndAngle2:
		return (fadeEndAngle2 - angle) / fadeAngle
	default:
		return 0
	}
}

// hourlyAlpha is the hour-of-day visibility trapezoid: opaque between
// fade-in finish and fade-out start, transparent between fade-out
// finish and fade-in start, linear in between.
func (m Moon) hourlyAlpha(hour float64) float64 {
	switch {
	case hour >= m.fadeOutStart && hour < m.fadeOutFinish:
		return (m.fadeOutFinish - hour) / (m.fadeOutFinish - m.fadeOutStart)
	case hour >= m.fadeOutFinish && hour < m.fadeInStart:
		return 0
	case hour >= m.fadeInStart && hour < m.fadeInFinish:
		return (hour - m.fadeInStart) / (m.fadeInFinish - m.fadeInStart)
	default:
		return 1
	}
}

// earlyShadowAlpha washes the moon out in a small arc right at the
// horizon, relative to the fade end angle on both ends of the arc.
func (m Moon) earlyShadowAlpha(angle float64) float64 {
	early1 := m.fadeEndAngle - m.shadowEarlyFadeAngle
	fadeEndAngle2 := 180 - m.fadeEndAngle
	early2 := fadeEndAngle2 + m.shadowEarlyFadeAngle
	switch {
	case angle >= early1 && angle < m.fadeEndAngle:
		return (angle - early1) / m.shadowEarlyFadeAngle
	case angle >= m.fadeEndAngle && angle < fadeEndAngle2:
		return 1
	case angle >= fadeEndAngle2 && angle < early2:
		return (early2 - angle) / m.shadowEarlyFadeAngle
	default:
		return 0
	}
}
