package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// ID indexes the ten canonical weather types.
type ID int

const (
	Clear ID = iota
	Cloudy
	Foggy
	Overcast
	Rain
	Thunderstorm
	Ashstorm
	Blight
	Snow
	Blizzard
)

// Invalid marks "no weather chosen" in transition slots and regional
// election state.
const Invalid ID = -1

var idNames = [...]string{
	"Clear", "Cloudy", "Foggy", "Overcast", "Rain",
	"Thunderstorm", "Ashstorm", "Blight", "Snow", "Blizzard",
}

func (id ID) String() string {
	if id == Invalid {
		return "Invalid"
	}
	if int(id) < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// Names returns the canonical type names in id order.
func Names() []string {
	out := make([]string, len(idNames))
	copy(out, idNames[:])
	return out
}

// ParseID resolves a canonical name (case-insensitive) or a numeric id
// string.
func ParseID(s string) (ID, error) {
	for i, name := range idNames {
		if strings.EqualFold(s, name) {
			return ID(i), nil
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 && n < len(idNames) {
		return ID(n), nil
	}
	return Invalid, fmt.Errorf("unknown weather %q", s)
}

// Pattern is the immutable per-type weather description, assembled
// from fallback values at startup. Transient runtime state (thunder
// flash brightness) lives with the manager, not here.
type Pattern struct {
	Name string

	CloudTexture string

	SkyColor     ColorCurve
	FogColor     ColorCurve
	AmbientColor ColorCurve
	SunColor     ColorCurve
	LandFogDepth FloatCurve

	SunDiscSunsetColor RGBA

	WindSpeed  float64
	CloudSpeed float64
	GlareView  float64

	// IsStorm is true when the wind speed exceeds the storm threshold;
	// storms blow directional debris away from the storm origin.
	IsStorm bool

	RainSpeed     float64
	RainFrequency float64

	// ParticleEffect is the dedicated storm particle mesh, if any.
	ParticleEffect string
	// RainEffect is the generic raindrop mesh when precipitation is
	// enabled for this type.
	RainEffect string

	// TransitionDelta is the rate, in Hz of real time, at which a
	// transition toward this type progresses. Timescale does not speed
	// up a crossfade.
	TransitionDelta float64
	// CloudsMaximumPercent scales how quickly the incoming cloud
	// texture crosses over during a transition.
	CloudsMaximumPercent float64

	AmbientLoopSoundID string

	ThunderFrequency float64
	ThunderThreshold float64
	ThunderSoundID   [4]string
	FlashDecrement   float64
}

// CloudBlendFactor reports how far the incoming cloud layer has
// crossed over at the given transition progress.
func (p *Pattern) CloudBlendFactor(transitionRatio float64) float64 {
	return transitionRatio / p.CloudsMaximumPercent
}

func newPattern(name string, values Values, stormWindSpeed, rainSpeed float64, particleEffect string) (Pattern, error) {
	r := &valueReader{values: values}
	prefix := "Weather_" + name + "_"

	p := Pattern{
		Name:         name,
		CloudTexture: values.String(prefix + "Cloud_Texture"),
		SkyColor: ColorCurve{
			Sunrise: r.color(prefix + "Sky_Sunrise_Color"),
			Day:     r.color(prefix + "Sky_Day_Color"),
			Sunset:  r.color(prefix + "Sky_Sunset_Color"),
			Night:   r.color(prefix + "Sky_Night_Color"),
		},
		FogColor: ColorCurve{
			Sunrise: r.color(prefix + "Fog_Sunrise_Color"),
			Day:     r.color(prefix + "Fog_Day_Color"),
			Sunset:  r.color(prefix + "Fog_Sunset_Color"),
			Night:   r.color(prefix + "Fog_Night_Color"),
		},
		AmbientColor: ColorCurve{
			Sunrise: r.color(prefix + "Ambient_Sunrise_Color"),
			Day:     r.color(prefix + "Ambient_Day_Color"),
			Sunset:  r.color(prefix + "Ambient_Sunset_Color"),
			Night:   r.color(prefix + "Ambient_Night_Color"),
		},
		SunColor: ColorCurve{
			Sunrise: r.color(prefix + "Sun_Sunrise_Color"),
			Day:     r.color(prefix + "Sun_Day_Color"),
			Sunset:  r.color(prefix + "Sun_Sunset_Color"),
			Night:   r.color(prefix + "Sun_Night_Color"),
		},
		// Day depth covers sunrise through sunset; only night differs.
		LandFogDepth: FloatCurve{
			Sunrise: values.Float(prefix + "Land_Fog_Day_Depth"),
			Day:     values.Float(prefix + "Land_Fog_Day_Depth"),
			Sunset:  values.Float(prefix + "Land_Fog_Day_Depth"),
			Night:   values.Float(prefix + "Land_Fog_Night_Depth"),
		},
		SunDiscSunsetColor:   r.color(prefix + "Sun_Disc_Sunset_Color"),
		WindSpeed:            values.Float(prefix + "Wind_Speed"),
		CloudSpeed:           values.Float(prefix + "Cloud_Speed"),
		GlareView:            values.Float(prefix + "Glare_View"),
		RainSpeed:            rainSpeed,
		RainFrequency:        values.Float(prefix + "Rain_Entrance_Speed"),
		ParticleEffect:       particleEffect,
		TransitionDelta:      values.Float(prefix + "Transition_Delta"),
		CloudsMaximumPercent: values.Float(prefix + "Clouds_Maximum_Percent"),
		ThunderFrequency:     values.Float(prefix + "Thunder_Frequency"),
		ThunderThreshold:     values.Float(prefix + "Thunder_Threshold"),
		FlashDecrement:       values.Float(prefix + "Flash_Decrement"),
	}
	p.IsStorm = p.WindSpeed > stormWindSpeed

	for i := range p.ThunderSoundID {
		p.ThunderSoundID[i] = values.String(fmt.Sprintf("%sThunder_Sound_ID_%d", prefix, i))
	}

	if values.Bool(prefix + "Using_Precip") {
		p.RainEffect = `meshes\raindrop.nif`
	}
	if p.RainEffect != "" {
		p.AmbientLoopSoundID = values.String(prefix + "Rain_Loop_Sound_ID")
		if p.AmbientLoopSoundID == "" {
			p.AmbientLoopSoundID = "rain"
		}
	} else {
		p.AmbientLoopSoundID = values.String(prefix + "Ambient_Loop_Sound_ID")
	}
	// Data files write "None" for silence.
	if strings.EqualFold(p.AmbientLoopSoundID, "None") {
		p.AmbientLoopSoundID = ""
	}

	if r.err != nil {
		return Pattern{}, fmt.Errorf("weather %s: %w", name, r.err)
	}
	return p, nil
}
