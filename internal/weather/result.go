package weather

import "math"

// Result is the fully composed output of one update tick: everything
// the renderer and sound collaborators need, recomputed from scratch
// each exterior frame. The manager owns it; consumers read it for the
// frame it was handed over.
type Result struct {
	// CloudTexture is the active cloud layer. During a transition
	// NextCloudTexture carries the incoming layer and CloudBlendFactor
	// how far it has crossed over.
	CloudTexture     string
	NextCloudTexture string
	CloudBlendFactor float64

	SkyColor     RGBA
	FogColor     RGBA
	AmbientColor RGBA
	SunColor     RGBA
	SunDiscColor RGBA

	FogDepth   float64
	WindSpeed  float64
	CloudSpeed float64
	GlareView  float64

	AmbientLoopSoundID string
	AmbientSoundVolume float64

	Night     bool
	NightFade float64

	IsStorm bool

	RainSpeed      float64
	RainFrequency  float64
	ParticleEffect string
	RainEffect     string
	// EffectFade scales particle density across a transition, mirroring
	// the ambient sound volume ramp of whichever side owns the effects.
	EffectFade float64
}

// sampleResult composes a single weather type's channels at the given
// game hour, with no transition blending.
func (m *Manager) sampleResult(id ID, hour float64) Result {
	p := &m.patterns[id]

	r := Result{
		CloudTexture:       p.CloudTexture,
		WindSpeed:          p.WindSpeed,
		CloudSpeed:         p.CloudSpeed,
		GlareView:          p.GlareView,
		AmbientLoopSoundID: p.AmbientLoopSoundID,
		AmbientSoundVolume: 1,
		EffectFade:         1,
		IsStorm:            p.IsStorm,
		RainSpeed:          p.RainSpeed,
		RainFrequency:      p.RainFrequency,
		ParticleEffect:     p.ParticleEffect,
		RainEffect:         p.RainEffect,

		Night: hour < m.sunriseTime || hour > m.timeSettings.NightStart-1,

		FogDepth:     p.LandFogDepth.Value(hour, m.timeSettings),
		FogColor:     p.FogColor.Value(hour, m.timeSettings),
		AmbientColor: p.AmbientColor.Value(hour, m.timeSettings),
		SunColor:     p.SunColor.Value(hour, m.timeSettings),
		SkyColor:     p.SkyColor.Value(hour, m.timeSettings),
		NightFade:    m.nightFade.Value(hour, m.timeSettings),
	}

	r.SunDiscColor = m.sunDiscColor(p, r.AmbientColor, hour)
	return r
}

// sunDiscColor tints the visible sun disc toward the type's sunset
// color in the run-up to sunset and fades its alpha out after sunset
// and in during the first sunrise hour.
func (m *Manager) sunDiscColor(p *Pattern, ambient RGBA, hour float64) RGBA {
	c := white
	if hour >= m.sunsetTime-m.sunPreSunsetTime {
		factor := (hour - (m.sunsetTime - m.sunPreSunsetTime)) / m.sunPreSunsetTime
		factor = math.Min(1, factor)
		c = white.Lerp(p.SunDiscSunsetColor, factor)
		// The disc is lit, not flat: the tint gains the ambient term and
		// the sum clamps, the same way the scene lighting treats it.
		c = c.Add(c.Mul(ambient)).capRGB()
	}

	switch {
	case hour >= m.sunsetTime:
		fade := math.Min(1, (hour-m.sunsetTime)/2)
		c.A = 1 - fade*fade
	case hour >= m.sunriseTime && hour <= m.sunriseTime+1:
		c.A = hour - m.sunriseTime
	default:
		c.A = 1
	}
	return c
}

// blendResult composes both transition endpoints at the given hour and
// blends them by factor (0 = all current, 1 = all next). Continuous
// channels interpolate; categorical channels (storm flag, effect and
// sound ids, rain pacing) switch sides at the halfway point, with the
// sound volume and effect fade ramping out and back in around it.
func (m *Manager) blendResult(factor, hour float64) Result {
	current := m.sampleResult(m.currentWeather, hour)
	other := m.sampleResult(m.nextWeather, hour)

	r := Result{
		CloudTexture:     current.CloudTexture,
		NextCloudTexture: other.CloudTexture,
		CloudBlendFactor: m.patterns[m.nextWeather].CloudBlendFactor(factor),

		FogColor:     current.FogColor.Lerp(other.FogColor, factor),
		SunColor:     current.SunColor.Lerp(other.SunColor, factor),
		SkyColor:     current.SkyColor.Lerp(other.SkyColor, factor),
		AmbientColor: current.AmbientColor.Lerp(other.AmbientColor, factor),
		SunDiscColor: current.SunDiscColor.Lerp(other.SunDiscColor, factor),

		FogDepth:   lerp(current.FogDepth, other.FogDepth, factor),
		WindSpeed:  lerp(current.WindSpeed, other.WindSpeed, factor),
		CloudSpeed: lerp(current.CloudSpeed, other.CloudSpeed, factor),
		GlareView:  lerp(current.GlareView, other.GlareView, factor),
		NightFade:  lerp(current.NightFade, other.NightFade, factor),

		Night: current.Night,
	}

	if factor < 0.5 {
		r.IsStorm = current.IsStorm
		r.ParticleEffect = current.ParticleEffect
		r.RainEffect = current.RainEffect
		r.RainSpeed = current.RainSpeed
		r.RainFrequency = current.RainFrequency
		r.AmbientSoundVolume = 1 - factor*2
		r.EffectFade = r.AmbientSoundVolume
		r.AmbientLoopSoundID = current.AmbientLoopSoundID
	} else {
		r.IsStorm = other.IsStorm
		r.ParticleEffect = other.ParticleEffect
		r.RainEffect = other.RainEffect
		r.RainSpeed = other.RainSpeed
		r.RainFrequency = other.RainFrequency
		r.AmbientSoundVolume = 2 * (factor - 0.5)
		r.EffectFade = r.AmbientSoundVolume
		r.AmbientLoopSoundID = other.AmbientLoopSoundID
	}
	return r
}
