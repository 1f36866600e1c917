package weather

import (
	"math"
	"testing"
)

func TestStableResultSamplesSingleType(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m

	r := m.sampleResult(Clear, 12)
	p := m.patterns[Clear]

	if r.CloudTexture != p.CloudTexture {
		t.Fatalf("cloud texture: got %q, want %q", r.CloudTexture, p.CloudTexture)
	}
	if r.SkyColor != p.SkyColor.Day {
		t.Fatalf("midday sky color: got %+v, want the day anchor %+v", r.SkyColor, p.SkyColor.Day)
	}
	if r.FogDepth != p.LandFogDepth.Day {
		t.Fatalf("midday fog depth: got %v, want %v", r.FogDepth, p.LandFogDepth.Day)
	}
	if r.AmbientSoundVolume != 1 || r.EffectFade != 1 {
		t.Fatalf("stable volume/fade: got %v/%v, want 1/1", r.AmbientSoundVolume, r.EffectFade)
	}
	if r.Night {
		t.Fatalf("midday flagged as night")
	}
	if r.NightFade != 0 {
		t.Fatalf("midday night fade: got %v, want 0", r.NightFade)
	}

	night := m.sampleResult(Clear, 23)
	if !night.Night {
		t.Fatalf("23:00 not flagged as night")
	}
	if night.NightFade != 1 {
		t.Fatalf("night fade: got %v, want 1", night.NightFade)
	}
}

func TestBlendedResultLerpsContinuousChannels(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m
	m.currentWeather = Clear
	m.nextWeather = Rain

	r := m.blendResult(0.3, 12)

	clear := m.sampleResult(Clear, 12)
	rain := m.sampleResult(Rain, 12)

	wantDepth := lerp(clear.FogDepth, rain.FogDepth, 0.3)
	if math.Abs(r.FogDepth-wantDepth) > 1e-12 {
		t.Fatalf("fog depth: got %v, want %v", r.FogDepth, wantDepth)
	}
	wantWind := lerp(clear.WindSpeed, rain.WindSpeed, 0.3)
	if math.Abs(r.WindSpeed-wantWind) > 1e-12 {
		t.Fatalf("wind speed: got %v, want %v", r.WindSpeed, wantWind)
	}
	wantSky := clear.SkyColor.Lerp(rain.SkyColor, 0.3)
	if r.SkyColor != wantSky {
		t.Fatalf("sky color: got %+v, want %+v", r.SkyColor, wantSky)
	}

	if r.CloudTexture != clear.CloudTexture || r.NextCloudTexture != rain.CloudTexture {
		t.Fatalf("cloud textures: got %q -> %q", r.CloudTexture, r.NextCloudTexture)
	}
	wantBlend := 0.3 / m.patterns[Rain].CloudsMaximumPercent
	if math.Abs(r.CloudBlendFactor-wantBlend) > 1e-12 {
		t.Fatalf("cloud blend: got %v, want %v", r.CloudBlendFactor, wantBlend)
	}
}

func TestBlendedResultSwitchesCategoricalsAtMidpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m
	m.currentWeather = Clear
	m.nextWeather = Rain

	early := m.blendResult(0.2, 12)
	if early.RainEffect != "" {
		t.Fatalf("below midpoint: rain effect %q leaked in early", early.RainEffect)
	}
	if early.AmbientLoopSoundID != "" {
		t.Fatalf("below midpoint: loop %q leaked in early", early.AmbientLoopSoundID)
	}
	if math.Abs(early.AmbientSoundVolume-0.6) > 1e-12 {
		t.Fatalf("ramp-down volume: got %v, want 0.6", early.AmbientSoundVolume)
	}
	if early.EffectFade != early.AmbientSoundVolume {
		t.Fatalf("effect fade %v diverged from volume %v", early.EffectFade, early.AmbientSoundVolume)
	}

	late := m.blendResult(0.8, 12)
	if late.RainEffect == "" {
		t.Fatalf("above midpoint: rain effect missing")
	}
	if late.AmbientLoopSoundID != "rain" {
		t.Fatalf("above midpoint: loop got %q, want \"rain\"", late.AmbientLoopSoundID)
	}
	wantVolume := 2 * (0.8 - 0.5)
	if math.Abs(late.AmbientSoundVolume-wantVolume) > 1e-12 {
		t.Fatalf("ramp-up volume: got %v, want %v", late.AmbientSoundVolume, wantVolume)
	}
}

func TestBlendedResultStormFlagFollowsDominantSide(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m
	m.currentWeather = Clear
	m.nextWeather = Ashstorm

	if m.blendResult(0.4, 12).IsStorm {
		t.Fatalf("storm flag set while the clear side dominates")
	}
	if !m.blendResult(0.6, 12).IsStorm {
		t.Fatalf("storm flag missing while the storm side dominates")
	}
}

func TestSunDiscColorWindows(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m
	p := &m.patterns[Clear]

	midday := m.sunDiscColor(p, RGBA{}, 12)
	if midday != white {
		t.Fatalf("midday disc: got %+v, want plain white", midday)
	}

	// Inside the pre-sunset hour the disc tints toward the type's
	// sunset color; with a black ambient the add-then-clamp is a no-op.
	preSunset := m.sunDiscColor(p, RGBA{}, 17.5)
	wantTint := white.Lerp(p.SunDiscSunsetColor, 0.5)
	if math.Abs(preSunset.R-wantTint.R) > 1e-12 ||
		math.Abs(preSunset.G-wantTint.G) > 1e-12 ||
		math.Abs(preSunset.B-wantTint.B) > 1e-12 {
		t.Fatalf("pre-sunset tint: got %+v, want %+v", preSunset, wantTint)
	}
	if preSunset.A != 1 {
		t.Fatalf("pre-sunset alpha: got %v, want 1", preSunset.A)
	}

	postSunset := m.sunDiscColor(p, RGBA{}, 19)
	if math.Abs(postSunset.A-0.75) > 1e-12 {
		t.Fatalf("one hour past sunset: alpha %v, want 1 - 0.5^2", postSunset.A)
	}

	lateNight := m.sunDiscColor(p, RGBA{}, 20.5)
	if lateNight.A != 0 {
		t.Fatalf("fully faded disc: alpha %v, want 0", lateNight.A)
	}

	sunrise := m.sunDiscColor(p, RGBA{}, 6.5)
	if math.Abs(sunrise.A-0.5) > 1e-12 {
		t.Fatalf("sunrise window: alpha %v, want 0.5", sunrise.A)
	}
}

func TestSunDiscTintClampsAfterAmbientBoost(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.m
	p := &m.patterns[Clear]

	boosted := m.sunDiscColor(p, white, 17.5)
	if boosted.R > 1 || boosted.G > 1 || boosted.B > 1 {
		t.Fatalf("ambient boost escaped the clamp: %+v", boosted)
	}
	plain := m.sunDiscColor(p, RGBA{}, 17.5)
	if boosted.R < plain.R || boosted.G < plain.G || boosted.B < plain.B {
		t.Fatalf("ambient boost darkened the disc: %+v vs %+v", boosted, plain)
	}
}
