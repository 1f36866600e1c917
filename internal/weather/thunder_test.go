package weather

import (
	"math"
	"testing"
)

func thunderPattern() Pattern {
	return Pattern{
		Name:             "Thunderstorm",
		ThunderFrequency: 60, // a strike on every unpaused tick
		ThunderThreshold: 0.6,
		FlashDecrement:   4,
		ThunderSoundID:   [4]string{"Thunder0", "Thunder1", "Thunder2", "Thunder3"},
	}
}

func TestThunderBelowThresholdZeroesBrightness(t *testing.T) {
	p := thunderPattern()
	f := flashState{brightness: 0.8}
	sounds := &fakeSounds{}

	got := f.update(&p, 0.5, 1, false, SeededRNG(1), sounds)
	if got != 0 {
		t.Fatalf("below-threshold brightness: got %v, want 0", got)
	}
	if len(sounds.oneShots) != 0 {
		t.Fatalf("below-threshold tick played a sound")
	}
}

func TestThunderPausedFreezesState(t *testing.T) {
	p := thunderPattern()
	f := flashState{brightness: 0.6}
	sounds := &fakeSounds{}

	got := f.update(&p, 1, 5, true, SeededRNG(1), sounds)
	if got != 0.6 {
		t.Fatalf("paused brightness: got %v, want the frozen 0.6", got)
	}
	if len(sounds.oneShots) != 0 {
		t.Fatalf("paused tick played a sound")
	}
}

func TestThunderDecayFloorsAtZero(t *testing.T) {
	f := flashState{brightness: 0.2}
	f.decay(4)
	if f.brightness != 0 {
		t.Fatalf("over-decay: got %v, want 0", f.brightness)
	}

	f.brightness = 1
	f.decay(0.3)
	if f.brightness != 0.7 {
		t.Fatalf("partial decay: got %v, want 0.7", f.brightness)
	}
}

func TestThunderStrikeAddsBrightnessAndPlaysSound(t *testing.T) {
	p := thunderPattern()
	f := flashState{}
	sounds := &fakeSounds{}

	got := f.update(&p, 1, 1, false, SeededRNG(1), sounds)
	if got < 0.25 {
		t.Fatalf("strike brightness: got %v, want at least the farthest bucket 0.25", got)
	}
	if len(sounds.oneShots) != 1 {
		t.Fatalf("strike sounds: got %d, want 1", len(sounds.oneShots))
	}
	id := sounds.oneShots[0].id
	found := false
	for _, want := range p.ThunderSoundID {
		if id == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("strike sound id: got %q", id)
	}
}

func TestThunderStrikeChanceScalesPastThreshold(t *testing.T) {
	p := thunderPattern()
	p.ThunderFrequency = 1

	atThreshold := strikeChance(&p, 0.6, 1)
	if atThreshold != 0 {
		t.Fatalf("chance at the threshold: got %v, want 0", atThreshold)
	}

	full := strikeChance(&p, 1, 1)
	want := 1.0 * 10 / 60
	if full != want {
		t.Fatalf("chance at full ratio: got %v, want %v", full, want)
	}

	half := strikeChance(&p, 0.8, 1)
	if math.Abs(half-want/2) > 1e-12 {
		t.Fatalf("chance halfway past the threshold: got %v, want %v", half, want/2)
	}
}
