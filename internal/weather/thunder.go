package weather

import "math/rand/v2"

// flashState tracks the transient thunder flash brightness for one
// weather type. The manager owns one slot per type so Pattern values
// stay immutable and transitions never read a stale brightness.
type flashState struct {
	brightness float64
}

// update advances the flash simulation for pattern p blended in at
// ratio, and returns the brightness this type contributes to the
// frame. While paused the brightness holds and no strikes land.
func (f *flashState) update(p *Pattern, ratio, elapsedSeconds float64, paused bool, rng *rand.Rand, sounds SoundPlayer) float64 {
	if paused {
		return f.brightness
	}
	if ratio >= p.ThunderThreshold && p.ThunderFrequency > 0 {
		f.decay(p.FlashDecrement * elapsedSeconds)
		if rng.Float64() <= strikeChance(p, ratio, elapsedSeconds) {
			f.strike(p, rng, sounds)
		}
	} else {
		f.brightness = 0
	}
	return f.brightness
}

// decay lowers the brightness, flooring at zero. Flash_Decrement is
// whole units per second: at 4.0, a full flash fades in a quarter
// second.
func (f *flashState) decay(decrement float64) {
	if decrement > f.brightness {
		f.brightness = 0
		return
	}
	f.brightness -= decrement
}

// strikeChance scales observed storm behavior: Thunder_Frequency 1 is
// roughly ten strikes per minute of real time, tapering linearly with
// how far the blend ratio sits past the threshold.
func strikeChance(p *Pattern, ratio, elapsedSeconds float64) float64 {
	scale := (ratio - p.ThunderThreshold) / (1 - p.ThunderThreshold)
	return (p.ThunderFrequency * 10 / 60) * elapsedSeconds * scale
}

// strike rolls one of four distance buckets; 0 is the closest and
// brightest, 3 a far rumble. Brightness adds up across strikes.
func (f *flashState) strike(p *Pattern, rng *rand.Rand, sounds SoundPlayer) {
	distance := rng.IntN(4)
	f.brightness += 1 - float64(distance)*0.25
	sounds.PlaySound(p.ThunderSoundID[distance], 1, 1, false)
}
