// Package simworld provides a scriptable game world for driving the
// weather engine outside a full game: a clock with a configurable
// timescale and a player that can be moved between regions, indoors
// and out. Nothing here is safe for concurrent use; drive it from the
// loop that owns the manager.
package simworld

import (
	"math"
	"time"

	"github.com/Acidburn0zzz/openmw/internal/weather"
)

// DefaultTimescale is game seconds per real second.
const DefaultTimescale = 30

// World implements weather.World with a scripted clock and player.
type World struct {
	day       int
	hour      float64
	timescale float64

	exterior bool
	region   string
	position weather.Vec3
}

func New(timescale float64) *World {
	if timescale <= 0 {
		timescale = DefaultTimescale
	}
	return &World{
		day:       1,
		hour:      9,
		timescale: timescale,
		exterior:  true,
	}
}

// Tick converts elapsed real time into game time and advances the
// clock. It returns the game hours that passed.
func (w *World) Tick(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	hours := elapsed.Seconds() * w.timescale / 3600
	w.advance(hours)
	return hours
}

// Skip jumps the clock forward without real time passing, the way
// resting or waiting does.
func (w *World) Skip(hours float64) {
	w.advance(hours)
}

func (w *World) advance(hours float64) {
	if hours <= 0 {
		return
	}
	w.hour += hours
	for w.hour >= 24 {
		w.hour -= 24
		w.day++
	}
}

// SetHour sets the clock within the current day, wrapping into [0, 24).
func (w *World) SetHour(hour float64) {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}
	w.hour = hour
}

func (w *World) SetDay(day int) {
	if day < 1 {
		day = 1
	}
	w.day = day
}

// MoveTo places the player in a region; "" is the trackless wilderness.
func (w *World) MoveTo(region string) {
	w.region = region
}

func (w *World) SetExterior(exterior bool) {
	w.exterior = exterior
}

func (w *World) SetPosition(position weather.Vec3) {
	w.position = position
}

func (w *World) Timescale() float64 {
	return w.timescale
}

// SetTimescale adjusts how fast game time runs; non-positive values
// are ignored.
func (w *World) SetTimescale(timescale float64) {
	if timescale <= 0 {
		return
	}
	w.timescale = timescale
}

func (w *World) TimeStamp() weather.GameTime {
	return weather.GameTime{Day: w.day, Hour: w.hour}
}

func (w *World) IsExterior() bool {
	return w.exterior
}

func (w *World) PlayerRegion() string {
	return w.region
}

func (w *World) PlayerPosition() weather.Vec3 {
	return w.position
}
