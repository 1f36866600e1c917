//go:build cgo
// +build cgo

package skyview

import (
	"bytes"
	"math"
	"reflect"
	"testing"

	"github.com/aquilax/go-perlin"

	"github.com/Acidburn0zzz/openmw/internal/weather"
)

func TestCloudValueTilesHorizontally(t *testing.T) {
	p := perlin.NewPerlin(2, 2, cloudOctaves, cloudSeed("tx_sky_foggy"))

	for _, y := range []float64{0, 0.31, 0.77} {
		left := cloudValue(p, 0, y)
		right := cloudValue(p, 1, y)
		if math.Abs(left-right) > 1e-9 {
			t.Fatalf("y=%v: edges do not meet: %v vs %v", y, left, right)
		}
	}

	for x := 0.0; x < 1; x += 0.13 {
		for y := 0.0; y < 1; y += 0.17 {
			v := cloudValue(p, x, y)
			if v < 0 || v > 1 {
				t.Fatalf("cloudValue(%v, %v) = %v out of range", x, y, v)
			}
		}
	}
}

func TestCloudImageDeterministicPerName(t *testing.T) {
	a := cloudImage("tx_sky_clear")
	b := cloudImage("tx_sky_clear")
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same name produced different tiles")
	}

	c := cloudImage("tx_sky_rainy")
	if bytes.Equal(a.Pix, c.Pix) {
		t.Fatal("different names produced identical tiles")
	}
}

func TestCloudImageShapesAlphaOnly(t *testing.T) {
	img := cloudImage("tx_sky_thunder")
	if img.Bounds().Dx() != cloudTileSize || img.Bounds().Dy() != cloudTileSize {
		t.Fatalf("tile size: got %v", img.Bounds())
	}

	sawClear, sawCloud := false, false
	for y := 0; y < cloudTileSize; y++ {
		for x := 0; x < cloudTileSize; x++ {
			px := img.RGBAAt(x, y)
			if px.R != 255 || px.G != 255 || px.B != 255 {
				t.Fatalf("pixel (%d,%d) not white: %v", x, y, px)
			}
			if px.A == 0 {
				sawClear = true
			} else {
				sawCloud = true
			}
		}
	}
	if !sawClear || !sawCloud {
		t.Fatalf("tile has no shape: clear=%v cloud=%v", sawClear, sawCloud)
	}
}

func TestCloudAlphaRamp(t *testing.T) {
	if got := cloudAlpha(0.2); got != 0 {
		t.Fatalf("below floor: got %d", got)
	}
	if got := cloudAlpha(0.9); got != 255 {
		t.Fatalf("above band: got %d", got)
	}
	mid := cloudAlpha(0.57)
	if mid < 120 || mid > 135 {
		t.Fatalf("mid band: got %d", mid)
	}
}

func TestSunScreenPosTracksTheDay(t *testing.T) {
	const width, horizon = 1000.0, 700.0

	x, y := sunScreenPos(weather.Vec3{X: -1, Y: 0.268, Z: 0}, width, horizon)
	if math.Abs(x) > 1e-6 || math.Abs(y-horizon) > 1e-6 {
		t.Fatalf("sunrise: got (%v, %v)", x, y)
	}

	x, y = sunScreenPos(weather.Vec3{X: 0, Y: 0.268, Z: -1}, width, horizon)
	if math.Abs(x-width/2) > 1e-6 || math.Abs(y-horizon*0.12) > 1e-6 {
		t.Fatalf("noon: got (%v, %v)", x, y)
	}

	x, y = sunScreenPos(weather.Vec3{X: 1, Y: 0.268, Z: 0}, width, horizon)
	if math.Abs(x-width) > 1e-6 || math.Abs(y-horizon) > 1e-6 {
		t.Fatalf("sunset: got (%v, %v)", x, y)
	}
}

func TestMoonScreenPosArc(t *testing.T) {
	const width, horizon = 1000.0, 700.0

	x, y := moonScreenPos(weather.MoonState{RotationFromHorizon: 90}, width, horizon)
	if math.Abs(x-width/2) > 1e-6 {
		t.Fatalf("zenith x: got %v", x)
	}
	if math.Abs(y-horizon*0.18) > 1e-6 {
		t.Fatalf("zenith y: got %v", y)
	}

	// The axis offset slides the whole arc sideways.
	shifted, _ := moonScreenPos(weather.MoonState{RotationFromHorizon: 90, AxisOffset: 35}, width, horizon)
	if math.Abs(shifted-(x+width*35/720)) > 1e-6 {
		t.Fatalf("axis offset shift: got %v", shifted)
	}

	// Travel is monotonic left to right across the arc.
	prev := -1.0
	for _, rot := range []float64{10, 45, 90, 135, 170} {
		x, _ := moonScreenPos(weather.MoonState{RotationFromHorizon: rot}, width, horizon)
		if x <= prev {
			t.Fatalf("rotation %v went backwards: %v <= %v", rot, x, prev)
		}
		prev = x
	}
}

func TestMoonShadowOffsetByPhase(t *testing.T) {
	cases := []struct {
		phase weather.MoonPhase
		want  float64
	}{
		{weather.PhaseFull, 2},
		{weather.PhaseWaningGibbous, 1.5},
		{weather.PhaseThirdQuarter, 1},
		{weather.PhaseWaningCrescent, 0.5},
		{weather.PhaseNew, 0},
		{weather.PhaseWaxingCrescent, -0.5},
		{weather.PhaseFirstQuarter, -1},
		{weather.PhaseWaxingGibbous, -1.5},
	}
	for _, tc := range cases {
		if got := moonShadowOffset(tc.phase); got != tc.want {
			t.Fatalf("%v: got %v, want %v", tc.phase, got, tc.want)
		}
	}
}

func TestClockLabel(t *testing.T) {
	cases := []struct {
		t    weather.GameTime
		want string
	}{
		{weather.GameTime{Day: 1, Hour: 0}, "Day 1   00:00"},
		{weather.GameTime{Day: 3, Hour: 14.5}, "Day 3   14:30"},
		{weather.GameTime{Day: 12, Hour: 9.25}, "Day 12   09:15"},
	}
	for _, tc := range cases {
		if got := clockLabel(tc.t); got != tc.want {
			t.Fatalf("clockLabel(%+v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestChannelByteClamps(t *testing.T) {
	if got := channelByte(-0.5); got != 0 {
		t.Fatalf("negative: got %d", got)
	}
	if got := channelByte(2); got != 255 {
		t.Fatalf("overshoot: got %d", got)
	}
	if got := channelByte(0.5); got != 128 {
		t.Fatalf("half: got %d", got)
	}

	boosted := toRL(weather.RGBA{R: 1.8, G: 1.2, B: 3, A: 1})
	if boosted.R != 255 || boosted.G != 255 || boosted.B != 255 {
		t.Fatalf("flash clamp: got %v", boosted)
	}
}

func TestScatterStarsStableAndBounded(t *testing.T) {
	a := scatterStars(50, 7)
	b := scatterStars(50, 7)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different fields")
	}
	if reflect.DeepEqual(a, scatterStars(50, 23)) {
		t.Fatal("different seeds produced identical fields")
	}

	for i, s := range a {
		if s.x < 0 || s.x >= 1 || s.y < 0 || s.y >= 1 {
			t.Fatalf("star %d out of unit square: %+v", i, s)
		}
		if s.r < 0.6 || s.r >= 1.8 {
			t.Fatalf("star %d radius out of range: %v", i, s.r)
		}
	}
}
