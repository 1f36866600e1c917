//go:build cgo
// +build cgo

package skyview

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Acidburn0zzz/openmw/internal/weather"
)

var (
	hudPanel  = rl.NewColor(10, 14, 20, 255)
	hudBorder = rl.NewColor(70, 82, 96, 255)
	hudText   = rl.NewColor(222, 230, 238, 255)
	hudDim    = rl.NewColor(142, 154, 168, 255)
	hudAccent = rl.NewColor(255, 205, 112, 255)
	hudWarn   = rl.NewColor(242, 118, 92, 255)

	masserSurface  = weather.RGBA{R: 0.77, G: 0.59, B: 0.51, A: 1}
	secundaSurface = weather.RGBA{R: 0.81, G: 0.84, B: 0.89, A: 1}
)

func (ui *skyUI) draw() {
	rl.ClearBackground(rl.Black)

	if !ui.sink.SkyEnabled {
		ui.drawInterior()
		ui.drawHUD()
		return
	}

	r := ui.sink.Result
	horizon := ui.horizonY()

	ui.drawSkyGradient(r, horizon)
	ui.drawStars(r, horizon)
	ui.drawSun(r, horizon)
	ui.drawMoon(ui.sink.Masser, ui.masserSize, masserSurface, horizon)
	ui.drawMoon(ui.sink.Secunda, ui.secundaSize, secundaSurface, horizon)
	ui.drawClouds(r, horizon)
	ui.drawGround(r, horizon)
	ui.drawPrecipitation(r)
	ui.drawHUD()
	if ui.showHelp {
		ui.drawHelp()
	}
}

func (ui *skyUI) horizonY() int32 {
	return int32(float64(ui.height) * 0.72)
}

// drawSkyGradient paints zenith color at the top shading into the fog
// color at the horizon line. Thunder flashes arrive through the fog
// channel, so strikes whiten the lower sky.
func (ui *skyUI) drawSkyGradient(r weather.Result, horizon int32) {
	rl.DrawRectangleGradientV(0, 0, ui.width, horizon, toRL(r.SkyColor), toRL(r.FogColor))
}

type starPoint struct {
	x, y, r float32
}

// scatterStars spreads n points over the unit square with a fixed seed,
// so the field is stable across frames and runs.
func scatterStars(n int, seed int64) []starPoint {
	rng := weather.SeededRNG(seed)
	stars := make([]starPoint, n)
	for i := range stars {
		stars[i] = starPoint{
			x: float32(rng.Float64()),
			y: float32(rng.Float64()),
			r: float32(0.6 + rng.Float64()*1.2),
		}
	}
	return stars
}

func (ui *skyUI) drawStars(r weather.Result, horizon int32) {
	if r.NightFade <= 0 {
		return
	}
	clr := rl.Fade(rl.NewColor(228, 233, 252, 255), float32(r.NightFade))
	for _, s := range ui.stars {
		rl.DrawCircleV(rl.NewVector2(s.x*float32(ui.width), s.y*float32(horizon)*0.92), s.r, clr)
	}
}

// sunScreenPos projects the sun direction (pointing from the sun toward
// the scene) onto the sky rectangle: rising on the left edge, setting
// on the right, elevation lifting it off the horizon line.
func sunScreenPos(dir weather.Vec3, width, horizon float64) (x, y float64) {
	x = width * (1 + dir.X) / 2
	elevation := -dir.Z
	y = horizon - elevation*horizon*0.88
	return x, y
}

func (ui *skyUI) drawSun(r weather.Result, horizon int32) {
	if !ui.sink.SunVisible {
		return
	}
	x, y := sunScreenPos(ui.sink.SunDirection, float64(ui.width), float64(horizon))
	radius := float32(ui.height) / 26

	glare := ui.sink.GlareFade * math.Min(1, r.GlareView)
	if glare > 0 {
		halo := toRL(r.SunColor)
		rl.DrawCircleGradient(int32(x), int32(y), radius*6,
			rl.Fade(halo, float32(0.38*glare)), rl.Fade(halo, 0))
	}
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), radius, toRL(r.SunDiscColor))
}

// moonScreenPos maps arc rotation onto the screen: rising on the left,
// setting on the right, with the axis offset sliding the whole arc
// sideways so the two moons never stack.
func moonScreenPos(ms weather.MoonState, width, horizon float64) (x, y float64) {
	x = width * (ms.RotationFromHorizon/180 + ms.AxisOffset/720)
	y = horizon - math.Sin(ms.RotationFromHorizon*math.Pi/180)*horizon*0.82
	return x, y
}

// moonShadowOffset is the phase mask displacement in moon radii: 0
// covers the disc at new, 2 clears it at full. The shadow slides right
// while waning and left while waxing.
func moonShadowOffset(p weather.MoonPhase) float64 {
	illum := math.Abs(4-float64(p)) / 4
	if p > weather.PhaseNew {
		return -2 * illum
	}
	return 2 * illum
}

// drawMoon composes one moon: a surface disc faded toward the sky
// behind it by the shadow blend, then a sky-colored mask disc cutting
// the current phase out of it.
func (ui *skyUI) drawMoon(ms weather.MoonState, sizePct float64, surface weather.RGBA, horizon int32) {
	if ms.RotationFromHorizon <= 0 || ms.Alpha <= 0 {
		return
	}
	x, y := moonScreenPos(ms, float64(ui.width), float64(horizon))
	radius := float32(float64(ui.height) / 24 * sizePct / 100)
	if radius < 3 {
		radius = 3
	}

	r := ui.sink.Result
	bg := r.SkyColor.Lerp(r.FogColor, clamp01(y/float64(horizon)))

	disc := bg.Lerp(surface, ms.ShadowBlend)
	disc.A = ms.Alpha
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), radius, toRL(disc))

	offset := moonShadowOffset(ms.Phase)
	if math.Abs(offset) < 2 {
		shadow := bg
		shadow.A = ms.Alpha
		rl.DrawCircleV(rl.NewVector2(float32(x)+float32(offset)*radius, float32(y)), radius, toRL(shadow))
	}
}

// drawClouds scrolls the outgoing layer and, mid-transition, fades the
// incoming one over it. Night darkens both.
func (ui *skyUI) drawClouds(r weather.Result, horizon int32) {
	shade := 1 - 0.72*r.NightFade
	blend := math.Min(1, r.CloudBlendFactor)

	ui.drawCloudLayer(r.CloudTexture, (1-blend)*0.9, shade, horizon)
	if r.NextCloudTexture != "" && blend > 0 {
		ui.drawCloudLayer(r.NextCloudTexture, blend*0.9, shade, horizon)
	}
}

func (ui *skyUI) drawCloudLayer(name string, alpha, shade float64, horizon int32) {
	if name == "" || alpha <= 0 {
		return
	}
	tex := ui.clouds.texture(name)
	w := float32(tex.Width)
	h := float32(tex.Height)

	// Wrap-repeat sampling: the source rect slides through the tile and
	// spans two tiles across the screen.
	src := rl.NewRectangle(float32(math.Mod(ui.scroll, 1))*w, 0, w*2, h)
	dst := rl.NewRectangle(0, 0, float32(ui.width), float32(horizon))
	grey := channelByte(shade)
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.Fade(rl.NewColor(grey, grey, grey, 255), float32(alpha)))
}

func (ui *skyUI) drawGround(r weather.Result, horizon int32) {
	ground := rl.NewColor(
		channelByte(r.AmbientColor.R*0.42),
		channelByte(r.AmbientColor.G*0.4),
		channelByte(r.AmbientColor.B*0.34),
		255,
	)
	rl.DrawRectangle(0, horizon, ui.width, ui.height-horizon, ground)

	// Fog: a veil over the ground plus a haze band hugging the horizon.
	fogA := clamp01(ui.sink.FogDepth / 2.5)
	if fogA <= 0 {
		return
	}
	fog := toRL(r.FogColor)
	rl.DrawRectangle(0, horizon, ui.width, ui.height-horizon, rl.Fade(fog, float32(fogA*0.5)))
	band := ui.height / 9
	rl.DrawRectangleGradientV(0, horizon-band, ui.width, band, rl.Fade(fog, 0), rl.Fade(fog, float32(fogA*0.75)))
}

var (
	dropAnchors  = scatterStars(220, 23)
	flakeAnchors = scatterStars(170, 41)
)

func (ui *skyUI) drawPrecipitation(r weather.Result) {
	if r.EffectFade <= 0 {
		return
	}
	effect := strings.ToLower(r.ParticleEffect)
	switch {
	case strings.Contains(effect, "snow") || strings.Contains(effect, "blizzard"):
		ui.drawSnow(r)
	case strings.Contains(effect, "ash") || strings.Contains(effect, "blight"):
		ui.drawDebris(r, effect)
	}
	if r.RainEffect != "" {
		ui.drawRain(r)
	}
}

// drawRain streaks fall at the pattern's rain speed and slant with the
// wind; entrance speed sets how many are airborne at once.
func (ui *skyUI) drawRain(r weather.Result) {
	density := clamp01(r.RainFrequency/7) * r.EffectFade
	drops := int(float64(len(dropAnchors)) * density)
	span := float64(ui.height) + 40
	fall := math.Max(300, r.RainSpeed)
	clr := rl.Fade(rl.NewColor(188, 205, 225, 255), float32(0.55*r.EffectFade))

	for _, d := range dropAnchors[:drops] {
		v := float64(d.r-0.6) / 1.2
		x := float32(d.x) * float32(ui.width)
		y := float32(math.Mod(float64(d.y)*span+ui.rainTime*fall*(0.8+0.4*v), span)) - 20
		length := float32(9 + 8*v)
		slant := float32(r.WindSpeed) * length * 0.9
		rl.DrawLineEx(rl.NewVector2(x, y), rl.NewVector2(x+slant, y+length), 1.2, clr)
	}
}

func (ui *skyUI) drawSnow(r weather.Result) {
	flakes := int(float64(len(flakeAnchors)) * r.EffectFade)
	span := float64(ui.height) + 20
	clr := rl.Fade(rl.NewColor(236, 240, 246, 255), float32(0.85*r.EffectFade))

	for _, f := range flakeAnchors[:flakes] {
		v := float64(f.r-0.6) / 1.2
		fall := 46 + 40*v + 30*r.WindSpeed
		x := float64(f.x)*float64(ui.width) + math.Sin(ui.rainTime*0.8+v*6.3)*11
		y := math.Mod(float64(f.y)*span+ui.rainTime*fall, span) - 10
		rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), 1.1+f.r, clr)
	}
}

// drawDebris blows ash or blight sideways, away from the storm origin.
func (ui *skyUI) drawDebris(r weather.Result, effect string) {
	tint := rl.NewColor(124, 106, 92, 255)
	if strings.Contains(effect, "blight") {
		tint = rl.NewColor(148, 128, 76, 255)
	}
	clr := rl.Fade(tint, float32(0.7*r.EffectFade))

	drift := ui.sink.StormDirection.X
	if drift == 0 {
		drift = -1
	}
	speed := (140 + 90*r.WindSpeed) * drift
	grains := int(float64(len(dropAnchors)) * 0.8 * r.EffectFade)

	for _, d := range dropAnchors[:grains] {
		v := float64(d.r-0.6) / 1.2
		x := math.Mod(float64(d.x)*float64(ui.width)+ui.rainTime*speed*(0.7+0.6*v), float64(ui.width))
		if x < 0 {
			x += float64(ui.width)
		}
		y := float64(d.y)*float64(ui.height)*0.96 + math.Sin(ui.rainTime*1.4+v*8)*5
		length := (10 + 9*v) * drift
		rl.DrawLineEx(rl.NewVector2(float32(x), float32(y)), rl.NewVector2(float32(x+length), float32(y+2)), 1.4, clr)
	}
}

func (ui *skyUI) drawInterior() {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(16, 14, 12, 255))
	msg := "interior cell"
	hint := "press I to step back outside"
	rl.DrawText(msg, (ui.width-rl.MeasureText(msg, 28))/2, ui.height/2-30, 28, hudDim)
	rl.DrawText(hint, (ui.width-rl.MeasureText(hint, 18))/2, ui.height/2+8, 18, hudDim)
}

func (ui *skyUI) drawHUD() {
	r := ui.sink.Result
	t := ui.world.TimeStamp()

	panel := rl.NewRectangle(12, 12, 340, 122)
	rl.DrawRectangleRec(panel, rl.Fade(hudPanel, 0.74))
	rl.DrawRectangleLinesEx(panel, 1, rl.Fade(hudBorder, 0.8))

	region := ui.world.PlayerRegion()
	if region == "" {
		region = "(no region)"
	}

	from, to, progress, active := ui.manager.Transition()
	label := from.String()
	if active {
		label = fmt.Sprintf("%s > %s  %d%%", from, to, int(progress*100+0.5))
	}

	rl.DrawText(region, 24, 22, 20, hudText)
	rl.DrawText(label, 24, 48, 20, hudAccent)
	rl.DrawText(clockLabel(t), 24, 76, 18, hudDim)
	rl.DrawText(fmt.Sprintf("wind %.2f   fog %.2f   %gx time", r.WindSpeed, ui.sink.FogDepth, ui.world.Timescale()), 24, 100, 18, hudDim)

	x := ui.width - 16
	x = ui.drawBadge("PAUSED", x, ui.paused, hudAccent)
	x = ui.drawBadge("STORM", x, r.IsStorm, hudWarn)
	ui.drawBadge("NIGHT", x, r.Night, hudDim)

	hint := "1-0 weather   Tab region   F rest   Left/Right hour   Space pause   I interior   H help   Esc quit"
	rl.DrawText(hint, 16, ui.height-26, 16, rl.Fade(hudDim, 0.85))
}

func (ui *skyUI) drawBadge(text string, right int32, on bool, clr rl.Color) int32 {
	if !on {
		return right
	}
	w := rl.MeasureText(text, 18) + 20
	rect := rl.NewRectangle(float32(right-w), 14, float32(w), 28)
	rl.DrawRectangleRec(rect, rl.Fade(hudPanel, 0.8))
	rl.DrawRectangleLinesEx(rect, 1, rl.Fade(clr, 0.9))
	rl.DrawText(text, right-w+10, 20, 18, clr)
	return right - w - 10
}

func (ui *skyUI) drawHelp() {
	rows := make([]string, 0, len(ui.typeNames)+9)
	for i, name := range ui.typeNames {
		rows = append(rows, fmt.Sprintf("%d      force %s", (i+1)%10, name))
	}
	rows = append(rows,
		"",
		"Tab    next region",
		"F      rest four hours",
		"Right  skip one hour",
		"Left   rewind one hour",
		"Up     double the timescale",
		"Down   halve the timescale",
		"Space  pause",
		"I      toggle interior",
		"Esc/Q  quit",
	)

	w := int32(380)
	h := int32(len(rows)*24 + 64)
	x := (ui.width - w) / 2
	y := (ui.height - h) / 2
	rect := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawRectangleRec(rect, rl.Fade(hudPanel, 0.93))
	rl.DrawRectangleLinesEx(rect, 1, hudBorder)
	rl.DrawText("skyview", x+20, y+16, 22, hudAccent)
	for i, row := range rows {
		rl.DrawText(row, x+20, y+52+int32(i)*24, 18, hudText)
	}
}

// clockLabel renders the world clock, fractional hour as hh:mm.
func clockLabel(t weather.GameTime) string {
	hh := int(t.Hour)
	mm := int((t.Hour - float64(hh)) * 60)
	return fmt.Sprintf("Day %d   %02d:%02d", t.Day, hh, mm)
}

// toRL converts a linear [0,1] color to raylib bytes, clamping channels
// that overshoot during sunset boosts and thunder flashes.
func toRL(c weather.RGBA) rl.Color {
	return rl.NewColor(channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
