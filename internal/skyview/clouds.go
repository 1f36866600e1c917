//go:build cgo
// +build cgo

package skyview

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cloudTileSize = 256
	cloudOctaves  = 3
)

// cloudAtlas lazily builds one noise texture per cloud layer name. The
// noise is seeded from the name, so "tx_sky_foggy" keeps the same layer
// across runs and differs from "tx_sky_clear".
type cloudAtlas struct {
	textures map[string]rl.Texture2D
}

func newCloudAtlas() *cloudAtlas {
	return &cloudAtlas{textures: make(map[string]rl.Texture2D)}
}

func (c *cloudAtlas) texture(name string) rl.Texture2D {
	if tex, ok := c.textures[name]; ok {
		return tex
	}
	tex := rl.LoadTextureFromImage(rl.NewImageFromImage(cloudImage(name)))
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	c.textures[name] = tex
	return tex
}

func (c *cloudAtlas) unload() {
	for name, tex := range c.textures {
		rl.UnloadTexture(tex)
		delete(c.textures, name)
	}
}

// cloudImage renders octave perlin noise into a white tile whose alpha
// carries the cloud shape. The tile wraps horizontally so it can scroll
// forever.
func cloudImage(name string) *image.RGBA {
	p := perlin.NewPerlin(2, 2, cloudOctaves, cloudSeed(name))

	img := image.NewRGBA(image.Rect(0, 0, cloudTileSize, cloudTileSize))
	for y := 0; y < cloudTileSize; y++ {
		for x := 0; x < cloudTileSize; x++ {
			v := cloudValue(p, float64(x)/cloudTileSize, float64(y)/cloudTileSize)
			a := cloudAlpha(v)
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return img
}

func cloudSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

// cloudValue sums noise octaves around a cylinder so the x axis tiles
// seamlessly, normalized into [0, 1].
func cloudValue(p *perlin.Perlin, x, y float64) float64 {
	angle := 2 * math.Pi * x
	cx := math.Cos(angle)
	cy := math.Sin(angle)

	amplitude := 1.0
	frequency := 1.0
	total := 0.0
	maxValue := 0.0
	for i := 0; i < cloudOctaves; i++ {
		total += p.Noise3D(cx*frequency, cy*frequency, y*frequency*3) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return (total/maxValue + 1) / 2
}

// cloudAlpha thresholds noise into puffs: empty sky below the floor,
// ramping to solid over the band above it.
func cloudAlpha(v float64) uint8 {
	const floor, band = 0.46, 0.22
	a := (v - floor) / band
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a * 255)
}
