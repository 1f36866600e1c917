package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Acidburn0zzz/openmw/internal/weather"
)

// fileDoc mirrors the YAML schema LoadConfig reads back.
type fileDoc struct {
	Seed           int64                  `yaml:"seed,omitempty"`
	StormWindSpeed float64                `yaml:"storm_wind_speed"`
	StormOrigin    weather.Vec3           `yaml:"storm_origin"`
	Values         map[string]string      `yaml:"values,omitempty"`
	Regions        []weather.RegionRecord `yaml:"regions"`
}

func main() {
	var (
		outPath string
		seed    int64
		jitter  int
		full    bool
	)

	flag.StringVar(&outPath, "out", "weather.yaml", "output path for the config")
	flag.Int64Var(&seed, "seed", 0, "election seed to embed; 0 omits it")
	flag.IntVar(&jitter, "jitter", 0, "randomly shift each nonzero chance weight by up to this much")
	flag.BoolVar(&full, "full", false, "include the complete fallback value table")
	flag.Parse()

	if strings.TrimSpace(outPath) == "" {
		die("--out is required")
	}
	if jitter < 0 {
		die("--jitter must not be negative")
	}

	cfg := weather.DefaultConfig()
	doc := fileDoc{
		Seed:           seed,
		StormWindSpeed: cfg.StormWindSpeed,
		StormOrigin:    cfg.StormOrigin,
		Regions:        cfg.Regions,
	}
	if full {
		doc.Values = cfg.Values
	}
	if jitter > 0 {
		rng := weather.SeededRNG(seed)
		for i := range doc.Regions {
			doc.Regions[i].Chances = jitterChances(doc.Regions[i].Chances, jitter, rng.IntN)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		die(fmt.Sprintf("encode config: %v", err))
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		die(fmt.Sprintf("write config: %v", err))
	}
	fmt.Printf("wrote %s (%d regions)\n", outPath, len(doc.Regions))
}

// jitterChances shifts each nonzero weight by up to +-jitter, then
// renormalizes the table to sum 100 so the election draw always lands.
// Zero weights stay zero: a region that never sees snow keeps never
// seeing snow.
func jitterChances(chances []int, jitter int, intN func(int) int) []int {
	out := make([]int, len(chances))
	total := 0
	for i, c := range chances {
		if c > 0 {
			c += intN(2*jitter+1) - jitter
			if c < 1 {
				c = 1
			}
		}
		out[i] = c
		total += c
	}
	if total == 0 {
		copy(out, chances)
		return out
	}

	sum, best := 0, 0
	for i, c := range out {
		out[i] = int(math.Round(float64(c) * 100 / float64(total)))
		if out[i] > 0 && chances[i] > 0 && out[i] >= out[best] {
			best = i
		}
		sum += out[i]
	}
	out[best] += 100 - sum
	if out[best] < 1 {
		out[best] = 1
	}
	return out
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
