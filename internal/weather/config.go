package weather

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything NewManager needs. Zero-value fields fall
// back to the builtin defaults, so Config{} is a working configuration.
type Config struct {
	// Seed makes runs reproducible; 0 seeds from the wall clock.
	Seed int64
	// StormWindSpeed is the storm threshold; types with a higher wind
	// speed blow directional debris.
	StormWindSpeed float64
	StormOrigin    Vec3
	// Values is the fallback table patterns and moons are read from.
	Values Values
	// Regions is the election table.
	Regions []RegionRecord
}

// DefaultConfig returns the builtin configuration, fully populated.
func DefaultConfig() Config {
	return Config{
		StormWindSpeed: defaultStormWindSpeed,
		StormOrigin:    defaultStormOrigin,
		Values:         DefaultValues(),
		Regions:        DefaultRegions(),
	}
}

type fileConfig struct {
	Seed           int64             `yaml:"seed"`
	StormWindSpeed float64           `yaml:"storm_wind_speed"`
	StormOrigin    *Vec3             `yaml:"storm_origin"`
	Values         map[string]string `yaml:"values"`
	Regions        []RegionRecord    `yaml:"regions"`
}

// ParseConfig reads a YAML document and layers it over the defaults:
// fallback values merge key by key, a regions list replaces the whole
// builtin table, scalars override when present.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse weather config: %w", err)
	}

	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.StormWindSpeed != 0 {
		cfg.StormWindSpeed = f.StormWindSpeed
	}
	if f.StormOrigin != nil {
		cfg.StormOrigin = *f.StormOrigin
	}
	if len(f.Values) > 0 {
		cfg.Values = cfg.Values.Merge(f.Values)
	}
	if f.Regions != nil {
		for _, rec := range f.Regions {
			if err := validateRegion(rec); err != nil {
				return Config{}, fmt.Errorf("parse weather config: %w", err)
			}
		}
		cfg.Regions = f.Regions
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load weather config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load weather config %s: %w", path, err)
	}
	return cfg, nil
}

func validateRegion(rec RegionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("region with empty id")
	}
	if len(rec.Chances) != len(patternDefs) {
		return fmt.Errorf("region %q: want %d chances, got %d", rec.ID, len(patternDefs), len(rec.Chances))
	}
	for i, chance := range rec.Chances {
		if chance < 0 {
			return fmt.Errorf("region %q: negative chance at index %d", rec.ID, i)
		}
	}
	return nil
}
