package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// Values is the flat fallback key space (Weather_<Name>_*,
// Moons_<Name>_* and a handful of globals) that every weather and
// moon parameter is read from. Keys hold raw strings; the typed
// accessors parse on demand.
type Values map[string]string

// Merge returns a copy of v with overrides applied on top.
func (v Values) Merge(overrides map[string]string) Values {
	out := make(Values, len(v)+len(overrides))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range overrides {
		out[k] = val
	}
	return out
}

// String returns the raw value, or "" when the key is absent.
func (v Values) String(key string) string {
	return v[key]
}

// Float parses the value as a float; absent or malformed keys read as
// zero, matching how the classic data files degrade.
func (v Values) Float(key string) float64 {
	raw, ok := v[key]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// Bool follows ini conventions: any nonzero integer reads as true.
func (v Values) Bool(key string) bool {
	raw, ok := v[key]
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return n != 0
}

// Color parses an "r,g,b" byte triple into unit-range channels with
// alpha 1. Unlike the scalar accessors it reports malformed and
// missing values, since a silently black sky hides config mistakes.
func (v Values) Color(key string) (RGBA, error) {
	raw, ok := v[key]
	if !ok {
		return RGBA{}, fmt.Errorf("missing color key %q", key)
	}
	return parseColor(raw)
}

func parseColor(raw string) (RGBA, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return RGBA{}, fmt.Errorf("color %q: want \"r,g,b\"", raw)
	}
	var channels [3]float64
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGBA{}, fmt.Errorf("color %q: %w", raw, err)
		}
		if n < 0 || n > 255 {
			return RGBA{}, fmt.Errorf("color %q: channel %d out of byte range", raw, n)
		}
		channels[i] = float64(n) / 255
	}
	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1}, nil
}

// valueReader resolves typed values while remembering the first
// failure, so constructors can assemble whole structs and check the
// error once.
type valueReader struct {
	values Values
	err    error
}

func (r *valueReader) color(key string) RGBA {
	c, err := r.values.Color(key)
	if err != nil && r.err == nil {
		r.err = err
	}
	return c
}
