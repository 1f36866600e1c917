package weather

import (
	"math"
	"testing"
)

func TestValuesTypedAccessors(t *testing.T) {
	v := Values{
		"speed":   "0.5",
		"count":   "3",
		"flag_on": "1",
		"flag_no": "0",
		"junk":    "not a number",
	}

	if got := v.Float("speed"); got != 0.5 {
		t.Fatalf("float: got %v, want 0.5", got)
	}
	if got := v.Float("missing"); got != 0 {
		t.Fatalf("missing float key: got %v, want 0", got)
	}
	if got := v.Float("junk"); got != 0 {
		t.Fatalf("malformed float: got %v, want 0", got)
	}
	if !v.Bool("flag_on") {
		t.Fatalf("expected flag_on to read true")
	}
	if v.Bool("flag_no") || v.Bool("missing") {
		t.Fatalf("expected flag_no and missing keys to read false")
	}
	if got := v.String("missing"); got != "" {
		t.Fatalf("missing string key: got %q, want empty", got)
	}
}

func TestValuesColorParsesByteTriples(t *testing.T) {
	v := Values{"good": "255,0,128"}

	c, err := v.Color("good")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	if c.R != 1 || c.G != 0 || math.Abs(c.B-128.0/255.0) > 1e-12 || c.A != 1 {
		t.Fatalf("color channels: got %+v", c)
	}

	for name, raw := range map[string]string{
		"two channels":  "1,2",
		"out of range":  "0,0,300",
		"negative":      "-1,0,0",
		"not a number":  "red,green,blue",
		"four channels": "1,2,3,4",
	} {
		if _, err := (Values{"k": raw}).Color("k"); err == nil {
			t.Fatalf("%s (%q): expected a parse error", name, raw)
		}
	}

	if _, err := v.Color("missing"); err == nil {
		t.Fatalf("missing color key: expected an error")
	}
}

func TestValuesMergeOverrides(t *testing.T) {
	base := Values{"a": "1", "b": "2"}
	merged := base.Merge(map[string]string{"b": "20", "c": "3"})

	if merged["a"] != "1" || merged["b"] != "20" || merged["c"] != "3" {
		t.Fatalf("merge result: got %v", merged)
	}
	if base["b"] != "2" {
		t.Fatalf("merge mutated the base table: %v", base)
	}
}
