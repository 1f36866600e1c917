package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Acidburn0zzz/openmw/internal/simworld"
	"github.com/Acidburn0zzz/openmw/internal/weather"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	patterns, err := builtinPatterns()
	if err != nil {
		fatal(err)
	}

	files := []docFile{
		generateWeatherTypesDoc(patterns),
		generateRegionsDoc(),
		generateMoonsDoc(),
		generateFallbackValuesDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

// builtinPatterns assembles the ten weather descriptors the same way a
// running engine does, from the default fallback table.
func builtinPatterns() ([]weather.Pattern, error) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := weather.NewManager(weather.DefaultConfig(), simworld.New(0),
		simworld.NewSoundLog(quiet), &simworld.ResultSink{}, quiet)
	if err != nil {
		return nil, err
	}

	names := weather.Names()
	patterns := make([]weather.Pattern, 0, len(names))
	for i := range names {
		p, ok := m.Pattern(weather.ID(i))
		if !ok {
			return nil, fmt.Errorf("missing pattern %d", i)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateWeatherTypesDoc(patterns []weather.Pattern) docFile {
	var b strings.Builder
	b.WriteString("# Weather Types\n\n")
	b.WriteString("Source: `internal/weather/weather.go`, assembled from `DefaultValues`.\n\n")
	b.WriteString(fmt.Sprintf("Total types: **%d**.\n\n", len(patterns)))
	b.WriteString("| ID | Name | Wind | Cloud Speed | Storm | Transition Delta | Clouds Max | Glare | Loop Sound | Precip | Particles | Thunder |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for i, p := range patterns {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" | ")
		b.WriteString(escape(p.Name))
		b.WriteString(" | ")
		b.WriteString(formatFloat(p.WindSpeed))
		b.WriteString(" | ")
		b.WriteString(formatFloat(p.CloudSpeed))
		b.WriteString(" | ")
		b.WriteString(yesNo(p.IsStorm))
		b.WriteString(" | ")
		b.WriteString(formatFloat(p.TransitionDelta))
		b.WriteString(" | ")
		b.WriteString(formatFloat(p.CloudsMaximumPercent))
		b.WriteString(" | ")
		b.WriteString(formatFloat(p.GlareView))
		b.WriteString(" | ")
		b.WriteString(escape(p.AmbientLoopSoundID))
		b.WriteString(" | ")
		b.WriteString(yesNo(p.RainEffect != ""))
		b.WriteString(" | ")
		b.WriteString(escape(particleName(p.ParticleEffect)))
		b.WriteString(" | ")
		b.WriteString(escape(formatThunder(p)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "weather-types.md", Title: "Weather Types", Content: b.String()}
}

// particleName shortens a data-file mesh path to its file name.
func particleName(effect string) string {
	if effect == "" {
		return ""
	}
	return filepath.Base(strings.ReplaceAll(effect, `\`, "/"))
}

func formatThunder(p weather.Pattern) string {
	if p.ThunderFrequency <= 0 {
		return ""
	}
	return fmt.Sprintf("freq %s past ratio %s", formatFloat(p.ThunderFrequency), formatFloat(p.ThunderThreshold))
}

func generateRegionsDoc() docFile {
	regions := weather.DefaultRegions()
	sort.Slice(regions, func(i, j int) bool { return regions[i].ID < regions[j].ID })
	names := weather.Names()

	var b strings.Builder
	b.WriteString("# Region Election Weights\n\n")
	b.WriteString("Source: `internal/weather/defaults.go` (`DefaultRegions`).\n\n")
	b.WriteString("Each row is one region's chance table; the scheduled reroll draws\n")
	b.WriteString("against these weights.\n\n")
	b.WriteString(fmt.Sprintf("Total regions: **%d**.\n\n", len(regions)))

	b.WriteString("| Region |")
	for _, name := range names {
		b.WriteString(" ")
		b.WriteString(escape(name))
		b.WriteString(" |")
	}
	b.WriteString(" Heaviest |\n|")
	for i := 0; i < len(names)+2; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, r := range regions {
		b.WriteString("| ")
		b.WriteString(escape(r.ID))
		b.WriteString(" |")
		best := 0
		for i, c := range r.Chances {
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(c))
			b.WriteString(" |")
			if c > r.Chances[best] {
				best = i
			}
		}
		b.WriteString(" ")
		b.WriteString(escape(names[best]))
		b.WriteString(" |\n")
	}
	return docFile{Name: "regions.md", Title: "Region Election Weights", Content: b.String()}
}

func generateMoonsDoc() docFile {
	values := weather.DefaultValues()
	moons := []string{"Masser", "Secunda"}
	keys := []struct {
		label  string
		suffix string
	}{
		{"Size", "Size"},
		{"Speed", "Speed"},
		{"Daily increment (h)", "Daily_Increment"},
		{"Axis offset (deg)", "Axis_Offset"},
		{"Fade in start (h)", "Fade_In_Start"},
		{"Fade in finish (h)", "Fade_In_Finish"},
		{"Fade out start (h)", "Fade_Out_Start"},
		{"Fade out finish (h)", "Fade_Out_Finish"},
		{"Fade start angle (deg)", "Fade_Start_Angle"},
		{"Fade end angle (deg)", "Fade_End_Angle"},
		{"Shadow early fade angle (deg)", "Moon_Shadow_Early_Fade_Angle"},
	}

	var b strings.Builder
	b.WriteString("# Moons\n\n")
	b.WriteString("Source: `internal/weather/moons.go`, keyed `Moons_<Name>_*` in `DefaultValues`.\n\n")
	b.WriteString("| Property |")
	for _, m := range moons {
		b.WriteString(" ")
		b.WriteString(m)
		b.WriteString(" |")
	}
	b.WriteString("\n| --- | --- | --- |\n")
	for _, k := range keys {
		b.WriteString("| ")
		b.WriteString(k.label)
		b.WriteString(" |")
		for _, m := range moons {
			b.WriteString(" ")
			b.WriteString(escape(values.String("Moons_" + m + "_" + k.suffix)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return docFile{Name: "moons.md", Title: "Moons", Content: b.String()}
}

func generateFallbackValuesDoc() docFile {
	values := weather.DefaultValues()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("# Fallback Values\n\n")
	b.WriteString("Source: `internal/weather/defaults.go` (`DefaultValues`).\n\n")
	b.WriteString("The full builtin fallback table. A YAML config's `values:` section\n")
	b.WriteString("overrides entries key by key.\n\n")
	b.WriteString(fmt.Sprintf("Total keys: **%d**.\n\n", len(keys)))
	b.WriteString("| Key | Value |\n")
	b.WriteString("| --- | --- |\n")
	for _, k := range keys {
		b.WriteString("| ")
		b.WriteString(escape(k))
		b.WriteString(" | ")
		b.WriteString(escape(values[k]))
		b.WriteString(" |\n")
	}
	return docFile{Name: "fallback-values.md", Title: "Fallback Values", Content: b.String()}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
