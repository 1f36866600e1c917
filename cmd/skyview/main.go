//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Acidburn0zzz/openmw/internal/simworld"
	"github.com/Acidburn0zzz/openmw/internal/skyview"
	"github.com/Acidburn0zzz/openmw/internal/weather"
)

func main() {
	var (
		configPath string
		seed       int64
		timescale  float64
		width      int
		height     int
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", "weather config YAML; builtin defaults when empty")
	flag.Int64Var(&seed, "seed", 0, "election seed override; 0 keeps the config's")
	flag.Float64Var(&timescale, "timescale", simworld.DefaultTimescale, "game seconds per real second")
	flag.IntVar(&width, "width", 1280, "window width")
	flag.IntVar(&height, "height", 720, "window height")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := weather.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = weather.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	app := skyview.NewApp(skyview.AppConfig{
		Width:     int32(width),
		Height:    int32(height),
		Timescale: timescale,
		Weather:   cfg,
		Logger:    logger,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
