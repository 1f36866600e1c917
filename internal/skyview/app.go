//go:build cgo
// +build cgo

// Package skyview is a raylib visualizer for the weather simulation:
// a composed sky with sun, moons, procedural cloud layers and
// precipitation, driven by the live manager at a configurable
// timescale.
package skyview

import (
	"log/slog"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Acidburn0zzz/openmw/internal/simworld"
	"github.com/Acidburn0zzz/openmw/internal/weather"
)

type AppConfig struct {
	Width     int32
	Height    int32
	Timescale float64
	Weather   weather.Config
	Logger    *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newSkyUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

type skyUI struct {
	width  int32
	height int32

	world   *simworld.World
	sink    *simworld.ResultSink
	manager *weather.Manager

	typeNames []string
	regions   []string
	regionIdx int

	masserSize  float64
	secundaSize float64

	clouds *cloudAtlas
	stars  []starPoint

	// scroll accumulates cloud travel in texture units.
	scroll   float64
	rainTime float64

	paused   bool
	showHelp bool
	quit     bool
	lastTick time.Time
}

func newSkyUI(cfg AppConfig) (*skyUI, error) {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	world := simworld.New(cfg.Timescale)
	sink := &simworld.ResultSink{}
	manager, err := weather.NewManager(cfg.Weather, world, simworld.NewSoundLog(cfg.Logger), sink, cfg.Logger)
	if err != nil {
		return nil, err
	}

	regions := manager.Regions()
	sort.Strings(regions)
	if len(regions) > 0 {
		world.MoveTo(regions[0])
	}

	values := cfg.Weather.Values
	if values == nil {
		values = weather.DefaultValues()
	}

	ui := &skyUI{
		width:   cfg.Width,
		height:  cfg.Height,
		world:   world,
		sink:    sink,
		manager: manager,

		typeNames: weather.Names(),
		regions:   regions,

		masserSize:  values.Float("Moons_Masser_Size"),
		secundaSize: values.Float("Moons_Secunda_Size"),

		stars: scatterStars(140, 7),
	}
	return ui, nil
}

func (ui *skyUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "skyview")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	ui.clouds = newCloudAtlas()
	ui.lastTick = time.Now()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		ui.draw()
		rl.EndDrawing()
	}

	ui.clouds.unload()
	rl.CloseWindow()
	return nil
}

func (ui *skyUI) update(delta time.Duration) {
	ui.handleInput()

	if !ui.paused {
		hours := ui.world.Tick(delta)
		ui.manager.AdvanceTime(hours, true)
	}
	ui.manager.Update(delta, ui.paused)

	if !ui.paused {
		result := ui.manager.LastResult()
		ui.scroll += delta.Seconds() * result.CloudSpeed * 0.02
		ui.rainTime += delta.Seconds()
	}
}

func (ui *skyUI) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ):
		ui.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		ui.paused = !ui.paused
	case rl.IsKeyPressed(rl.KeyH):
		ui.showHelp = !ui.showHelp
	case rl.IsKeyPressed(rl.KeyI):
		ui.world.SetExterior(!ui.world.IsExterior())
	case rl.IsKeyPressed(rl.KeyTab):
		ui.nextRegion()
	case rl.IsKeyPressed(rl.KeyF):
		// Rest four hours; a waited jump snaps transitions forward.
		ui.world.Skip(4)
		ui.manager.AdvanceTime(4, false)
	case rl.IsKeyPressed(rl.KeyRight):
		ui.world.Skip(1)
		ui.manager.AdvanceTime(1, true)
	case rl.IsKeyPressed(rl.KeyLeft):
		ui.world.SetHour(ui.world.TimeStamp().Hour - 1)
	case rl.IsKeyPressed(rl.KeyUp):
		ui.world.SetTimescale(ui.world.Timescale() * 2)
	case rl.IsKeyPressed(rl.KeyDown):
		ui.world.SetTimescale(ui.world.Timescale() / 2)
	}

	for i, key := range weatherKeys {
		if rl.IsKeyPressed(key) {
			ui.forceWeather(weather.ID(i))
		}
	}
}

// Number row 1..0 maps onto the ten weather types in id order.
var weatherKeys = []int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine, rl.KeyZero,
}

func (ui *skyUI) forceWeather(id weather.ID) {
	region := ui.world.PlayerRegion()
	if region == "" {
		return
	}
	_ = ui.manager.ChangeWeather(region, id)
}

func (ui *skyUI) nextRegion() {
	if len(ui.regions) == 0 {
		return
	}
	ui.regionIdx = (ui.regionIdx + 1) % len(ui.regions)
	ui.world.MoveTo(ui.regions[ui.regionIdx])
	ui.manager.PlayerTeleported()
}
