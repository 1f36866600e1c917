package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Acidburn0zzz/openmw/internal/console"
	"github.com/Acidburn0zzz/openmw/internal/simworld"
	"github.com/Acidburn0zzz/openmw/internal/weather"
)

func main() {
	var (
		configPath string
		seed       int64
		timescale  float64
		savePath   string
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", "weather config YAML; builtin defaults when empty")
	flag.Int64Var(&seed, "seed", 0, "election seed override; 0 keeps the config's")
	flag.Float64Var(&timescale, "timescale", simworld.DefaultTimescale, "game seconds per real second")
	flag.StringVar(&savePath, "save", "weather-save.json", "save file the save/load commands use")
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

	world := simworld.New(timescale)
	sink := &simworld.ResultSink{}
	manager, err := weather.NewManager(cfg, world, simworld.NewSoundLog(logger), sink, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	regions := manager.Regions()
	sort.Strings(regions)
	if len(regions) > 0 {
		world.MoveTo(regions[0])
	}
	manager.Update(0, false)

	s := &session{
		world:    world,
		sink:     sink,
		manager:  manager,
		parser:   console.New(),
		regions:  regions,
		savePath: savePath,
	}
	if err := s.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type session struct {
	world    *simworld.World
	sink     *simworld.ResultSink
	manager  *weather.Manager
	parser   *console.Parser
	regions  []string
	savePath string

	// pending holds clarify options; a bare number on the next line
	// picks one.
	pending []console.Intent
}

func (s *session) run() error {
	fmt.Println("weathersim - type help for commands, quit to leave")
	s.printStatus()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		if s.exec(scanner.Text()) {
			return nil
		}
	}
}

// exec runs one input line and reports whether the session should end.
func (s *session) exec(line string) bool {
	if intent, ok := s.pickPending(line); ok {
		s.pending = nil
		return s.dispatch(intent)
	}
	s.pending = nil

	intent := s.parser.Parse(s.context(), line)
	if intent.Clarify != nil {
		fmt.Println(intent.Clarify.Prompt)
		for i, opt := range intent.Clarify.Options {
			fmt.Printf("  %d) %s\n", i+1, console.IntentToCommandString(opt))
		}
		s.pending = intent.Clarify.Options
		return false
	}
	if intent.Confidence < 0.8 {
		fmt.Printf("(interpreted as: %s)\n", console.IntentToCommandString(intent))
	}
	return s.dispatch(intent)
}

// pickPending resolves a bare number against the last clarify options.
func (s *session) pickPending(line string) (console.Intent, bool) {
	if len(s.pending) == 0 {
		return console.Intent{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(s.pending) {
		return console.Intent{}, false
	}
	return s.pending[n-1], true
}

func (s *session) context() console.ParseContext {
	return console.ParseContext{
		Regions:       s.regions,
		WeatherTypes:  weather.Names(),
		CurrentRegion: s.world.PlayerRegion(),
	}
}

func (s *session) dispatch(intent console.Intent) bool {
	switch intent.Verb {
	case "quit":
		return true
	case "help":
		s.printHelp()
	case "status":
		s.printStatus()
	case "time":
		s.printTime()
	case "regions":
		s.printRegions()
	case "weather":
		s.setWeather(intent.Args)
	case "modregion":
		s.modRegion(intent.Args)
	case "teleport":
		s.teleport(intent.Args)
	case "wait":
		s.wait(intent.Quantity)
	case "tick":
		s.tick(intent.Quantity)
	case "interior":
		s.world.SetExterior(false)
		s.manager.Update(0, false)
		fmt.Println("stepped inside; the sky is hidden")
	case "exterior":
		s.world.SetExterior(true)
		s.manager.Update(0, false)
		s.printStatus()
	case "save":
		s.save()
	case "load":
		s.load()
	case "reset":
		s.manager.Clear()
		s.manager.Update(0, false)
		fmt.Println("weather state reset")
		s.printStatus()
	default:
		fmt.Println("nothing to do with that input")
	}
	return false
}

func (s *session) setWeather(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: weather [region] <type>")
		return
	}
	id, err := weather.ParseID(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := s.manager.ChangeWeather(args[0], id); err != nil {
		fmt.Println(err)
		return
	}
	s.manager.Update(0, false)
	s.printStatus()
}

func (s *session) modRegion(args []string) {
	if len(args) != 11 {
		fmt.Println("usage: modregion <region> <10 chance weights>")
		return
	}
	chances := make([]int, 10)
	for i, raw := range args[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("chance %q is not a number\n", raw)
			return
		}
		chances[i] = n
	}
	if err := s.manager.ModRegion(args[0], chances); err != nil {
		fmt.Println(err)
		return
	}
	s.manager.Update(0, false)
	fmt.Printf("%s now rolls: %s\n", args[0], chanceSummary(chances))
}

func (s *session) teleport(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: teleport <region>")
		return
	}
	s.world.MoveTo(args[0])
	s.manager.PlayerTeleported()
	s.manager.Update(0, false)
	s.printStatus()
}

// wait jumps the clock the way resting does: queued transitions snap to
// their target on the next update instead of fading.
func (s *session) wait(q *console.Quantity) {
	hours := 1.0
	if q != nil {
		hours = q.Hours
	}
	if hours <= 0 {
		fmt.Println("wait needs a positive duration")
		return
	}
	s.world.Skip(hours)
	s.manager.AdvanceTime(hours, false)
	s.manager.Update(0, false)
	s.printStatus()
}

// tick advances real time, so transitions crossfade and the timescale
// converts the elapsed span into game hours.
func (s *session) tick(q *console.Quantity) {
	seconds := 5.0
	if q != nil {
		seconds = q.Hours * 3600
	}
	if seconds <= 0 {
		fmt.Println("tick needs a positive duration")
		return
	}
	elapsed := time.Duration(seconds * float64(time.Second))
	hours := s.world.Tick(elapsed)
	s.manager.AdvanceTime(hours, true)
	s.manager.Update(elapsed, false)
	s.printStatus()
}

func (s *session) save() {
	f, err := os.Create(s.savePath)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	if err := s.manager.SaveTo(f); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("saved to %s\n", s.savePath)
}

func (s *session) load() {
	f, err := os.Open(s.savePath)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	if err := s.manager.LoadFrom(f); err != nil {
		fmt.Println(err)
		return
	}
	s.manager.Update(0, false)
	fmt.Printf("loaded %s\n", s.savePath)
	s.printStatus()
}

func (s *session) printStatus() {
	t := s.world.TimeStamp()
	region := s.world.PlayerRegion()
	if region == "" {
		region = "(no region)"
	}

	if !s.world.IsExterior() {
		fmt.Printf("%s   day %d %s   interior, sky hidden\n", region, t.Day, hourLabel(t.Hour))
		return
	}

	from, to, progress, active := s.manager.Transition()
	label := from.String()
	if active {
		label = fmt.Sprintf("%s > %s %d%%", from, to, int(progress*100+0.5))
	}

	r := s.sink.Result
	badges := make([]string, 0, 3)
	if r.IsStorm {
		badges = append(badges, "storm")
	}
	if r.Night {
		badges = append(badges, "night")
	}
	if r.AmbientLoopSoundID != "" {
		badges = append(badges, "loop:"+r.AmbientLoopSoundID)
	}

	fmt.Printf("%s   day %d %s   %s\n", region, t.Day, hourLabel(t.Hour), label)
	fmt.Printf("  wind %.2f   fog %.2f   %s\n", r.WindSpeed, s.sink.FogDepth, strings.Join(badges, "   "))
}

func (s *session) printTime() {
	t := s.world.TimeStamp()
	snap := s.manager.Snapshot()
	fmt.Printf("day %d %s   timescale %gx   next reroll in %.1f game hours\n",
		t.Day, hourLabel(t.Hour), s.world.Timescale(), snap.WeatherUpdateTime-snap.TimePassed)
}

func (s *session) printRegions() {
	current := strings.ToLower(s.world.PlayerRegion())
	for _, name := range s.regions {
		marker := " "
		if name == current {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, name)
		if chances, ok := s.manager.RegionChances(name); ok {
			line += "   " + chanceSummary(chances)
		}
		fmt.Println(line)
	}
}

// chanceSummary names the heaviest weight in a chance table.
func chanceSummary(chances []int) string {
	total, best := 0, 0
	for i, c := range chances {
		total += c
		if c > chances[best] {
			best = i
		}
	}
	if total == 0 {
		return "no weights"
	}
	return fmt.Sprintf("mostly %s (%d%%)", weather.ID(best), 100*chances[best]/total)
}

func hourLabel(hour float64) string {
	hh := int(hour)
	mm := int((hour - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

func (s *session) printHelp() {
	fmt.Print(`commands:
  status                 current region, weather and transition
  time                   clock, timescale and the next scheduled reroll
  regions                known regions and their election weights
  weather [region] type  start a transition (e.g. "weather rain",
                         "weather ascadian isles thunderstorm")
  modregion region w0..w9  replace a region's ten chance weights
  teleport region        hard-cut to the region's weather
  wait [3h|90m]          rest: jump game hours, snap transitions
  tick [30s|1m]          let real time pass, crossfades run
  interior / exterior    step inside or back out
  save / load            write or read the save file
  reset                  back to a fresh Clear sky
  quit                   leave

free text works too: "make it rain", "whats the weather", "tp west gash".
`)
}
