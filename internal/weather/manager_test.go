package weather

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

type fakeWorld struct {
	day      int
	hour     float64
	exterior bool
	region   string
	position Vec3
}

func (w *fakeWorld) TimeStamp() GameTime  { return GameTime{Day: w.day, Hour: w.hour} }
func (w *fakeWorld) IsExterior() bool     { return w.exterior }
func (w *fakeWorld) PlayerRegion() string { return w.region }
func (w *fakeWorld) PlayerPosition() Vec3 { return w.position }

type playedSound struct {
	id     string
	volume float64
	pitch  float64
}

type fakeLoop struct {
	id      string
	volume  float64
	stopped bool
}

func (l *fakeLoop) SetVolume(volume float64) { l.volume = volume }

type fakeSounds struct {
	oneShots []playedSound
	loops    []*fakeLoop
}

func (s *fakeSounds) PlaySound(id string, volume, pitch float64, loop bool) SoundHandle {
	if !loop {
		s.oneShots = append(s.oneShots, playedSound{id: id, volume: volume, pitch: pitch})
		return nil
	}
	l := &fakeLoop{id: id, volume: volume}
	s.loops = append(s.loops, l)
	return l
}

func (s *fakeSounds) StopSound(handle SoundHandle) {
	if l, ok := handle.(*fakeLoop); ok && l != nil {
		l.stopped = true
	}
}

// activeLoop returns the playing loop, or nil when everything started
// has been stopped again.
func (s *fakeSounds) activeLoop() *fakeLoop {
	for i := len(s.loops) - 1; i >= 0; i-- {
		if !s.loops[i].stopped {
			return s.loops[i]
		}
	}
	return nil
}

type fakeSky struct {
	enabled       bool
	fogDepth      float64
	underwaterFog float64
	fogColor      RGBA
	ambient       RGBA
	sun           RGBA
	sunDirection  Vec3
	sunVisible    bool
	glare         float64
	stormDir      Vec3
	stormDirSet   bool
	masser        MoonState
	secunda       MoonState
	applied       []Result
}

func (s *fakeSky) SetSkyEnabled(enabled bool) { s.enabled = enabled }
func (s *fakeSky) ConfigureFog(depth, underwaterDepth float64, color RGBA) {
	s.fogDepth, s.underwaterFog, s.fogColor = depth, underwaterDepth, color
}
func (s *fakeSky) SetAmbientColor(color RGBA)      { s.ambient = color }
func (s *fakeSky) SetSunColor(color RGBA)          { s.sun = color }
func (s *fakeSky) SetSunDirection(direction Vec3)  { s.sunDirection = direction }
func (s *fakeSky) SetSunVisible(visible bool)      { s.sunVisible = visible }
func (s *fakeSky) SetGlareFade(fade float64)       { s.glare = fade }
func (s *fakeSky) SetStormDirection(direction Vec3) {
	s.stormDir = direction
	s.stormDirSet = true
}
func (s *fakeSky) SetMasserState(state MoonState)  { s.masser = state }
func (s *fakeSky) SetSecundaState(state MoonState) { s.secunda = state }
func (s *fakeSky) Apply(result Result)             { s.applied = append(s.applied, result) }

type testEnv struct {
	m      *Manager
	world  *fakeWorld
	sounds *fakeSounds
	sky    *fakeSky
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// soloChances weights a single weather type at 100%.
func soloChances(id ID) []int {
	chances := make([]int, len(patternDefs))
	chances[id] = 100
	return chances
}

// newTestEnv builds a manager over fake collaborators, in a region
// that always elects Clear, settled by one zero-length update.
func newTestEnv(t *testing.T, overrides map[string]string, regions ...RegionRecord) *testEnv {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Seed = 1
	if len(overrides) > 0 {
		cfg.Values = cfg.Values.Merge(overrides)
	}
	if len(regions) == 0 {
		regions = []RegionRecord{{ID: "Test Region", Chances: soloChances(Clear)}}
	}
	cfg.Regions = regions

	world := &fakeWorld{day: 1, hour: 12, exterior: true, region: regions[0].ID}
	sounds := &fakeSounds{}
	sky := &fakeSky{}

	m, err := NewManager(cfg, world, sounds, sky, testLogger())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	env := &testEnv{m: m, world: world, sounds: sounds, sky: sky}
	env.update(0, false)
	return env
}

func (e *testEnv) update(seconds float64, paused bool) {
	e.m.Update(time.Duration(seconds*float64(time.Second)), paused)
}

// settle force-commits whatever is in flight via the fast-forward
// latch.
func (e *testEnv) settle() {
	e.m.AdvanceTime(0, false)
	e.update(0, false)
}

func TestManagerStartsClearAndStable(t *testing.T) {
	env := newTestEnv(t, nil)

	if got := env.m.CurrentWeather(); got != Clear {
		t.Fatalf("initial weather: got %v, want Clear", got)
	}
	if env.m.inTransition() {
		t.Fatalf("fresh manager should not be transitioning")
	}
	if env.m.CurrentRegion() != "test region" {
		t.Fatalf("tracked region: got %q, want \"test region\"", env.m.CurrentRegion())
	}
	if len(env.sky.applied) != 1 {
		t.Fatalf("expected one composed result, got %d", len(env.sky.applied))
	}
	if !env.sky.enabled {
		t.Fatalf("exterior tick should enable the sky")
	}
}

func TestChangeWeatherStartsTransitionInPlayerRegion(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	if env.m.nextWeather != Rain {
		t.Fatalf("next weather: got %v, want Rain", env.m.nextWeather)
	}
	if env.m.transitionFactor != 1 {
		t.Fatalf("transition factor: got %v, want 1", env.m.transitionFactor)
	}
	if env.m.CurrentWeather() != Clear {
		t.Fatalf("current weather changed early: got %v", env.m.CurrentWeather())
	}
}

func TestChangeWeatherElsewhereWaitsForArrival(t *testing.T) {
	env := newTestEnv(t, nil,
		RegionRecord{ID: "Home", Chances: soloChances(Clear)},
		RegionRecord{ID: "Away", Chances: soloChances(Clear)},
	)

	if err := env.m.ChangeWeather("Away", Blight); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	if env.m.inTransition() {
		t.Fatalf("editing a remote region must not start a transition")
	}

	env.world.region = "Away"
	env.update(0, false)
	if env.m.nextWeather != Blight {
		t.Fatalf("after crossing into the region: next %v, want Blight", env.m.nextWeather)
	}
}

func TestChangeWeatherRejectsUnknownInputs(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("nowhere", Rain); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("unknown region: got %v, want ErrUnknownRegion", err)
	}
	if err := env.m.ChangeWeather("test region", ID(10)); !errors.Is(err, ErrUnknownWeather) {
		t.Fatalf("out-of-range id: got %v, want ErrUnknownWeather", err)
	}
	if err := env.m.ChangeWeather("test region", Invalid); !errors.Is(err, ErrUnknownWeather) {
		t.Fatalf("invalid id: got %v, want ErrUnknownWeather", err)
	}
	if env.m.inTransition() {
		t.Fatalf("rejected requests must not start transitions")
	}
}

func TestModRegionReweightsAndTransitions(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ModRegion("test region", soloChances(Overcast)); err != nil {
		t.Fatalf("mod region: %v", err)
	}
	if env.m.nextWeather != Overcast {
		t.Fatalf("next weather: got %v, want Overcast", env.m.nextWeather)
	}

	chances, ok := env.m.RegionChances("Test Region")
	if !ok {
		t.Fatalf("region chances lookup failed")
	}
	if chances[Overcast] != 100 {
		t.Fatalf("stored chances: got %v", chances)
	}

	if err := env.m.ModRegion("nowhere", soloChances(Clear)); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("unknown region: got %v, want ErrUnknownRegion", err)
	}
}

func TestTransitionFactorDecrementsAndCommits(t *testing.T) {
	env := newTestEnv(t, map[string]string{"Weather_Rain_Transition_Delta": "0.25"})

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}

	wantFactors := []float64{0.75, 0.5, 0.25}
	for _, want := range wantFactors {
		env.update(1, false)
		if env.m.transitionFactor != want {
			t.Fatalf("factor: got %v, want %v", env.m.transitionFactor, want)
		}
		if env.m.CurrentWeather() != Clear {
			t.Fatalf("committed early at factor %v", env.m.transitionFactor)
		}
	}

	env.update(1, false)
	if env.m.CurrentWeather() != Rain {
		t.Fatalf("after commit: got %v, want Rain", env.m.CurrentWeather())
	}
	if env.m.inTransition() || env.m.transitionFactor != 0 {
		t.Fatalf("commit left transition state: next=%v factor=%v", env.m.nextWeather, env.m.transitionFactor)
	}
}

func TestSecondRequestQueuesBehindRunningTransition(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	if err := env.m.ChangeWeather("test region", Snow); err != nil {
		t.Fatalf("queue weather: %v", err)
	}

	if env.m.nextWeather != Rain {
		t.Fatalf("next weather: got %v, want Rain still", env.m.nextWeather)
	}
	if env.m.queuedWeather != Snow {
		t.Fatalf("queued weather: got %v, want Snow", env.m.queuedWeather)
	}

	// Re-requesting the running target changes nothing.
	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("re-request: %v", err)
	}
	if env.m.queuedWeather != Snow {
		t.Fatalf("re-request clobbered the queue: got %v", env.m.queuedWeather)
	}
}

func TestQueuedPromotionCarriesOvershoot(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"Weather_Rain_Transition_Delta": "0.25",
		"Weather_Snow_Transition_Delta": "0.1",
	})

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.update(2, false) // factor 0.5
	if err := env.m.ChangeWeather("test region", Snow); err != nil {
		t.Fatalf("queue weather: %v", err)
	}

	// 3s spends 0.5/0.25 = 2s finishing the rain transition; the 1s
	// overshoot runs against snow's slower delta.
	env.update(3, false)

	if env.m.CurrentWeather() != Rain || env.m.nextWeather != Snow {
		t.Fatalf("promotion: current=%v next=%v, want Rain -> Snow", env.m.CurrentWeather(), env.m.nextWeather)
	}
	if math.Abs(env.m.transitionFactor-0.9) > 1e-12 {
		t.Fatalf("carried factor: got %v, want 0.9", env.m.transitionFactor)
	}
}

func TestFastForwardSnapsToMostAdvancedTarget(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	if err := env.m.ChangeWeather("test region", Snow); err != nil {
		t.Fatalf("queue weather: %v", err)
	}

	env.m.AdvanceTime(8, false)
	env.update(1, false)

	if env.m.CurrentWeather() != Snow {
		t.Fatalf("snap target: got %v, want the queued Snow", env.m.CurrentWeather())
	}
	if env.m.inTransition() || env.m.queuedWeather != Invalid {
		t.Fatalf("snap left transition state: next=%v queued=%v", env.m.nextWeather, env.m.queuedWeather)
	}
	if env.m.transitionFactor != 0 {
		t.Fatalf("snap left factor %v", env.m.transitionFactor)
	}
	if env.m.fastForward {
		t.Fatalf("fast-forward latch must clear after the snap")
	}
}

func TestFastForwardWithoutQueueSnapsToNext(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.m.AdvanceTime(8, false)
	env.update(1, false)

	if env.m.CurrentWeather() != Rain {
		t.Fatalf("snap target: got %v, want Rain", env.m.CurrentWeather())
	}
}

func TestIncrementalTimeDoesNotLatchFastForward(t *testing.T) {
	env := newTestEnv(t, map[string]string{"Weather_Rain_Transition_Delta": "0.25"})

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.m.AdvanceTime(0.01, true)
	env.update(1, false)

	if env.m.CurrentWeather() != Clear || env.m.nextWeather != Rain {
		t.Fatalf("incremental time snapped the transition: current=%v", env.m.CurrentWeather())
	}
	if env.m.transitionFactor != 0.75 {
		t.Fatalf("factor: got %v, want 0.75", env.m.transitionFactor)
	}
}

func TestScheduledRerollExpiresRegionChoices(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()
	if env.m.CurrentWeather() != Rain {
		t.Fatalf("setup: got %v, want Rain", env.m.CurrentWeather())
	}

	// Push the reroll clock past zero; the region re-elects from its
	// weights, which always choose Clear.
	env.m.AdvanceTime(env.m.weatherUpdateTime, true)
	env.update(1, false)

	if env.m.nextWeather != Clear {
		t.Fatalf("reroll transition: got %v, want Clear", env.m.nextWeather)
	}
	if env.m.weatherUpdateTime <= 0 {
		t.Fatalf("reroll clock not rearmed: %v", env.m.weatherUpdateTime)
	}
}

func TestRegionCrossingAdoptsDestinationChoice(t *testing.T) {
	env := newTestEnv(t, nil,
		RegionRecord{ID: "Home", Chances: soloChances(Clear)},
		RegionRecord{ID: "Away", Chances: soloChances(Cloudy)},
	)

	env.world.region = "Away"
	env.update(0, false)

	if env.m.nextWeather != Cloudy {
		t.Fatalf("crossing transition: got %v, want Cloudy", env.m.nextWeather)
	}
	if env.m.CurrentRegion() != "away" {
		t.Fatalf("tracked region: got %q, want \"away\"", env.m.CurrentRegion())
	}
}

func TestWildernessKeepsPreviousRegion(t *testing.T) {
	env := newTestEnv(t, nil)

	env.world.region = ""
	env.update(1, false)

	if env.m.CurrentRegion() != "test region" {
		t.Fatalf("tracked region: got %q, want the previous one", env.m.CurrentRegion())
	}
}

func TestTeleportHardCutsToDestinationWeather(t *testing.T) {
	env := newTestEnv(t, nil,
		RegionRecord{ID: "Home", Chances: soloChances(Clear)},
		RegionRecord{ID: "Away", Chances: soloChances(Ashstorm)},
	)

	env.world.region = "Away"
	env.m.PlayerTeleported()

	if env.m.CurrentWeather() != Ashstorm {
		t.Fatalf("teleport cut: got %v, want Ashstorm", env.m.CurrentWeather())
	}
	if env.m.inTransition() {
		t.Fatalf("teleport must not fade")
	}
}

func TestTeleportIndoorsChangesNothing(t *testing.T) {
	env := newTestEnv(t, nil,
		RegionRecord{ID: "Home", Chances: soloChances(Clear)},
		RegionRecord{ID: "Away", Chances: soloChances(Ashstorm)},
	)

	env.world.region = "Away"
	env.world.exterior = false
	env.m.PlayerTeleported()

	if env.m.CurrentWeather() != Clear {
		t.Fatalf("interior teleport changed weather: got %v", env.m.CurrentWeather())
	}
	if env.m.CurrentRegion() != "home" {
		t.Fatalf("interior teleport adopted region: got %q", env.m.CurrentRegion())
	}
}

func TestInteriorDisablesSkyAndSilencesLoop(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()
	env.update(0.1, false)

	loop := env.sounds.activeLoop()
	if loop == nil || loop.id != "rain" {
		t.Fatalf("expected the rain loop to play, got %+v", loop)
	}

	applied := len(env.sky.applied)
	env.world.exterior = false
	env.update(0.1, false)

	if env.sky.enabled {
		t.Fatalf("interior tick left the sky enabled")
	}
	if env.sounds.activeLoop() != nil {
		t.Fatalf("interior tick left the loop playing")
	}
	if len(env.sky.applied) != applied {
		t.Fatalf("interior tick still composed a result")
	}
}

func TestAmbientLoopCrossesAtTransitionMidpoint(t *testing.T) {
	env := newTestEnv(t, map[string]string{"Weather_Clear_Transition_Delta": "0.25"})

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()
	env.update(0.1, false)
	if loop := env.sounds.activeLoop(); loop == nil || loop.id != "rain" {
		t.Fatalf("expected the rain loop, got %+v", loop)
	}

	// Fade back toward Clear, whose loop is silence.
	if err := env.m.ChangeWeather("test region", Clear); err != nil {
		t.Fatalf("change weather: %v", err)
	}

	env.update(1, false) // factor 0.75, progress 0.25: rain side
	loop := env.sounds.activeLoop()
	if loop == nil || loop.id != "rain" {
		t.Fatalf("below midpoint: expected the rain loop, got %+v", loop)
	}
	if math.Abs(loop.volume-0.5) > 1e-9 {
		t.Fatalf("ramp-down volume: got %v, want 0.5", loop.volume)
	}

	env.update(1, false) // factor 0.5, progress 0.5: clear side, silence
	if loop := env.sounds.activeLoop(); loop != nil {
		t.Fatalf("above midpoint: expected silence, got %+v", loop)
	}
}

func TestStormDirectionPointsAwayFromOrigin(t *testing.T) {
	env := newTestEnv(t, nil)
	env.world.position = defaultStormOrigin.Sub(Vec3{X: -100, Y: 0, Z: -50})

	if err := env.m.ChangeWeather("test region", Ashstorm); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()
	env.update(0.1, false)

	if !env.m.IsInStorm() {
		t.Fatalf("ashstorm should report a storm")
	}
	dir := env.m.StormDirection()
	if math.Abs(dir.X-1) > 1e-9 || dir.Y != 0 || dir.Z != 0 {
		t.Fatalf("storm direction: got %+v, want (1, 0, 0)", dir)
	}
	if !env.sky.stormDirSet {
		t.Fatalf("storm direction never pushed to the renderer")
	}
	if env.m.WindSpeed() <= defaultStormWindSpeed {
		t.Fatalf("storm wind speed %v should exceed the threshold", env.m.WindSpeed())
	}
}

func TestIsDarkFollowsNightWindow(t *testing.T) {
	env := newTestEnv(t, nil)

	cases := []struct {
		hour     float64
		exterior bool
		want     bool
	}{
		{hour: 23, exterior: true, want: true},
		{hour: 5, exterior: true, want: true},
		{hour: 12, exterior: true, want: false},
		{hour: 19.5, exterior: true, want: true},
		{hour: 23, exterior: false, want: false},
	}
	for _, tc := range cases {
		env.world.hour = tc.hour
		env.world.exterior = tc.exterior
		if got := env.m.IsDark(); got != tc.want {
			t.Fatalf("hour %v exterior %v: dark=%v, want %v", tc.hour, tc.exterior, got, tc.want)
		}
	}
}

func TestSunVisibilityAndGlareAcrossTheDay(t *testing.T) {
	env := newTestEnv(t, nil)

	env.world.hour = 12
	env.update(0, false)
	if !env.sky.sunVisible {
		t.Fatalf("midday sun should be visible")
	}
	if env.sky.glare != 1 {
		t.Fatalf("midday glare: got %v, want 1", env.sky.glare)
	}

	env.world.hour = 9
	env.update(0, false)
	if math.Abs(env.sky.glare-0.5) > 1e-9 {
		t.Fatalf("morning glare: got %v, want 0.5", env.sky.glare)
	}

	env.world.hour = 21
	env.update(0, false)
	if env.sky.sunVisible {
		t.Fatalf("night sun should be hidden")
	}
	if env.sky.glare != 0 {
		t.Fatalf("night glare: got %v, want 0", env.sky.glare)
	}

	env.world.hour = 5
	env.update(0, false)
	if env.sky.sunVisible {
		t.Fatalf("pre-sunrise sun should be hidden")
	}
}

func TestSunDirectionSitsOnHorizonAtBoundaries(t *testing.T) {
	env := newTestEnv(t, nil)

	env.world.hour = 6 // sunrise: theta 0
	env.update(0, false)
	dir := env.sky.sunDirection
	if math.Abs(dir.X+1) > 1e-9 || math.Abs(dir.Z) > 1e-9 {
		t.Fatalf("sunrise direction: got %+v", dir)
	}

	env.world.hour = 13 // midday for the 6..20 arc: theta pi/2
	env.update(0, false)
	dir = env.sky.sunDirection
	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Z+1) > 1e-9 {
		t.Fatalf("midday direction: got %+v", dir)
	}

	env.world.hour = 20 // night start: theta 0 on the night arc
	env.update(0, false)
	dir = env.sky.sunDirection
	if math.Abs(dir.X+1) > 1e-9 || math.Abs(dir.Z) > 1e-9 {
		t.Fatalf("night-start direction: got %+v", dir)
	}
}

func TestPausedUpdateFreezesTransitionButStillComposes(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	applied := len(env.sky.applied)
	env.update(5, true)

	if env.m.transitionFactor != 1 {
		t.Fatalf("paused tick advanced the transition: factor %v", env.m.transitionFactor)
	}
	if len(env.sky.applied) != applied+1 {
		t.Fatalf("paused tick must still compose a result")
	}
}

func TestClearResetsToInitialState(t *testing.T) {
	env := newTestEnv(t, nil)

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()
	env.update(0.1, false)
	env.m.AdvanceTime(5, false)

	env.m.Clear()

	if env.m.CurrentWeather() != Clear || env.m.inTransition() {
		t.Fatalf("clear left weather state: current=%v next=%v", env.m.CurrentWeather(), env.m.nextWeather)
	}
	if env.m.CurrentRegion() != "" || env.m.timePassed != 0 || env.m.fastForward {
		t.Fatalf("clear left clock state: region=%q timePassed=%v fastForward=%v",
			env.m.CurrentRegion(), env.m.timePassed, env.m.fastForward)
	}
	if env.sounds.activeLoop() != nil {
		t.Fatalf("clear left the loop playing")
	}
	if rw := env.m.regions["test region"]; rw.weather != Invalid {
		t.Fatalf("clear kept a region choice: %v", rw.weather)
	}
}

func TestThunderstormFlashBrightensColors(t *testing.T) {
	// A frequency high enough that a strike lands on every tick.
	env := newTestEnv(t, map[string]string{"Weather_Thunderstorm_Thunder_Frequency": "60"})

	if err := env.m.ChangeWeather("test region", Thunderstorm); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.settle()

	base := env.m.sampleResult(Thunderstorm, env.world.hour)
	env.update(1, false)

	got := env.m.LastResult()
	if got.AmbientColor.R <= base.AmbientColor.R {
		t.Fatalf("flash did not brighten ambient: got %v, base %v", got.AmbientColor.R, base.AmbientColor.R)
	}
	if len(env.sounds.oneShots) == 0 {
		t.Fatalf("strike played no thunder sound")
	}
	id := env.sounds.oneShots[0].id
	if id != "Thunder0" && id != "Thunder1" && id != "Thunder2" && id != "Thunder3" {
		t.Fatalf("thunder sound: got %q", id)
	}
}

func TestTransitionReportsCrossfadeProgress(t *testing.T) {
	env := newTestEnv(t, map[string]string{"Weather_Rain_Transition_Delta": "0.25"})

	if from, to, progress, active := env.m.Transition(); active || from != Clear || to != Invalid || progress != 0 {
		t.Fatalf("stable transition report: %v -> %v progress %v active %v", from, to, progress, active)
	}

	if err := env.m.ChangeWeather("test region", Rain); err != nil {
		t.Fatalf("change weather: %v", err)
	}
	env.update(1, false)

	from, to, progress, active := env.m.Transition()
	if !active || from != Clear || to != Rain {
		t.Fatalf("running transition report: %v -> %v active %v", from, to, active)
	}
	if progress != 0.25 {
		t.Fatalf("progress: got %v, want 0.25", progress)
	}
}
