package weather

import (
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	// ErrUnknownWeather reports a weather id outside the descriptor table.
	ErrUnknownWeather = errors.New("unknown weather id")
	// ErrUnknownRegion reports a region id with no election state.
	ErrUnknownRegion = errors.New("unknown region")
)

// Manager runs the whole simulation: it owns the ten weather patterns,
// the per-region election state, the two moons and the transition state
// machine, and pushes a composed Result to the rendering and sound
// collaborators on every update tick.
//
// The tick model is single-threaded and cooperative: Update is called
// once per frame from one goroutine, and nothing here locks.
type Manager struct {
	log *slog.Logger
	rng *rand.Rand

	world  World
	sounds SoundPlayer
	sky    SkyRenderer

	sunriseTime      float64
	sunsetTime       float64
	sunPreSunsetTime float64
	timeSettings     TimeSettings

	// hoursBetweenChanges paces the scheduled regional reroll, in game
	// hours fed through AdvanceTime.
	hoursBetweenChanges float64

	nightFade     FloatCurve
	underwaterFog FloatCurve

	patterns []Pattern
	flashes  []flashState
	masser   Moon
	secunda  Moon

	regionRecords []RegionRecord
	regions       map[string]*RegionWeather

	stormOrigin    Vec3
	windSpeed      float64
	isStorm        bool
	stormDirection Vec3

	currentRegion     string
	timePassed        float64
	fastForward       bool
	weatherUpdateTime float64
	transitionFactor  float64
	currentWeather    ID
	nextWeather       ID
	queuedWeather     ID

	result Result

	ambientLoop    SoundHandle
	playingSoundID string
}

// patternDefs fixes the canonical load order; the positional index IS
// the weather id, so this table must match whatever produced any saved
// state being restored.
var patternDefs = []struct {
	name           string
	particleEffect string
}{
	{name: "Clear"},
	{name: "Cloudy"},
	{name: "Foggy"},
	{name: "Overcast"},
	{name: "Rain"},
	{name: "Thunderstorm"},
	{name: "Ashstorm", particleEffect: `meshes\ashcloud.nif`},
	{name: "Blight", particleEffect: `meshes\blightcloud.nif`},
	{name: "Snow", particleEffect: `meshes\snow.nif`},
	{name: "Blizzard", particleEffect: `meshes\blizzard.nif`},
}

// NewManager builds the simulation from cfg and wires in the three
// collaborators. A nil logger falls back to slog.Default().
func NewManager(cfg Config, world World, sounds SoundPlayer, sky SkyRenderer, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	values := cfg.Values
	if values == nil {
		values = DefaultValues()
	}
	records := cfg.Regions
	if records == nil {
		records = DefaultRegions()
	}
	origin := cfg.StormOrigin
	if origin == (Vec3{}) {
		origin = defaultStormOrigin
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Manager{
		log:    logger,
		rng:    SeededRNG(seed),
		world:  world,
		sounds: sounds,
		sky:    sky,

		sunriseTime:      values.Float("Weather_Sunrise_Time"),
		sunsetTime:       values.Float("Weather_Sunset_Time"),
		sunPreSunsetTime: values.Float("Weather_Sun_Pre-Sunset_Time"),

		hoursBetweenChanges: values.Float("Weather_Hours_Between_Weather_Changes"),

		// The night fade drives the star dome: fully faded in at night,
		// gone through the day anchors.
		nightFade: FloatCurve{Night: 1},
		underwaterFog: FloatCurve{
			Sunrise: values.Float("Water_UnderwaterSunriseFog"),
			Day:     values.Float("Water_UnderwaterDayFog"),
			Sunset:  values.Float("Water_UnderwaterSunsetFog"),
			Night:   values.Float("Water_UnderwaterNightFog"),
		},

		masser:  newMoon("Masser", values),
		secunda: newMoon("Secunda", values),

		regionRecords: records,
		regions:       make(map[string]*RegionWeather),

		stormOrigin:    origin,
		stormDirection: Vec3{Y: 1},

		nextWeather:   Invalid,
		queuedWeather: Invalid,
	}

	m.timeSettings = NewTimeSettings(
		m.sunriseTime,
		m.sunsetTime,
		values.Float("Weather_Sunrise_Duration"),
		values.Float("Weather_Sunset_Duration"),
	)

	stormWindSpeed := cfg.StormWindSpeed
	if stormWindSpeed <= 0 {
		stormWindSpeed = defaultStormWindSpeed
	}
	rainSpeed := values.Float("Weather_Precip_Gravity")
	m.patterns = make([]Pattern, 0, len(patternDefs))
	for _, def := range patternDefs {
		p, err := newPattern(def.name, values, stormWindSpeed, rainSpeed, def.particleEffect)
		if err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, p)
	}
	m.flashes = make([]flashState, len(m.patterns))

	m.importRegions()
	m.weatherUpdateTime = m.hoursBetweenChanges
	m.forceWeather(Clear)

	return m, nil
}

// importRegions rebuilds the election table from the construction-time
// region records, discarding any runtime choices and modifications.
func (m *Manager) importRegions() {
	m.regions = make(map[string]*RegionWeather, len(m.regionRecords))
	for _, rec := range m.regionRecords {
		rw := newRegionWeather(rec)
		m.regions[strings.ToLower(rec.ID)] = &rw
	}
}

// ChangeWeather forces the region's chosen weather. When the player is
// standing in that region, a normal transition to it starts right away;
// otherwise the choice waits until the region becomes active.
func (m *Manager) ChangeWeather(region string, id ID) error {
	if int(id) < 0 || int(id) >= len(m.patterns) {
		m.log.Warn("change weather rejected", "region", region, "id", int(id))
		return ErrUnknownWeather
	}
	key := strings.ToLower(region)
	rw, ok := m.regions[key]
	if !ok {
		m.log.Warn("change weather rejected", "region", region, "id", int(id))
		return ErrUnknownRegion
	}
	rw.SetWeather(id)
	m.regionalWeatherChanged(key, rw)
	return nil
}

// ModRegion replaces the region's chance weights. The region rerolls if
// the new weights no longer support its chosen weather, and the usual
// current-region transition check applies.
func (m *Manager) ModRegion(region string, chances []int) error {
	key := strings.ToLower(region)
	rw, ok := m.regions[key]
	if !ok {
		m.log.Warn("mod region rejected", "region", region)
		return ErrUnknownRegion
	}
	rw.SetChances(chances, m.rng, m.log)
	m.regionalWeatherChanged(key, rw)
	return nil
}

// regionalWeatherChanged starts a transition when the edited region is
// the one the player currently stands in.
func (m *Manager) regionalWeatherChanged(key string, rw *RegionWeather) {
	player := strings.ToLower(m.world.PlayerRegion())
	if player != "" && player == key {
		m.addWeatherTransition(rw.Weather(m.rng, m.log))
	}
}

// PlayerTeleported hard-cuts to the destination region's weather: no
// transition, and any in-flight transition is discarded. Interior
// destinations and unknown regions leave the state alone.
func (m *Manager) PlayerTeleported() {
	if !m.world.IsExterior() {
		return
	}
	region := strings.ToLower(m.world.PlayerRegion())
	rw, ok := m.regions[region]
	if ok && region != m.currentRegion {
		m.currentRegion = region
		m.forceWeather(rw.Weather(m.rng, m.log))
		m.log.Info("teleport weather cut", "region", region, "weather", m.currentWeather)
	}
}

// AdvanceTime accrues passed game hours toward the scheduled reroll. A
// non-incremental call (rest, wait, travel, training, jail) also
// latches fast-forward, so the next unpaused update snaps any pending
// transition to its final target instead of fading.
func (m *Manager) AdvanceTime(hours float64, incremental bool) {
	m.timePassed += hours
	if !incremental {
		m.fastForward = true
	}
}

// Update advances the simulation by elapsed wall-clock time and pushes
// the composed result to the collaborators. Transitions and thunder
// pace on real time deliberately: the game timescale speeds the reroll
// clock (fed through AdvanceTime) but never a crossfade.
//
// While paused, transition and election state freeze, but the result is
// still composed and pushed so the frame has something to draw.
func (m *Manager) Update(elapsed time.Duration, paused bool) {
	t := m.world.TimeStamp()

	if !paused {
		// Scheduled reroll first, then region crossing; either one
		// retargets the transition at the active region's choice.
		region := strings.ToLower(m.world.PlayerRegion())
		if m.updateWeatherTime() || m.updateWeatherRegion(region) {
			if rw, ok := m.regions[m.currentRegion]; ok {
				m.addWeatherTransition(rw.Weather(m.rng, m.log))
			}
		}
		m.updateWeatherTransitions(elapsed.Seconds())
	}

	if !m.world.IsExterior() {
		m.sky.SetSkyEnabled(false)
		m.stopAmbient()
		return
	}
	m.sky.SetSkyEnabled(true)

	m.calculateWeatherResult(t.Hour, elapsed.Seconds(), paused)

	m.windSpeed = m.result.WindSpeed
	m.isStorm = m.result.IsStorm

	if m.isStorm {
		// Storm debris blows away from the storm's fixed origin,
		// flattened onto the horizontal plane.
		direction := m.world.PlayerPosition().Sub(m.stormOrigin)
		direction.Z = 0
		m.stormDirection = direction.Normalized()
		m.sky.SetStormDirection(m.stormDirection)
	}

	m.sky.SetSunVisible(!(t.Hour >= m.timeSettings.NightStart || t.Hour <= m.sunriseTime))
	m.sky.SetSunDirection(m.sunDirection(t.Hour))
	m.sky.SetGlareFade(m.glareFade(t.Hour))

	m.sky.SetMasserState(m.masser.State(t))
	m.sky.SetSecundaState(m.secunda.State(t))

	underwaterFog := m.underwaterFog.Value(t.Hour, m.timeSettings)
	m.sky.ConfigureFog(m.result.FogDepth, underwaterFog, m.result.FogColor)
	m.sky.SetAmbientColor(m.result.AmbientColor)
	m.sky.SetSunColor(m.result.SunColor)
	m.sky.Apply(m.result)

	m.updateAmbientLoop()
}

// Stop silences the ambient loop; the shutdown path.
func (m *Manager) Stop() {
	m.stopAmbient()
}

// Clear resets everything the save record covers back to a fresh start:
// region election reimported, weather forced to Clear, clocks zeroed.
func (m *Manager) Clear() {
	m.stopAmbient()
	m.currentRegion = ""
	m.timePassed = 0
	m.weatherUpdateTime = 0
	m.fastForward = false
	m.forceWeather(Clear)
	m.importRegions()
}

// WindSpeed reports the blended wind speed of the last composed tick.
func (m *Manager) WindSpeed() float64 { return m.windSpeed }

// IsInStorm reports whether the last composed tick was storm weather.
func (m *Manager) IsInStorm() bool { return m.isStorm }

// StormDirection is the unit direction storm debris travels, pointing
// away from the storm origin on the horizontal plane.
func (m *Manager) StormDirection() Vec3 { return m.stormDirection }

// CurrentWeather reports the settled (or transition source) weather id.
func (m *Manager) CurrentWeather() ID { return m.currentWeather }

// CurrentRegion reports the region key the manager is tracking.
func (m *Manager) CurrentRegion() string { return m.currentRegion }

// Transition reports the running crossfade: the outgoing and incoming
// types and the progress in [0, 1]. Between transitions active is false
// and to is Invalid.
func (m *Manager) Transition() (from, to ID, progress float64, active bool) {
	if !m.inTransition() {
		return m.currentWeather, Invalid, 0, false
	}
	return m.currentWeather, m.nextWeather, 1 - m.transitionFactor, true
}

// LastResult returns the most recently composed tick output.
func (m *Manager) LastResult() Result { return m.result }

// Pattern returns the immutable descriptor for id.
func (m *Manager) Pattern(id ID) (Pattern, bool) {
	if int(id) < 0 || int(id) >= len(m.patterns) {
		return Pattern{}, false
	}
	return m.patterns[id], true
}

// Regions lists the known region keys in no particular order.
func (m *Manager) Regions() []string {
	out := make([]string, 0, len(m.regions))
	for key := range m.regions {
		out = append(out, key)
	}
	return out
}

// RegionChances returns a copy of the region's current weight table.
func (m *Manager) RegionChances(region string) ([]int, bool) {
	rw, ok := m.regions[strings.ToLower(region)]
	if !ok {
		return nil, false
	}
	chances := make([]int, len(rw.chances))
	copy(chances, rw.chances)
	return chances, true
}

// IsDark reports nighttime of an exterior cell, the query NPC schedule
// and stealth mechanics hang off.
func (m *Manager) IsDark() bool {
	t := m.world.TimeStamp()
	return m.world.IsExterior() &&
		(t.Hour < m.sunriseTime || t.Hour > m.timeSettings.NightStart-1)
}

// updateWeatherTime consumes accrued game hours and reports whether the
// scheduled reroll fired. Firing expires every region's chosen weather,
// so the next election query rolls fresh.
func (m *Manager) updateWeatherTime() bool {
	m.weatherUpdateTime -= m.timePassed
	m.timePassed = 0
	if m.weatherUpdateTime > 0 {
		return false
	}
	for _, rw := range m.regions {
		rw.SetWeather(Invalid)
	}
	m.weatherUpdateTime += m.hoursBetweenChanges
	m.log.Debug("scheduled weather reroll", "next_in_hours", m.weatherUpdateTime)
	return true
}

// updateWeatherRegion adopts the player's region and reports whether it
// changed. Empty regions (wilderness cells) keep the previous tracking.
func (m *Manager) updateWeatherRegion(playerRegion string) bool {
	if playerRegion == "" || playerRegion == m.currentRegion {
		return false
	}
	m.currentRegion = playerRegion
	m.log.Debug("region changed", "region", playerRegion)
	return true
}

// updateWeatherTransitions advances the transition factor by elapsed
// real time, committing and promoting the queued target when it lands.
// With the fast-forward latch set, the transition instead snaps to the
// most advanced pending target; running the snap path on stable ticks
// too is what keeps a stale latch from leaking into a later transition.
func (m *Manager) updateWeatherTransitions(elapsedSeconds float64) {
	if !m.fastForward && m.inTransition() {
		delta := m.patterns[m.nextWeather].TransitionDelta
		m.transitionFactor -= elapsedSeconds * delta
		if m.transitionFactor > 0 {
			return
		}

		m.currentWeather = m.nextWeather
		m.nextWeather = m.queuedWeather
		m.queuedWeather = Invalid

		if m.inTransition() {
			// The tick overshot into the queued transition: spend the
			// overshoot against the new target's own rate.
			newDelta := m.patterns[m.nextWeather].TransitionDelta
			remainingSeconds := -(m.transitionFactor / delta)
			m.transitionFactor = 1 - remainingSeconds*newDelta
			m.log.Debug("weather transition committed, queued target promoted",
				"current", m.currentWeather, "next", m.nextWeather, "factor", m.transitionFactor)
		} else {
			m.transitionFactor = 0
			m.log.Debug("weather transition committed", "current", m.currentWeather)
		}
		return
	}

	if m.queuedWeather != Invalid {
		m.currentWeather = m.queuedWeather
	} else if m.nextWeather != Invalid {
		m.currentWeather = m.nextWeather
	}
	m.nextWeather = Invalid
	m.queuedWeather = Invalid
	m.transitionFactor = 0
	m.fastForward = false
}

// forceWeather hard-cuts to id, discarding any transition in flight.
func (m *Manager) forceWeather(id ID) {
	m.transitionFactor = 0
	m.currentWeather = id
	m.nextWeather = Invalid
	m.queuedWeather = Invalid
}

func (m *Manager) inTransition() bool {
	return m.nextWeather != Invalid
}

// addWeatherTransition starts fading toward id, or queues it when a
// fade is already running. Requesting the weather already current (or
// already the target) is a no-op. Ids are validated at every public
// entry, so an out-of-range id here is a programming error; it is
// logged and dropped rather than allowed to corrupt the state machine.
func (m *Manager) addWeatherTransition(id ID) {
	if int(id) < 0 || int(id) >= len(m.patterns) {
		m.log.Error("transition request out of range", "id", int(id))
		return
	}
	switch {
	case !m.inTransition() && id != m.currentWeather:
		m.nextWeather = id
		m.transitionFactor = 1.0
		m.log.Debug("weather transition started", "from", m.currentWeather, "to", id)
	case m.inTransition() && id != m.nextWeather:
		m.queuedWeather = id
		m.log.Debug("weather transition queued", "queued", id, "behind", m.nextWeather)
	}
}

// calculateWeatherResult composes the tick output. Stable ticks sample
// one pattern; transitioning ticks blend both, and both sides' thunder
// flashes run independently (each scaled by its own blend ratio) and
// add together, since lightning from either storm lights the whole sky.
func (m *Manager) calculateWeatherResult(hour, elapsedSeconds float64, paused bool) {
	var flash float64
	if !m.inTransition() {
		m.result = m.sampleResult(m.currentWeather, hour)
		flash = m.updateFlash(m.currentWeather, 1, elapsedSeconds, paused)
	} else {
		m.result = m.blendResult(1-m.transitionFactor, hour)
		flash = m.updateFlash(m.currentWeather, m.transitionFactor, elapsedSeconds, paused) +
			m.updateFlash(m.nextWeather, 1-m.transitionFactor, elapsedSeconds, paused)
	}

	flashColor := RGBA{R: flash, G: flash, B: flash}
	m.result.FogColor = m.result.FogColor.Add(flashColor)
	m.result.AmbientColor = m.result.AmbientColor.Add(flashColor)
	m.result.SunColor = m.result.SunColor.Add(flashColor)
}

// updateFlash advances one weather id's thunder simulation and returns
// its ratio-weighted brightness contribution.
func (m *Manager) updateFlash(id ID, ratio, elapsedSeconds float64, paused bool) float64 {
	return ratio * m.flashes[id].update(&m.patterns[id], ratio, elapsedSeconds, paused, m.rng, m.sounds)
}

// sunDirection runs the sun east to west at a fixed tilt from overhead.
// The day and night arcs are parameterized separately so the sun sits
// exactly on the horizon at the configured sunrise and night start.
func (m *Manager) sunDirection(hour float64) Vec3 {
	adjustedHour := hour
	adjustedNightStart := m.timeSettings.NightStart
	if hour < m.sunriseTime {
		adjustedHour += 24
	}
	if m.timeSettings.NightStart < m.sunriseTime {
		adjustedNightStart += 24
	}

	isNight := adjustedHour >= adjustedNightStart
	dayDuration := adjustedNightStart - m.sunriseTime
	nightDuration := 24 - dayDuration

	var theta float64
	if !isNight {
		theta = math.Pi * (adjustedHour - m.sunriseTime) / dayDuration
	} else {
		theta = math.Pi * (adjustedHour - adjustedNightStart) / nightDuration
	}

	// The Y component approximates tan(-15 degrees); negating the whole
	// vector points it from the sun toward the scene.
	return Vec3{X: -math.Cos(theta), Y: 0.268, Z: -math.Sin(theta)}
}

// glareFade ramps sun glare up to full at the midpoint between sunrise
// and sunset and back down to nothing outside the day window.
func (m *Manager) glareFade(hour float64) float64 {
	peak := m.sunriseTime + (m.sunsetTime-m.sunriseTime)/2
	switch {
	case hour < m.sunriseTime || hour > m.sunsetTime:
		return 0
	case hour < peak:
		return 1 - (peak-hour)/(peak-m.sunriseTime)
	default:
		return 1 - (hour-peak)/(m.sunsetTime-peak)
	}
}

// updateAmbientLoop keeps the looping ambient/rain sound in step with
// the composed result: switch loops when the id changes, otherwise just
// track the fade-weighted volume.
func (m *Manager) updateAmbientLoop() {
	if m.playingSoundID != m.result.AmbientLoopSoundID {
		m.stopAmbient()
		if m.result.AmbientLoopSoundID != "" {
			m.ambientLoop = m.sounds.PlaySound(m.result.AmbientLoopSoundID, m.result.AmbientSoundVolume, 1, true)
		}
		m.playingSoundID = m.result.AmbientLoopSoundID
	}
	if m.ambientLoop != nil {
		m.ambientLoop.SetVolume(m.result.AmbientSoundVolume)
	}
}

func (m *Manager) stopAmbient() {
	if m.ambientLoop != nil {
		m.sounds.StopSound(m.ambientLoop)
		m.ambientLoop = nil
	}
	m.playingSoundID = ""
}
