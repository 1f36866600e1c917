package simworld

import (
	"log/slog"

	"github.com/Acidburn0zzz/openmw/internal/weather"
)

// SoundLog is a weather.SoundPlayer that writes what a real audio
// backend would do to a logger.
type SoundLog struct {
	log *slog.Logger
}

func NewSoundLog(logger *slog.Logger) *SoundLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundLog{log: logger}
}

type loggedLoop struct {
	id     string
	volume float64
}

func (l *loggedLoop) SetVolume(volume float64) {
	l.volume = volume
}

func (s *SoundLog) PlaySound(id string, volume, pitch float64, loop bool) weather.SoundHandle {
	if !loop {
		s.log.Debug("sound", "id", id, "volume", volume, "pitch", pitch)
		return nil
	}
	s.log.Debug("sound loop started", "id", id, "volume", volume)
	return &loggedLoop{id: id, volume: volume}
}

func (s *SoundLog) StopSound(handle weather.SoundHandle) {
	if l, ok := handle.(*loggedLoop); ok && l != nil {
		s.log.Debug("sound loop stopped", "id", l.id)
	}
}

// ResultSink is a weather.SkyRenderer that keeps the last state the
// manager pushed, for frontends that draw or print it after the tick.
type ResultSink struct {
	SkyEnabled bool

	FogDepth           float64
	UnderwaterFogDepth float64
	FogColor           weather.RGBA
	AmbientColor       weather.RGBA
	SunColor           weather.RGBA
	SunDirection       weather.Vec3
	SunVisible         bool
	GlareFade          float64
	StormDirection     weather.Vec3
	Masser             weather.MoonState
	Secunda            weather.MoonState

	Result  weather.Result
	Applied int
}

func (r *ResultSink) SetSkyEnabled(enabled bool) {
	r.SkyEnabled = enabled
}

func (r *ResultSink) ConfigureFog(depth, underwaterDepth float64, color weather.RGBA) {
	r.FogDepth = depth
	r.UnderwaterFogDepth = underwaterDepth
	r.FogColor = color
}

func (r *ResultSink) SetAmbientColor(color weather.RGBA) {
	r.AmbientColor = color
}

func (r *ResultSink) SetSunColor(color weather.RGBA) {
	r.SunColor = color
}

func (r *ResultSink) SetSunDirection(direction weather.Vec3) {
	r.SunDirection = direction
}

func (r *ResultSink) SetSunVisible(visible bool) {
	r.SunVisible = visible
}

func (r *ResultSink) SetGlareFade(fade float64) {
	r.GlareFade = fade
}

func (r *ResultSink) SetStormDirection(direction weather.Vec3) {
	r.StormDirection = direction
}

func (r *ResultSink) SetMasserState(state weather.MoonState) {
	r.Masser = state
}

func (r *ResultSink) SetSecundaState(state weather.MoonState) {
	r.Secunda = state
}

func (r *ResultSink) Apply(result weather.Result) {
	r.Result = result
	r.Applied++
}
