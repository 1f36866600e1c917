package weather

// GameTime is the world clock sample the engine works from: days passed
// since the calendar epoch plus the fractional hour of day in [0, 24).
type GameTime struct {
	Day  int
	Hour float64
}

// World is the game-world collaborator: clock, player whereabouts and
// cell status. The manager polls it every update.
type World interface {
	TimeStamp() GameTime
	IsExterior() bool
	// PlayerRegion reports the region the player stands in, or "" when
	// the cell has none. The manager lowercases it for map keys.
	PlayerRegion() string
	PlayerPosition() Vec3
}

// SoundHandle controls one playing sound.
type SoundHandle interface {
	SetVolume(volume float64)
}

// SoundPlayer is the audio collaborator. PlaySound is fire-and-forget
// for one-shots; looping sounds return a handle the caller keeps to
// adjust volume and stop the loop.
type SoundPlayer interface {
	PlaySound(id string, volume, pitch float64, loop bool) SoundHandle
	StopSound(handle SoundHandle)
}

// SkyRenderer is the rendering collaborator. The manager pushes the
// composed state each exterior tick; the renderer treats everything it
// receives as read-only for that frame.
type SkyRenderer interface {
	SetSkyEnabled(enabled bool)
	ConfigureFog(depth, underwaterDepth float64, color RGBA)
	SetAmbientColor(color RGBA)
	SetSunColor(color RGBA)
	SetSunDirection(direction Vec3)
	SetSunVisible(visible bool)
	SetGlareFade(fade float64)
	SetStormDirection(direction Vec3)
	SetMasserState(state MoonState)
	SetSecundaState(state MoonState)
	Apply(result Result)
}
