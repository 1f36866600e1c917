package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	snapshotRecord        = "WTHR"
	snapshotFormatVersion = 2
	// Snapshots older than this are discarded on restore; weather state
	// is not worth failing a whole load over.
	oldestCompatibleFormat = 2
)

// RegionSnapshot is one region's saved election state.
type RegionSnapshot struct {
	Weather int   `json:"weather"`
	Chances []int `json:"chances"`
}

// Snapshot is the versioned save record for the whole simulation.
type Snapshot struct {
	Record        string `json:"record"`
	FormatVersion int    `json:"format_version"`

	CurrentRegion     string  `json:"current_region"`
	TimePassed        float64 `json:"time_passed"`
	FastForward       bool    `json:"fast_forward"`
	WeatherUpdateTime float64 `json:"weather_update_time"`
	TransitionFactor  float64 `json:"transition_factor"`
	CurrentWeather    int     `json:"current_weather"`
	NextWeather       int     `json:"next_weather"`
	QueuedWeather     int     `json:"queued_weather"`

	Regions map[string]RegionSnapshot `json:"regions,omitempty"`
}

// Snapshot captures everything Restore needs to resume the simulation:
// the transition machine, the reroll clock and every region's election
// state.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Record:        snapshotRecord,
		FormatVersion: snapshotFormatVersion,

		CurrentRegion:     m.currentRegion,
		TimePassed:        m.timePassed,
		FastForward:       m.fastForward,
		WeatherUpdateTime: m.weatherUpdateTime,
		TransitionFactor:  m.transitionFactor,
		CurrentWeather:    int(m.currentWeather),
		NextWeather:       int(m.nextWeather),
		QueuedWeather:     int(m.queuedWeather),

		Regions: make(map[string]RegionSnapshot, len(m.regions)),
	}
	for key, rw := range m.regions {
		chances := make([]int, len(rw.chances))
		copy(chances, rw.chances)
		s.Regions[key] = RegionSnapshot{Weather: int(rw.weather), Chances: chances}
	}
	return s
}

// Restore replaces the live state with the snapshot's. Region election
// is rebuilt from the construction-time records first and the saved
// regions overlaid onto it, so regions missing from the snapshot (or a
// snapshot saved with no regions at all) fall back to fresh imports.
//
// Snapshots older than the compatible format are discarded with a
// warning and the current state kept.
func (m *Manager) Restore(s Snapshot) error {
	if s.FormatVersion < oldestCompatibleFormat {
		m.log.Warn("discarding weather snapshot with old format",
			"format_version", s.FormatVersion, "oldest_compatible", oldestCompatibleFormat)
		return nil
	}
	if err := m.checkSnapshotID(s.CurrentWeather, false); err != nil {
		return fmt.Errorf("current weather: %w", err)
	}
	if err := m.checkSnapshotID(s.NextWeather, true); err != nil {
		return fmt.Errorf("next weather: %w", err)
	}
	if err := m.checkSnapshotID(s.QueuedWeather, true); err != nil {
		return fmt.Errorf("queued weather: %w", err)
	}

	m.currentRegion = strings.ToLower(s.CurrentRegion)
	m.timePassed = s.TimePassed
	m.fastForward = s.FastForward
	m.weatherUpdateTime = s.WeatherUpdateTime
	m.transitionFactor = s.TransitionFactor
	m.currentWeather = ID(s.CurrentWeather)
	m.nextWeather = ID(s.NextWeather)
	m.queuedWeather = ID(s.QueuedWeather)

	m.importRegions()
	for key, saved := range s.Regions {
		rw, ok := m.regions[strings.ToLower(key)]
		if !ok {
			m.log.Warn("snapshot names unknown region, skipping", "region", key)
			continue
		}
		rw.weather = ID(saved.Weather)
		rw.chances = make([]int, len(saved.Chances))
		copy(rw.chances, saved.Chances)
	}
	return nil
}

// checkSnapshotID validates a saved weather id against the descriptor
// table; transition slots additionally allow the invalid sentinel.
func (m *Manager) checkSnapshotID(id int, allowInvalid bool) error {
	if allowInvalid && ID(id) == Invalid {
		return nil
	}
	if id < 0 || id >= len(m.patterns) {
		return fmt.Errorf("%w: %d", ErrUnknownWeather, id)
	}
	return nil
}

// EncodeSnapshot serializes s as indented JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode weather snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses data and rejects anything that is not a weather
// record.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode weather snapshot: %w", err)
	}
	if s.Record != snapshotRecord {
		return Snapshot{}, fmt.Errorf("decode weather snapshot: record %q is not %q", s.Record, snapshotRecord)
	}
	return s, nil
}

// SaveTo writes the current state to w as a snapshot record.
func (m *Manager) SaveTo(w io.Writer) error {
	data, err := EncodeSnapshot(m.Snapshot())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write weather snapshot: %w", err)
	}
	return nil
}

// LoadFrom reads a snapshot record from r and restores it.
func (m *Manager) LoadFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read weather snapshot: %w", err)
	}
	s, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}
	return m.Restore(s)
}
