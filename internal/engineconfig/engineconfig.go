package engineconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnginePrefs holds engine-only preferences (gravity, simulation speed, debug
// overlays). Persisted across runs; scene content is separate and handled
// elsewhere.
type EnginePrefs struct {
	Gravity     [2]float32 `yaml:"gravity"`
	Speed       float32    `yaml:"speed"`
	ShowFPS     bool       `yaml:"show_fps"`
	ShowStats   bool       `yaml:"show_stats"`
	GridVisible bool       `yaml:"grid_visible"`
}

// Default returns default engine preferences: standard gravity, full speed,
// overlays off, grid on.
func Default() EnginePrefs {
	return EnginePrefs{
		Gravity:     [2]float32{0, -9.8},
		Speed:       1,
		GridVisible: true,
	}
}

// Load reads engine preferences from EngineConfigPath. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads engine preferences from path, falling back to Default() for a
// missing or unparseable file.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes engine preferences to EngineConfigPath, creating the config
// directory if needed.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes engine preferences to path, creating its directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
