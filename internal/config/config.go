// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

// BlocksConfig contains all tunables for the falling-blocks game.
type BlocksConfig struct {
	Board  BlocksBoard  `yaml:"board"`
	Timing BlocksTiming `yaml:"timing"`
}

// BlocksBoard defines the playfield dimensions.
type BlocksBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksTiming defines the cadence intervals, in milliseconds. Each held
// input repeats on its own interval; gravity shortens by speed_up_ms per
// cleared line but never below min_gravity_ms.
type BlocksTiming struct {
	MoveMS       int `yaml:"move_ms"`
	RotateMS     int `yaml:"rotate_ms"`
	SoftDropMS   int `yaml:"soft_drop_ms"`
	GravityMS    int `yaml:"gravity_ms"`
	SpawnGraceMS int `yaml:"spawn_grace_ms"`
	SpeedUpMS    int `yaml:"speed_up_ms"`
	MinGravityMS int `yaml:"min_gravity_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// GravityForPreset returns the starting gravity interval in milliseconds
// for a difficulty preset. Unknown presets get the normal cadence.
func GravityForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 850
	case DifficultyHard:
		return 500
	default:
		return 700
	}
}

// ApplyBlocksPreset adjusts the config's starting gravity for a preset.
// An empty preset leaves the config untouched.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.GravityMS = GravityForPreset(preset)
}
