package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded fallback configuration, used
// when even the embedded default YAML cannot be parsed.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BlocksBoard{
			Width:  10,
			Height: 20,
		},
		Timing: BlocksTiming{
			MoveMS:       110,
			RotateMS:     250,
			SoftDropMS:   50,
			GravityMS:    700,
			SpawnGraceMS: 300,
			SpeedUpMS:    25,
			MinGravityMS: 80,
		},
	}
}
