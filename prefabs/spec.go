package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const gameSpecFile = "game.yaml"

// GameSpec holds every gameplay tunable read from game.yaml.
type GameSpec struct {
	Name         string      `yaml:"name"`
	Camera       CameraSpec  `yaml:"camera"`
	Player       PlayerSpec  `yaml:"player"`
	Enemies      EnemySpec   `yaml:"enemies"`
	Boss         BossSpec    `yaml:"boss"`
	Levels       []LevelSpec `yaml:"levels"`
	VictoryDelay int         `yaml:"victory_delay_frames"`
	Audio        []AudioSpec `yaml:"audio"`
}

type CameraSpec struct {
	SmoothEnabled bool    `yaml:"smooth_enabled"`
	SmoothFactor  float64 `yaml:"smooth_factor"`
	PlayerOffset  float64 `yaml:"player_offset"`
	Deadzone      float64 `yaml:"deadzone"`
}

type PlayerSpec struct {
	Health         float64 `yaml:"health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	IFrames        int     `yaml:"iframes"`
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	AttackFrames   int     `yaml:"attack_frames"`
}

type EnemySpec struct {
	// Patterns is cycled by enemy index. Entries are patrol, chase, sine or
	// script:<name> for prefabs/scripts/<name>.tengo.
	Patterns            []string `yaml:"patterns"`
	BaseSpeed           float64  `yaml:"base_speed"`
	SpeedPerDifficulty  float64  `yaml:"speed_per_difficulty"`
	BaseHealth          float64  `yaml:"base_health"`
	HealthPerDifficulty float64  `yaml:"health_per_difficulty"`
	MeleeDamage         float64  `yaml:"melee_damage"`
	MaxAttacking        int      `yaml:"max_attacking"`
}

type BossSpec struct {
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	MeleeDamage float64 `yaml:"melee_damage"`
}

// LevelSpec customizes the look of one level, 1-based by position.
type LevelSpec struct {
	Name       string     `yaml:"name"`
	Background string     `yaml:"background"`
	Sky        *YAMLColor `yaml:"sky"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Level returns the spec for a 1-based level number, or false when unset.
func (g *GameSpec) Level(n int) (LevelSpec, bool) {
	if g == nil || n < 1 || n > len(g.Levels) {
		return LevelSpec{}, false
	}
	return g.Levels[n-1], true
}

// Sound returns the audio entry with the given name.
func (g *GameSpec) Sound(name string) (AudioSpec, bool) {
	if g == nil {
		return AudioSpec{}, false
	}
	for _, a := range g.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}

// DefaultGameSpec returns the embedded game.yaml with no overrides applied.
func DefaultGameSpec() (*GameSpec, error) {
	data, err := LoadEmbedded(gameSpecFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load embedded %s: %w", gameSpecFile, err)
	}
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal embedded %s: %w", gameSpecFile, err)
	}
	return &spec, nil
}

// LoadGameSpec resolves game.yaml.
// Search order: customPath -> ~/.stickerclimb/game.yaml -> ./prefabs/game.yaml -> embedded default.
// Files only need to list the values they change; everything else keeps the
// embedded default. A customPath that cannot be read or parsed is an error;
// the other locations are skipped silently when broken.
func LoadGameSpec(customPath string) (*GameSpec, error) {
	spec, err := DefaultGameSpec()
	if err != nil {
		return nil, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("prefabs: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("prefabs: unmarshal %s: %w", customPath, err)
		}
		return spec, nil
	}

	if p := userConfigPath(gameSpecFile); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if overlay(spec, data) {
				return spec, nil
			}
		}
	}

	// Load prefers ./prefabs on disk and falls back to the embedded copy,
	// which spec already holds.
	if data, err := Load(gameSpecFile); err == nil {
		overlay(spec, data)
	}

	return spec, nil
}

// overlay decodes data on top of a copy of spec and only commits on success.
func overlay(spec *GameSpec, data []byte) bool {
	next := *spec
	next.Levels = append([]LevelSpec(nil), spec.Levels...)
	next.Audio = append([]AudioSpec(nil), spec.Audio...)
	next.Enemies.Patterns = append([]string(nil), spec.Enemies.Patterns...)
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*spec = next
	return true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickerclimb", filename)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
