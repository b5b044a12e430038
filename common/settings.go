package common

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	LevelHeight  = 2400
	FPS          = 60

	Gravity          = 0.8
	TerminalVelocity = 10.0

	PlayerWidth  = 50
	PlayerHeight = 70
	EnemySize    = 40
	ObstacleSize = 40
	BossSize     = 80

	NumRegularLevels = 3
	BossLevel        = 4
	TotalLevels      = 4
	MaxStickers      = 10

	// CollisionMargin inflates platform rects vertically before landing tests.
	CollisionMargin = 2.0

	FallThroughFrames = 15
)

// Camera defaults.
const (
	CameraSmoothing        = true
	CameraSmoothFactor     = 0.1
	CameraPlayerOffset     = 0.3
	CameraDeadzone         = 100.0
	CameraVisibilityMargin = 100.0
)

var (
	White     color.Color = colornames.White
	Black     color.Color = colornames.Black
	Red       color.Color = colornames.Red
	Green     color.Color = colornames.Lime
	Blue      color.Color = colornames.Blue
	Yellow    color.Color = colornames.Yellow
	Purple    color.Color = colornames.Purple
	Orange    color.Color = colornames.Orange
	Gray      color.Color = colornames.Gray
	Brown     color.Color = colornames.Saddlebrown
	DarkGreen color.Color = colornames.Darkgreen
)

// EnemyColors is cycled by enemy index when no sprite is available.
var EnemyColors = []color.Color{
	colornames.Red,
	colornames.Orange,
	colornames.Yellow,
	colornames.Purple,
	colornames.Cyan,
	colornames.Magenta,
	colornames.Brown,
}

// LevelSkyColors are fallback background fills per level (1-based, boss last).
var LevelSkyColors = []color.Color{
	color.RGBA{R: 0x3a, G: 0x55, B: 0x3b, A: 0xff},
	color.RGBA{R: 0x1f, G: 0x5e, B: 0x2a, A: 0xff},
	color.RGBA{R: 0x2d, G: 0x4a, B: 0x22, A: 0xff},
	color.RGBA{R: 0x2a, G: 0x22, B: 0x30, A: 0xff},
}

// LevelBackgrounds maps a level number to its background image name.
var LevelBackgrounds = map[int]string{
	1: "backgrounds/swamp.png",
	2: "backgrounds/jungle.png",
	3: "backgrounds/forest.png",
	4: "backgrounds/cave.png",
}

// Difficulty maps a level number to the generator difficulty 1..3.
func Difficulty(level int) int {
	d := 1 + (level-1)/3
	if d < 1 {
		d = 1
	}
	if d > 3 {
		d = 3
	}
	return d
}
