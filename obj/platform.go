package obj

import (
	"image"

	"github.com/milk9111/stickerclimb/common"
)

const PlatformHeight = 20

// Platform is a static rectangle the player can stand on.
type Platform struct {
	Rect   common.Rect
	Ground bool
	Sprite image.Image
}

func NewPlatform(x, y, w, h float64, art Art) *Platform {
	return &Platform{
		Rect:   common.NewRect(x, y, w, h),
		Sprite: lookup(art, "tiles/grass.png"),
	}
}

// NewGround creates the full-width floor of a level.
func NewGround(art Art) *Platform {
	p := &Platform{
		Rect:   common.NewRect(0, common.LevelHeight-40, common.ScreenWidth, 40),
		Ground: true,
		Sprite: lookup(art, "tiles/dirt.png"),
	}
	return p
}
