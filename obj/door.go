package obj

import (
	"image"

	"github.com/milk9111/stickerclimb/common"
)

const (
	doorWidth          = 50
	doorHeight         = 80
	unlockBannerFrames = 120
	treasureSize       = 40
)

// Door is the level exit. It opens once every hostile is defeated.
type Door struct {
	Rect     common.Rect
	Unlocked bool
	// Banner counts down while the unlock message is shown.
	Banner int

	Locked image.Image
	Open   image.Image
}

// NewDoorOn places a door standing on top of platform.
func NewDoorOn(platform *Platform, art Art) *Door {
	x := platform.Rect.CenterX() - doorWidth/2
	y := platform.Rect.Top() - doorHeight
	return &Door{
		Rect:   common.NewRect(x, y, doorWidth, doorHeight),
		Locked: lookup(art, "door/locked.png"),
		Open:   lookup(art, "door/open.png"),
	}
}

func (d *Door) Unlock() {
	if d.Unlocked {
		return
	}
	d.Unlocked = true
	d.Banner = unlockBannerFrames
}

func (d *Door) Update() {
	if d.Banner > 0 {
		d.Banner--
	}
}

// Exiting reports whether the player is touching an open door.
func (d *Door) Exiting(player common.Rect) bool {
	return d.Unlocked && d.Rect.Intersects(player)
}

// Treasure holds one sticker and stays hidden until revealed.
type Treasure struct {
	Rect      common.Rect
	StickerID int
	Hidden    bool
	Collected bool
	Sprite    image.Image
}

func NewTreasure(x, y float64, stickerID int, art Art) *Treasure {
	return &Treasure{
		Rect:      common.NewRect(x, y, treasureSize, treasureSize),
		StickerID: stickerID,
		Hidden:    true,
		Sprite:    lookup(art, "treasure/chest.png"),
	}
}

func (t *Treasure) Reveal() {
	t.Hidden = false
}

// Collectable reports whether the treasure can be picked up.
func (t *Treasure) Collectable() bool {
	return !t.Hidden && !t.Collected
}

func (t *Treasure) Collect() {
	t.Collected = true
}
