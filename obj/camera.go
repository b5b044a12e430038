package obj

import (
	"fmt"
	"math"

	"github.com/milk9111/stickerclimb/common"
)

// Camera tracks the player vertically over a level taller than the screen.
// X and Y are the world-space top-left of the view.
type Camera struct {
	X float64
	Y float64

	TargetX float64
	TargetY float64

	levelW  float64
	levelH  float64
	screenW float64
	screenH float64

	smoothEnabled bool
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// fraction of the screen height kept above the player.
	playerOffset float64
	deadzone     float64
	margin       float64
}

// NewCamera creates a camera for a level of the given size using the default
// tracking values.
func NewCamera(levelW, levelH, screenW, screenH float64) *Camera {
	return &Camera{
		levelW:        levelW,
		levelH:        levelH,
		screenW:       screenW,
		screenH:       screenH,
		smoothEnabled: common.CameraSmoothing,
		smooth:        common.CameraSmoothFactor,
		playerOffset:  common.CameraPlayerOffset,
		deadzone:      common.CameraDeadzone,
		margin:        common.CameraVisibilityMargin,
	}
}

// NewLevelCamera creates a camera sized for a standard level.
func NewLevelCamera() *Camera {
	return NewCamera(common.ScreenWidth, common.LevelHeight, common.ScreenWidth, common.ScreenHeight)
}

// SetWorldBounds updates the level size used for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.levelW = w
	c.levelH = h
	c.clamp()
}

func (c *Camera) desiredY(target common.Rect) float64 {
	return target.CenterY() - c.screenH*c.playerOffset
}

// Update moves the camera toward the player. Call from the fixed-rate Update
// loop to get consistent smoothing.
func (c *Camera) Update(target common.Rect) {
	desired := c.desiredY(target)
	if math.Abs(desired-c.TargetY) > c.deadzone {
		c.TargetY = desired
	}
	if c.smoothEnabled {
		c.Y = common.Lerp(c.Y, c.TargetY, c.smooth)
	} else {
		c.Y = c.TargetY
	}
	c.clamp()
}

// SnapTo immediately centers the camera on target with no smoothing. Use this
// after a level load so the first frame is already in place.
func (c *Camera) SnapTo(target common.Rect) {
	c.TargetY = c.desiredY(target)
	c.Y = c.TargetY
	c.clamp()
	c.TargetY = c.Y
}

func (c *Camera) clamp() {
	c.X = common.Clamp(c.X, 0, math.Max(0, c.levelW-c.screenW))
	c.Y = common.Clamp(c.Y, 0, math.Max(0, c.levelH-c.screenH))
}

// ToScreen converts a world rect to screen space.
func (c *Camera) ToScreen(r common.Rect) common.Rect {
	return r.Offset(-math.Floor(c.X), -math.Floor(c.Y))
}

// ToScreenPos converts a world point to screen space.
func (c *Camera) ToScreenPos(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// Viewport returns the world rect currently on screen.
func (c *Camera) Viewport() common.Rect {
	return common.NewRect(c.X, c.Y, c.screenW, c.screenH)
}

// Visible reports whether r overlaps the viewport grown by the culling margin.
func (c *Camera) Visible(r common.Rect) bool {
	return c.Viewport().Inflate(c.margin, c.margin).Intersects(r)
}

// ParallaxOffset is the vertical scroll of a background layer at depth
// (0 = fixed, 1 = moves with the world).
func (c *Camera) ParallaxOffset(depth float64) float64 {
	return c.Y * depth
}

// ParallaxScroll wraps ParallaxOffset into [0, screen height) for tiling.
func (c *Camera) ParallaxScroll(depth float64) float64 {
	if c.screenH <= 0 {
		return 0
	}
	v := math.Mod(c.ParallaxOffset(depth), c.screenH)
	if v < 0 {
		v += c.screenH
	}
	return v
}

// Reset returns the camera to the origin.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.TargetX, c.TargetY = 0, 0
}

func (c *Camera) SetSmoothEnabled(enabled bool) {
	c.smoothEnabled = enabled
}

func (c *Camera) SetSmoothFactor(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// SetPlayerTracking sets where the player sits on screen (0..1 from the top)
// and how far the player may drift before the camera retargets.
func (c *Camera) SetPlayerTracking(offset, deadzone float64) {
	c.playerOffset = common.Clamp(offset, 0, 1)
	if deadzone < 0 {
		deadzone = 0
	}
	c.deadzone = deadzone
}

// Info returns a one-line debug summary.
func (c *Camera) Info() string {
	return fmt.Sprintf("Camera Y: %.1f | Target Y: %.1f | Level Height: %.0f | Visible: (%d, %d)",
		c.Y, c.TargetY, c.levelH, int(c.Y), int(c.Y+c.screenH))
}
