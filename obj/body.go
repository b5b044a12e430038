package obj

import "github.com/milk9111/stickerclimb/common"

// Body is the kinematic part shared by every moving entity.
type Body struct {
	Rect     common.Rect
	VelX     float64
	VelY     float64
	OnGround bool
}

// ApplyGravity accelerates the body downward up to terminal velocity.
func (b *Body) ApplyGravity() {
	b.VelY += common.Gravity
	if b.VelY > common.TerminalVelocity {
		b.VelY = common.TerminalVelocity
	}
}

// ClampHorizontal keeps the body inside [0, ScreenWidth].
func (b *Body) ClampHorizontal() {
	b.Rect.X = common.Clamp(b.Rect.X, 0, common.ScreenWidth-b.Rect.W)
}

// ClampFloor stops the body at the bottom of the level.
func (b *Body) ClampFloor() {
	if b.Rect.Bottom() > common.LevelHeight {
		b.Rect.SetBottom(common.LevelHeight)
		if b.VelY > 0 {
			b.VelY = 0
		}
		b.OnGround = true
	}
}

// Step integrates a single frame: gravity, then horizontal displacement,
// then vertical displacement followed by platform landing. When
// skipPlatforms is set the body falls through everything but the ground.
func (b *Body) Step(cw *CollisionWorld, skipPlatforms bool) {
	prevBottom := b.Rect.Bottom()
	b.ApplyGravity()

	b.Rect.X += b.VelX
	b.ClampHorizontal()

	b.Rect.Y += b.VelY
	b.OnGround = false
	if cw != nil {
		cw.Land(b, prevBottom, skipPlatforms)
	}
	b.ClampFloor()
}
