package obj

import "github.com/milk9111/stickerclimb/common"

const (
	attackWidth  = 60
	attackHeight = 50
)

// Attack is a short-lived melee hitbox. Each target is damaged at most once.
type Attack struct {
	Rect   common.Rect
	Damage float64
	Life   int

	hit map[any]struct{}
}

// NewAttack places a hitbox beside owner in the facing direction.
func NewAttack(owner common.Rect, facing, damage float64, frames int) *Attack {
	x := owner.Right()
	if facing < 0 {
		x = owner.Left() - attackWidth
	}
	y := owner.CenterY() - attackHeight/2
	return &Attack{
		Rect:   common.NewRect(x, y, attackWidth, attackHeight),
		Damage: damage,
		Life:   frames,
		hit:    make(map[any]struct{}),
	}
}

// Follow keeps the hitbox attached to its owner.
func (a *Attack) Follow(owner common.Rect, facing float64) {
	x := owner.Right()
	if facing < 0 {
		x = owner.Left() - attackWidth
	}
	a.Rect.X = x
	a.Rect.Y = owner.CenterY() - attackHeight/2
}

func (a *Attack) Tick() {
	if a.Life > 0 {
		a.Life--
	}
}

func (a *Attack) Expired() bool {
	return a.Life <= 0
}

// TryHit records target and reports whether this is its first hit.
func (a *Attack) TryHit(target any) bool {
	if _, ok := a.hit[target]; ok {
		return false
	}
	a.hit[target] = struct{}{}
	return true
}
