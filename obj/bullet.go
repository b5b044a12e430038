package obj

import (
	"math"

	"github.com/milk9111/stickerclimb/common"
)

const projectileSize = 10

// Projectile is a straight-flying shot fired by enemies and the boss.
type Projectile struct {
	Rect   common.Rect
	VelX   float64
	VelY   float64
	Damage float64
	Active bool
}

// NewProjectile creates a projectile centered at (x, y).
func NewProjectile(x, y, vx, vy, damage float64) *Projectile {
	return &Projectile{
		Rect:   common.NewRect(x-projectileSize/2, y-projectileSize/2, projectileSize, projectileSize),
		VelX:   vx,
		VelY:   vy,
		Damage: damage,
		Active: true,
	}
}

// Aimed fires from (x, y) toward (tx, ty) at speed, rotated by angle radians.
func Aimed(x, y, tx, ty, speed, angle, damage float64) *Projectile {
	dx := tx - x
	dy := ty - y
	base := math.Atan2(dy, dx)
	if dx == 0 && dy == 0 {
		base = 0
	}
	a := base + angle
	return NewProjectile(x, y, math.Cos(a)*speed, math.Sin(a)*speed, damage)
}

// Update moves the projectile and deactivates it once it leaves the level.
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.Rect.X += p.VelX
	p.Rect.Y += p.VelY
	if p.Rect.Right() < 0 || p.Rect.Left() > common.ScreenWidth ||
		p.Rect.Bottom() < 0 || p.Rect.Top() > common.LevelHeight {
		p.Active = false
	}
}
