package obj

import "github.com/milk9111/stickerclimb/common"

// Context is what a hostile sees when it updates.
type Context struct {
	Player common.Rect
	World  *CollisionWorld
	// Fire hands a newly spawned projectile to the owner of the projectile list.
	Fire func(p *Projectile)
}

func (c *Context) fire(p *Projectile) {
	if c != nil && c.Fire != nil && p != nil {
		c.Fire(p)
	}
}

// Hostile is anything the player has to defeat to unlock the door.
type Hostile interface {
	Update(ctx *Context)
	TakeDamage(amount float64) bool
	Dead() bool
	Bounds() common.Rect
	MeleeDamage() float64
	HealthFraction() float64
}

var (
	_ Hostile = (*Enemy)(nil)
	_ Hostile = (*Boss)(nil)
)
