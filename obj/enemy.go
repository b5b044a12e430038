package obj

import (
	"image"
	"image/color"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/component"
)

const (
	enemyFireCooldown   = 60
	enemyProjectileVX   = 6
	enemyProjectileDmg  = 8
	defaultEnemyMeleeHP = 10
)

// EnemyConfig describes a single regular enemy at spawn time.
type EnemyConfig struct {
	X, Y        float64
	Pattern     string
	Left, Right float64
	Speed       float64
	Health      float64
	MeleeDamage float64
	Ranged      bool
	Color       color.Color
	Script      *ScriptPattern
}

// Enemy is a regular hostile driven by a movement pattern.
type Enemy struct {
	Body
	Health *component.Health
	Speed  float64
	// Left and Right bound horizontal travel in world pixels.
	Left, Right float64
	Ranged      bool
	Color       color.Color
	Sprite      image.Image

	melee        float64
	mover        movementPattern
	fireCooldown int
	sinePhase    float64
	frame        int
}

func NewEnemy(cfg EnemyConfig, art Art) *Enemy {
	if cfg.MeleeDamage <= 0 {
		cfg.MeleeDamage = defaultEnemyMeleeHP
	}
	if cfg.Color == nil {
		cfg.Color = common.Red
	}
	if cfg.Right <= cfg.Left {
		cfg.Left, cfg.Right = 0, common.ScreenWidth
	}
	e := &Enemy{
		Body: Body{
			Rect: common.NewRect(cfg.X, cfg.Y, common.EnemySize, common.EnemySize),
			VelX: cfg.Speed,
		},
		Health: component.NewHealth(cfg.Health),
		Speed:  cfg.Speed,
		Left:   cfg.Left,
		Right:  cfg.Right,
		Ranged: cfg.Ranged,
		Color:  cfg.Color,
		Sprite: lookup(art, "enemies/forest_creature.png"),
		melee:  cfg.MeleeDamage,
		mover:  patternFor(cfg.Pattern, cfg.Script),
	}
	return e
}

// Pattern returns the movement pattern tag.
func (e *Enemy) Pattern() string {
	return e.mover.Name()
}

func (e *Enemy) Update(ctx *Context) {
	if e.Dead() {
		return
	}
	e.frame++
	prevBottom := e.Rect.Bottom()

	e.mover.Move(e, ctx)
	e.ClampHorizontal()

	e.ApplyGravity()
	e.Rect.Y += e.VelY
	e.OnGround = false
	if ctx != nil {
		ctx.World.Land(&e.Body, prevBottom, false)
	}
	e.ClampFloor()

	if e.Ranged {
		e.tryFire(ctx)
	}
}

func (e *Enemy) tryFire(ctx *Context) {
	if e.fireCooldown > 0 {
		e.fireCooldown--
		return
	}
	if ctx == nil {
		return
	}
	dir := -1.0
	if ctx.Player.CenterX() > e.Rect.CenterX() {
		dir = 1
	}
	x := e.Rect.CenterX() + dir*common.EnemySize/2
	ctx.fire(NewProjectile(x, e.Rect.CenterY(), dir*enemyProjectileVX, 0, enemyProjectileDmg))
	e.fireCooldown = enemyFireCooldown
}

// TakeDamage applies damage with no invulnerability window.
// Returns true when the hit killed the enemy.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.Dead() {
		return false
	}
	e.Health.ApplyDamage(amount)
	return e.Dead()
}

func (e *Enemy) Dead() bool {
	return !e.Health.IsAlive()
}

func (e *Enemy) Bounds() common.Rect {
	return e.Rect
}

func (e *Enemy) MeleeDamage() float64 {
	return e.melee
}

func (e *Enemy) HealthFraction() float64 {
	return e.Health.Fraction()
}
