package obj

import (
	"image"
	"math"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/component"
)

// BossTuning holds the boss values loaded from game.yaml.
type BossTuning struct {
	Health      float64
	Speed       float64
	MeleeDamage float64
}

var DefaultBossTuning = BossTuning{
	Health:      150,
	Speed:       1.5,
	MeleeDamage: 20,
}

const (
	bossBoundLeft  = 50
	bossBoundRight = common.ScreenWidth - 50

	bossShotSpeed = 7
)

type bossPhaseSpec struct {
	cooldown int
	damage   float64
	// angles are offsets in radians around the aimed direction.
	angles []float64
}

var bossPhases = map[int]bossPhaseSpec{
	1: {cooldown: 80, damage: 15, angles: []float64{0}},
	2: {cooldown: 60, damage: 15, angles: []float64{-0.1, 0.1}},
	3: {cooldown: 40, damage: 12, angles: []float64{-0.3, 0, 0.3}},
}

// BossPhase derives the fight phase from current health.
func BossPhase(health, max float64) int {
	switch {
	case health < max*0.25:
		return 3
	case health < max*0.5:
		return 2
	}
	return 1
}

// Boss is the final-level hostile with three health-driven phases.
type Boss struct {
	Body
	Health *component.Health
	Speed  float64
	Sprite image.Image

	// OnPhaseChange is called when the derived phase differs from the last one seen.
	OnPhaseChange func(from, to int)

	melee        float64
	phase        int
	timer        int
	fireCooldown int
}

func NewBoss(x, y float64, tuning BossTuning, art Art) *Boss {
	return &Boss{
		Body: Body{
			Rect: common.NewRect(x, y, common.BossSize, common.BossSize),
			VelX: tuning.Speed,
		},
		Health: component.NewHealth(tuning.Health),
		Speed:  tuning.Speed,
		Sprite: lookup(art, "enemies/scary_bear.png"),
		melee:  tuning.MeleeDamage,
		phase:  1,
	}
}

// Phase returns the phase for the current health.
func (b *Boss) Phase() int {
	return BossPhase(b.Health.Current, b.Health.Max)
}

func (b *Boss) Update(ctx *Context) {
	if b.Dead() {
		return
	}
	phase := b.Phase()
	if phase != b.phase {
		if b.OnPhaseChange != nil {
			b.OnPhaseChange(b.phase, phase)
		}
		b.phase = phase
	}
	b.timer++
	prevBottom := b.Rect.Bottom()

	switch phase {
	case 1:
		b.Rect.X += b.VelX
		b.clampToArena(false)
	case 2:
		b.Rect.X += b.VelX * 1.5
		b.clampToArena(true)
	default:
		if ctx != nil {
			offset := float64((b.timer%20)*2 - 20)
			b.Rect.X = ctx.Player.CenterX() - common.BossSize/2 + offset
		}
		if b.timer%10 == 0 {
			b.VelY = -10
		}
	}
	b.ClampHorizontal()

	b.ApplyGravity()
	b.Rect.Y += b.VelY
	b.OnGround = false
	if ctx != nil {
		ctx.World.Land(&b.Body, prevBottom, false)
	}
	b.ClampFloor()

	b.tryFire(ctx, phase)
}

// clampToArena turns the boss around at the arena edges and optionally jumps.
func (b *Boss) clampToArena(jump bool) {
	speed := math.Abs(b.VelX)
	hit := false
	if b.Rect.Left() <= bossBoundLeft {
		b.Rect.X = bossBoundLeft
		b.VelX = speed
		hit = true
	} else if b.Rect.Right() >= bossBoundRight {
		b.Rect.SetRight(bossBoundRight)
		b.VelX = -speed
		hit = true
	}
	if hit && jump {
		b.VelY = -12
	}
}

func (b *Boss) tryFire(ctx *Context, phase int) {
	if b.fireCooldown > 0 {
		b.fireCooldown--
		return
	}
	if ctx == nil {
		return
	}
	spec := bossPhases[phase]
	cx, cy := b.Rect.CenterX(), b.Rect.CenterY()
	for _, a := range spec.angles {
		ctx.fire(Aimed(cx, cy, ctx.Player.CenterX(), ctx.Player.CenterY(), bossShotSpeed, a, spec.damage))
	}
	b.fireCooldown = spec.cooldown
}

// TakeDamage applies damage with no invulnerability window.
func (b *Boss) TakeDamage(amount float64) bool {
	if b.Dead() {
		return false
	}
	b.Health.ApplyDamage(amount)
	return b.Dead()
}

func (b *Boss) Dead() bool {
	return !b.Health.IsAlive()
}

func (b *Boss) Bounds() common.Rect {
	return b.Rect
}

func (b *Boss) MeleeDamage() float64 {
	return b.melee
}

func (b *Boss) HealthFraction() float64 {
	return b.Health.Fraction()
}
