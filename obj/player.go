package obj

import (
	"image"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/component"
)

// PlayerTuning holds the movement and combat values loaded from game.yaml.
type PlayerTuning struct {
	Health         float64
	MoveSpeed      float64
	JumpSpeed      float64
	IFrames        int
	AttackDamage   float64
	AttackCooldown int
	AttackFrames   int
}

var DefaultPlayerTuning = PlayerTuning{
	Health:         100,
	MoveSpeed:      5,
	JumpSpeed:      15,
	IFrames:        60,
	AttackDamage:   15,
	AttackCooldown: 20,
	AttackFrames:   12,
}

const (
	damageFlashFrames = 30
	healFlashFrames   = 30
	speedModFrames    = 120
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Name() string
	Enter(p *Player)
	HandleInput(p *Player, in Input)
}

type playerIdleState struct{}

func (playerIdleState) Name() string  { return "idle" }
func (playerIdleState) Enter(*Player) {}
func (playerIdleState) HandleInput(p *Player, in Input) {
	p.groundedInput(in)
}

type playerRunState struct{}

func (playerRunState) Name() string  { return "run" }
func (playerRunState) Enter(*Player) {}
func (playerRunState) HandleInput(p *Player, in Input) {
	p.groundedInput(in)
}

type playerAirState struct{}

func (playerAirState) Name() string  { return "air" }
func (playerAirState) Enter(*Player) {}
func (playerAirState) HandleInput(p *Player, in Input) {
	if in.DownHeld && in.JumpPressed {
		p.setState(statePlayerDrop)
	}
}

type playerDropState struct{}

func (playerDropState) Name() string { return "drop" }
func (playerDropState) Enter(p *Player) {
	p.fallThrough = common.FallThroughFrames
	if p.VelY < 0 {
		p.VelY = 0
	}
}
func (playerDropState) HandleInput(*Player, Input) {}

// singletons for each state to avoid allocating on every transition
var (
	statePlayerIdle playerState = &playerIdleState{}
	statePlayerRun  playerState = &playerRunState{}
	statePlayerAir  playerState = &playerAirState{}
	statePlayerDrop playerState = &playerDropState{}
)

// Player is the controllable character.
type Player struct {
	Body
	Health *component.Health
	Facing float64
	Tuning PlayerTuning

	// SpeedMod is set by terrain obstacles and decays after speedModTimer.
	SpeedMod      float64
	speedModTimer int

	armorTimer  int
	attackTimer int
	speedTimer  int

	fallThrough    int
	attackCooldown int
	DamageFlash    int
	HealFlash      int

	state  playerState
	Sprite image.Image
}

func NewPlayer(x, y float64, tuning PlayerTuning, art Art) *Player {
	p := &Player{
		Body:     Body{Rect: common.NewRect(x, y, common.PlayerWidth, common.PlayerHeight)},
		Health:   component.NewHealth(tuning.Health),
		Facing:   1,
		Tuning:   tuning,
		SpeedMod: 1,
		Sprite:   lookup(art, "player/player_idle.png"),
	}
	p.Health.OnDamage = p.onDamage
	p.setState(statePlayerAir)
	return p
}

func (p *Player) setState(s playerState) {
	if p.state == s {
		return
	}
	p.state = s
	s.Enter(p)
}

// StateName returns the current movement state, for debug overlays.
func (p *Player) StateName() string {
	if p.state == nil {
		return ""
	}
	return p.state.Name()
}

func (p *Player) groundedInput(in Input) {
	if !in.JumpPressed {
		return
	}
	if in.DownHeld {
		p.setState(statePlayerDrop)
		return
	}
	p.VelY = -p.Tuning.JumpSpeed
	p.OnGround = false
	p.setState(statePlayerAir)
}

// FallingThrough reports whether platform collision is currently skipped.
func (p *Player) FallingThrough() bool {
	return p.fallThrough > 0
}

// Update advances the player one frame and returns a new attack hitbox when
// one was spawned.
func (p *Player) Update(in Input, cw *CollisionWorld) *Attack {
	p.VelX = in.MoveX * p.Tuning.MoveSpeed * p.speedMultiplier()
	if in.MoveX != 0 {
		p.Facing = common.Sign(in.MoveX)
	}

	p.state.HandleInput(p, in)

	var atk *Attack
	if p.attackCooldown > 0 {
		p.attackCooldown--
	}
	if in.AttackPressed && p.attackCooldown == 0 {
		atk = NewAttack(p.Rect, p.Facing, p.Tuning.AttackDamage*p.AttackMultiplier(), p.Tuning.AttackFrames)
		p.attackCooldown = p.Tuning.AttackCooldown
	}

	p.Step(cw, p.fallThrough > 0)
	if p.fallThrough > 0 {
		p.fallThrough--
	}

	switch {
	case p.fallThrough > 0:
		// stay in drop until the timer expires
	case !p.OnGround:
		p.setState(statePlayerAir)
	case p.VelX != 0:
		p.setState(statePlayerRun)
	default:
		p.setState(statePlayerIdle)
	}

	p.tickTimers()
	return atk
}

func (p *Player) tickTimers() {
	p.Health.Tick()
	if p.DamageFlash > 0 {
		p.DamageFlash--
	}
	if p.HealFlash > 0 {
		p.HealFlash--
	}
	if p.speedModTimer > 0 {
		p.speedModTimer--
		if p.speedModTimer == 0 {
			p.SpeedMod = 1
		}
	}
	if p.armorTimer > 0 {
		p.armorTimer--
	}
	if p.attackTimer > 0 {
		p.attackTimer--
	}
	if p.speedTimer > 0 {
		p.speedTimer--
	}
}

func (p *Player) speedMultiplier() float64 {
	m := p.SpeedMod
	if p.speedTimer > 0 {
		m *= 1.5
	}
	return m
}

// AttackMultiplier is 1.5 while the attack power-up is active.
func (p *Player) AttackMultiplier() float64 {
	if p.attackTimer > 0 {
		return 1.5
	}
	return 1
}

// ApplySpeedMod applies a terrain speed modifier for a fixed number of frames.
func (p *Player) ApplySpeedMod(mod float64) {
	p.SpeedMod = mod
	p.speedModTimer = speedModFrames
}

// TakeDamage applies damage respecting i-frames and armor. A negative amount
// heals. Returns true if health changed.
func (p *Player) TakeDamage(amount float64) bool {
	if amount < 0 {
		return p.Heal(-amount) > 0
	}
	if p.armorTimer > 0 {
		amount *= 0.5
	}
	return p.Health.ApplyDamage(amount)
}

func (p *Player) onDamage(h *component.Health, _ float64) {
	h.StartIFrames(p.Tuning.IFrames)
	p.DamageFlash = damageFlashFrames
}

func (p *Player) Heal(amount float64) float64 {
	gained := p.Health.Heal(amount)
	if gained > 0 {
		p.HealFlash = healFlashFrames
	}
	return gained
}

// Activate starts a power-up for the given number of frames.
func (p *Player) Activate(kind PowerUpKind, frames int) {
	switch kind {
	case PowerUpArmor:
		p.armorTimer = frames
	case PowerUpAttack:
		p.attackTimer = frames
	case PowerUpSpeed:
		p.speedTimer = frames
	}
}

// PowerUpFrames returns the remaining frames for a power-up kind.
func (p *Player) PowerUpFrames(kind PowerUpKind) int {
	switch kind {
	case PowerUpArmor:
		return p.armorTimer
	case PowerUpAttack:
		return p.attackTimer
	case PowerUpSpeed:
		return p.speedTimer
	}
	return 0
}

// Bounce launches the player upward.
func (p *Player) Bounce(vy float64) {
	p.VelY = vy
	p.OnGround = false
	p.setState(statePlayerAir)
}

// StandOn snaps the player on top of a blocking rect while falling.
func (p *Player) StandOn(r common.Rect) {
	if p.VelY > 0 && p.Rect.Bottom() > r.Top() {
		p.Rect.SetBottom(r.Top())
		p.VelY = 0
		p.OnGround = true
	}
}
