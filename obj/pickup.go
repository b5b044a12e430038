package obj

import (
	"image"
	"math"

	"github.com/milk9111/stickerclimb/common"
)

type PowerUpKind string

const (
	PowerUpArmor  PowerUpKind = "armor"
	PowerUpAttack PowerUpKind = "attack"
	PowerUpSpeed  PowerUpKind = "speed"
)

// PowerUpKinds is the sampling order used when spawning power-ups.
var PowerUpKinds = []PowerUpKind{PowerUpArmor, PowerUpAttack, PowerUpSpeed}

const (
	pickupSize    = 30
	powerUpFrames = 300
)

// floater bobs a pickup around its anchor.
type floater struct {
	baseY     float64
	phase     float64
	amplitude float64
}

func (f *floater) tick(r *common.Rect) {
	f.phase += 0.08
	r.Y = f.baseY + math.Sin(f.phase)*f.amplitude
}

// HealthPickup restores health once when touched.
type HealthPickup struct {
	Rect      common.Rect
	Amount    float64
	Collected bool
	Sprite    image.Image

	float floater
}

func NewHealthPickup(x, y, amount float64, art Art) *HealthPickup {
	return &HealthPickup{
		Rect:   common.NewRect(x, y, pickupSize, pickupSize),
		Amount: amount,
		Sprite: lookup(art, "pickups/health.png"),
		float:  floater{baseY: y, phase: float64(int(x)%7) * 0.3, amplitude: 4},
	}
}

func (h *HealthPickup) Update() {
	if h.Collected {
		return
	}
	h.float.tick(&h.Rect)
}

// Collect marks the pickup used and returns its heal amount.
func (h *HealthPickup) Collect() float64 {
	if h.Collected {
		return 0
	}
	h.Collected = true
	return h.Amount
}

// PowerUp grants a timed effect when touched.
type PowerUp struct {
	Rect      common.Rect
	Kind      PowerUpKind
	Frames    int
	Collected bool
	Sprite    image.Image

	float floater
}

func NewPowerUp(kind PowerUpKind, x, y float64, art Art) *PowerUp {
	return &PowerUp{
		Rect:   common.NewRect(x, y, pickupSize, pickupSize),
		Kind:   kind,
		Frames: powerUpFrames,
		Sprite: lookup(art, "pickups/"+string(kind)+".png"),
		float:  floater{baseY: y, phase: float64(int(y)%5) * 0.4, amplitude: 5},
	}
}

func (p *PowerUp) Update() {
	if p.Collected {
		return
	}
	p.float.tick(&p.Rect)
}

func (p *PowerUp) Collect() {
	p.Collected = true
}
