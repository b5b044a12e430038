package obj

import (
	"image"
	"image/color"

	"github.com/milk9111/stickerclimb/common"
	"golang.org/x/image/colornames"
)

type ObstacleKind string

const (
	ObstacleSpike        ObstacleKind = "spike"
	ObstacleFire         ObstacleKind = "fire"
	ObstacleSlowTrap     ObstacleKind = "slow_trap"
	ObstacleSlippery     ObstacleKind = "slippery"
	ObstacleBlock        ObstacleKind = "block"
	ObstacleFallingRock  ObstacleKind = "falling_rock"
	ObstaclePoisonPool   ObstacleKind = "poison_pool"
	ObstacleElectric     ObstacleKind = "electric"
	ObstacleHealingPlant ObstacleKind = "healing_plant"
	ObstacleBouncy       ObstacleKind = "bouncy"
)

// ObstacleStats describes one catalog entry. Negative Damage heals.
// Hits == 0 means the obstacle cannot be destroyed by attacks.
type ObstacleStats struct {
	Damage    float64
	Blocking  bool
	SingleUse bool
	SpeedMod  float64
	Bounce    float64
	Hits      int
	Height    float64
	Color     color.Color
	Sprite    string
}

// ObstacleCatalog is ordered; the generator samples by index.
var ObstacleCatalog = []ObstacleKind{
	ObstacleSpike,
	ObstacleFire,
	ObstacleSlowTrap,
	ObstacleSlippery,
	ObstacleBlock,
	ObstacleFallingRock,
	ObstaclePoisonPool,
	ObstacleElectric,
	ObstacleHealingPlant,
	ObstacleBouncy,
}

var obstacleStats = map[ObstacleKind]ObstacleStats{
	ObstacleSpike:        {Damage: 20, SpeedMod: 1, Hits: 2, Height: 20, Color: colornames.Gray, Sprite: "obstacles/spike.png"},
	ObstacleFire:         {Damage: 10, SpeedMod: 1, Hits: 1, Height: 40, Color: colornames.Orangered, Sprite: "obstacles/fire.png"},
	ObstacleSlowTrap:     {SpeedMod: 0.5, Height: 10, Color: colornames.Sienna, Sprite: "obstacles/slow_trap.png"},
	ObstacleSlippery:     {SpeedMod: 1.6, Height: 10, Color: colornames.Lightblue, Sprite: "obstacles/slippery.png"},
	ObstacleBlock:        {Blocking: true, SpeedMod: 1, Hits: 3, Height: 40, Color: colornames.Saddlebrown, Sprite: "obstacles/block.png"},
	ObstacleFallingRock:  {Damage: 25, SingleUse: true, SpeedMod: 1, Hits: 1, Height: 40, Color: colornames.Dimgray, Sprite: "obstacles/falling_rock.png"},
	ObstaclePoisonPool:   {Damage: 5, SpeedMod: 1, Height: 15, Color: colornames.Darkolivegreen, Sprite: "obstacles/poison_pool.png"},
	ObstacleElectric:     {Damage: 15, SpeedMod: 1, Hits: 2, Height: 40, Color: colornames.Yellow, Sprite: "obstacles/electric.png"},
	ObstacleHealingPlant: {Damage: -15, SingleUse: true, SpeedMod: 1, Height: 30, Color: colornames.Limegreen, Sprite: "obstacles/healing_plant.png"},
	ObstacleBouncy:       {SpeedMod: 1, Bounce: -18, Height: 15, Color: colornames.Hotpink, Sprite: "obstacles/bouncy.png"},
}

// StatsFor returns the catalog stats for kind.
func StatsFor(kind ObstacleKind) (ObstacleStats, bool) {
	s, ok := obstacleStats[kind]
	return s, ok
}

// Obstacle is a hazard, modifier, or blocker placed in the level.
type Obstacle struct {
	Kind ObstacleKind
	Rect common.Rect
	ObstacleStats
	HitsLeft int
	Active   bool
	Sprite   image.Image
}

// NewObstacle builds an obstacle sitting with its bottom at y+ObstacleSize.
func NewObstacle(kind ObstacleKind, x, y float64, art Art) *Obstacle {
	stats, ok := StatsFor(kind)
	if !ok {
		stats = obstacleStats[ObstacleBlock]
	}
	h := stats.Height
	if h <= 0 {
		h = common.ObstacleSize
	}
	return &Obstacle{
		Kind:          kind,
		Rect:          common.NewRect(x, y+common.ObstacleSize-h, common.ObstacleSize, h),
		ObstacleStats: stats,
		HitsLeft:      stats.Hits,
		Active:        true,
		Sprite:        lookup(art, stats.Sprite),
	}
}

func (o *Obstacle) Destructible() bool {
	return o.Hits > 0
}

// Hit registers one attack hit and reports whether the obstacle was destroyed.
func (o *Obstacle) Hit() bool {
	if !o.Active || !o.Destructible() {
		return false
	}
	o.HitsLeft--
	if o.HitsLeft <= 0 {
		o.HitsLeft = 0
		o.Active = false
		return true
	}
	return false
}

// Consume removes a single-use obstacle after it has fired.
func (o *Obstacle) Consume() {
	if o.SingleUse {
		o.Active = false
	}
}
