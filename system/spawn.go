package system

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/levelgen"
	"github.com/milk9111/stickerclimb/obj"
)

const (
	pickupLift = 50

	minHealthPickups = 1
	maxHealthPickups = 3
	minHeal          = 10
	maxHeal          = 30
	minPowerUps      = 1
	maxPowerUps      = 2
)

// ledges returns the non-ground platforms ordered bottom to top.
func (w *World) ledges() []*obj.Platform {
	out := make([]*obj.Platform, 0, len(w.Platforms))
	for _, p := range w.Platforms {
		if !p.Ground {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rect.Top() > out[j].Rect.Top()
	})
	return out
}

// spawnEnemies spreads 4+difficulty enemies evenly up the platform column.
// Each patrols the extent of the platform it starts on; odd indices shoot.
func (w *World) spawnEnemies(opts worldOptions) {
	ledges := w.ledges()
	es := opts.spec.Enemies
	count := 4 + w.Difficulty
	patterns := es.Patterns
	if len(patterns) == 0 {
		patterns = []string{obj.PatternPatrol, obj.PatternChase, obj.PatternSine}
	}

	for i := 0; i < count; i++ {
		cfg := obj.EnemyConfig{
			Pattern:     patterns[i%len(patterns)],
			Speed:       es.BaseSpeed + es.SpeedPerDifficulty*float64(w.Difficulty),
			Health:      es.BaseHealth + es.HealthPerDifficulty*float64(w.Difficulty),
			MeleeDamage: es.MeleeDamage,
			Ranged:      i%2 == 1,
			Color:       common.EnemyColors[i%len(common.EnemyColors)],
		}
		if name, ok := strings.CutPrefix(cfg.Pattern, obj.PatternScriptPrefix); ok {
			cfg.Script = opts.scripts[name]
		}

		if len(ledges) == 0 {
			cfg.X = 100 + float64(i)*100
			cfg.Y = common.LevelHeight - 40 - common.EnemySize
			cfg.Left, cfg.Right = cfg.X-100, cfg.X+100
		} else {
			p := ledges[(i*len(ledges))/count]
			cfg.X = p.Rect.CenterX() - common.EnemySize/2
			cfg.Y = p.Rect.Top() - common.EnemySize
			cfg.Left, cfg.Right = p.Rect.Left(), p.Rect.Right()
			if cfg.Right-cfg.Left < common.EnemySize {
				cfg.Left, cfg.Right = cfg.X, cfg.X+common.EnemySize
			}
		}
		w.Hostiles = append(w.Hostiles, obj.NewEnemy(cfg, opts.art))
	}
}

func (w *World) spawnBoss(opts worldOptions) {
	b := obj.NewBoss(common.ScreenWidth/2-common.BossSize/2, common.LevelHeight-300, bossTuning(opts.spec), opts.art)
	b.OnPhaseChange = opts.onPhase
	w.Boss = b
	w.Hostiles = append(w.Hostiles, b)
}

// pickupSpot picks a point above a random ledge, or above the ground when
// the level has none.
func (w *World) pickupSpot(rng *rand.Rand) (float64, float64) {
	ledges := w.ledges()
	if len(ledges) == 0 {
		x := float64(100 + rng.Intn(common.ScreenWidth-200))
		return x, common.LevelHeight - 40 - pickupLift
	}
	p := ledges[rng.Intn(len(ledges))]
	span := int(math.Max(1, p.Rect.W-30))
	x := p.Rect.Left() + float64(rng.Intn(span))
	return x, p.Rect.Top() - pickupLift
}

func (w *World) spawnHealthPickups(rng *rand.Rand, art obj.Art) {
	n := minHealthPickups + rng.Intn(maxHealthPickups-minHealthPickups+1)
	for i := 0; i < n; i++ {
		x, y := w.pickupSpot(rng)
		amount := float64(minHeal + rng.Intn(maxHeal-minHeal+1))
		w.HealthPickups = append(w.HealthPickups, obj.NewHealthPickup(x, y, amount, art))
	}
}

func (w *World) spawnPowerUps(rng *rand.Rand, art obj.Art) {
	n := minPowerUps + rng.Intn(maxPowerUps-minPowerUps+1)
	for i := 0; i < n; i++ {
		x, y := w.pickupSpot(rng)
		kind := obj.PowerUpKinds[rng.Intn(len(obj.PowerUpKinds))]
		w.PowerUps = append(w.PowerUps, obj.NewPowerUp(kind, x, y, art))
	}
}

func (w *World) spawnDoor(art obj.Art) {
	top := levelgen.Topmost(w.Platforms)
	if top == nil {
		return
	}
	w.Door = obj.NewDoorOn(top, art)
}

// spawnTreasure puts the level's sticker on the ledge nearest mid-level.
func (w *World) spawnTreasure(art obj.Art) {
	x := float64(common.ScreenWidth/2) - 20
	y := float64(common.LevelHeight/2) - 40
	best := math.Inf(1)
	for _, p := range w.ledges() {
		if d := math.Abs(p.Rect.Top() - common.LevelHeight/2); d < best {
			best = d
			x = p.Rect.CenterX() - 20
			y = p.Rect.Top() - 40
		}
	}
	w.Treasure = obj.NewTreasure(x, y, w.Level-1, art)
}
