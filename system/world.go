package system

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/levelgen"
	"github.com/milk9111/stickerclimb/obj"
	"github.com/milk9111/stickerclimb/prefabs"
)

const (
	minObstacles = 4
	maxObstacles = 6
)

// World owns everything that lives inside one level. It is rebuilt from
// scratch on every level transition.
type World struct {
	Level      int
	Difficulty int
	BossLevel  bool
	Name       string
	Background string
	Sky        color.Color

	Collision *obj.CollisionWorld
	Platforms []*obj.Platform
	Obstacles []*obj.Obstacle

	Player      *obj.Player
	Hostiles    []obj.Hostile
	Boss        *obj.Boss
	Projectiles []*obj.Projectile
	Attacks     []*obj.Attack

	HealthPickups []*obj.HealthPickup
	PowerUps      []*obj.PowerUp
	Door          *obj.Door
	Treasure      *obj.Treasure

	// Defeated latches once every hostile is gone.
	Defeated bool
	// Attacking is how many hostiles dealt contact damage this frame.
	Attacking int
}

// worldOptions carries the per-session inputs a level build needs.
type worldOptions struct {
	spec    *prefabs.GameSpec
	art     obj.Art
	scripts map[string]*obj.ScriptPattern
	onPhase func(from, to int)
}

// BuildWorld generates a level from the run seed. Terrain uses seed+level,
// obstacles seed+100*level, and all other spawns seed+1000*level, so a seed
// reproduces a whole run.
func BuildWorld(level int, seed int64, opts worldOptions) (*World, error) {
	if level < 1 || level > common.TotalLevels {
		return nil, fmt.Errorf("system: level %d out of range 1..%d", level, common.TotalLevels)
	}
	if opts.spec == nil {
		return nil, fmt.Errorf("system: build level %d: nil game spec", level)
	}

	w := &World{
		Level:      level,
		Difficulty: common.Difficulty(level),
		BossLevel:  level == common.BossLevel,
		Background: common.LevelBackgrounds[level],
		Sky:        common.LevelSkyColors[(level-1)%len(common.LevelSkyColors)],
	}
	if ls, ok := opts.spec.Level(level); ok {
		w.Name = ls.Name
		if ls.Background != "" {
			w.Background = ls.Background
		}
		if ls.Sky != nil && ls.Sky.Color != nil {
			w.Sky = ls.Sky.Color
		}
	}
	if w.Name == "" {
		w.Name = fmt.Sprintf("Level %d", level)
	}

	w.Platforms = levelgen.GenerateTerrain(seed+int64(level), w.Difficulty, w.BossLevel, levelgen.WithArt(opts.art))
	w.Collision = obj.NewCollisionWorld(w.Platforms)

	rng := rand.New(rand.NewSource(seed + 1000*int64(level)))

	if !w.BossLevel {
		count := minObstacles + rng.Intn(maxObstacles-minObstacles+1)
		w.Obstacles = levelgen.GenerateObstacles(seed+100*int64(level), count, w.Difficulty, levelgen.WithArt(opts.art))
		for _, o := range w.Obstacles {
			w.Collision.AddObstacle(o)
		}
	}

	w.Player = obj.NewPlayer(common.ScreenWidth/2, common.LevelHeight-120, playerTuning(opts.spec), opts.art)

	if w.BossLevel {
		w.spawnBoss(opts)
	} else {
		w.spawnEnemies(opts)
	}
	w.spawnHealthPickups(rng, opts.art)
	w.spawnPowerUps(rng, opts.art)
	w.spawnDoor(opts.art)
	w.spawnTreasure(opts.art)
	return w, nil
}

// Context returns the view hostiles get during their update.
func (w *World) Context() *obj.Context {
	return &obj.Context{
		Player: w.Player.Rect,
		World:  w.Collision,
		Fire: func(p *obj.Projectile) {
			w.Projectiles = append(w.Projectiles, p)
		},
	}
}

// Alive returns the hostiles still standing.
func (w *World) Alive() int {
	n := 0
	for _, h := range w.Hostiles {
		if !h.Dead() {
			n++
		}
	}
	return n
}

func playerTuning(spec *prefabs.GameSpec) obj.PlayerTuning {
	t := obj.DefaultPlayerTuning
	p := spec.Player
	if p.Health > 0 {
		t.Health = p.Health
	}
	if p.MoveSpeed > 0 {
		t.MoveSpeed = p.MoveSpeed
	}
	if p.JumpSpeed > 0 {
		t.JumpSpeed = p.JumpSpeed
	}
	if p.IFrames > 0 {
		t.IFrames = p.IFrames
	}
	if p.AttackDamage > 0 {
		t.AttackDamage = p.AttackDamage
	}
	if p.AttackCooldown > 0 {
		t.AttackCooldown = p.AttackCooldown
	}
	if p.AttackFrames > 0 {
		t.AttackFrames = p.AttackFrames
	}
	return t
}

func bossTuning(spec *prefabs.GameSpec) obj.BossTuning {
	t := obj.DefaultBossTuning
	if spec.Boss.Health > 0 {
		t.Health = spec.Boss.Health
	}
	if spec.Boss.Speed > 0 {
		t.Speed = spec.Boss.Speed
	}
	if spec.Boss.MeleeDamage > 0 {
		t.MeleeDamage = spec.Boss.MeleeDamage
	}
	return t
}
