// Package levelgen builds seeded level layouts. The same seed and difficulty
// always produce the same platforms and obstacles.
package levelgen

import (
	"math/rand"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/obj"
)

type config struct {
	art obj.Art
}

// Option customizes generation.
type Option func(*config)

// WithArt attaches sprites to generated platforms and obstacles.
func WithArt(art obj.Art) Option {
	return func(c *config) { c.art = art }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// randRange returns an integer in [lo, hi], both inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 3 {
		return 3
	}
	return d
}

// bossArena is mirrored about the screen centre; only the left half is listed.
var bossArena = []struct{ x, y, w float64 }{
	{x: 80, y: common.LevelHeight - 170, w: 160},
	{x: 200, y: common.LevelHeight - 320, w: 140},
}

// GenerateTerrain returns the platforms for one level. The ground is always
// first. Boss levels use a fixed symmetric arena and consume no randomness.
func GenerateTerrain(seed int64, difficulty int, isBoss bool, opts ...Option) []*obj.Platform {
	cfg := newConfig(opts)
	platforms := []*obj.Platform{obj.NewGround(cfg.art)}

	if isBoss {
		for _, p := range bossArena {
			mirrored := common.ScreenWidth - p.x - p.w
			platforms = append(platforms,
				obj.NewPlatform(p.x, p.y, p.w, obj.PlatformHeight, cfg.art),
				obj.NewPlatform(mirrored, p.y, p.w, obj.PlatformHeight, cfg.art),
			)
		}
		return platforms
	}

	d := clampDifficulty(difficulty)
	minGap, maxGap := 80-d*20, 150-d*30
	minW, maxW := 100+d*20, 200+d*30

	rng := rand.New(rand.NewSource(seed))
	y := common.LevelHeight - 150
	x := randRange(rng, 50, common.ScreenWidth-150)
	for y > 100 {
		w := randRange(rng, minW, maxW)
		x = int(common.Clamp(float64(x+randRange(rng, -100, 100)), 0, float64(common.ScreenWidth-w)))
		platforms = append(platforms, obj.NewPlatform(float64(x), float64(y), float64(w), obj.PlatformHeight, cfg.art))
		y -= randRange(rng, minGap, maxGap)
	}
	return platforms
}

// Topmost returns the platform with the smallest Y.
func Topmost(platforms []*obj.Platform) *obj.Platform {
	var top *obj.Platform
	for _, p := range platforms {
		if top == nil || p.Rect.Top() < top.Rect.Top() {
			top = p
		}
	}
	return top
}
