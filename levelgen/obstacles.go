package levelgen

import (
	"math/rand"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/obj"
)

const (
	maxObstacles  = 10
	spikeRowOdds  = 0.3
	spikeRowMin   = 2
	spikeRowMax   = 4
	obstacleMinY  = 100
	obstacleFloor = 80
)

// GenerateObstacles places up to ten obstacles sampled from the catalog.
// A spike may expand into a row of adjacent spikes; the row counts once
// toward count. Harmful obstacles hit 25% harder per difficulty step.
func GenerateObstacles(seed int64, count, difficulty int, opts ...Option) []*obj.Obstacle {
	cfg := newConfig(opts)
	scale := 1 + 0.25*float64(clampDifficulty(difficulty)-1)
	if count > maxObstacles {
		count = maxObstacles
	}
	if count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]*obj.Obstacle, 0, count)
	for i := 0; i < count; i++ {
		kind := obj.ObstacleCatalog[rng.Intn(len(obj.ObstacleCatalog))]
		x := randRange(rng, 0, common.ScreenWidth-common.ObstacleSize)
		y := randRange(rng, obstacleMinY, common.LevelHeight-common.ObstacleSize-obstacleFloor)

		if kind == obj.ObstacleSpike && rng.Float64() < spikeRowOdds {
			n := randRange(rng, spikeRowMin, spikeRowMax)
			for j := 0; j < n; j++ {
				sx := x + j*common.ObstacleSize
				if sx > common.ScreenWidth-common.ObstacleSize {
					break
				}
				out = append(out, scaled(obj.NewObstacle(obj.ObstacleSpike, float64(sx), float64(y), cfg.art), scale))
			}
			continue
		}
		out = append(out, scaled(obj.NewObstacle(kind, float64(x), float64(y), cfg.art), scale))
	}
	return out
}

func scaled(o *obj.Obstacle, scale float64) *obj.Obstacle {
	if o.Damage > 0 {
		o.Damage *= scale
	}
	return o
}
