package levelgen

import (
	"testing"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rects(ps []*obj.Platform) []common.Rect {
	out := make([]common.Rect, len(ps))
	for i, p := range ps {
		out[i] = p.Rect
	}
	return out
}

func TestGenerateTerrainDeterministic(t *testing.T) {
	tests := []struct {
		name       string
		seed       int64
		difficulty int
		boss       bool
	}{
		{name: "level 1", seed: 1001, difficulty: 1},
		{name: "hard", seed: 77, difficulty: 3},
		{name: "negative seed", seed: -12, difficulty: 2},
		{name: "boss", seed: 5, difficulty: 2, boss: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := GenerateTerrain(tc.seed, tc.difficulty, tc.boss)
			b := GenerateTerrain(tc.seed, tc.difficulty, tc.boss)
			require.Equal(t, len(a), len(b))
			assert.Equal(t, rects(a), rects(b))
		})
	}
}

func TestGenerateTerrainShape(t *testing.T) {
	for d := 1; d <= 3; d++ {
		ps := GenerateTerrain(int64(d*31), d, false)
		require.Greater(t, len(ps), 2)

		ground := ps[0]
		assert.True(t, ground.Ground)
		assert.Equal(t, common.NewRect(0, common.LevelHeight-40, common.ScreenWidth, 40), ground.Rect)

		minW, maxW := float64(100+d*20), float64(200+d*30)
		prevY := float64(common.LevelHeight)
		for _, p := range ps[1:] {
			assert.GreaterOrEqual(t, p.Rect.W, minW)
			assert.LessOrEqual(t, p.Rect.W, maxW)
			assert.GreaterOrEqual(t, p.Rect.Left(), 0.0)
			assert.LessOrEqual(t, p.Rect.Right(), float64(common.ScreenWidth))
			assert.Greater(t, p.Rect.Top(), 100.0)
			assert.Less(t, p.Rect.Top(), prevY, "platforms climb upward")
			prevY = p.Rect.Top()
		}
	}
}

func TestGenerateTerrainSeedsDiffer(t *testing.T) {
	a := GenerateTerrain(1, 1, false)
	b := GenerateTerrain(2, 1, false)
	assert.NotEqual(t, rects(a), rects(b))
}

func TestBossArenaSymmetric(t *testing.T) {
	ps := GenerateTerrain(123, 1, true)
	require.Len(t, ps, 5)
	assert.Equal(t, rects(ps), rects(GenerateTerrain(999, 3, true)), "boss arena ignores the seed")

	for i := 1; i < len(ps); i += 2 {
		l, r := ps[i].Rect, ps[i+1].Rect
		assert.Equal(t, l.Y, r.Y)
		assert.Equal(t, l.W, r.W)
		assert.InDelta(t, common.ScreenWidth-l.Right(), r.Left(), 1e-9)
	}
	top := Topmost(ps)
	assert.Equal(t, float64(common.LevelHeight-320), top.Rect.Top())
}

func TestGenerateObstaclesDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 100, 4242, -3} {
		a := GenerateObstacles(seed, 6, 2)
		b := GenerateObstacles(seed, 6, 2)
		require.Equal(t, len(a), len(b))
		for i := range a {
			assert.Equal(t, a[i].Kind, b[i].Kind)
			assert.Equal(t, a[i].Rect, b[i].Rect)
			assert.Equal(t, a[i].Damage, b[i].Damage)
		}
	}
}

func TestGenerateObstaclesBounds(t *testing.T) {
	obs := GenerateObstacles(9, 50, 1)
	require.NotEmpty(t, obs)
	for _, o := range obs {
		assert.GreaterOrEqual(t, o.Rect.Left(), 0.0)
		assert.LessOrEqual(t, o.Rect.Right(), float64(common.ScreenWidth))
		assert.GreaterOrEqual(t, o.Rect.Top(), float64(obstacleMinY))
		assert.LessOrEqual(t, o.Rect.Bottom(), float64(common.LevelHeight-obstacleFloor))
	}
	assert.Empty(t, GenerateObstacles(9, 0, 1))
}

func TestGenerateObstaclesCap(t *testing.T) {
	// a spike row can add extra entries, so count the rows instead
	obs := GenerateObstacles(31337, 40, 1)
	entries := 0
	for i, o := range obs {
		if o.Kind == obj.ObstacleSpike && i > 0 && obs[i-1].Kind == obj.ObstacleSpike &&
			obs[i-1].Rect.Y == o.Rect.Y && obs[i-1].Rect.Right() == o.Rect.Left() {
			continue
		}
		entries++
	}
	assert.LessOrEqual(t, entries, maxObstacles)
}

func TestDifficultyScalesDamage(t *testing.T) {
	easy := GenerateObstacles(55, 10, 1)
	hard := GenerateObstacles(55, 10, 3)
	require.Equal(t, len(easy), len(hard))
	for i := range easy {
		switch {
		case easy[i].Damage > 0:
			assert.InDelta(t, easy[i].Damage*1.5, hard[i].Damage, 1e-9)
		default:
			assert.Equal(t, easy[i].Damage, hard[i].Damage)
		}
	}
}
