package obj

import (
	"math"
	"testing"

	"github.com/milk9111/stickerclimb/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossPhase(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{pct: 1.00, want: 1},
		{pct: 0.50, want: 1},
		{pct: 0.49, want: 2},
		{pct: 0.25, want: 2},
		{pct: 0.24, want: 3},
		{pct: 0.00, want: 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BossPhase(tc.pct*100, 100), "pct %.2f", tc.pct)
	}
}

func TestBossPhaseFollowsHealth(t *testing.T) {
	b := NewBoss(360, 2000, DefaultBossTuning, nil)
	var changes [][2]int
	b.OnPhaseChange = func(from, to int) { changes = append(changes, [2]int{from, to}) }
	ctx := &Context{Player: common.NewRect(100, 2290, 50, 70)}

	b.Update(ctx)
	assert.Equal(t, 1, b.Phase())

	b.Health.SetCurrentHP(150 * 0.49)
	b.Update(ctx)
	assert.Equal(t, 2, b.Phase())

	b.Health.SetCurrentHP(150 * 0.24)
	b.Update(ctx)
	assert.Equal(t, 3, b.Phase())

	b.Health.SetCurrentHP(150)
	b.Update(ctx)
	assert.Equal(t, 1, b.Phase(), "phase is derived from health every frame")

	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 1}}, changes)
}

func TestBossVolleys(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		shots  int
		damage float64
	}{
		{name: "phase 1 single shot", health: 150, shots: 1, damage: 15},
		{name: "phase 2 burst", health: 70, shots: 2, damage: 15},
		{name: "phase 3 spread", health: 30, shots: 3, damage: 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var shots []*Projectile
			ctx := &Context{
				Player: common.NewRect(100, 2290, 50, 70),
				Fire:   func(p *Projectile) { shots = append(shots, p) },
			}
			b := NewBoss(360, 2000, DefaultBossTuning, nil)
			b.Health.SetCurrentHP(tc.health)
			b.Update(ctx)
			require.Len(t, shots, tc.shots)
			for _, s := range shots {
				assert.Equal(t, tc.damage, s.Damage)
				assert.InDelta(t, 7.0, math.Hypot(s.VelX, s.VelY), 1e-9)
			}
		})
	}
}

func TestBossStaysInArenaDuringPatrol(t *testing.T) {
	b := NewBoss(360, 2000, DefaultBossTuning, nil)
	cw := NewCollisionWorld([]*Platform{NewGround(nil)})
	ctx := &Context{Player: common.NewRect(100, 2290, 50, 70), World: cw}
	for i := 0; i < 1000; i++ {
		b.Update(ctx)
		require.GreaterOrEqual(t, b.Rect.Left(), float64(bossBoundLeft))
		require.LessOrEqual(t, b.Rect.Right(), float64(bossBoundRight))
		require.LessOrEqual(t, b.Rect.Bottom(), float64(common.LevelHeight))
	}
}

func TestBossPhaseThreeStaysOnScreen(t *testing.T) {
	for _, px := range []float64{0, common.ScreenWidth} {
		b := NewBoss(360, 2000, DefaultBossTuning, nil)
		b.Health.SetCurrentHP(b.Health.Max * 0.2)
		require.Equal(t, 3, b.Phase())

		cw := NewCollisionWorld([]*Platform{NewGround(nil)})
		ctx := &Context{Player: common.NewRect(px, 2290, 50, 70), World: cw}
		for i := 0; i < 200; i++ {
			b.Update(ctx)
			require.GreaterOrEqual(t, b.Rect.Left(), 0.0, "player x %v", px)
			require.LessOrEqual(t, b.Rect.Right(), float64(common.ScreenWidth), "player x %v", px)
		}
	}
}

func TestBossTakeDamageNoIFrames(t *testing.T) {
	b := NewBoss(360, 2000, DefaultBossTuning, nil)
	for i := 0; i < 9; i++ {
		assert.False(t, b.TakeDamage(15))
	}
	assert.True(t, b.TakeDamage(15))
	assert.True(t, b.Dead())
	assert.Equal(t, 0.0, b.HealthFraction())
}
