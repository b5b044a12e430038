package obj

import (
	"testing"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyDiesOnThirdHit(t *testing.T) {
	e := NewEnemy(EnemyConfig{X: 100, Y: 100, Pattern: PatternPatrol, Speed: 2, Health: 45}, nil)

	assert.False(t, e.TakeDamage(15))
	assert.False(t, e.Dead())
	assert.False(t, e.TakeDamage(15), "no invulnerability window between hits")
	assert.False(t, e.Dead())
	assert.True(t, e.TakeDamage(15))
	assert.True(t, e.Dead())
	assert.False(t, e.TakeDamage(15), "already dead")
}

func TestPatrolStaysInBounds(t *testing.T) {
	cw, _ := testWorld()
	e := NewEnemy(EnemyConfig{X: 300, Y: 2300, Pattern: PatternPatrol, Left: 250, Right: 400, Speed: 3, Health: 30}, nil)
	ctx := &Context{Player: common.NewRect(0, 0, 50, 70), World: cw}

	sawLeft, sawRight := false, false
	for i := 0; i < 500; i++ {
		e.Update(ctx)
		require.GreaterOrEqual(t, e.Rect.Left(), 250.0)
		require.LessOrEqual(t, e.Rect.Right(), 400.0)
		if e.VelX < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
	}
	assert.True(t, sawLeft)
	assert.True(t, sawRight)
	assert.Equal(t, 3.0, common.Abs(e.VelX), "speed magnitude never drifts")
}

func TestChaseClosesDistanceWithoutOvershoot(t *testing.T) {
	e := NewEnemy(EnemyConfig{X: 100, Y: 2320, Pattern: PatternChase, Speed: 2.5, Health: 30}, nil)
	player := common.NewRect(0, 2290, 50, 70)
	player.X = e.Rect.CenterX() + 1 - player.W/2

	ctx := &Context{Player: player, World: nil}
	e.Update(ctx)
	assert.InDelta(t, player.CenterX(), e.Rect.CenterX(), 1e-9)

	ctx.Player.X = 600
	before := e.Rect.X
	e.Update(ctx)
	assert.InDelta(t, before+2.5, e.Rect.X, 1e-9)
}

func TestChaseStaysOnScreen(t *testing.T) {
	for _, px := range []float64{0, common.ScreenWidth} {
		e := NewEnemy(EnemyConfig{X: 380, Y: 2320, Pattern: PatternChase, Speed: 3, Health: 30}, nil)
		cw := NewCollisionWorld([]*Platform{NewGround(nil)})
		ctx := &Context{Player: common.NewRect(px, 2290, 50, 70), World: cw}
		for i := 0; i < 300; i++ {
			e.Update(ctx)
			require.GreaterOrEqual(t, e.Rect.Left(), 0.0, "player x %v", px)
			require.LessOrEqual(t, e.Rect.Right(), float64(common.ScreenWidth), "player x %v", px)
		}
	}
}

func TestSinePatternMovesVertically(t *testing.T) {
	e := NewEnemy(EnemyConfig{X: 300, Y: 500, Pattern: PatternSine, Left: 0, Right: 800, Speed: 1, Health: 30}, nil)
	assert.Equal(t, PatternSine, e.Pattern())
	sinePattern{}.Move(e, nil)
	assert.Greater(t, e.Rect.Y, 500.0)
	assert.Equal(t, 301.0, e.Rect.X)
}

func TestRangedEnemyFiresOnCooldown(t *testing.T) {
	var shots []*Projectile
	ctx := &Context{
		Player: common.NewRect(600, 2290, 50, 70),
		Fire:   func(p *Projectile) { shots = append(shots, p) },
	}
	e := NewEnemy(EnemyConfig{X: 100, Y: 2320, Pattern: PatternPatrol, Speed: 0, Health: 30, Ranged: true}, nil)

	for i := 0; i < 123; i++ {
		e.Update(ctx)
	}
	require.Len(t, shots, 3)
	assert.Equal(t, 6.0, shots[0].VelX)
	assert.Equal(t, 8.0, shots[0].Damage)
}

func TestUnknownPatternFallsBackToPatrol(t *testing.T) {
	e := NewEnemy(EnemyConfig{Pattern: "script:missing", Health: 10}, nil)
	assert.Equal(t, PatternPatrol, e.Pattern())
}

func TestScriptPattern(t *testing.T) {
	src := []byte(`
move := func(inp, state) {
	n := state["n"]
	if n == undefined { n = 0 }
	state["n"] = n + 1
	return [inp.speed, -1]
}
`)
	sp, err := NewScriptPattern("drift", src)
	require.NoError(t, err)

	e := NewEnemy(EnemyConfig{X: 100, Y: 300, Pattern: "script:drift", Left: 0, Right: 800, Speed: 2, Health: 10, Script: sp}, nil)
	assert.Equal(t, "script:drift", e.Pattern())

	e.mover.Move(e, &Context{})
	assert.Equal(t, 102.0, e.Rect.X)
	assert.Equal(t, 299.0, e.Rect.Y)
}

func TestZigzagScriptMovesBySpeed(t *testing.T) {
	src, err := prefabs.LoadScript("zigzag")
	require.NoError(t, err)
	sp, err := NewScriptPattern("zigzag", src)
	require.NoError(t, err)

	var failures []string
	sp.OnError = func(name string, _ error) { failures = append(failures, name) }

	e := NewEnemy(EnemyConfig{X: 100, Y: 300, Pattern: "script:zigzag", Left: 0, Right: 800, Speed: 2, Health: 10, Script: sp}, nil)
	require.Equal(t, "script:zigzag", e.Pattern())

	e.mover.Move(e, &Context{})
	assert.Equal(t, 102.0, e.Rect.X)
	assert.Empty(t, failures)

	// Reaching the right edge turns it around.
	e.Rect.X = 760
	e.mover.Move(e, &Context{})
	assert.Equal(t, 758.0, e.Rect.X)
	assert.Empty(t, failures)
}

func TestScriptPatternRuntimeErrorFallsBack(t *testing.T) {
	sp, err := NewScriptPattern("broken", []byte(`move := func(inp, state) { return 1 }`))
	require.NoError(t, err)

	var failures []string
	sp.OnError = func(name string, _ error) { failures = append(failures, name) }

	e := NewEnemy(EnemyConfig{X: 100, Y: 300, Pattern: "script:broken", Left: 0, Right: 800, Speed: 2, Health: 10, Script: sp}, nil)
	e.mover.Move(e, nil)
	e.mover.Move(e, nil)
	assert.Equal(t, []string{"broken"}, failures)
	assert.Equal(t, 104.0, e.Rect.X)
}

func TestScriptPatternCompileError(t *testing.T) {
	_, err := NewScriptPattern("bad", []byte(`move := func(`))
	require.Error(t, err)
}
