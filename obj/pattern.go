package obj

import (
	"math"
	"strings"

	"github.com/milk9111/stickerclimb/common"
)

const (
	PatternPatrol = "patrol"
	PatternChase  = "chase"
	PatternSine   = "sine"
	// PatternScriptPrefix marks a pattern backed by a tengo script, e.g. "script:zigzag".
	PatternScriptPrefix = "script:"
)

// movementPattern is the interface each enemy movement pattern implements.
type movementPattern interface {
	Name() string
	Move(e *Enemy, ctx *Context)
}

type patrolPattern struct{}

func (patrolPattern) Name() string { return PatternPatrol }
func (patrolPattern) Move(e *Enemy, _ *Context) {
	e.Rect.X += e.VelX
	bounce(e)
}

type chasePattern struct{}

func (chasePattern) Name() string { return PatternChase }
func (chasePattern) Move(e *Enemy, ctx *Context) {
	if ctx == nil {
		return
	}
	dx := ctx.Player.CenterX() - e.Rect.CenterX()
	step := math.Min(e.Speed, math.Abs(dx))
	e.Rect.X += common.Sign(dx) * step
}

type sinePattern struct{}

func (sinePattern) Name() string { return PatternSine }
func (sinePattern) Move(e *Enemy, _ *Context) {
	e.sinePhase += 0.05
	e.Rect.Y += math.Sin(e.sinePhase) * 2
	e.Rect.X += e.VelX
	bounce(e)
}

// singletons for the stateless patterns
var (
	movePatrol movementPattern = &patrolPattern{}
	moveChase  movementPattern = &chasePattern{}
	moveSine   movementPattern = &sinePattern{}
)

// bounce clamps the enemy inside its bounds and points VelX back inward.
func bounce(e *Enemy) {
	speed := math.Abs(e.VelX)
	if e.Rect.Left() < e.Left {
		e.Rect.X = e.Left
		e.VelX = speed
	} else if e.Rect.Right() > e.Right {
		e.Rect.SetRight(e.Right)
		e.VelX = -speed
	}
}

// patternFor resolves a pattern tag. Unknown tags and scripts that failed to
// load fall back to patrol.
func patternFor(name string, script *ScriptPattern) movementPattern {
	switch {
	case name == PatternChase:
		return moveChase
	case name == PatternSine:
		return moveSine
	case strings.HasPrefix(name, PatternScriptPrefix) && script != nil:
		return script.clone()
	}
	return movePatrol
}
