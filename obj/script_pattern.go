package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const moveDispatchScript = `
__result = move(__input, __state)
`

// ScriptPattern drives an enemy from a tengo script. The script must define
// move(inp, state) returning [dx, dy]. inp carries frame, x, y,
// player_x, player_y, speed, left and right; state is a map kept per enemy.
type ScriptPattern struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool

	// OnError is called once when a clone's script fails at runtime.
	OnError func(name string, err error)
}

// NewScriptPattern compiles src once. Enemies receive clones.
func NewScriptPattern(name string, src []byte) (*ScriptPattern, error) {
	full := string(src) + "\n" + moveDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__input", map[string]interface{}{})
	_ = script.Add("__state", map[string]interface{}{})
	_ = script.Add("__result", []interface{}{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", name, err)
	}
	return &ScriptPattern{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *ScriptPattern) clone() *ScriptPattern {
	return &ScriptPattern{
		name:     s.name,
		compiled: s.compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		OnError:  s.OnError,
	}
}

func (s *ScriptPattern) Name() string {
	return PatternScriptPrefix + s.name
}

// Step runs the script once and returns the displacement it produced.
func (s *ScriptPattern) Step(e *Enemy, ctx *Context) (float64, float64, error) {
	input := map[string]interface{}{
		"frame":    e.frame,
		"x":        e.Rect.X,
		"y":        e.Rect.Y,
		"speed":    e.Speed,
		"left":     e.Left,
		"right":    e.Right,
		"player_x": 0.0,
		"player_y": 0.0,
	}
	if ctx != nil {
		input["player_x"] = ctx.Player.CenterX()
		input["player_y"] = ctx.Player.CenterY()
	}
	if err := s.compiled.Set("__input", input); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, err
	}
	out := s.compiled.Get("__result").Array()
	if len(out) < 2 {
		return 0, 0, fmt.Errorf("obj: script %s: move must return [dx, dy]", s.name)
	}
	return toFloat(out[0]), toFloat(out[1]), nil
}

// Move applies the scripted displacement. A failing script permanently
// degrades the enemy to patrol movement.
func (s *ScriptPattern) Move(e *Enemy, ctx *Context) {
	if s.failed {
		movePatrol.Move(e, ctx)
		return
	}
	dx, dy, err := s.Step(e, ctx)
	if err != nil {
		s.failed = true
		if s.OnError != nil {
			s.OnError(s.name, err)
		}
		movePatrol.Move(e, ctx)
		return
	}
	e.Rect.X += dx
	e.Rect.Y += dy
	if dx != 0 {
		e.VelX = dx
	}
	bounce(e)
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
