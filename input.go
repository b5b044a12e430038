package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/stickerclimb/system"
)

var (
	leftKeys   = []ebiten.Key{ebiten.KeyArrowLeft}
	rightKeys  = []ebiten.Key{ebiten.KeyArrowRight}
	jumpKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}
	downKeys   = []ebiten.Key{ebiten.KeyArrowDown}
	attackKeys = []ebiten.Key{ebiten.KeyA, ebiten.KeyJ}
	pauseKeys  = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
)

// Input polls the keyboard once per tick.
type Input struct {
	frame system.Input
	pause bool
}

func NewInput() *Input {
	return &Input{}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) Update() {
	f := &i.frame
	f.Reset()

	f.MoveX = 0
	if anyPressed(leftKeys) {
		f.MoveX--
	}
	if anyPressed(rightKeys) {
		f.MoveX++
	}

	f.JumpPressed = anyJustPressed(jumpKeys)
	f.DownHeld = anyPressed(downKeys)
	f.AttackPressed = anyJustPressed(attackKeys)

	f.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	f.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	f.Continue = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	i.pause = anyJustPressed(pauseKeys)
}

// Frame returns the intent for the current tick.
func (i *Input) Frame() system.Input {
	return i.frame
}

// PausePressed reports whether the pause toggle was hit this tick.
func (i *Input) PausePressed() bool {
	return i.pause
}
