package main

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/stickerclimb/assets"
	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/prefabs"
	"github.com/milk9111/stickerclimb/render"
	"github.com/milk9111/stickerclimb/system"
)

// Game adapts a system.Session to ebiten's loop.
type Game struct {
	session  *system.Session
	renderer *render.Renderer
	input    *Input
	logger   *log.Logger

	ui     *ebitenui.UI
	paused bool
	quit   bool

	watcher *prefabs.Watcher
	victory *audio.Player
	played  bool
}

func NewGame(session *system.Session, repo *assets.Repository, spec *prefabs.GameSpec, logger *log.Logger, debug bool) *Game {
	g := &Game{
		session:  session,
		renderer: render.New(repo),
		input:    NewInput(),
		logger:   logger,
	}
	g.renderer.Debug = debug
	g.ui = NewPauseUI(g)

	if p, err := loadSound(repo, spec, "victory"); err != nil {
		logger.Warn("victory music unavailable", "error", err)
	} else {
		g.victory = p
	}

	if debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", "error", err)
		} else {
			g.watcher = w
			logger.Debug("watching prefabs for changes")
		}
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	g.reload()

	if g.input.PausePressed() && g.session.State() == system.Playing {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	if err := g.session.Update(g.input.Frame()); err != nil {
		return err
	}
	if g.session.Quit() || g.quit {
		return ebiten.Termination
	}

	switch g.session.State() {
	case system.Victory:
		if !g.played && g.victory != nil {
			if err := g.victory.Rewind(); err != nil {
				g.logger.Warn("victory music rewind failed", "error", err)
			}
			g.victory.Play()
		}
		g.played = true
	case system.Playing:
		g.played = false
	}
	return nil
}

// reload applies prefab edits picked up by the watcher without blocking.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher error", "error", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSpec:
		spec, err := prefabs.LoadGameSpec(flagConfig)
		if err != nil {
			g.logger.Warn("game spec reload failed", "path", change.Path, "error", err)
			return
		}
		g.session.ApplySpec(spec)
	case prefabs.ChangeScript:
		name := strings.TrimSuffix(filepath.Base(change.Path), filepath.Ext(change.Path))
		if err := g.session.ReloadScript(name); err != nil {
			g.logger.Warn("script reload failed", "script", name, "error", err)
			return
		}
		g.logger.Info("script reloaded", "script", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
