// Package render draws a running session with ebiten. Everything it reads
// comes from system and obj; it never mutates game state.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/obj"
	"github.com/milk9111/stickerclimb/system"
)

const (
	backgroundDepth = 0.5
	healthBarHeight = 5
)

var (
	groundColor   color.Color = colornames.Saddlebrown
	platformColor color.Color = colornames.Forestgreen
	doorLocked    color.Color = colornames.Sienna
	doorOpen      color.Color = colornames.Lemonchiffon
	treasureColor color.Color = colornames.Goldenrod
	healthColor   color.Color = colornames.Crimson
	shotColor     color.Color = colornames.Orangered
	attackColor               = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
	overlayColor              = color.NRGBA{A: 0xb4}
)

var powerUpColors = map[obj.PowerUpKind]color.Color{
	obj.PowerUpArmor:  colornames.Steelblue,
	obj.PowerUpAttack: colornames.Orangered,
	obj.PowerUpSpeed:  colornames.Springgreen,
}

// Renderer converts decoded art to GPU images once and draws each frame.
type Renderer struct {
	art   obj.Art
	cache map[image.Image]*ebiten.Image
	face  text.Face

	// Debug adds the camera and player state readout.
	Debug bool
}

func New(art obj.Art) *Renderer {
	return &Renderer{
		art:   art,
		cache: make(map[image.Image]*ebiten.Image),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *Renderer) ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := r.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	r.cache[img] = e
	return e
}

// Draw renders the whole frame for s.
func (r *Renderer) Draw(screen *ebiten.Image, s *system.Session) {
	w := s.World()
	cam := s.Camera()

	r.drawBackground(screen, w, cam)

	for _, p := range w.Platforms {
		if !cam.Visible(p.Rect) {
			continue
		}
		fill := platformColor
		if p.Ground {
			fill = groundColor
		}
		r.drawSprite(screen, cam.ToScreen(p.Rect), p.Sprite, fill, nil)
	}

	for _, o := range w.Obstacles {
		if o.Active && cam.Visible(o.Rect) {
			r.drawSprite(screen, cam.ToScreen(o.Rect), o.Sprite, o.Color, nil)
		}
	}

	for _, h := range w.HealthPickups {
		if !h.Collected && cam.Visible(h.Rect) {
			r.drawSprite(screen, cam.ToScreen(h.Rect), h.Sprite, healthColor, nil)
		}
	}
	for _, p := range w.PowerUps {
		if !p.Collected && cam.Visible(p.Rect) {
			r.drawSprite(screen, cam.ToScreen(p.Rect), p.Sprite, powerUpColors[p.Kind], nil)
		}
	}

	if t := w.Treasure; t != nil && t.Collectable() && cam.Visible(t.Rect) {
		r.drawSprite(screen, cam.ToScreen(t.Rect), t.Sprite, treasureColor, nil)
	}

	if d := w.Door; d != nil && cam.Visible(d.Rect) {
		img, fill := d.Locked, doorLocked
		if d.Unlocked {
			img, fill = d.Open, doorOpen
		}
		r.drawSprite(screen, cam.ToScreen(d.Rect), img, fill, nil)
	}

	for _, h := range w.Hostiles {
		if h.Dead() || !cam.Visible(h.Bounds()) {
			continue
		}
		sr := cam.ToScreen(h.Bounds())
		switch e := h.(type) {
		case *obj.Enemy:
			r.drawSprite(screen, sr, e.Sprite, e.Color, e.Color)
		case *obj.Boss:
			r.drawSprite(screen, sr, e.Sprite, common.Brown, nil)
		}
		r.drawHealthBar(screen, sr, h.HealthFraction())
	}

	for _, p := range w.Projectiles {
		if !cam.Visible(p.Rect) {
			continue
		}
		sr := cam.ToScreen(p.Rect)
		vector.DrawFilledCircle(screen, float32(sr.CenterX()), float32(sr.CenterY()), float32(sr.W/2), shotColor, true)
	}

	for _, a := range w.Attacks {
		sr := cam.ToScreen(a.Rect)
		vector.FillRect(screen, float32(sr.X), float32(sr.Y), float32(sr.W), float32(sr.H), attackColor, false)
	}

	r.drawPlayer(screen, w.Player, cam)
	r.drawHUD(screen, s)
	r.drawOverlay(screen, s)
}

// drawBackground fills the sky and tiles the level art with vertical parallax.
func (r *Renderer) drawBackground(screen *ebiten.Image, w *system.World, cam *obj.Camera) {
	screen.Fill(w.Sky)
	if r.art == nil || w.Background == "" {
		return
	}
	bg := r.ebitenImage(r.art.Lookup(w.Background))
	if bg == nil {
		return
	}
	b := bg.Bounds()
	sx := float64(common.ScreenWidth) / float64(b.Dx())
	sy := float64(common.ScreenHeight) / float64(b.Dy())
	scroll := cam.ParallaxScroll(backgroundDepth)
	for _, y := range []float64{-scroll, common.ScreenHeight - scroll} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(0, y)
		screen.DrawImage(bg, op)
	}
}

// drawSprite stretches img over the screen rect, or fills it when there is no art.
func (r *Renderer) drawSprite(screen *ebiten.Image, sr common.Rect, img image.Image, fill, tint color.Color) {
	e := r.ebitenImage(img)
	if e == nil {
		if fill == nil {
			fill = common.Gray
		}
		vector.FillRect(screen, float32(sr.X), float32(sr.Y), float32(sr.W), float32(sr.H), fill, false)
		return
	}
	b := e.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sr.W/float64(b.Dx()), sr.H/float64(b.Dy()))
	op.GeoM.Translate(sr.X, sr.Y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	screen.DrawImage(e, op)
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, sr common.Rect, frac float64) {
	frac = common.Clamp(frac, 0, 1)
	y := float32(sr.Y - healthBarHeight - 3)
	vector.FillRect(screen, float32(sr.X), y, float32(sr.W), healthBarHeight, common.Red, false)
	vector.FillRect(screen, float32(sr.X), y, float32(sr.W*frac), healthBarHeight, common.Green, false)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *obj.Player, cam *obj.Camera) {
	// Blink while hurt.
	if p.DamageFlash > 0 && (p.DamageFlash/4)%2 == 0 {
		return
	}
	sr := cam.ToScreen(p.Rect)
	var tint color.Color
	if p.HealFlash > 0 {
		tint = colornames.Palegreen
	}
	r.drawSprite(screen, sr, p.Sprite, common.Yellow, tint)
	if p.PowerUpFrames(obj.PowerUpArmor) > 0 {
		vector.StrokeRect(screen, float32(sr.X-2), float32(sr.Y-2), float32(sr.W+4), float32(sr.H+4), 2, powerUpColors[obj.PowerUpArmor], false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *system.Session) {
	w := s.World()
	p := w.Player

	vector.FillRect(screen, 10, 10, 200, 16, common.Black, false)
	vector.FillRect(screen, 10, 10, float32(200*p.Health.Fraction()), 16, common.Red, false)
	vector.StrokeRect(screen, 10, 10, 200, 16, 1, common.White, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f", p.Health.Current, p.Health.Max), 14, 11)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d/%d)", w.Name, w.Level, common.TotalLevels), 10, 32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Stickers: %d   Seed: %d", len(s.Stickers()), s.Seed()), 10, 48)
	if !w.Defeated {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies left: %d", w.Alive()), 10, 64)
	}

	y := 80
	for _, kind := range obj.PowerUpKinds {
		if f := p.PowerUpFrames(kind); f > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.1fs", kind, float64(f)/common.FPS), 10, y)
			y += 16
		}
	}

	if b := w.Boss; b != nil && !b.Dead() {
		const bw = 400
		x := float32(common.ScreenWidth-bw) / 2
		vector.FillRect(screen, x, 10, bw, 12, common.Black, false)
		vector.FillRect(screen, x, 10, float32(bw*b.HealthFraction()), 12, colornames.Darkred, false)
		r.drawText(screen, fmt.Sprintf("Scary Bear - phase %d", b.Phase()), common.ScreenWidth/2, 28, common.White)
	}

	if d := w.Door; d != nil && d.Banner > 0 {
		r.drawText(screen, "The door is open!", common.ScreenWidth/2, 80, common.Yellow)
	}

	if r.Debug {
		ebitenutil.DebugPrintAt(screen, s.Camera().Info(), 10, common.ScreenHeight-36)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %s  vy: %.1f  fps: %.1f", p.StateName(), p.VelY, ebiten.ActualFPS()), 10, common.ScreenHeight-20)
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s *system.Session) {
	var title, hint string
	switch s.State() {
	case system.GameOver:
		title, hint = "GAME OVER", "R to restart, Q to quit"
	case system.LevelComplete:
		title, hint = "LEVEL COMPLETE", "SPACE to continue"
	case system.Victory:
		title = "VICTORY!"
		hint = fmt.Sprintf("Stickers collected: %d  -  R to play again, Q to quit", len(s.Stickers()))
	default:
		return
	}
	vector.FillRect(screen, 0, 0, common.ScreenWidth, common.ScreenHeight, overlayColor, false)
	r.drawText(screen, title, common.ScreenWidth/2, common.ScreenHeight/2-20, common.White)
	r.drawText(screen, hint, common.ScreenWidth/2, common.ScreenHeight/2+10, common.White)
}

func (r *Renderer) drawText(screen *ebiten.Image, msg string, cx, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, r.face, op)
}
