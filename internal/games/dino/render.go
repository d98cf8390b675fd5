package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dinorun/internal/core"
)

// Glyphs used by the renderer.
const (
	DinoBody     = '█'
	DinoEye      = '◆'
	DinoLeg1     = '╱'
	DinoLeg2     = '╲'
	ObstacleChar = '▓'
	CloudChar    = '░'
	DustChar     = '·'
	GroundChar   = '═'
)

// hudRows is the number of rows above the field.
const hudRows = 1

// viewport maps world units to screen cells.
type viewport struct {
	scaleX, scaleY float64
}

func newViewport(w *World, dst *core.Screen) viewport {
	field := w.Config().Field
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		scaleX: float64(dst.Width()) / field.Width,
		scaleY: float64(rows) / field.Height,
	}
}

// cells converts a world box to a screen box at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.scaleX))
	y0 := int(math.Floor(r.Y*v.scaleY)) + hudRows
	x1 := int(math.Ceil(r.Right() * v.scaleX))
	y1 := int(math.Ceil(r.Bottom()*v.scaleY)) + hudRows
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func (v viewport) point(x, y float64) (int, int) {
	return core.Round(x * v.scaleX), core.Round(y*v.scaleY) + hudRows
}

// Render draws the world and HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w := g.world
	vp := newViewport(w, dst)

	for _, c := range w.Clouds() {
		g.drawCloud(dst, vp, c)
	}

	groundRow := vp.cells(core.NewRectF(0, w.GroundY(), 1, 1)).Y
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGray)
	}

	for _, o := range w.Obstacles() {
		dst.DrawRect(vp.cells(o.Rect()), ObstacleChar, core.ColorOrange)
	}

	for _, p := range w.Particles() {
		x, y := vp.point(p.X, p.Y)
		if y < groundRow {
			dst.SetColored(x, y, DustChar, core.ColorGray)
		}
	}

	g.drawDino(dst, vp)

	state := g.State()
	hud := fmt.Sprintf(" Score: %d  Level: %d ", state.Score, state.Level)
	dst.DrawTextColored(1, 0, hud, core.ColorYellow)
	best := fmt.Sprintf(" Best: %d ", state.Best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorCyan)

	switch {
	case state.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Level: %d", state.Score, state.Level))
	case state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawDino fills the actor box and adds an eye and animated legs when the
// box is big enough to show them.
func (g *Game) drawDino(dst *core.Screen, vp viewport) {
	a := g.world.Actor()
	r := vp.cells(a.Rect())
	dst.DrawRect(r, DinoBody, core.ColorGreen)

	if r.W < 2 || r.H < 2 {
		return
	}
	dst.SetColored(r.Right()-1, r.Y, DinoEye, core.ColorWhite)

	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, legs, ' ', core.ColorDefault)
	}
	switch {
	case !a.Grounded:
		dst.SetColored(r.X, legs, DinoLeg1, core.ColorGreen)
		dst.SetColored(r.X+1, legs, DinoLeg2, core.ColorGreen)
	case g.legFrame < 5:
		dst.SetColored(r.X, legs, DinoLeg1, core.ColorGreen)
		dst.SetColored(r.Right()-1, legs, DinoLeg2, core.ColorGreen)
	default:
		dst.SetColored(r.X+1, legs, DinoLeg1, core.ColorGreen)
		dst.SetColored(r.Right()-1, legs, DinoLeg2, core.ColorGreen)
	}
}

func (g *Game) drawCloud(dst *core.Screen, vp viewport, c Cloud) {
	width := g.cfg.Decor.CloudWidth
	r := vp.cells(core.NewRectF(c.X, c.Y-20, width, 25))
	dst.DrawRect(r, CloudChar, core.ColorWhite)
}

// drawCenteredMessage draws a boxed two-line message in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
