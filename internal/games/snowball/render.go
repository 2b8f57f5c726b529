package snowball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/particles"
	"github.com/vovakirdan/snowball-arcade/internal/sim"
)

// Visual characters for rendering
const (
	SnowballChar = '●'
	SnowChar     = '*'
	GroundFill   = '░'
	FlatChar     = '_'
	UphillChar   = '/'
	DownhillChar = '\\'
	SteepChar    = '|'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	cfg := g.world.Config()
	vp := core.Viewport{
		WorldW: cfg.Width,
		WorldH: cfg.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}
	offset := g.shakeOffset()

	g.drawTerrain(dst, vp, offset)
	g.drawParticles(dst, vp, offset)
	g.drawEntities(dst, vp, offset)
	g.drawPlayer(dst, vp, offset)
	g.drawHUD(dst)

	if g.messageTicks > 0 && !g.gameOver {
		dst.DrawTextCentered(dst.Height()/3, g.message, core.ColorBrightYellow)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.reason == ReasonFell {
			title = "GAME OVER - off the edge"
		}
		g.drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Snow: %d  Hits: %d  Best combo: x%d", g.stats.Collected, g.stats.Hits, g.stats.MaxCombo),
			fmt.Sprintf("Distance: %d  Top speed: %.1f", g.stats.Distance, g.stats.MaxSpeed),
			"Press R to restart",
		)
	}
}

// shakeOffset returns the column offset for camera shake after a hit.
func (g *Game) shakeOffset() int {
	if g.shake <= 0 {
		return 0
	}
	if g.shake%2 == 0 {
		return 1
	}
	return -1
}

// drawTerrain draws the surface line with slope glyphs and fills the snow
// below it.
func (g *Game) drawTerrain(dst *core.Screen, vp core.Viewport, offset int) {
	t := g.world.Terrain()
	for col := 0; col < dst.Width(); col++ {
		x := vp.ColumnX(col - offset)
		_, row := vp.ToCell(x, t.HeightAt(x))

		dst.SetColor(col, row, slopeGlyph(t.SlopeAt(x)), core.ColorBrightWhite)
		for y := row + 1; y < dst.Height(); y++ {
			dst.SetColor(col, y, GroundFill, core.ColorIce)
		}
	}
}

// slopeGlyph picks a surface character for a slope angle in radians.
// Y grows downward, so a positive angle runs downhill to the right.
func slopeGlyph(angle float64) rune {
	switch a := math.Abs(angle); {
	case a < 0.15:
		return FlatChar
	case a > 1.2:
		return SteepChar
	case angle > 0:
		return DownhillChar
	default:
		return UphillChar
	}
}

func (g *Game) drawParticles(dst *core.Screen, vp core.Viewport, offset int) {
	g.world.Particles().Each(func(p *particles.Particle) {
		col, row := vp.ToCell(p.Pos.X, p.Pos.Y)
		dst.SetColor(col+offset, row, particleGlyph(p), p.Color)
	})
}

// particleGlyph fades particles from heavy to light glyphs as they age.
func particleGlyph(p *particles.Particle) rune {
	switch p.Kind {
	case particles.Snowflake:
		return '·'
	case particles.Collection:
		return '+'
	}
	if p.Fade() > 0.5 {
		return '*'
	}
	return '.'
}

func (g *Game) drawEntities(dst *core.Screen, vp core.Viewport, offset int) {
	for _, e := range g.world.Entities() {
		glyph := SnowChar
		if e.Kind == sim.Obstacle {
			glyph = '#'
			if k, ok := g.spawner.Kind(e.Type); ok {
				glyph = k.Glyph
			}
		}
		fillDisc(dst, vp, e.Body.Pos.X, e.Body.Pos.Y, e.Body.Radius, offset, glyph, e.Color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport, offset int) {
	// Blink while invincible
	if g.invincible > 0 && (g.invincible/4)%2 == 1 {
		return
	}
	p := g.world.Player()
	fillDisc(dst, vp, p.Pos.X, p.Pos.Y, p.Radius, offset, SnowballChar, core.ColorBrightWhite)
}

// fillDisc draws every cell whose center lies inside the circle, and at
// least the cell holding the center so small bodies stay visible.
func fillDisc(dst *core.Screen, vp core.Viewport, cx, cy, r float64, offset int, glyph rune, c core.Color) {
	col, row := vp.ToCell(cx, cy)
	dst.SetColor(col+offset, row, glyph, c)

	c0, r0 := vp.ToCell(cx-r, cy-r)
	c1, r1 := vp.ToCell(cx+r, cy+r)
	cw, ch := vp.CellW(), vp.CellH()
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			dx := (float64(x)+0.5)*cw - cx
			dy := (float64(y)+0.5)*ch - cy
			if dx*dx+dy*dy <= r*r {
				dst.SetColor(x+offset, y, glyph, c)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Size: %.0f ", g.score, g.size)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	if g.combo > 1 {
		combo := fmt.Sprintf(" COMBO x%d ", g.combo)
		dst.DrawTextColor(len(left)+2, 0, combo, core.ColorBrightYellow)
	}

	right := fmt.Sprintf(" Dist: %d  Spd: %.1f ", int(g.world.Distance()), g.world.Player().Speed())
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorBrightCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	// Draw box
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightCyan)

	// Draw text
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
