package burst

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Glyphs for rendering
const (
	PlayerChar     = '█'
	PlayerHeadChar = '▲'
	BeamChar       = '│'
	BeamTipChar    = '^'
	GroundChar     = '▀'
)

// Bubble glyphs by size
var bubbleGlyphs = map[Size]rune{
	SizeLarge:  'O',
	SizeMedium: 'o',
	SizeSmall:  '°',
}

// Particle glyphs from faded to fresh
var particleGlyphs = []rune{'.', '·', '*', '✦'}

// Pixels of shake per cell of offset
const shakeStep = 3

// viewport maps world pixels onto the terminal grid below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
	ox, oy int
}

func (g *Game) viewport(dst *core.Screen, s *Snapshot) viewport {
	stage := g.cfg.Stage
	return viewport{
		sx:  float64(dst.Width()) / stage.Width,
		sy:  float64(dst.Height()-1) / stage.Height,
		top: 1,
		ox:  s.ShakeX / shakeStep,
		oy:  s.ShakeY / shakeStep,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	return int(p.X*v.sx) + v.ox, v.top + int(p.Y*v.sy) + v.oy
}

// Render draws the last committed snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	s := &g.last
	vp := g.viewport(dst, s)

	g.renderGround(dst, vp, s)
	g.renderBubbles(dst, vp, s)
	g.renderProjectiles(dst, vp, s)
	g.renderPlayer(dst, vp, s)
	g.renderParticles(dst, vp, s)
	g.renderHUD(dst, s)
	g.renderOverlay(dst, s)
}

func (g *Game) renderHUD(dst *core.Screen, s *Snapshot) {
	left := fmt.Sprintf("Level %d/%d  %s", s.Level, g.cfg.Session.MaxLevel, s.Theme.Name)
	dst.DrawTextColored(1, 0, left, s.Theme.Sky)

	center := fmt.Sprintf("Score: %d", s.Score)
	if s.Combo > 1 {
		center += fmt.Sprintf("  x%d", s.Combo)
	}
	dst.DrawTextCentered(0, center)

	right := fmt.Sprintf("Lives: %d  Time: %02d", s.Lives, s.TimeRemaining)
	color := core.ColorDefault
	if s.TimeRemaining <= 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, color)
}

func (g *Game) renderGround(dst *core.Screen, vp viewport, s *Snapshot) {
	_, y := vp.cell(core.Vec{Y: g.cfg.Stage.GroundLevel})
	for row := y; row < dst.Height(); row++ {
		dst.DrawHLine(0, row, dst.Width(), GroundChar, s.Theme.Ground)
	}
}

func (g *Game) renderBubbles(dst *core.Screen, vp viewport, s *Snapshot) {
	for _, b := range s.Bubbles {
		if !b.Active {
			continue
		}
		c := b.Circle()
		cx, cy := vp.cell(c.Center)
		rx := c.R * vp.sx
		ry := c.R * vp.sy
		glyph := bubbleGlyphs[b.Size]
		color := bubbleColor(b.Size, s.Theme)

		for y := int(math.Floor(-ry)); y <= int(math.Ceil(ry)); y++ {
			for x := int(math.Floor(-rx)); x <= int(math.Ceil(rx)); x++ {
				if !insideEllipse(float64(x), float64(y), rx, ry) {
					continue
				}
				dst.SetColored(cx+x, cy+y, glyph, color)
			}
		}
		dst.SetColored(cx, cy, glyph, color)
	}
}

// insideEllipse tests a cell offset against an ellipse with half a cell of
// slack so tiny bubbles still cover their centre row.
func insideEllipse(x, y, rx, ry float64) bool {
	rx = math.Max(rx, 0.5)
	ry = math.Max(ry, 0.5)
	return (x*x)/(rx*rx)+(y*y)/(ry*ry) <= 1
}

func bubbleColor(size Size, theme Theme) core.Color {
	switch size {
	case SizeLarge:
		return theme.Accent
	case SizeMedium:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, vp viewport, s *Snapshot) {
	for _, p := range s.Projectiles {
		if !p.Active {
			continue
		}
		x, top := vp.cell(p.Pos)
		_, bottom := vp.cell(core.Vec{Y: g.cfg.Stage.GroundLevel})
		if bottom > top {
			dst.DrawVLine(x, top, bottom-top, BeamChar, core.ColorBrightCyan)
		}
		dst.SetColored(x, top, BeamTipChar, core.ColorBrightWhite)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp viewport, s *Snapshot) {
	p := s.Player
	x0, y0 := vp.cell(p.Pos)
	x1, y1 := vp.cell(p.Pos.Add(core.Vec{X: g.cfg.Player.Width, Y: g.cfg.Player.Height}))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
		}
	}

	head := x0
	if p.Facing > 0 {
		head = x1 - 1
	}
	dst.SetColored(head, y0, PlayerHeadChar, core.ColorBrightCyan)
}

func (g *Game) renderParticles(dst *core.Screen, vp viewport, s *Snapshot) {
	for _, p := range s.Particles {
		x, y := vp.cell(p.Pos)
		i := int(p.Alpha() * float64(len(particleGlyphs)-1))
		dst.SetColored(x, y, particleGlyphs[i], particleColor(p.Kind))
	}
}

func particleColor(kind ParticleKind) core.Color {
	switch kind {
	case ParticleExplosion:
		return core.ColorBrightRed
	case ParticleSparkle:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightCyan
	}
}

func (g *Game) renderOverlay(dst *core.Screen, s *Snapshot) {
	switch {
	case g.Paused():
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case s.LevelComplete():
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d COMPLETE", s.Level), "Press ENTER to continue")
	case s.GameOver() && s.Cleared:
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score))
	case s.GameOver():
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
