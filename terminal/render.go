package terminal

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/spacefolio/camera"
	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/proximity"
	"github.com/lixenwraith/spacefolio/vmath"
)

var (
	styleStar     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStarNear = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLandmark = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleNearby   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCard     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCraft    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleThrust   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBoost    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleBox      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleBoxTitle = styleBox.Bold(true).Foreground(tcell.ColorYellow)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer draws frames, it holds only static scene data
type Renderer struct {
	landmarks  []proximity.Landmark
	stars      []vmath.Vec3F
	cellAspect float64
}

// NewRenderer builds the scene, the starfield is seeded so layouts are stable
func NewRenderer(landmarks []proximity.Landmark, cellAspect float64) *Renderer {
	rng := rand.New(rand.NewPCG(0x5ace, 0xf011))
	stars := make([]vmath.Vec3F, parameter.TerminalStarCount)
	spread := parameter.TerminalStarSpread
	for i := range stars {
		stars[i] = vmath.V3F(
			(rng.Float64()*2-1)*spread,
			(rng.Float64()*2-1)*spread/4,
			(rng.Float64()*2-1)*spread,
		)
	}
	return &Renderer{
		landmarks:  landmarks,
		stars:      stars,
		cellAspect: cellAspect,
	}
}

// Draw renders f, status is an optional one-line message shown on the top row
func (r *Renderer) Draw(s tcell.Screen, f engine.Frame, status string, muted bool) {
	s.Clear()
	w, h := s.Size()
	if w < 1 || h < 2 {
		return
	}

	if f.Mode == engine.ModeProfessional {
		r.drawProfessional(s, w, h)
	} else {
		r.drawScene(s, f, w, h-1)
		if f.ActiveOverlay != "" {
			r.drawOverlay(s, f.ActiveOverlay, w, h-1)
		}
	}

	drawText(s, 0, h-1, w, styleHUD, hudLine(f, muted))
	if status != "" {
		drawText(s, 0, 0, w, styleStatus, status)
	}
	s.Show()
}

type sprite struct {
	x, y  int
	depth float64
	draw  func()
}

func (r *Renderer) drawScene(s tcell.Screen, f engine.Frame, w, h int) {
	proj := camera.NewProjector(f.Camera, w, h, r.cellAspect)

	for _, st := range r.stars {
		x, y, depth, ok := proj.Project(st)
		if !ok {
			continue
		}
		style, ch := styleStar, '.'
		if depth < parameter.TerminalStarSpread/3 {
			style, ch = styleStarNear, '*'
		}
		s.SetContent(x, y, ch, nil, style)
	}

	cards := make(map[string]bool, len(f.Cards))
	for _, id := range f.Cards {
		cards[id] = true
	}

	// Far to near so closer stations overwrite labels behind them
	var sprites []sprite
	for _, lm := range r.landmarks {
		x, y, depth, ok := proj.Project(lm.Position)
		if !ok {
			continue
		}
		sprites = append(sprites, sprite{x: x, y: y, depth: depth, draw: func() {
			style := styleLandmark
			if lm.ID == f.Nearby {
				style = styleNearby
			}
			s.SetContent(x, y, '◆', nil, style)
			drawText(s, x+2, y, w-x-2, style, lm.Title)
			if cards[lm.ID] {
				drawText(s, x+2, y+1, w-x-2, styleCard, lm.Summary)
			}
		}})
	}
	sort.Slice(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })
	for _, sp := range sprites {
		sp.draw()
	}

	if x, y, _, ok := proj.Project(f.HUD.Position); ok {
		s.SetContent(x, y, '▲', nil, styleCraft)
		switch {
		case f.HUD.Boosting:
			s.SetContent(x, y+1, '▼', nil, styleBoost)
		case f.HUD.Thrusting:
			s.SetContent(x, y+1, '·', nil, styleThrust)
		}
	}
}

func (r *Renderer) drawOverlay(s tcell.Screen, id string, w, h int) {
	lm, ok := r.landmark(id)
	if !ok {
		return
	}
	lines := []string{lm.Summary, "", "Esc to close"}
	drawBox(s, w, h, lm.Title, lines)
}

func (r *Renderer) drawProfessional(s tcell.Screen, w, h int) {
	lines := make([]string, 0, 2*len(r.landmarks)+2)
	for _, lm := range r.landmarks {
		lines = append(lines, fmt.Sprintf("%s: %s", lm.Title, lm.Summary))
	}
	lines = append(lines, "", "Tab to return to flight")
	drawBox(s, w, h-1, "Portfolio", lines)
}

func (r *Renderer) landmark(id string) (proximity.Landmark, bool) {
	for _, lm := range r.landmarks {
		if lm.ID == id {
			return lm, true
		}
	}
	return proximity.Landmark{}, false
}

// hudLine formats the bottom status bar
func hudLine(f engine.Frame, muted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, " SPD %s  FUEL %s %3.0f%%  HP %3.0f  POS %.0f,%.0f,%.0f  LV %d XP %d",
		f.HUD.Speed, fuelBar(f.HUD.Fuel), f.HUD.Fuel, f.HUD.Health,
		f.HUD.Position.X, f.HUD.Position.Y, f.HUD.Position.Z,
		f.Level, f.Experience)
	if f.HUD.Boosting {
		b.WriteString("  BOOST")
	}
	if f.Orbiting {
		b.WriteString("  [ORBIT]")
	}
	if muted {
		b.WriteString("  [MUTE]")
	}
	if f.Nearby != "" && f.ActiveOverlay == "" && f.Mode == engine.ModeExploration {
		fmt.Fprintf(&b, "  Enter: open %s", f.Nearby)
	}
	return b.String()
}

func fuelBar(fuel float64) string {
	const width = 10
	n := int(vmath.Clamp(fuel, 0, 100) / 100 * width)
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// drawText writes text from x, clipped to limit cells, returns cells written
func drawText(s tcell.Screen, x, y, limit int, style tcell.Style, text string) int {
	if limit <= 0 {
		return 0
	}
	col := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > limit {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += rw
	}
	return col
}

// drawBox renders a centered bordered panel with a title and body lines
func drawBox(s tcell.Screen, w, h int, title string, lines []string) {
	inner := runewidth.StringWidth(title)
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	inner = min(inner+2, w-2)
	boxH := min(len(lines)+4, h)
	if inner < 1 || boxH < 3 {
		return
	}
	x0 := (w - inner - 2) / 2
	y0 := (h - boxH) / 2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+inner+2; x++ {
			s.SetContent(x, y, ' ', nil, styleBox)
		}
	}
	for x := x0 + 1; x < x0+inner+1; x++ {
		s.SetContent(x, y0, '─', nil, styleBox)
		s.SetContent(x, y0+boxH-1, '─', nil, styleBox)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		s.SetContent(x0, y, '│', nil, styleBox)
		s.SetContent(x0+inner+1, y, '│', nil, styleBox)
	}
	s.SetContent(x0, y0, '┌', nil, styleBox)
	s.SetContent(x0+inner+1, y0, '┐', nil, styleBox)
	s.SetContent(x0, y0+boxH-1, '└', nil, styleBox)
	s.SetContent(x0+inner+1, y0+boxH-1, '┘', nil, styleBox)

	drawText(s, x0+2, y0+1, inner-1, styleBoxTitle, title)
	for i, l := range lines {
		if y0+3+i >= y0+boxH-1 {
			break
		}
		drawText(s, x0+2, y0+3+i, inner-1, styleBox, l)
	}
}
