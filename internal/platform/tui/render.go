package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/session"
)

var (
	black = core.Color{}
	white = core.MustHex("#ffffff")

	truckTrailer = core.MustHex("#dfe6e9")
	truckCab     = core.MustHex("#e17055")
	truckGlass   = core.MustHex("#74b9ff")
	tireColor    = core.MustHex("#2d3436")
	coinGold     = core.MustHex("#f1c40f")
	coinInner    = core.MustHex("#f39c12")
	trunkColor   = core.MustHex("#6d4c41")

	hudBg     = core.MustHex("#1e272e")
	hudText   = core.MustHex("#f5f6fa")
	hudDim    = core.MustHex("#808e9b")
	heartFull = core.MustHex("#ff4757")
	accent    = core.MustHex("#ffd32a")
	panelBg   = core.MustHex("#2f3640")
)

// Frame is everything one view draws.
type Frame struct {
	State         session.State
	Snapshot      runner.Snapshot
	HasRun        bool
	World         runner.WorldSize
	TitleTheme    runner.Theme
	Lives         int
	MaxLives      int
	PauseIndex    int
	GameOverIndex int
	LastRun       session.Run
	Best          int
	Difficulty    config.DifficultyPreset
}

// FrameOf collects the view state of a controller.
func FrameOf(c *session.Controller, best int) Frame {
	cfg := c.Rules().Config()
	f := Frame{
		State:         c.State(),
		Lives:         c.Lives(),
		MaxLives:      cfg.Session.Lives,
		PauseIndex:    c.PauseIndex(),
		GameOverIndex: c.GameOverIndex(),
		LastRun:       c.LastRun(),
		Best:          max(best, c.LastRun().Score),
		Difficulty:    c.Difficulty(),
		TitleTheme:    c.Rules().Themes()[0],
		World: runner.WorldSize{
			Width:      cfg.World.Width,
			Height:     cfg.World.Height,
			LaneStartY: cfg.World.LaneStartY,
			LaneHeight: cfg.World.LaneHeight,
		},
	}
	f.Snapshot, f.HasRun = c.Snapshot()
	return f
}

// Renderer draws frames into a screen buffer.
type Renderer struct {
	cv canvas
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders f into scr.
func (r *Renderer) Draw(scr *core.Screen, f Frame) {
	scr.Clear()
	r.cv.reset(scr.Width(), scr.Height(), f.World)

	if f.State == session.StateMenu || !f.HasRun {
		drawSky(&r.cv, f.World, f.TitleTheme)
		drawRoad(&r.cv, f.World, f.TitleTheme, 0)
		r.cv.dim(0.8)
		r.cv.compose(scr)
		drawTitle(scr, f)
		return
	}

	drawWorld(&r.cv, &f.Snapshot)
	if f.State != session.StatePlaying {
		r.cv.dim(0.45)
	}
	r.cv.compose(scr)
	drawHUD(scr, f)

	switch f.State {
	case session.StatePaused:
		drawPanel(scr, "PAUSED", nil, []string{"RESUME", "MENU"}, f.PauseIndex)
	case session.StateGameOver:
		lines := []string{
			fmt.Sprintf("SCORE  %d", f.LastRun.Score),
			fmt.Sprintf("COINS  %d", f.LastRun.Coins),
			fmt.Sprintf("BEST   %d", f.Best),
		}
		drawPanel(scr, "GAME OVER", lines, []string{"RETRY", "MENU"}, f.GameOverIndex)
	}
}

// drawSky paints the sky gradient and the ground below the horizon.
func drawSky(cv *canvas, w runner.WorldSize, t runner.Theme) {
	cv.gradient(0, w.LaneStartY, t.Sky, t.SkyBottom)
	cv.rect(0, w.LaneStartY, w.Width, w.Height-w.LaneStartY, t.Ground)
}

// drawRoad paints the asphalt and the dashed lines between lanes.
func drawRoad(cv *canvas, w runner.WorldSize, t runner.Theme, stripeOffset float64) {
	roadH := w.LaneHeight * float64(runner.LaneCount)

	cv.blend(0, w.LaneStartY, w.Width, roadH+15, black, 0.2)
	cv.rect(0, w.LaneStartY, w.Width, roadH, t.Road)

	for lane := 1; lane < runner.LaneCount; lane++ {
		y := w.LaneStartY + w.LaneHeight*float64(lane) - 6
		for x := -stripeOffset; x < w.Width; x += 120 {
			if x+80 > 0 {
				cv.rect(x, y, 80, 12, t.Stripe)
			}
		}
	}
}

// drawWorld paints a full run snapshot, back to front.
func drawWorld(cv *canvas, s *runner.Snapshot) {
	w := s.World

	drawSky(cv, w, s.Theme)
	for i := range s.Scenery {
		drawScenery(cv, &s.Scenery[i])
	}
	drawRoad(cv, w, s.Theme, s.StripeOffset)

	for i := range s.Sprites {
		sp := &s.Sprites[i]
		switch sp.Kind {
		case runner.SpritePlayer:
			drawTruck(cv, sp, s)
		case runner.SpriteCoin:
			drawCoin(cv, sp, s.Tick)
		case runner.SpriteObstacle:
			drawObstacle(cv, sp)
		}
	}

	for _, p := range s.Particles {
		cv.blend(p.Pos.X-p.Size, p.Pos.Y-p.Size, p.Size*2, p.Size*2, p.Color, p.Alpha)
	}

	if s.SpeedLines {
		// Seeded by tick so a frame draws the same lines however often it is viewed.
		rng := rand.New(rand.NewSource(int64(s.Tick)))
		for i := 0; i < 5; i++ {
			ly := rng.Float64() * w.Height
			lx := rng.Float64() * w.Width
			n := 50 + rng.Float64()*200
			cv.blend(lx-n, ly, n, 3, white, 0.4)
		}
	}
}

func drawScenery(cv *canvas, sc *runner.Scenery) {
	x, y, w, h := sc.X, sc.Y, sc.W, sc.H
	switch sc.Kind {
	case runner.SceneryHouse:
		cv.rect(x, y+h*0.35, w, h*0.65, sc.Color)
		cv.rect(x-10, y, w+20, h*0.35, sc.Detail.Roof)
		cv.rect(x+w*0.1, y+h*0.5, w*0.2, h*0.2, truckGlass)
		cv.rect(x+w*0.4, y+h*0.65, w*0.2, h*0.35, sc.Detail.Door)
		if sc.Detail.HasGarage {
			cv.rect(x+w*0.65, y+h*0.6, w*0.3, h*0.4, sc.Color.Scale(0.8))
		}
	case runner.SceneryTree:
		cv.rect(x+w*0.4, y+h*0.6, w*0.2, h*0.4, trunkColor)
		cv.rect(x, y, w, h*0.65, sc.Color)
	case runner.SceneryCar:
		cv.rect(x+w*0.2, y, w*0.6, h*0.4, sc.Color.Scale(0.85))
		cv.rect(x, y+h*0.3, w, h*0.5, sc.Color)
		cv.rect(x+w*0.1, y+h*0.75, w*0.2, h*0.25, tireColor)
		cv.rect(x+w*0.7, y+h*0.75, w*0.2, h*0.25, tireColor)
	case runner.SceneryMailbox:
		cv.rect(x+w*0.4, y+h*0.4, w*0.2, h*0.6, trunkColor)
		cv.rect(x, y, w, h*0.4, sc.Color)
	}
}

func drawTruck(cv *canvas, sp *runner.Sprite, s *runner.Snapshot) {
	// Flicker while invincible.
	if s.Invincible > 0 && (s.Invincible/6)%2 == 1 {
		return
	}
	b := sp.Box
	x, y := b.X, b.Y+s.Bounce
	lean := s.Tilt * 40

	cv.blend(x+10, y+b.H-8, b.W-20, 12, black, 0.3)
	cv.rect(x, y+10, 130, 70, truckTrailer)
	cv.rect(x+130, y+20+lean, 65, 60, truckCab)
	cv.rect(x+160, y+28+lean, 28, 20, truckGlass)
	for _, wx := range []float64{20, 95, 150} {
		cv.rect(x+wx, y+80, 30, 25, tireColor)
	}
}

func drawCoin(cv *canvas, sp *runner.Sprite, tick int) {
	c := sp.Box.Center()
	bob := math.Sin(float64(tick)*0.1) * 5
	turn := math.Abs(math.Cos(float64(tick)*0.1 + sp.Box.X*0.01))

	cv.blend(c.X-15, c.Y+28, 30, 6, black, 0.2)
	cv.rect(c.X-20*turn, c.Y-20+bob, 40*turn, 40, coinGold)
	cv.rect(c.X-14*turn, c.Y-14+bob, 28*turn, 28, coinInner)
}

func drawObstacle(cv *canvas, sp *runner.Sprite) {
	b := sp.Box
	c := b.Center()
	col := sp.Color

	cv.blend(c.X-30, c.Y+30, 60, 10, black, 0.3)

	switch sp.Obstacle {
	case runner.ObstacleCone:
		cv.rect(c.X-20, c.Y+20, 40, 20, col)
		cv.rect(c.X-14, c.Y, 28, 20, col)
		cv.rect(c.X-8, c.Y-20, 16, 20, col)
		cv.rect(c.X-4, c.Y-40, 8, 20, col)
		cv.rect(c.X-12, c.Y+4, 24, 8, white)
	case runner.ObstacleBarrier:
		cv.rect(b.X+5, c.Y+10, 8, 30, tireColor)
		cv.rect(b.Right()-13, c.Y+10, 8, 30, tireColor)
		cv.rect(b.X, c.Y-25, b.W, 40, col)
		for x := b.X + 5; x < b.Right()-10; x += 25 {
			cv.rect(x, c.Y-25, 10, 40, white)
		}
	case runner.ObstacleRock:
		cv.rect(c.X-35, c.Y-10, 70, 45, col)
		cv.rect(c.X-25, c.Y-30, 50, 25, col.Lerp(white, 0.2))
	case runner.ObstacleCrate:
		cv.rect(b.X+10, c.Y-20, 60, 50, col)
		cv.rect(b.X+10, c.Y-10, 60, 5, col.Scale(0.7))
		cv.rect(b.X+10, c.Y+10, 60, 5, col.Scale(0.7))
	case runner.ObstacleBarrel:
		cv.rect(b.X+15, c.Y-30, 50, 65, col)
		cv.rect(b.X+15, c.Y-20, 50, 5, col.Scale(0.6))
		cv.rect(b.X+15, c.Y+15, 50, 5, col.Scale(0.6))
	}
}

// drawHUD writes the score bar on the top row.
func drawHUD(scr *core.Screen, f Frame) {
	s := &f.Snapshot
	w := scr.Width()
	scr.FillArea(0, 0, w, 1, hudBg)

	left := fmt.Sprintf(" SCORE %05d  COINS %d  %dm", s.Score, s.Coins, int(s.Distance/100))
	scr.DrawText(0, 0, left, hudText)

	stage := strings.ToUpper(s.StageName)
	scr.DrawText((w-len([]rune(stage)))/2, 0, stage, accent)

	x := w - f.MaxLives*2 - 1
	for i := 0; i < f.MaxLives; i++ {
		if i < f.Lives {
			scr.Draw(x+i*2, 0, '♥', heartFull)
		} else {
			scr.Draw(x+i*2, 0, '♡', hudDim)
		}
	}
}

// drawTitle writes the start screen over the backdrop.
func drawTitle(scr *core.Screen, f Frame) {
	lines := []string{
		fmt.Sprintf("difficulty  %s", f.Difficulty),
	}
	if f.Best > 0 {
		lines = append(lines, fmt.Sprintf("best  %d", f.Best))
	}
	lines = append(lines, "", "w/s lanes   d gas   a brake   p pause")
	drawPanel(scr, "LANE RUNNER", lines, []string{"START"}, 0)
}

// drawPanel draws a centered box with a title, text lines and a menu whose
// selected entry is highlighted.
func drawPanel(scr *core.Screen, title string, lines, items []string, selected int) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	for _, it := range items {
		width = max(width, len([]rune(it))+4)
	}
	width += 6
	height := 4 + len(lines) + len(items)
	if len(lines) > 0 {
		height++
	}

	x := (scr.Width() - width) / 2
	y := (scr.Height() - height) / 2
	scr.FillArea(x, y, width, height, panelBg)
	scr.DrawBox(x, y, width, height, hudDim)

	row := y + 1
	centered(scr, x, width, row, title, accent)
	scr.DrawHLine(x+2, row+1, width-4, '─', hudDim)
	row += 2
	for _, l := range lines {
		centered(scr, x, width, row, l, hudText)
		row++
	}
	if len(lines) > 0 {
		row++
	}
	for i, it := range items {
		label := "  " + it + "  "
		if i == selected {
			label = "> " + it + " <"
			start := x + (width-len([]rune(label)))/2
			for j, r := range label {
				scr.SetCell(start+j, row, r, panelBg, accent)
			}
		} else {
			centered(scr, x, width, row, label, hudDim)
		}
		row++
	}
}

func centered(scr *core.Screen, x, width, y int, text string, fg core.Color) {
	scr.DrawText(x+(width-len([]rune(text)))/2, y, text, fg)
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(start.Fg.Hex())).
				Background(lipgloss.Color(start.Bg.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
