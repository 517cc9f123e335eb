package playing

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/striker/internal/application/state"
	"github.com/younwookim/striker/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{18, 32, 24, 255}
	colorPitch   = color.RGBA{46, 125, 50, 255}
	colorStripe  = color.RGBA{56, 142, 60, 255}
	colorLine    = color.RGBA{230, 240, 230, 255}
	colorGoal    = color.RGBA{220, 220, 220, 200}
	colorHome    = color.RGBA{66, 133, 244, 255}
	colorHomeGK  = color.RGBA{25, 80, 170, 255}
	colorAway    = color.RGBA{219, 68, 55, 255}
	colorAwayGK  = color.RGBA{150, 30, 30, 255}
	colorActive  = color.RGBA{255, 235, 59, 255}
	colorBall    = color.RGBA{250, 250, 250, 255}
	colorShade   = color.RGBA{0, 0, 0, 140}
	colorStickBG = color.RGBA{255, 255, 255, 60}
	colorStick   = color.RGBA{255, 255, 255, 160}
)

const (
	centerCircleRadius = 70
	goalDepth          = 12
	stripes            = 10
)

// viewport maps pitch coordinates onto the screen below the HUD
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func newViewport(pitch *entity.Pitch, screenW, screenH int, hud float64) viewport {
	availW := float64(screenW) - 2*goalDepth
	availH := float64(screenH) - hud
	scale := math.Min(availW/pitch.Width, availH/pitch.Height)
	return viewport{
		scale:   scale,
		offsetX: (float64(screenW) - pitch.Width*scale) / 2,
		offsetY: hud + (availH-pitch.Height*scale)/2,
	}
}

// point converts a pitch position to screen space
func (v viewport) point(p entity.Vec2) (float32, float32) {
	return float32(v.offsetX + p.X*v.scale), float32(v.offsetY + p.Y*v.scale)
}

func (v viewport) length(l float64) float32 {
	return float32(l * v.scale)
}

// Draw renders the match
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	st := p.session.State()
	p.drawPitch(screen, p.session.Simulation().Pitch())
	p.drawPlayers(screen, st)
	p.drawBall(screen, st.Ball)
	p.drawStick(screen)
	p.drawHUD(screen)

	switch p.session.Match().Phase() {
	case state.PhasePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.PhaseQuarterBreak:
		p.drawOverlay(screen, fmt.Sprintf("END OF QUARTER %d\n\n%s", p.session.Match().Quarter(), p.scoreLine()))
	case state.PhaseFullTime:
		p.drawOverlay(screen, fmt.Sprintf("FULL TIME\n\n%s\n\nPress ENTER to play again", p.scoreLine()))
	}
}

func (p *Playing) drawPitch(screen *ebiten.Image, pitch *entity.Pitch) {
	x, y := p.view.point(entity.Vec2{})
	w, h := p.view.length(pitch.Width), p.view.length(pitch.Height)
	vector.DrawFilledRect(screen, x, y, w, h, colorPitch, false)

	stripeW := w / stripes
	for i := 0; i < stripes; i += 2 {
		vector.DrawFilledRect(screen, x+float32(i)*stripeW, y, stripeW, h, colorStripe, false)
	}

	vector.StrokeRect(screen, x, y, w, h, 2, colorLine, false)
	cx, cy := p.view.point(pitch.Center())
	vector.StrokeLine(screen, cx, y, cx, y+h, 2, colorLine, false)
	vector.StrokeCircle(screen, cx, cy, p.view.length(centerCircleRadius), 2, colorLine, true)
	vector.DrawFilledCircle(screen, cx, cy, 3, colorLine, true)

	_, top := p.view.point(entity.Vec2{Y: pitch.GoalTop()})
	mouth := p.view.length(pitch.GoalWidth)
	vector.DrawFilledRect(screen, x-goalDepth, top, goalDepth, mouth, colorGoal, false)
	vector.DrawFilledRect(screen, x+w, top, goalDepth, mouth, colorGoal, false)
}

func (p *Playing) drawPlayers(screen *ebiten.Image, st *entity.MatchState) {
	for _, pl := range st.Players {
		x, y := p.view.point(pl.Pos)
		r := p.view.length(pl.Radius)
		vector.DrawFilledCircle(screen, x, y, r, playerColor(pl), true)

		if pl.ID == st.ActiveID {
			vector.StrokeCircle(screen, x, y, r+3, 2, colorActive, true)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(pl.Number), int(x)-3, int(y)-8)
	}
}

func playerColor(pl *entity.Player) color.Color {
	switch {
	case pl.Team == entity.TeamHome && pl.Role == entity.RoleGoalkeeper:
		return colorHomeGK
	case pl.Team == entity.TeamHome:
		return colorHome
	case pl.Role == entity.RoleGoalkeeper:
		return colorAwayGK
	default:
		return colorAway
	}
}

func (p *Playing) drawBall(screen *ebiten.Image, ball *entity.Ball) {
	x, y := p.view.point(ball.Pos)
	vector.DrawFilledCircle(screen, x, y, p.view.length(ball.Radius), colorBall, true)
}

func (p *Playing) drawStick(screen *ebiten.Image) {
	if !p.stick.active {
		return
	}
	radius := float32(p.config.Control.JoystickRadius)
	ox, oy := float32(p.stick.originX), float32(p.stick.originY)
	vector.DrawFilledCircle(screen, ox, oy, radius, colorStickBG, true)

	dx, dy := float64(p.stick.x-p.stick.originX), float64(p.stick.y-p.stick.originY)
	if d := math.Hypot(dx, dy); d > float64(radius) {
		dx, dy = dx/d*float64(radius), dy/d*float64(radius)
	}
	vector.DrawFilledCircle(screen, ox+float32(dx), oy+float32(dy), radius/2.5, colorStick, true)
}

func (p *Playing) scoreLine() string {
	s := p.session.Match().Score()
	return fmt.Sprintf("HOME %d - %d AWAY", s.Home, s.Away)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	m := p.session.Match()
	hud := fmt.Sprintf("%s    Q%d/%d    %s", p.scoreLine(), m.Quarter(), p.config.Match.Quarters, clock(m.Remaining()))
	ebitenutil.DebugPrintAt(screen, hud, 12, 12)

	controls := "Arrows/WASD: Move | Space: Kick | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, p.screenW-len(controls)*6-12, 12)
}

// clock formats the quarter clock as m:ss, rounding up
func clock(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorShade, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-30)
}
