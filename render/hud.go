package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/status"
	"github.com/lixenwraith/tank-pusher/vmath"
)

const helpLine = "WASD/arrows move  Shift sprint  v view  p pause  m mute  q quit"

// drawHUD writes the status lines below the map
func (r *Renderer) drawHUD(f engine.Frame, paused bool, w, top int) {
	text := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)
	dim := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDDim)

	move := "idle"
	if f.Attempted() {
		move = f.Outcome
		if f.Reason != "" {
			move += "/" + f.Reason
		}
	}
	heading := vmath.WrapAngle(f.Yaw) * 180 / math.Pi
	line1 := fmt.Sprintf("pos %6.2f %6.2f  yaw %6.1f°  %-8s  rate %+.1f  %s",
		f.Position.X(), f.Position.Z(), heading, f.Anim, f.PlaybackRate, move)
	drawText(r.screen, 0, top, w, line1, text)

	snap := r.session.Status.Snapshot()
	line2 := fmt.Sprintf("%s  fps %3.0f  pushes %d  blocked %d  transitions %d",
		snap[status.MetricView], snap[status.MetricFPS], snap[status.MetricPushes],
		snap[status.MetricBlocked], snap[status.MetricTransitions])
	if paused {
		line2 += "  [PAUSED]"
	}
	drawText(r.screen, 0, top+1, w, line2, text)

	drawText(r.screen, 0, top+2, w, helpLine, dim)
}

// drawText writes s from (x, y), clipped to width w
func drawText(screen tcell.Screen, x, y, w int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
