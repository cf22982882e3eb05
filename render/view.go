// Package render draws a top-down terminal view of a session and a status HUD
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/camera"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/parameter"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// Projection maps terminal cells of the map area to world X/Z
// North-up centered on the bounds in third person; heading-up centered on the
// character in first person
type Projection struct {
	Center   mgl64.Vec3
	Right    mgl64.Vec3 // world direction of +1 column
	Down     mgl64.Vec3 // world direction of +1 row
	OriginX  int        // cell of Center
	OriginY  int
	PerUnitX float64
	PerUnitZ float64
}

// NewProjection builds the projection for a map area of w x h cells
func NewProjection(pose camera.Pose, center mgl64.Vec3, w, h int) Projection {
	p := Projection{
		Center:   center,
		Right:    mgl64.Vec3{1, 0, 0},
		Down:     mgl64.Vec3{0, 0, 1},
		OriginX:  w / 2,
		OriginY:  h / 2,
		PerUnitX: parameter.CellsPerUnitX,
		PerUnitZ: parameter.CellsPerUnitZ,
	}
	if pose.Mode == camera.FirstPerson {
		if f := pose.Forward(); f.Len() > 0 {
			// Right-hand side of the facing with Y up
			p.Right = mgl64.Vec3{-f.Z(), 0, f.X()}
			p.Down = f.Mul(-1)
		}
	}
	return p
}

// World returns the world point under cell (x, y)
func (p Projection) World(x, y int) mgl64.Vec3 {
	dx := float64(x-p.OriginX) / p.PerUnitX
	dy := float64(y-p.OriginY) / p.PerUnitZ
	return p.Center.Add(p.Right.Mul(dx)).Add(p.Down.Mul(dy))
}

// Cell returns the cell nearest to world point w
func (p Projection) Cell(w mgl64.Vec3) (int, int) {
	d := w.Sub(p.Center)
	x := p.OriginX + int(math.Round(d.Dot(p.Right)*p.PerUnitX))
	y := p.OriginY + int(math.Round(d.Dot(p.Down)*p.PerUnitZ))
	return x, y
}

// headingGlyph picks an arrow for a facing vector on a north-up map
// +Z is screen down
func headingGlyph(facing mgl64.Vec3) rune {
	arrows := [8]rune{'↓', '↘', '→', '↗', '↑', '↖', '←', '↙'}
	a := math.Atan2(facing.X(), facing.Z())
	i := int(math.Round(a/(math.Pi/4))) & 7
	return arrows[i]
}

// Renderer draws frames to a tcell screen
type Renderer struct {
	screen  tcell.Screen
	session *engine.Session
}

// NewRenderer creates a renderer reading geometry from s
func NewRenderer(screen tcell.Screen, s *engine.Session) *Renderer {
	return &Renderer{screen: screen, session: s}
}

// OnFrame draws f and shows the screen
func (r *Renderer) OnFrame(f engine.Frame) {
	r.Draw(f, false)
}

// Draw renders the map and HUD for f
func (r *Renderer) Draw(f engine.Frame, paused bool) {
	w, h := r.screen.Size()
	mapH := h - parameter.HUDHeight
	if w <= 0 || mapH <= 0 {
		return
	}

	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	bounds, _ := r.session.Registry.WorldBounds()
	center := bounds.Center()
	if f.Camera.Mode == camera.FirstPerson {
		center = f.Position
	}
	proj := NewProjection(f.Camera, center, w, mapH)

	for y := 0; y < mapH; y++ {
		for x := 0; x < w; x++ {
			ch, fg := r.classify(proj.World(x, y), f)
			r.screen.SetContent(x, y, ch, nil, base.Foreground(fg))
		}
	}

	charFg := RgbCharacter
	if f.Blocked() {
		charFg = RgbBlocked
	}
	cx, cy := proj.Cell(f.Position)
	if inMap(cx, cy, w, mapH) {
		r.screen.SetContent(cx, cy, parameter.CharacterChar, nil, base.Foreground(charFg).Bold(true))
	}

	// Heading marker one row-length ahead of the character
	facing := vmath.Forward(f.Yaw)
	hx, hy := proj.Cell(f.Position.Add(facing.Mul(1 / parameter.CellsPerUnitZ)))
	if inMap(hx, hy, w, mapH) && (hx != cx || hy != cy) {
		glyph := '↑'
		if f.Camera.Mode != camera.FirstPerson {
			glyph = headingGlyph(facing)
		}
		r.screen.SetContent(hx, hy, glyph, nil, base.Foreground(charFg))
	}

	r.drawHUD(f, paused, w, mapH)
	r.screen.Show()
}

// classify returns the glyph and color for one world sample
func (r *Renderer) classify(p mgl64.Vec3, f engine.Frame) (rune, tcell.Color) {
	reg := r.session.Registry
	if !reg.IsInsideBounds(p) {
		return parameter.BorderChar, RgbBorder
	}
	for _, o := range reg.Static() {
		if o.Box.ContainsXZ(p) {
			return parameter.WallChar, RgbWall
		}
	}
	for _, o := range reg.Pushable() {
		if o.Box.ContainsXZ(p) {
			if f.Pushed() && f.Obstacle == o.ID {
				return parameter.BoxChar, RgbBoxPushed
			}
			return parameter.BoxChar, RgbBox
		}
	}
	return parameter.FloorChar, RgbFloor
}

func inMap(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}
