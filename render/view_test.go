package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/camera"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/parameter"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen, *engine.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	s, err := engine.NewSession(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewRenderer(screen, s), screen, s
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestDrawThirdPersonMap(t *testing.T) {
	r, screen, s := newTestRenderer(t)
	f := s.Step(input.Intent{}, 16*time.Millisecond)
	r.Draw(f, false)

	// Map area is 80x21 with the bounds center at cell (40,10)
	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"character", 40, 10, parameter.CharacterChar},
		{"heading toward +z", 40, 11, '↓'},
		{"crate ahead", 40, 13, parameter.BoxChar},
		{"north wall", 40, 4, parameter.WallChar},
		{"outside bounds", 0, 10, parameter.BorderChar},
		{"floor", 50, 10, parameter.FloorChar},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	if hud := rowText(screen, 21, 80); !strings.HasPrefix(hud, "pos") {
		t.Errorf("HUD line = %q", hud)
	}
	if help := rowText(screen, 23, 80); !strings.HasPrefix(help, "WASD") {
		t.Errorf("help line = %q", help)
	}
}

func TestDrawFirstPersonIsHeadingUp(t *testing.T) {
	r, screen, s := newTestRenderer(t)
	s.ToggleView()
	f := s.Step(input.Intent{}, 16*time.Millisecond)
	r.Draw(f, true)

	if got := runeAt(screen, 40, 10); got != parameter.CharacterChar {
		t.Errorf("character cell = %q", got)
	}
	if got := runeAt(screen, 40, 9); got != '↑' {
		t.Errorf("heading cell = %q, want ↑", got)
	}
	// Crate three units ahead appears above the character
	if got := runeAt(screen, 40, 7); got != parameter.BoxChar {
		t.Errorf("crate cell = %q", got)
	}
	if hud := rowText(screen, 22, 80); !strings.Contains(hud, "[PAUSED]") || !strings.HasPrefix(hud, "first-person") {
		t.Errorf("status line = %q", hud)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	pose := camera.Pose{Mode: camera.FirstPerson, Position: mgl64.Vec3{}, Target: mgl64.Vec3{1, 0, 0}}
	p := NewProjection(pose, mgl64.Vec3{2, 0, 3}, 80, 21)

	for _, c := range [][2]int{{40, 10}, {0, 0}, {79, 20}, {55, 3}} {
		x, y := p.Cell(p.World(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v round-tripped to (%d,%d)", c, x, y)
		}
	}

	// Facing +X: one unit ahead is one row up
	x, y := p.Cell(mgl64.Vec3{3, 0, 3})
	if x != 40 || y != 9 {
		t.Errorf("ahead cell = (%d,%d), want (40,9)", x, y)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		facing mgl64.Vec3
		want   rune
	}{
		{mgl64.Vec3{0, 0, 1}, '↓'},
		{mgl64.Vec3{1, 0, 0}, '→'},
		{mgl64.Vec3{0, 0, -1}, '↑'},
		{mgl64.Vec3{-1, 0, 0}, '←'},
	}
	for _, tt := range tests {
		if got := headingGlyph(tt.facing); got != tt.want {
			t.Errorf("headingGlyph(%v) = %q, want %q", tt.facing, got, tt.want)
		}
	}
}

func TestDrawTinyScreen(t *testing.T) {
	r, screen, s := newTestRenderer(t)
	screen.SetSize(10, 2)
	f := s.Step(input.Intent{}, 16*time.Millisecond)
	r.Draw(f, false) // map area is empty; must not panic
}
