package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/component"
)

var lookAxis = mgl64.Vec3{0, 0, -1}

func newCharacter(pos mgl64.Vec3, yaw float64) *component.CharacterState {
	return component.NewCharacterState(pos, yaw, component.NewCollider(0.8, 1.8, 0.8))
}

func TestThirdPersonTracksTarget(t *testing.T) {
	r := NewRig(ThirdPerson)
	c := newCharacter(mgl64.Vec3{2, 0, -3}, 1.2)

	p := r.Follow(c)
	if p.Target != (mgl64.Vec3{2, 1, -3}) {
		t.Errorf("target = %v, want (2,1,-3)", p.Target)
	}
	if p.Position != (mgl64.Vec3{2, 4, 6}) {
		t.Errorf("position = %v, want (2,4,6)", p.Position)
	}

	look := p.Orientation.Rotate(lookAxis)
	want := p.Target.Sub(p.Position).Normalize()
	if !look.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("look = %v, want %v", look, want)
	}

	// Yaw does not swing the orbit camera
	c.Turn(2)
	if r.Follow(c).Position != p.Position {
		t.Error("orbit camera moved on turn")
	}
}

func TestFirstPersonUsesCharacterFrame(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		eye  mgl64.Vec3
	}{
		{"facing +z", 0, mgl64.Vec3{0, 1.3, 0.6}},
		{"facing +x", math.Pi / 2, mgl64.Vec3{0.6, 1.3, 0}},
		{"facing -z", math.Pi, mgl64.Vec3{0, 1.3, -0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(FirstPerson)
			c := newCharacter(mgl64.Vec3{1, 0, 1}, tt.yaw)
			p := r.Follow(c)

			want := tt.eye.Add(mgl64.Vec3{1, 0, 1})
			if !p.Position.ApproxEqualThreshold(want, 1e-9) {
				t.Errorf("position = %v, want %v", p.Position, want)
			}
			if look := p.Orientation.Rotate(lookAxis); !look.ApproxEqualThreshold(c.Facing, 1e-9) {
				t.Errorf("look = %v, want facing %v", look, c.Facing)
			}
			if !p.Forward().ApproxEqualThreshold(c.Facing, 1e-9) {
				t.Errorf("Forward = %v", p.Forward())
			}
		})
	}
}

func TestRigToggleAndParse(t *testing.T) {
	r := NewRig(ThirdPerson)
	if r.Toggle() != FirstPerson || r.Toggle() != ThirdPerson {
		t.Error("toggle did not alternate")
	}

	for in, want := range map[string]Mode{"first": FirstPerson, "third-person": ThirdPerson, "": ThirdPerson} {
		if got, ok := ParseMode(in); !ok || got != want {
			t.Errorf("ParseMode(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := ParseMode("top"); ok {
		t.Error("unknown mode accepted")
	}
}

func TestFollowNilCharacter(t *testing.T) {
	p := NewRig(FirstPerson).Follow(nil)
	if p.Mode != FirstPerson || p.Orientation != mgl64.QuatIdent() {
		t.Errorf("nil follow = %+v", p)
	}
}
