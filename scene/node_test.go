package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNodeWorldBoxAxisAligned(t *testing.T) {
	n := NewNode("box", KindBox, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 1, 1}, 0)
	box := n.WorldBox()

	if box.Min != (mgl64.Vec3{2.5, 0, -0.5}) || box.Max != (mgl64.Vec3{3.5, 1, 0.5}) {
		t.Errorf("WorldBox = %v", box)
	}
}

func TestNodeWorldBoxRotatedQuarterTurn(t *testing.T) {
	// A 4x2 wall along X becomes 2x4 along Z after a quarter turn
	n := NewNode("wall", KindWall, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 2, 2}, math.Pi/2)
	size := n.WorldBox().Size()

	if math.Abs(size.X()-2) > 1e-9 || math.Abs(size.Z()-4) > 1e-9 {
		t.Errorf("rotated size = %v, want (2,2,4)", size)
	}
	if size.Y() != 2 {
		t.Errorf("height changed to %v", size.Y())
	}
}

func TestNodeTranslateMovesBox(t *testing.T) {
	n := NewNode("box", KindBox, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 1, 1}, 0)
	before := n.WorldBox()
	n.Translate(mgl64.Vec3{1, 0, 0})
	after := n.WorldBox()

	if after.Min.X()-before.Min.X() != 1 || after.Size() != before.Size() {
		t.Errorf("translate: before %v after %v", before, after)
	}
	if n.WorldPosition() != (mgl64.Vec3{4, 0, 0}) {
		t.Errorf("position = %v", n.WorldPosition())
	}
}

func TestNodeKindString(t *testing.T) {
	if KindWall.String() != "wall" || KindBox.String() != "box" || KindCharacter.String() != "character" {
		t.Error("unexpected kind names")
	}
}
