package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, rule RotateRule) *State {
	t.Helper()
	s, err := NewState(20, 20, rule)
	require.NoError(t, err)
	return s
}

func TestIsGameplayControl(t *testing.T) {
	recognized := map[byte]bool{'a': true, 'd': true, 's': true, 'w': true, 'q': true}
	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equal(t, recognized[b], IsGameplayControl(b), "byte %q", b)
	}
}

func TestParse(t *testing.T) {
	cmd, ok := Parse('w')
	assert.True(t, ok)
	assert.Equal(t, Rotate, cmd)

	_, ok = Parse('x')
	assert.False(t, ok)
}

func TestNewState_Start(t *testing.T) {
	s := newTestState(t, RotateChecked)

	assert.Equal(t, Point{X: 10, Y: 0}, s.Shape.Location)
	assert.Equal(t, Horizontal, s.Shape.Orientation)
	assert.False(t, s.Stopped)
}

func TestNewState_TooSmall(t *testing.T) {
	_, err := NewState(4, 20, RotateChecked)
	assert.Error(t, err)
	_, err = NewState(20, 4, RotateChecked)
	assert.Error(t, err)
}

func TestValidateMove_AxisSwapSymmetry(t *testing.T) {
	s := newTestState(t, RotateChecked)
	for x := -2; x < 23; x++ {
		for y := -2; y < 23; y++ {
			h := s.ValidateMove(Horizontal, Point{X: x, Y: y})
			v := s.ValidateMove(Vertical, Point{X: y, Y: x})
			require.Equal(t, h, v, "H(%d,%d) vs V(%d,%d)", x, y, y, x)
			// same input, same answer
			require.Equal(t, h, s.ValidateMove(Horizontal, Point{X: x, Y: y}))
		}
	}
}

func TestValidateMove_Bounds(t *testing.T) {
	s := newTestState(t, RotateChecked)
	tests := []struct {
		name string
		o    Orientation
		p    Point
		want bool
	}{
		{"start row", Horizontal, Point{10, 0}, false},
		{"first interior row", Horizontal, Point{10, 1}, true},
		{"last interior row", Horizontal, Point{10, 18}, true},
		{"bottom border", Horizontal, Point{10, 19}, false},
		{"left edge", Horizontal, Point{2, 5}, true},
		{"left border", Horizontal, Point{1, 5}, false},
		{"right edge", Horizontal, Point{17, 5}, true},
		{"right border", Horizontal, Point{18, 5}, false},
		{"vertical top", Vertical, Point{10, 2}, true},
		{"vertical into spawn row", Vertical, Point{10, 1}, false},
		{"vertical bottom", Vertical, Point{10, 17}, true},
		{"vertical into border", Vertical, Point{10, 18}, false},
		{"vertical left column", Vertical, Point{1, 5}, true},
		{"vertical on border column", Vertical, Point{0, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ValidateMove(tt.o, tt.p))
		})
	}
}

func TestMoveDown_ResetsAfterLanding(t *testing.T) {
	s := newTestState(t, RotateChecked)
	start := s.Start()

	for i := 1; i <= 18; i++ {
		s.Apply(MoveDown)
		require.Equal(t, Point{X: 10, Y: i}, s.Shape.Location)
	}

	// the 19th move would put the bar on the bottom border
	out := s.Apply(MoveDown)
	assert.True(t, out.Redraw)
	assert.Equal(t, start, s.Shape)
}

func TestMoveDown_ResetRestoresHorizontal(t *testing.T) {
	s := newTestState(t, RotateChecked)
	s.Shape = Shape{Location: Point{X: 4, Y: 17}, Orientation: Vertical}

	s.Apply(MoveDown)

	assert.Equal(t, Shape{Location: Point{X: 10, Y: 0}, Orientation: Horizontal}, s.Shape)
}

func TestTick_MovesDown(t *testing.T) {
	s := newTestState(t, RotateChecked)

	out := s.Tick()

	assert.True(t, out.Redraw)
	assert.Equal(t, Point{X: 10, Y: 1}, s.Shape.Location)
}

func TestShift_BoundaryIsNoop(t *testing.T) {
	s := newTestState(t, RotateChecked)
	s.Apply(MoveDown)

	for s.Shape.Location.X > 2 {
		s.Apply(MoveLeft)
	}
	before := s.Shape.Footprint()
	s.Apply(MoveLeft)
	assert.Equal(t, before, s.Shape.Footprint())

	for s.Shape.Location.X < 17 {
		s.Apply(MoveRight)
	}
	before = s.Shape.Footprint()
	s.Apply(MoveRight)
	assert.Equal(t, before, s.Shape.Footprint())
}

func TestShift_FromSpawnRowIsNoop(t *testing.T) {
	s := newTestState(t, RotateChecked)

	s.Apply(MoveLeft)
	s.Apply(MoveRight)

	assert.Equal(t, s.Start(), s.Shape)
}

func TestRotate_TwiceRestoresOrientation(t *testing.T) {
	for _, rule := range []RotateRule{RotateChecked, RotateLegacy} {
		t.Run(rule.String(), func(t *testing.T) {
			s := newTestState(t, rule)
			s.Shape.Location = Point{X: 10, Y: 5}
			original := s.Shape

			s.Apply(Rotate)
			assert.Equal(t, Vertical, s.Shape.Orientation)
			assert.Equal(t, original.Location, s.Shape.Location)

			s.Apply(Rotate)
			assert.Equal(t, original, s.Shape)
		})
	}
}

func TestRotate_CheckedRejectsSpawnRowOverlap(t *testing.T) {
	s := newTestState(t, RotateChecked)
	s.Shape.Location = Point{X: 10, Y: 1}

	s.Apply(Rotate)

	assert.Equal(t, Horizontal, s.Shape.Orientation)
}

func TestRotate_LegacyValidatesCurrentFootprint(t *testing.T) {
	s := newTestState(t, RotateLegacy)
	s.Shape.Location = Point{X: 10, Y: 18}

	s.Apply(Rotate)
	assert.Equal(t, Vertical, s.Shape.Orientation)

	// the rotated bar overlaps the bottom border, marking must leave it alone
	marked := s.Board.Mark(s.Shape)
	assert.Len(t, marked, 2)
	assert.Equal(t, Border, s.Board.At(Point{X: 10, Y: 19}))
	s.Board.Clear(marked)
	assert.Equal(t, Border, s.Board.At(Point{X: 10, Y: 19}))
	assert.Equal(t, Blank, s.Board.At(Point{X: 10, Y: 18}))
}

func TestRotate_AtStartIsNoop(t *testing.T) {
	for _, rule := range []RotateRule{RotateChecked, RotateLegacy} {
		s := newTestState(t, rule)
		s.Apply(Rotate)
		assert.Equal(t, s.Start(), s.Shape, rule.String())
	}
}

func TestQuit_StopsGame(t *testing.T) {
	s := newTestState(t, RotateChecked)

	out := s.Apply(Quit)
	assert.False(t, out.Redraw)
	assert.True(t, s.Stopped)

	shape := s.Shape
	assert.False(t, s.Apply(MoveDown).Redraw)
	assert.False(t, s.Tick().Redraw)
	assert.Equal(t, shape, s.Shape)
}

func TestParseRotateRule(t *testing.T) {
	r, err := ParseRotateRule("legacy")
	require.NoError(t, err)
	assert.Equal(t, RotateLegacy, r)

	r, err = ParseRotateRule("checked")
	require.NoError(t, err)
	assert.Equal(t, RotateChecked, r)

	_, err = ParseRotateRule("sideways")
	assert.Error(t, err)
}
