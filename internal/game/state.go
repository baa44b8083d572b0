package game

import "fmt"

// RotateRule selects which footprint a rotation is validated against
type RotateRule uint8

const (
	// RotateChecked validates the footprint the shape would have after rotating
	RotateChecked RotateRule = iota
	// RotateLegacy validates the current footprint against the current
	// orientation, which lets a shape rotate partly into the border rows
	RotateLegacy
)

// ParseRotateRule maps a config value to a RotateRule
func ParseRotateRule(s string) (RotateRule, error) {
	switch s {
	case "checked", "":
		return RotateChecked, nil
	case "legacy":
		return RotateLegacy, nil
	default:
		return 0, fmt.Errorf("unknown rotate rule %q (want checked or legacy)", s)
	}
}

func (r RotateRule) String() string {
	if r == RotateLegacy {
		return "legacy"
	}
	return "checked"
}

// Outcome reports what the caller should do after a transition
type Outcome struct {
	Redraw bool
}

// State is the whole game: the board, the falling shape and whether the
// game has been stopped
type State struct {
	Board   *Board
	Shape   Shape
	Stopped bool

	rotate RotateRule
}

// NewState builds a running game on a fresh width x height board with the
// shape at its start position
func NewState(width, height int, rule RotateRule) (*State, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	s := &State{Board: board, rotate: rule}
	s.reset()
	return s, nil
}

// Start returns the spawn position: horizontal, centered on the top row
func (s *State) Start() Shape {
	return Shape{
		Location:    Point{X: s.Board.Width() / 2, Y: 0},
		Orientation: Horizontal,
	}
}

// ValidateMove reports whether a shape with orientation o centered at p
// lies entirely inside the board interior. Every transition goes through it.
func (s *State) ValidateMove(o Orientation, p Point) bool {
	for _, c := range footprint(o, p) {
		if !s.Board.interior(c) {
			return false
		}
	}
	return true
}

// Apply runs one command against the state. A stopped game ignores
// everything.
func (s *State) Apply(cmd Command) Outcome {
	if s.Stopped {
		return Outcome{}
	}

	switch cmd {
	case MoveDown:
		s.moveDown()
	case MoveRight:
		s.shift(1)
	case MoveLeft:
		s.shift(-1)
	case Rotate:
		s.rotateShape()
	case Quit:
		s.Stopped = true
		return Outcome{}
	default:
		return Outcome{}
	}
	return Outcome{Redraw: true}
}

// Tick advances the shape one row, the same as a MoveDown command
func (s *State) Tick() Outcome {
	if s.Stopped {
		return Outcome{}
	}
	s.moveDown()
	return Outcome{Redraw: true}
}

func (s *State) moveDown() {
	next := s.Shape.Location
	next.Y++
	if s.ValidateMove(s.Shape.Orientation, next) {
		s.Shape.Location = next
		return
	}
	// Landing anywhere sends the shape back to the top, valid or not
	s.reset()
}

func (s *State) shift(dx int) {
	next := s.Shape.Location
	next.X += dx
	if s.ValidateMove(s.Shape.Orientation, next) {
		s.Shape.Location = next
	}
}

func (s *State) rotateShape() {
	loc := s.Shape.Location
	o := s.Shape.Orientation

	var legal bool
	switch s.rotate {
	case RotateLegacy:
		legal = s.ValidateMove(o, loc)
	default:
		legal = s.ValidateMove(o.Flip(), loc)
	}
	if legal {
		s.Shape.Orientation = o.Flip()
	}
}

func (s *State) reset() {
	s.Shape = s.Start()
}
