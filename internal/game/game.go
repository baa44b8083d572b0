package game

// Command is a single gameplay control as it travels over the byte stream.
type Command byte

// Gameplay controls
const (
	MoveLeft  Command = 'a'
	MoveRight Command = 'd'
	MoveDown  Command = 's'
	Rotate    Command = 'w'
	Quit      Command = 'q'
)

// IsGameplayControl reports whether b is one of the recognized commands
func IsGameplayControl(b byte) bool {
	switch Command(b) {
	case MoveLeft, MoveRight, MoveDown, Rotate, Quit:
		return true
	}
	return false
}

// Parse converts a raw byte into a Command
func Parse(b byte) (Command, bool) {
	if !IsGameplayControl(b) {
		return 0, false
	}
	return Command(b), true
}

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case MoveDown:
		return "MoveDown"
	case Rotate:
		return "Rotate"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a grid coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Orientation is the axis the shape extends along
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Flip returns the opposite orientation
func (o Orientation) Flip() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ShapeSize is the number of cells a shape occupies
const ShapeSize = 3

// Shape is a three-cell bar centered at Location
type Shape struct {
	Location    Point
	Orientation Orientation
}

// Footprint returns the cells the shape covers, in reading order
func (s Shape) Footprint() [ShapeSize]Point {
	return footprint(s.Orientation, s.Location)
}

func footprint(o Orientation, p Point) [ShapeSize]Point {
	var cells [ShapeSize]Point
	for i := range cells {
		offset := i - ShapeSize/2
		if o == Horizontal {
			cells[i] = Point{X: p.X + offset, Y: p.Y}
		} else {
			cells[i] = Point{X: p.X, Y: p.Y + offset}
		}
	}
	return cells
}
