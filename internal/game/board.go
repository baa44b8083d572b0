package game

import "fmt"

// Cell is the content of a single grid position
type Cell uint8

const (
	Blank Cell = iota
	Border
	ShapeMark
)

// Cell glyphs as drawn on screen
const (
	GlyphBlank  = ' '
	GlyphBorder = '*'
	GlyphShape  = '-'
)

// Glyph returns the character used to draw the cell
func (c Cell) Glyph() byte {
	switch c {
	case Border:
		return GlyphBorder
	case ShapeMark:
		return GlyphShape
	default:
		return GlyphBlank
	}
}

// Minimum board dimensions that leave room for a shape in both orientations
const (
	MinWidth  = ShapeSize + 2
	MinHeight = ShapeSize + 2
)

// Board is a fixed grid framed by a border on the left, right and bottom.
// Only cells under the shape ever change, and border cells never do.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard builds a board with its border laid out and everything else blank
func NewBoard(width, height int) (*Board, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("board %dx%d is smaller than the minimum %dx%d",
			width, height, MinWidth, MinHeight)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || x == width-1 || y == height-1 {
				b.cells[y*width+x] = Border
			}
		}
	}
	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// At returns the cell at p. Positions outside the grid read as Border.
func (b *Board) At(p Point) Cell {
	if !b.inGrid(p) {
		return Border
	}
	return b.cells[p.Y*b.width+p.X]
}

// Row returns the glyphs of row y
func (b *Board) Row(y int) []byte {
	row := make([]byte, b.width)
	for x := range row {
		row[x] = b.cells[y*b.width+x].Glyph()
	}
	return row
}

// Mark sets every non-border cell of the shape's footprint to ShapeMark
// and returns the cells it changed
func (b *Board) Mark(s Shape) []Point {
	marked := make([]Point, 0, ShapeSize)
	for _, p := range s.Footprint() {
		if !b.inGrid(p) || b.At(p) == Border {
			continue
		}
		b.cells[p.Y*b.width+p.X] = ShapeMark
		marked = append(marked, p)
	}
	return marked
}

// Clear resets the given cells to Blank, skipping border cells
func (b *Board) Clear(points []Point) {
	for _, p := range points {
		if !b.inGrid(p) || b.At(p) == Border {
			continue
		}
		b.cells[p.Y*b.width+p.X] = Blank
	}
}

// interior bounds, inclusive. Row 0 is the spawn row and is not interior.
func (b *Board) interior(p Point) bool {
	return p.X >= 1 && p.X <= b.width-2 && p.Y >= 1 && p.Y <= b.height-2
}

func (b *Board) inGrid(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}
