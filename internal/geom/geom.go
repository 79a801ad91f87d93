// Package geom provides 2D math for the maze simulation: continuous
// positions in tile units, integer grid cells, axis-aligned bounding
// boxes and movement directions. It contains no external dependencies
// (especially no Bubble Tea) to keep engine logic pure and testable.
package geom

import "math"

// Vec is a continuous position or displacement in tile units.
// Row grows downward, Col grows rightward. Fractional values represent
// sub-tile positions. Vec is an immutable value type; all arithmetic
// returns a new Vec.
type Vec struct {
	Row, Col float64
}

// V creates a vector from row and column coordinates.
func V(row, col float64) Vec {
	return Vec{Row: row, Col: col}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{Row: v.Row + o.Row, Col: v.Col + o.Col}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{Row: v.Row - o.Row, Col: v.Col - o.Col}
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{Row: v.Row * f, Col: v.Col * f}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.Row*v.Row + v.Col*v.Col)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Norm returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.Row == 0 && v.Col == 0
}

// Cell returns the grid cell containing v.
func (v Vec) Cell() Cell {
	return Cell{Row: int(math.Floor(v.Row)), Col: int(math.Floor(v.Col))}
}

// Cell is an integer grid coordinate.
type Cell struct {
	Row, Col int
}

// C creates a cell from row and column indices.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Vec returns the continuous position of the cell's top-left corner.
func (c Cell) Vec() Vec {
	return Vec{Row: float64(c.Row), Col: float64(c.Col)}
}

// Rect is an axis-aligned bounding box in tile units used for collision
// detection. Pos is the top-left corner; Rows and Cols are the extents.
type Rect struct {
	Pos  Vec
	Rows float64
	Cols float64
}

// R creates a rectangle with the given top-left corner and extents.
func R(pos Vec, rows, cols float64) Rect {
	return Rect{Pos: pos, Rows: rows, Cols: cols}
}

// Bottom returns the row coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Row + r.Rows
}

// Right returns the column coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.Col + r.Cols
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{Row: r.Pos.Row + r.Rows/2, Col: r.Pos.Col + r.Cols/2}
}

// Intersects reports whether r overlaps o. Touching edges do not count
// as an overlap, so two entities on adjacent tiles never collide.
func (r Rect) Intersects(o Rect) bool {
	if r.Pos.Col >= o.Right() || o.Pos.Col >= r.Right() {
		return false
	}
	if r.Pos.Row >= o.Bottom() || o.Pos.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return r.Pos.Row <= o.Pos.Row &&
		r.Pos.Col <= o.Pos.Col &&
		r.Bottom() >= o.Bottom() &&
		r.Right() >= o.Right()
}

// Cells returns every grid cell the rectangle overlaps, in row-major
// order. A unit rect at an exact integer position overlaps exactly one
// cell.
func (r Rect) Cells() []Cell {
	r0 := int(math.Floor(r.Pos.Row))
	c0 := int(math.Floor(r.Pos.Col))
	r1 := int(math.Ceil(r.Bottom()))
	c1 := int(math.Ceil(r.Right()))

	cells := make([]Cell, 0, (r1-r0)*(c1-c0))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// Dir is one of the eight movement directions, or none.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

const diag = math.Sqrt2 / 2

// dirVecs maps directions to unit displacement vectors. Diagonals are
// normalized so diagonal movement is not faster than cardinal movement.
var dirVecs = [...]Vec{
	DirNone:      {},
	DirUp:        {Row: -1},
	DirDown:      {Row: 1},
	DirLeft:      {Col: -1},
	DirRight:     {Col: 1},
	DirUpLeft:    {Row: -diag, Col: -diag},
	DirUpRight:   {Row: -diag, Col: diag},
	DirDownLeft:  {Row: diag, Col: -diag},
	DirDownRight: {Row: diag, Col: diag},
}

// Vec returns the unit displacement vector for the direction.
func (d Dir) Vec() Vec {
	if d < 0 || int(d) >= len(dirVecs) {
		return Vec{}
	}
	return dirVecs[d]
}

// Opposite returns the reversed direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUpLeft:
		return DirDownRight
	case DirUpRight:
		return DirDownLeft
	case DirDownLeft:
		return DirUpRight
	case DirDownRight:
		return DirUpLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUpLeft:
		return "UpLeft"
	case DirUpRight:
		return "UpRight"
	case DirDownLeft:
		return "DownLeft"
	case DirDownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// Cardinals lists the four axis directions in a fixed order, used for
// explosion propagation and enemy pathing.
var Cardinals = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
