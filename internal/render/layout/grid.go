package layout

import "math"

const (
	// DefaultMaxPerRow is how many dice fit on one row of a set
	DefaultMaxPerRow = 6

	// DefaultWidthFactor is the share of the cell width used for dice
	DefaultWidthFactor = 0.9

	// DefaultHeightFactor is the share of the cell height used for dice
	DefaultHeightFactor = 0.5
)

// Geometry is the dice grid for one render. It is derived from the
// container size each time and never stored.
type Geometry struct {
	Rows    int
	Columns int

	// CellWidth and CellHeight are the container dimensions the grid was fitted into
	CellWidth  float64
	CellHeight float64

	// DieSize is the side of one die in pixels
	DieSize float64
}

// Width is the grid extent in pixels
func (g Geometry) Width() float64 {
	return g.DieSize * float64(g.Columns)
}

// Height is the grid extent in pixels
func (g Geometry) Height() float64 {
	return g.DieSize * float64(g.Rows)
}

// Grid fits diceCount dice into the widthFactor x heightFactor share of a
// container. Columns are capped at maxPerRow and the die size is set by
// whichever dimension binds first.
func Grid(diceCount, maxPerRow int, containerWidth, containerHeight, widthFactor, heightFactor float64) Geometry {
	if diceCount <= 0 {
		return Geometry{}
	}
	if maxPerRow <= 0 {
		maxPerRow = DefaultMaxPerRow
	}

	columns := min(maxPerRow, diceCount)
	rows := (diceCount + maxPerRow - 1) / maxPerRow

	size := math.Min(
		containerWidth*widthFactor/float64(columns),
		containerHeight*heightFactor/float64(rows),
	)
	if size < 0 {
		size = 0
	}

	return Geometry{
		Rows:       rows,
		Columns:    columns,
		CellWidth:  containerWidth,
		CellHeight: containerHeight,
		DieSize:    size,
	}
}

// DefaultGrid is Grid with the default row cap and area factors
func DefaultGrid(diceCount int, containerWidth, containerHeight float64) Geometry {
	return Grid(diceCount, DefaultMaxPerRow, containerWidth, containerHeight, DefaultWidthFactor, DefaultHeightFactor)
}

// Cell returns the row and column of the i-th die, row-major
func (g Geometry) Cell(i int) (row, column int) {
	if g.Columns <= 0 {
		return 0, 0
	}
	return i / g.Columns, i % g.Columns
}
