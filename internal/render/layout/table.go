package layout

const (
	// MaxTableRows is how many sets stack in one column of the results view
	MaxTableRows = 3

	// ScreenMarginWidth and ScreenMarginHeight are left free around the results view
	ScreenMarginWidth  = 50
	ScreenMarginHeight = 100
)

// TableGeometry places the dice sets of a table on screen
type TableGeometry struct {
	Rows    int
	Columns int

	// Width and Height are the results view size
	Width  float64
	Height float64

	// CellWidth and CellHeight are the per-set container
	CellWidth  float64
	CellHeight float64
}

// Table lays out setCount sets column-major, MaxTableRows to a column,
// inside the screen minus its margins. A screen no larger than its
// margins gets zero-sized cells.
func Table(setCount int, screenWidth, screenHeight float64) TableGeometry {
	if setCount <= 0 {
		return TableGeometry{}
	}

	rows := min(setCount, MaxTableRows)
	columns := (setCount + MaxTableRows - 1) / MaxTableRows

	width := max(screenWidth-ScreenMarginWidth, 0)
	height := max(screenHeight-ScreenMarginHeight, 0)

	return TableGeometry{
		Rows:       rows,
		Columns:    columns,
		Width:      width,
		Height:     height,
		CellWidth:  width / float64(columns),
		CellHeight: height / float64(rows),
	}
}

// Position returns where the i-th set sits
func (t TableGeometry) Position(i int) (row, column int) {
	return i % MaxTableRows, i / MaxTableRows
}
