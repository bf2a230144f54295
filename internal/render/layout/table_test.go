package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tests := []struct {
		sets    int
		rows    int
		columns int
	}{
		{sets: 1, rows: 1, columns: 1},
		{sets: 2, rows: 2, columns: 1},
		{sets: 3, rows: 3, columns: 1},
		{sets: 4, rows: 3, columns: 2},
		{sets: 12, rows: 3, columns: 4},
	}

	for _, tt := range tests {
		g := Table(tt.sets, 1920, 1080)

		assert.Equal(t, tt.rows, g.Rows, "sets=%d", tt.sets)
		assert.Equal(t, tt.columns, g.Columns, "sets=%d", tt.sets)
		assert.Equal(t, 1870.0, g.Width)
		assert.Equal(t, 980.0, g.Height)
		assert.InDelta(t, 1870.0/float64(tt.columns), g.CellWidth, 1e-9)
		assert.InDelta(t, 980.0/float64(tt.rows), g.CellHeight, 1e-9)
	}
}

func TestTable_Position(t *testing.T) {
	g := Table(7, 1920, 1080)

	row, col := g.Position(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})

	row, col = g.Position(4)
	assert.Equal(t, [2]int{1, 1}, [2]int{row, col})

	row, col = g.Position(6)
	assert.Equal(t, [2]int{0, 2}, [2]int{row, col})
}

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, TableGeometry{}, Table(0, 1920, 1080))
}

func TestTable_ScreenWithinMargins(t *testing.T) {
	g := Table(4, 30, 80)

	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 2, g.Columns)
	assert.Zero(t, g.Width)
	assert.Zero(t, g.Height)
	assert.Zero(t, g.CellWidth)
	assert.Zero(t, g.CellHeight)

	g = Table(1, ScreenMarginWidth, ScreenMarginHeight)
	assert.Zero(t, g.CellWidth)
	assert.Zero(t, g.CellHeight)
}
