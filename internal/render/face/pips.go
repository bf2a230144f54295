package face

// Point is a position on the die face in unit coordinates.
// Both axes run from 0 to Extent and y points up.
type Point struct {
	X float64
	Y float64
}

const (
	// Extent is the side length of the unit face square
	Extent = 0.5

	// PipRadius is the pip radius in unit coordinates
	PipRadius = 0.04

	// MaxPipSides is the largest die drawn with pips instead of a number
	MaxPipSides = 6
)

var centerPip = Point{X: 0.25, Y: 0.25}

var pipLayouts = map[int][]Point{
	1: {centerPip},
	2: {{0.1, 0.4}, {0.4, 0.1}},
	3: {{0.1, 0.4}, centerPip, {0.4, 0.1}},
	4: {{0.1, 0.4}, {0.4, 0.4}, {0.1, 0.1}, {0.4, 0.1}},
	5: {{0.1, 0.4}, {0.4, 0.4}, {0.1, 0.1}, {0.4, 0.1}, centerPip},
	6: {{0.1, 0.4}, {0.4, 0.4}, {0.1, 0.25}, {0.4, 0.25}, {0.1, 0.1}, {0.4, 0.1}},
}

// Pips returns the pip positions for a face value.
// Values outside 1..6 get a single centered pip.
func Pips(value int) []Point {
	layout, ok := pipLayouts[value]
	if !ok {
		return []Point{centerPip}
	}

	out := make([]Point, len(layout))
	copy(out, layout)
	return out
}
