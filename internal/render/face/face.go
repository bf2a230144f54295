package face

import "strconv"

// Kind is how a face is drawn
type Kind int

const (
	// KindPips draws the value as pips
	KindPips Kind = iota

	// KindLabel draws the value as centered text
	KindLabel
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPips:
		return "pips"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Face is the drawable description of one die
type Face struct {
	Value int
	Sides int
	Kind  Kind

	// Pips is set for KindPips
	Pips []Point

	// Label is set for KindLabel
	Label string
}

// Describe decides how a face is drawn. Dice with MaxPipSides sides or
// fewer use pips, larger dice show the decimal value.
// Inputs are not validated.
func Describe(value, sides int) Face {
	if sides <= MaxPipSides {
		return Face{
			Value: value,
			Sides: sides,
			Kind:  KindPips,
			Pips:  Pips(value),
		}
	}

	return Face{
		Value: value,
		Sides: sides,
		Kind:  KindLabel,
		Label: strconv.Itoa(value),
	}
}
