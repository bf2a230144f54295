package models

// Dice bounds accepted by the roller
const (
	MinSides     = 2
	MaxSides     = 50
	MinDiceCount = 1
	MaxDiceCount = 12
	MinSetCount  = 1
	MaxSetCount  = 12
)

// DieFace is the result showing on a single die
type DieFace struct {
	// Value is the rolled value, 1 <= Value <= Sides
	Value int `json:"value"`

	// Sides is the number of sides on the die
	Sides int `json:"sides"`
}

// Valid reports whether the face satisfies 1 <= Value <= Sides and Sides >= MinSides
func (f DieFace) Valid() bool {
	return f.Sides >= MinSides && f.Value >= 1 && f.Value <= f.Sides
}
