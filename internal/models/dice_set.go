package models

import (
	"time"
)

// Defaults for a freshly configured dice set
const (
	DefaultDiceCount = 1
	DefaultDiceSides = 6
	DefaultDiceColor = "white"
	DefaultMarkColor = "black"
)

// DiceSet is a named group of identical dice rolled together
type DiceSet struct {
	// ID is the unique identifier for the set
	ID string `json:"id"`

	// TableID is the table the set belongs to
	TableID string `json:"table_id"`

	// Position is the 0-based slot on the table
	Position int `json:"position"`

	// Name is the display name of the set
	Name string `json:"name"`

	// DiceCount is how many dice are rolled
	DiceCount int `json:"dice_count"`

	// DiceSides is the number of sides on every die
	DiceSides int `json:"dice_sides"`

	// DiceColor is the die background color
	DiceColor string `json:"dice_color"`

	// MarkColor is the pip or number color
	MarkColor string `json:"mark_color"`

	// CreatedAt is when the set was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the set was last changed
	UpdatedAt time.Time `json:"updated_at"`
}
