package models

import (
	"time"
)

// RollSet is the ordered result of rolling every die in a dice set once.
// A new RollSet replaces the previous one for the same set.
type RollSet struct {
	// ID is the unique identifier for the roll
	ID string `json:"id"`

	// SetID is the dice set that was rolled, empty for ad-hoc rolls
	SetID string `json:"set_id,omitempty"`

	// Sides is shared by every die in the set
	Sides int `json:"sides"`

	// Faces are the rolled faces in roll order
	Faces []DieFace `json:"faces"`

	// RolledAt is when the roll was made
	RolledAt time.Time `json:"rolled_at"`
}

// Values returns the face values in roll order
func (r *RollSet) Values() []int {
	values := make([]int, len(r.Faces))
	for i, f := range r.Faces {
		values[i] = f.Value
	}
	return values
}

// Total is the arithmetic sum of all face values
func (r *RollSet) Total() int {
	total := 0
	for _, f := range r.Faces {
		total += f.Value
	}
	return total
}

// HasTotal reports whether a total is shown, which is only for multi-die rolls
func (r *RollSet) HasTotal() bool {
	return len(r.Faces) > 1
}

// NewRollSet builds a RollSet from raw values
func NewRollSet(id, setID string, sides int, values []int, rolledAt time.Time) *RollSet {
	faces := make([]DieFace, len(values))
	for i, v := range values {
		faces[i] = DieFace{Value: v, Sides: sides}
	}

	return &RollSet{
		ID:       id,
		SetID:    setID,
		Sides:    sides,
		Faces:    faces,
		RolledAt: rolledAt,
	}
}
