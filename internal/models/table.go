package models

import (
	"time"
)

// Table is a group of dice sets rolled together, keyed by a Discord channel or HTTP table id
type Table struct {
	// ID is the unique identifier for the table
	ID string `json:"id"`

	// SetIDs are the dice sets on the table, in display order
	SetIDs []string `json:"set_ids"`

	// Locale selects the language used for user-facing text
	Locale string `json:"locale"`

	// CreatedAt is when the table was configured
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the table was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
