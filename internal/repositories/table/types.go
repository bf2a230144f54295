package table

import "github.com/KirkDiggler/dicetray/internal/models"

type SaveTableInput struct {
	Table *models.Table
}

type GetTableInput struct {
	TableID string
}

type DeleteTableInput struct {
	TableID string
}

type DeleteTableOutput struct {
	// RemovedSetIDs are the sets deleted with the table
	RemovedSetIDs []string
}

type ReplaceSetsInput struct {
	Table *models.Table
	Sets  []*models.DiceSet
}

type ReplaceSetsOutput struct {
	// RemovedSetIDs are the sets that were on the table before
	RemovedSetIDs []string
}

type SaveSetInput struct {
	Set *models.DiceSet
}

type GetSetInput struct {
	SetID string
}

type GetSetByPositionInput struct {
	TableID  string
	Position int
}

type GetSetsByTableInput struct {
	TableID string
}

type GetSetsByTableOutput struct {
	Sets []*models.DiceSet
}
