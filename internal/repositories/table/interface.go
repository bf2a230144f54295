package table

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicetray/internal/repositories/table Repository

import (
	"context"

	"github.com/KirkDiggler/dicetray/internal/models"
)

// Repository defines the interface for table and dice set persistence
type Repository interface {
	// SaveTable persists a table
	SaveTable(ctx context.Context, input *SaveTableInput) error

	// GetTable retrieves a table by ID
	GetTable(ctx context.Context, input *GetTableInput) (*models.Table, error)

	// DeleteTable removes a table and all of its sets
	DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error)

	// ReplaceSets stores a table together with a fresh list of sets, dropping the old ones
	ReplaceSets(ctx context.Context, input *ReplaceSetsInput) (*ReplaceSetsOutput, error)

	// SaveSet persists a single dice set
	SaveSet(ctx context.Context, input *SaveSetInput) error

	// GetSet retrieves a dice set by ID
	GetSet(ctx context.Context, input *GetSetInput) (*models.DiceSet, error)

	// GetSetByPosition retrieves the set at a position on a table
	GetSetByPosition(ctx context.Context, input *GetSetByPositionInput) (*models.DiceSet, error)

	// GetSetsByTable retrieves all sets on a table ordered by position
	GetSetsByTable(ctx context.Context, input *GetSetsByTableInput) (*GetSetsByTableOutput, error)
}
