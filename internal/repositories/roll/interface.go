package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicetray/internal/repositories/roll Repository

import (
	"context"

	"github.com/KirkDiggler/dicetray/internal/models"
)

// Repository defines the interface for roll persistence.
// Only the latest roll of each dice set is kept.
type Repository interface {
	// SaveRollSet stores a roll as the latest for its set, replacing the previous one
	SaveRollSet(ctx context.Context, input *SaveRollSetInput) error

	// GetLatestRollSet retrieves the latest roll for a set
	GetLatestRollSet(ctx context.Context, input *GetLatestRollSetInput) (*models.RollSet, error)

	// DeleteRollSets removes the latest rolls of the given sets
	DeleteRollSets(ctx context.Context, input *DeleteRollSetsInput) error
}
