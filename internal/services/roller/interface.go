package roller

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicetray/internal/services/roller Service

// Service defines the interface for configuring, rolling and rendering dice sets
type Service interface {
	// ConfigureTable replaces the sets on a table with SetCount default sets
	ConfigureTable(ctx context.Context, input *ConfigureTableInput) (*ConfigureTableOutput, error)

	// UpdateSet changes the settings of one set on a table
	UpdateSet(ctx context.Context, input *UpdateSetInput) (*UpdateSetOutput, error)

	// DeleteTable removes a table, its sets and their stored rolls
	DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error)

	// GetTable returns a table with its sets in order
	GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error)

	// RollSet rolls a set and stores it as the set's latest roll
	RollSet(ctx context.Context, input *RollSetInput) (*RollSetOutput, error)

	// RollDice makes an ad-hoc roll that is not stored
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// RenderRollSet draws a roll set into an encoded image
	RenderRollSet(ctx context.Context, input *RenderRollSetInput) (*RenderRollSetOutput, error)

	// RenderLatest draws the latest roll of a set
	RenderLatest(ctx context.Context, input *RenderLatestInput) (*RenderLatestOutput, error)

	// RenderFace draws a single die face
	RenderFace(ctx context.Context, input *RenderFaceInput) (*RenderFaceOutput, error)
}
