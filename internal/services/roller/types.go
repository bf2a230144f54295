package roller

import (
	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/board"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
	rollRepo "github.com/KirkDiggler/dicetray/internal/repositories/roll"
	tableRepo "github.com/KirkDiggler/dicetray/internal/repositories/table"
)

const (
	// MaxFaceSize is the largest single face RenderFace will draw
	MaxFaceSize = 2048

	// MaxContainerSize is the largest container width or height RenderRollSet accepts
	MaxContainerSize = board.MaxCanvasSize
)

// Config holds configuration for the roller service
type Config struct {
	// Supersample is the render scale before downsampling, 1 disables it.
	// Values above board.MaxSupersample are capped.
	Supersample int

	// MaxPerRow caps the dice per grid row, zero uses the layout default
	MaxPerRow int

	// Repository dependencies
	TableRepo tableRepo.Repository
	RollRepo  rollRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Renderer      *face.Renderer
}

// ConfigureTableInput contains parameters for configuring a table
type ConfigureTableInput struct {
	// TableID is the Discord channel ID or HTTP table ID
	TableID string

	// SetCount is how many sets the table gets
	SetCount int

	// Locale is stored on the table, empty keeps the current one
	Locale string
}

// ConfigureTableOutput contains the configured table
type ConfigureTableOutput struct {
	Table *models.Table
	Sets  []*models.DiceSet
}

// UpdateSetInput contains parameters for updating a set.
// Nil fields are left unchanged.
type UpdateSetInput struct {
	TableID  string
	Position int

	Name      *string
	DiceCount *int
	DiceSides *int
	DiceColor *string
	MarkColor *string
}

// UpdateSetOutput contains the updated set
type UpdateSetOutput struct {
	Set *models.DiceSet
}

// DeleteTableInput contains parameters for deleting a table
type DeleteTableInput struct {
	TableID string
}

// DeleteTableOutput lists the sets removed with the table
type DeleteTableOutput struct {
	RemovedSetIDs []string
}

// GetTableInput contains parameters for getting a table
type GetTableInput struct {
	TableID string
}

// GetTableOutput contains a table and its sets ordered by position
type GetTableOutput struct {
	Table *models.Table
	Sets  []*models.DiceSet
}

// RollSetInput contains parameters for rolling a set
type RollSetInput struct {
	TableID  string
	Position int
}

// RollSetOutput contains the result of rolling a set
type RollSetOutput struct {
	Set     *models.DiceSet
	RollSet *models.RollSet

	// Total is the sum of all faces
	Total int

	// ShowTotal is true when more than one die was rolled
	ShowTotal bool
}

// RollDiceInput contains parameters for an ad-hoc roll
type RollDiceInput struct {
	Sides int
	Count int
}

// RollDiceOutput contains the result of an ad-hoc roll
type RollDiceOutput struct {
	RollSet   *models.RollSet
	Total     int
	ShowTotal bool
}

// RenderRollSetInput contains parameters for rendering a roll
type RenderRollSetInput struct {
	RollSet *models.RollSet

	// DiceColor and MarkColor default to white and black
	DiceColor string
	MarkColor string

	// ContainerWidth and ContainerHeight are the pixels the grid is fitted into
	ContainerWidth  int
	ContainerHeight int

	// Format is png or webp, empty means png
	Format string
}

// RenderRollSetOutput contains the encoded image
type RenderRollSetOutput struct {
	Image       []byte
	ContentType string
	Geometry    layout.Geometry
}

// RenderLatestInput contains parameters for rendering the latest roll of a set
type RenderLatestInput struct {
	TableID         string
	Position        int
	ContainerWidth  int
	ContainerHeight int
	Format          string
}

// RenderLatestOutput contains the rendered latest roll
type RenderLatestOutput struct {
	Set         *models.DiceSet
	RollSet     *models.RollSet
	Image       []byte
	ContentType string
	Geometry    layout.Geometry
}

// RenderFaceInput contains parameters for rendering a single face
type RenderFaceInput struct {
	Value     int
	Sides     int
	DiceColor string
	MarkColor string

	// Size is the square image side in pixels
	Size   int
	Format string
}

// RenderFaceOutput contains the encoded face
type RenderFaceOutput struct {
	Image       []byte
	ContentType string
}
