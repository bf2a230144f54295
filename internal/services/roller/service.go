package roller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/board"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
	"github.com/KirkDiggler/dicetray/internal/render/palette"
	rollRepo "github.com/KirkDiggler/dicetray/internal/repositories/roll"
	tableRepo "github.com/KirkDiggler/dicetray/internal/repositories/table"
)

// service implements the Service interface
type service struct {
	supersample   int
	maxPerRow     int
	tableRepo     tableRepo.Repository
	rollRepo      rollRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	renderer      *face.Renderer
}

// New creates a new roller service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TableRepo == nil {
		return nil, ErrNilTableRepo
	}

	if cfg.RollRepo == nil {
		return nil, ErrNilRollRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	supersample := cfg.Supersample
	if supersample < 1 {
		supersample = 1
	}
	if supersample > board.MaxSupersample {
		supersample = board.MaxSupersample
	}

	maxPerRow := cfg.MaxPerRow
	if maxPerRow <= 0 {
		maxPerRow = layout.DefaultMaxPerRow
	}

	return &service{
		supersample:   supersample,
		maxPerRow:     maxPerRow,
		tableRepo:     cfg.TableRepo,
		rollRepo:      cfg.RollRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		renderer:      cfg.Renderer,
	}, nil
}

// ConfigureTable replaces the sets on a table with SetCount default sets
func (s *service) ConfigureTable(ctx context.Context, input *ConfigureTableInput) (*ConfigureTableOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	if input.SetCount < models.MinSetCount || input.SetCount > models.MaxSetCount {
		return nil, ErrInvalidSetCount
	}

	now := s.clock.Now()

	table, err := s.tableRepo.GetTable(ctx, &tableRepo.GetTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		if !errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, fmt.Errorf("failed to get table: %w", err)
		}
		table = &models.Table{
			ID:        input.TableID,
			CreatedAt: now,
		}
	}

	if input.Locale != "" {
		table.Locale = input.Locale
	}
	table.UpdatedAt = now

	sets := make([]*models.DiceSet, input.SetCount)
	table.SetIDs = make([]string, input.SetCount)
	for i := range sets {
		sets[i] = &models.DiceSet{
			ID:        s.uuidGenerator.NewUUID(),
			TableID:   input.TableID,
			Position:  i,
			Name:      fmt.Sprintf("Set %d", i+1),
			DiceCount: models.DefaultDiceCount,
			DiceSides: models.DefaultDiceSides,
			DiceColor: models.DefaultDiceColor,
			MarkColor: models.DefaultMarkColor,
			CreatedAt: now,
			UpdatedAt: now,
		}
		table.SetIDs[i] = sets[i].ID
	}

	replaced, err := s.tableRepo.ReplaceSets(ctx, &tableRepo.ReplaceSetsInput{
		Table: table,
		Sets:  sets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save table: %w", err)
	}

	// Rolls of the removed sets can never be shown again
	if len(replaced.RemovedSetIDs) > 0 {
		err = s.rollRepo.DeleteRollSets(ctx, &rollRepo.DeleteRollSetsInput{
			SetIDs: replaced.RemovedSetIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to clear old rolls: %w", err)
		}
	}

	return &ConfigureTableOutput{
		Table: table,
		Sets:  sets,
	}, nil
}

// UpdateSet validates and applies the non-nil fields of input
func (s *service) UpdateSet(ctx context.Context, input *UpdateSetInput) (*UpdateSetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	if input.DiceCount != nil {
		if err := validateDiceCount(*input.DiceCount); err != nil {
			return nil, err
		}
	}

	if input.DiceSides != nil {
		if err := validateSides(*input.DiceSides); err != nil {
			return nil, err
		}
	}

	if input.DiceColor != nil {
		if _, err := parseColor(*input.DiceColor, models.DefaultDiceColor); err != nil {
			return nil, err
		}
	}

	if input.MarkColor != nil {
		if _, err := parseColor(*input.MarkColor, models.DefaultMarkColor); err != nil {
			return nil, err
		}
	}

	set, err := s.getSet(ctx, input.TableID, input.Position)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			set.Name = name
		}
	}

	if input.DiceCount != nil {
		set.DiceCount = *input.DiceCount
	}

	if input.DiceSides != nil {
		set.DiceSides = *input.DiceSides
	}

	if input.DiceColor != nil && strings.TrimSpace(*input.DiceColor) != "" {
		set.DiceColor = strings.TrimSpace(*input.DiceColor)
	}

	if input.MarkColor != nil && strings.TrimSpace(*input.MarkColor) != "" {
		set.MarkColor = strings.TrimSpace(*input.MarkColor)
	}

	set.UpdatedAt = s.clock.Now()

	if err := s.tableRepo.SaveSet(ctx, &tableRepo.SaveSetInput{Set: set}); err != nil {
		return nil, fmt.Errorf("failed to save set: %w", err)
	}

	if err := s.touchTable(ctx, input.TableID, set.UpdatedAt); err != nil {
		return nil, err
	}

	return &UpdateSetOutput{
		Set: set,
	}, nil
}

// DeleteTable removes a table with its sets and clears their latest rolls
func (s *service) DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	deleted, err := s.tableRepo.DeleteTable(ctx, &tableRepo.DeleteTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to delete table: %w", err)
	}

	if len(deleted.RemovedSetIDs) > 0 {
		err = s.rollRepo.DeleteRollSets(ctx, &rollRepo.DeleteRollSetsInput{
			SetIDs: deleted.RemovedSetIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to clear rolls: %w", err)
		}
	}

	return &DeleteTableOutput{
		RemovedSetIDs: deleted.RemovedSetIDs,
	}, nil
}

// GetTable returns a table with its sets in order
func (s *service) GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	table, err := s.tableRepo.GetTable(ctx, &tableRepo.GetTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	setsOutput, err := s.tableRepo.GetSetsByTable(ctx, &tableRepo.GetSetsByTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sets: %w", err)
	}

	return &GetTableOutput{
		Table: table,
		Sets:  setsOutput.Sets,
	}, nil
}

// RollSet rolls every die in a set and stores the result as its latest roll
func (s *service) RollSet(ctx context.Context, input *RollSetInput) (*RollSetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	set, err := s.getSet(ctx, input.TableID, input.Position)
	if err != nil {
		return nil, err
	}

	values := dice.RollN(s.diceRoller, set.DiceSides, set.DiceCount)
	rollSet := models.NewRollSet(s.uuidGenerator.NewUUID(), set.ID, set.DiceSides, values, s.clock.Now())

	if err := s.rollRepo.SaveRollSet(ctx, &rollRepo.SaveRollSetInput{RollSet: rollSet}); err != nil {
		return nil, fmt.Errorf("failed to save roll: %w", err)
	}

	return &RollSetOutput{
		Set:       set,
		RollSet:   rollSet,
		Total:     rollSet.Total(),
		ShowTotal: rollSet.HasTotal(),
	}, nil
}

// RollDice rolls Count dice of Sides sides without storing them
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateSides(input.Sides); err != nil {
		return nil, err
	}

	if err := validateDiceCount(input.Count); err != nil {
		return nil, err
	}

	values := dice.RollN(s.diceRoller, input.Sides, input.Count)
	rollSet := models.NewRollSet(s.uuidGenerator.NewUUID(), "", input.Sides, values, s.clock.Now())

	return &RollDiceOutput{
		RollSet:   rollSet,
		Total:     rollSet.Total(),
		ShowTotal: rollSet.HasTotal(),
	}, nil
}

// RenderRollSet fits the roll into the container and encodes it
func (s *service) RenderRollSet(ctx context.Context, input *RenderRollSetInput) (*RenderRollSetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RollSet == nil {
		return nil, ErrNilRollSet
	}

	if !validContainer(input.ContainerWidth, input.ContainerHeight) {
		return nil, ErrInvalidContainer
	}

	for _, f := range input.RollSet.Faces {
		if !f.Valid() {
			return nil, ErrInvalidRollSet
		}
	}

	format, err := parseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	background, err := parseColor(input.DiceColor, models.DefaultDiceColor)
	if err != nil {
		return nil, err
	}

	mark, err := parseColor(input.MarkColor, models.DefaultMarkColor)
	if err != nil {
		return nil, err
	}

	geometry := layout.Grid(
		len(input.RollSet.Faces),
		s.maxPerRow,
		float64(input.ContainerWidth),
		float64(input.ContainerHeight),
		layout.DefaultWidthFactor,
		layout.DefaultHeightFactor,
	)

	img := board.Compose(s.renderer, input.RollSet, board.Options{
		Geometry:    geometry,
		Background:  background,
		Mark:        mark,
		Supersample: s.supersample,
		Gutter:      board.DefaultGutter,
	})

	var buf bytes.Buffer
	if err := board.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderRollSetOutput{
		Image:       buf.Bytes(),
		ContentType: format.ContentType(),
		Geometry:    geometry,
	}, nil
}

// RenderLatest loads the latest roll of a set and renders it in the set colors
func (s *service) RenderLatest(ctx context.Context, input *RenderLatestInput) (*RenderLatestOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TableID == "" {
		return nil, ErrMissingTableID
	}

	set, err := s.getSet(ctx, input.TableID, input.Position)
	if err != nil {
		return nil, err
	}

	rollSet, err := s.rollRepo.GetLatestRollSet(ctx, &rollRepo.GetLatestRollSetInput{
		SetID: set.ID,
	})
	if err != nil {
		if errors.Is(err, rollRepo.ErrRollSetNotFound) {
			return nil, ErrNoRollYet
		}
		return nil, fmt.Errorf("failed to get latest roll: %w", err)
	}

	rendered, err := s.RenderRollSet(ctx, &RenderRollSetInput{
		RollSet:         rollSet,
		DiceColor:       set.DiceColor,
		MarkColor:       set.MarkColor,
		ContainerWidth:  input.ContainerWidth,
		ContainerHeight: input.ContainerHeight,
		Format:          input.Format,
	})
	if err != nil {
		return nil, err
	}

	return &RenderLatestOutput{
		Set:         set,
		RollSet:     rollSet,
		Image:       rendered.Image,
		ContentType: rendered.ContentType,
		Geometry:    rendered.Geometry,
	}, nil
}

// RenderFace draws one face filling a Size x Size image
func (s *service) RenderFace(ctx context.Context, input *RenderFaceInput) (*RenderFaceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateSides(input.Sides); err != nil {
		return nil, err
	}

	if !(models.DieFace{Value: input.Value, Sides: input.Sides}).Valid() {
		return nil, ErrInvalidFaceValue
	}

	if input.Size < 1 || input.Size > MaxFaceSize {
		return nil, ErrInvalidSize
	}

	format, err := parseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	background, err := parseColor(input.DiceColor, models.DefaultDiceColor)
	if err != nil {
		return nil, err
	}

	mark, err := parseColor(input.MarkColor, models.DefaultMarkColor)
	if err != nil {
		return nil, err
	}

	img := board.Single(s.renderer, input.Value, input.Sides, input.Size, background, mark, s.supersample)

	var buf bytes.Buffer
	if err := board.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderFaceOutput{
		Image:       buf.Bytes(),
		ContentType: format.ContentType(),
	}, nil
}

// touchTable bumps the table's UpdatedAt after one of its sets changed
func (s *service) touchTable(ctx context.Context, tableID string, at time.Time) error {
	table, err := s.tableRepo.GetTable(ctx, &tableRepo.GetTableInput{
		TableID: tableID,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("failed to get table: %w", err)
	}

	table.UpdatedAt = at
	if err := s.tableRepo.SaveTable(ctx, &tableRepo.SaveTableInput{Table: table}); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}

	return nil
}

// getSet loads the set at a position, mapping repository misses to ErrSetNotFound
func (s *service) getSet(ctx context.Context, tableID string, position int) (*models.DiceSet, error) {
	if position < 0 || position >= models.MaxSetCount {
		return nil, ErrSetNotFound
	}

	set, err := s.tableRepo.GetSetByPosition(ctx, &tableRepo.GetSetByPositionInput{
		TableID:  tableID,
		Position: position,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrSetNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to get set: %w", err)
	}

	return set, nil
}

func validContainer(width, height int) bool {
	return width >= 1 && width <= MaxContainerSize &&
		height >= 1 && height <= MaxContainerSize
}

func validateSides(sides int) error {
	if sides < models.MinSides || sides > models.MaxSides {
		return ErrInvalidSides
	}
	return nil
}

func validateDiceCount(count int) error {
	if count < models.MinDiceCount || count > models.MaxDiceCount {
		return ErrInvalidDiceCount
	}
	return nil
}

func parseColor(value, fallback string) (color.NRGBA, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}

	c, err := palette.Parse(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return c, nil
}

func parseFormat(value string) (board.Format, error) {
	format, err := board.ParseFormat(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	return format, nil
}
