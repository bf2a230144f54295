package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicetray/internal/common/logger"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/services/messaging"
	"github.com/KirkDiggler/dicetray/internal/services/roller"
)

// DiceCommandConfig holds the dependencies of the /dice command
type DiceCommandConfig struct {
	RollerService    roller.Service
	MessagingService messaging.Service
	Logger           *zap.Logger

	// DefaultLocale is used for non-German clients and tables without a locale
	DefaultLocale string

	// ImageFormat is png or webp
	ImageFormat string

	// ContainerWidth and ContainerHeight bound the rendered dice grid
	ContainerWidth  int
	ContainerHeight int
}

// DiceCommand handles the /dice command and the per-set roll buttons
type DiceCommand struct {
	BaseCommand
	rollerService    roller.Service
	messagingService messaging.Service
	logger           *zap.Logger
	defaultLocale    string
	imageFormat      string
	containerWidth   int
	containerHeight  int
}

func floatPtr(v float64) *float64 {
	return &v
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(cfg *DiceCommandConfig) (*DiceCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.ContainerWidth <= 0 || cfg.ContainerHeight <= 0 ||
		cfg.ContainerWidth > roller.MaxContainerSize || cfg.ContainerHeight > roller.MaxContainerSize {
		return nil, roller.ErrInvalidContainer
	}

	locale := cfg.DefaultLocale
	if locale == "" {
		locale = messaging.LocaleEnglish
	}

	log := logger.OrNop(cfg.Logger)

	describe := func(opt *discordgo.ApplicationCommandOption, key messaging.Key) *discordgo.ApplicationCommandOption {
		opt.Description, opt.DescriptionLocalizations = localizedDescription(cfg.MessagingService, key)
		return opt
	}

	colorOption := func(name string, key messaging.Key) *discordgo.ApplicationCommandOption {
		return describe(&discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionString,
			Name: name,
		}, key)
	}

	countOption := describe(&discordgo.ApplicationCommandOption{
		Type:     discordgo.ApplicationCommandOptionInteger,
		Name:     "count",
		MinValue: floatPtr(models.MinDiceCount),
		MaxValue: models.MaxDiceCount,
	}, messaging.KeyDiceCount)

	sidesOption := describe(&discordgo.ApplicationCommandOption{
		Type:     discordgo.ApplicationCommandOptionInteger,
		Name:     "sides",
		MinValue: floatPtr(models.MinSides),
		MaxValue: models.MaxSides,
	}, messaging.KeyDiceSides)

	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Roll dice and manage dice sets",
			Options: []*discordgo.ApplicationCommandOption{
				describe(&discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Name: "roll",
					Options: []*discordgo.ApplicationCommandOption{
						withRequired(sidesOption),
						withRequired(countOption),
						colorOption("dice_color", messaging.KeyDiceColor),
						colorOption("mark_color", messaging.KeyMarkColor),
					},
				}, messaging.KeyRollOnce),
				describe(&discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Name: "setup",
					Options: []*discordgo.ApplicationCommandOption{
						describe(&discordgo.ApplicationCommandOption{
							Type:     discordgo.ApplicationCommandOptionInteger,
							Name:     "sets",
							Required: true,
							MinValue: floatPtr(models.MinSetCount),
							MaxValue: models.MaxSetCount,
						}, messaging.KeyHowManySets),
					},
				}, messaging.KeySetupTable),
				describe(&discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Name: "set",
					Options: []*discordgo.ApplicationCommandOption{
						describe(&discordgo.ApplicationCommandOption{
							Type:     discordgo.ApplicationCommandOptionInteger,
							Name:     "position",
							Required: true,
							MinValue: floatPtr(1),
							MaxValue: models.MaxSetCount,
						}, messaging.KeySetPosition),
						describe(&discordgo.ApplicationCommandOption{
							Type: discordgo.ApplicationCommandOptionString,
							Name: "name",
						}, messaging.KeySetNameOption),
						countOption,
						sidesOption,
						colorOption("dice_color", messaging.KeyDiceColor),
						colorOption("mark_color", messaging.KeyMarkColor),
					},
				}, messaging.KeyEditSet),
				describe(&discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionSubCommand,
					Name: "table",
				}, messaging.KeyShowTable),
			},
		},
		rollerService:    cfg.RollerService,
		messagingService: cfg.MessagingService,
		logger:           log,
		defaultLocale:    locale,
		imageFormat:      cfg.ImageFormat,
		containerWidth:   cfg.ContainerWidth,
		containerHeight:  cfg.ContainerHeight,
	}, nil
}

// localizedDescription returns the English label as the description and the
// German label as its de localization, both without a trailing colon.
func localizedDescription(ms messaging.Service, key messaging.Key) (string, map[discordgo.Locale]string) {
	ctx := context.Background()

	en, err := ms.GetLabel(ctx, &messaging.GetLabelInput{Locale: messaging.LocaleEnglish, Key: key})
	if err != nil {
		return string(key), nil
	}

	description := strings.TrimSuffix(en.Label, ":")

	de, err := ms.GetLabel(ctx, &messaging.GetLabelInput{Locale: messaging.LocaleGerman, Key: key})
	if err != nil {
		return description, nil
	}

	return description, map[discordgo.Locale]string{
		discordgo.German: strings.TrimSuffix(de.Label, ":"),
	}
}

func withRequired(opt *discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	required := *opt
	required.Required = true
	return &required
}

// optionMap indexes subcommand options by name
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	locale := interactionLocale(i, c.defaultLocale)
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	c.logger.Debug("dice command",
		zap.String("subcommand", sub.Name),
		zap.String("channel_id", i.ChannelID),
		zap.String("locale", locale),
	)

	var (
		response *discordgo.InteractionResponseData
		err      error
	)

	switch sub.Name {
	case "roll":
		response, err = c.roll(ctx, locale, &rollOptions{
			Sides:     intOption(opts, "sides"),
			Count:     intOption(opts, "count"),
			DiceColor: stringOption(opts, "dice_color"),
			MarkColor: stringOption(opts, "mark_color"),
		})
	case "setup":
		response, err = c.setup(ctx, i.ChannelID, locale, intOption(opts, "sets"))
	case "set":
		response, err = c.updateSet(ctx, locale, updateSetInput(i.ChannelID, opts))
	case "table":
		response, err = c.table(ctx, i.ChannelID, locale)
	default:
		err = fmt.Errorf("unknown subcommand %q", sub.Name)
	}

	if err != nil {
		c.logger.Warn("dice command failed",
			zap.String("subcommand", sub.Name),
			zap.String("channel_id", i.ChannelID),
			zap.Error(err),
		)
		response = c.errorResponse(ctx, locale, err)
	}

	return RespondWithData(s, i, response)
}

// Owns reports whether customID is a roll set button
func (c *DiceCommand) Owns(customID string) bool {
	_, ok := parseRollSetButton(customID)
	return ok
}

// HandleComponent rolls the set behind a roll button
func (c *DiceCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	locale := interactionLocale(i, c.defaultLocale)

	position, ok := parseRollSetButton(i.MessageComponentData().CustomID)
	if !ok {
		return RespondWithData(s, i, c.errorResponse(ctx, locale, roller.ErrSetNotFound))
	}

	response, err := c.rollSet(ctx, i.ChannelID, locale, position)
	if err != nil {
		c.logger.Warn("roll set failed",
			zap.String("channel_id", i.ChannelID),
			zap.Int("position", position),
			zap.Error(err),
		)
		response = c.errorResponse(ctx, locale, err)
	}

	return RespondWithData(s, i, response)
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// updateSetInput maps the provided options onto an UpdateSetInput. Positions are 1-based in Discord.
func updateSetInput(tableID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) *roller.UpdateSetInput {
	input := &roller.UpdateSetInput{
		TableID:  tableID,
		Position: intOption(opts, "position") - 1,
	}

	if _, ok := opts["name"]; ok {
		name := stringOption(opts, "name")
		input.Name = &name
	}
	if _, ok := opts["count"]; ok {
		count := intOption(opts, "count")
		input.DiceCount = &count
	}
	if _, ok := opts["sides"]; ok {
		sides := intOption(opts, "sides")
		input.DiceSides = &sides
	}
	if _, ok := opts["dice_color"]; ok {
		diceColor := stringOption(opts, "dice_color")
		input.DiceColor = &diceColor
	}
	if _, ok := opts["mark_color"]; ok {
		markColor := stringOption(opts, "mark_color")
		input.MarkColor = &markColor
	}

	return input
}

type rollOptions struct {
	Sides     int
	Count     int
	DiceColor string
	MarkColor string
}

// roll makes an ad-hoc roll and attaches the rendered dice
func (c *DiceCommand) roll(ctx context.Context, locale string, opts *rollOptions) (*discordgo.InteractionResponseData, error) {
	rolled, err := c.rollerService.RollDice(ctx, &roller.RollDiceInput{
		Sides: opts.Sides,
		Count: opts.Count,
	})
	if err != nil {
		return nil, err
	}

	return c.renderRollResult(ctx, locale, "", rolled.RollSet, opts.DiceColor, opts.MarkColor)
}

// rollSet rolls a configured set of the channel table
func (c *DiceCommand) rollSet(ctx context.Context, tableID, locale string, position int) (*discordgo.InteractionResponseData, error) {
	rolled, err := c.rollerService.RollSet(ctx, &roller.RollSetInput{
		TableID:  tableID,
		Position: position,
	})
	if err != nil {
		return nil, err
	}

	return c.renderRollResult(ctx, locale, rolled.Set.Name, rolled.RollSet, rolled.Set.DiceColor, rolled.Set.MarkColor)
}

func (c *DiceCommand) renderRollResult(ctx context.Context, locale, setName string, rollSet *models.RollSet, diceColor, markColor string) (*discordgo.InteractionResponseData, error) {
	rendered, err := c.rollerService.RenderRollSet(ctx, &roller.RenderRollSetInput{
		RollSet:         rollSet,
		DiceColor:       diceColor,
		MarkColor:       markColor,
		ContainerWidth:  c.containerWidth,
		ContainerHeight: c.containerHeight,
		Format:          c.imageFormat,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Locale:    locale,
		SetName:   setName,
		Values:    rollSet.Values(),
		Total:     rollSet.Total(),
		ShowTotal: rollSet.HasTotal(),
	})
	if err != nil {
		return nil, err
	}

	return renderRoll(msg.Title, msg.Message, rendered.Image, rendered.ContentType), nil
}

// setup configures the channel table and shows it
func (c *DiceCommand) setup(ctx context.Context, tableID, locale string, sets int) (*discordgo.InteractionResponseData, error) {
	configured, err := c.rollerService.ConfigureTable(ctx, &roller.ConfigureTableInput{
		TableID:  tableID,
		SetCount: sets,
		Locale:   locale,
	})
	if err != nil {
		return nil, err
	}

	description := c.label(ctx, locale, messaging.KeyTableReady, len(configured.Sets))
	return c.renderSets(ctx, locale, description, configured.Sets), nil
}

// updateSet changes one set and shows the table
func (c *DiceCommand) updateSet(ctx context.Context, locale string, input *roller.UpdateSetInput) (*discordgo.InteractionResponseData, error) {
	updated, err := c.rollerService.UpdateSet(ctx, input)
	if err != nil {
		return nil, err
	}

	table, err := c.rollerService.GetTable(ctx, &roller.GetTableInput{TableID: input.TableID})
	if err != nil {
		return nil, err
	}

	description := c.label(ctx, locale, messaging.KeySetUpdated, updated.Set.Name)
	return c.renderSets(ctx, locale, description, table.Sets), nil
}

// table shows the sets of the channel table with their roll buttons
func (c *DiceCommand) table(ctx context.Context, tableID, locale string) (*discordgo.InteractionResponseData, error) {
	table, err := c.rollerService.GetTable(ctx, &roller.GetTableInput{TableID: tableID})
	if err != nil {
		return nil, err
	}

	if table.Table.Locale != "" && locale == c.defaultLocale {
		locale = table.Table.Locale
	}

	return c.renderSets(ctx, locale, "", table.Sets), nil
}

func (c *DiceCommand) renderSets(ctx context.Context, locale, description string, sets []*models.DiceSet) *discordgo.InteractionResponseData {
	roll := c.label(ctx, locale, messaging.KeyRoll)

	rows := make([]tableRow, len(sets))
	for i, set := range sets {
		rows[i] = tableRow{
			Position: set.Position,
			Name:     set.Name,
			Summary:  c.label(ctx, locale, messaging.KeySetSummary, set.DiceCount, set.DiceSides, set.DiceColor, set.MarkColor),
			Button:   fmt.Sprintf("%s: %s", roll, set.Name),
		}
	}

	return renderTable(c.label(ctx, locale, messaging.KeyAppTitle), description, rows)
}

// label falls back to the key itself when the lookup fails
func (c *DiceCommand) label(ctx context.Context, locale string, key messaging.Key, args ...any) string {
	out, err := c.messagingService.GetLabel(ctx, &messaging.GetLabelInput{
		Locale: locale,
		Key:    key,
		Args:   args,
	})
	if err != nil {
		c.logger.Warn("label lookup failed", zap.String("key", string(key)), zap.Error(err))
		return string(key)
	}
	return out.Label
}

func (c *DiceCommand) errorResponse(ctx context.Context, locale string, err error) *discordgo.InteractionResponseData {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Locale: locale,
		Err:    err,
	})
	if msgErr != nil {
		return renderError("Error", err.Error())
	}
	return renderError(msg.Title, msg.Message)
}
