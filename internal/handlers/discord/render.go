package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorTable   = 0x3366cc
)

// Discord allows at most five buttons per action row
const maxButtonsPerRow = 5

// ButtonRollSetPrefix prefixes the custom ID of a per-set roll button
const ButtonRollSetPrefix = "roll_set:"

// rollSetButtonID is the custom ID of the roll button for a set position
func rollSetButtonID(position int) string {
	return ButtonRollSetPrefix + strconv.Itoa(position)
}

// parseRollSetButton extracts the set position from a roll button custom ID
func parseRollSetButton(customID string) (int, bool) {
	raw, ok := strings.CutPrefix(customID, ButtonRollSetPrefix)
	if !ok {
		return 0, false
	}

	position, err := strconv.Atoi(raw)
	if err != nil || position < 0 {
		return 0, false
	}

	return position, true
}

// interactionLocale picks German for German Discord clients and the fallback otherwise
func interactionLocale(i *discordgo.InteractionCreate, fallback string) string {
	if i != nil && i.Interaction != nil && strings.HasPrefix(string(i.Locale), "de") {
		return "de-DE"
	}
	return fallback
}

// attachmentName names the uploaded image after its content type
func attachmentName(contentType string) string {
	if contentType == "image/webp" {
		return "dice.webp"
	}
	return "dice.png"
}

// renderRoll builds a roll result with the rendered dice attached and shown in the embed
func renderRoll(title, message string, image []byte, contentType string) *discordgo.InteractionResponseData {
	name := attachmentName(contentType)

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: message,
				Color:       colorSuccess,
				Image: &discordgo.MessageEmbedImage{
					URL: "attachment://" + name,
				},
			},
		},
		Files: []*discordgo.File{
			{
				Name:        name,
				ContentType: contentType,
				Reader:      bytes.NewReader(image),
			},
		},
	}
}

// tableRow is one set line in the table embed
type tableRow struct {
	Position int
	Name     string
	Summary  string

	// Button labels the roll button, Name when empty
	Button string
}

// renderTable lists the sets with one roll button each
func renderTable(title, description string, rows []tableRow) *discordgo.InteractionResponseData {
	fields := make([]*discordgo.MessageEmbedField, 0, len(rows))
	buttons := make([]discordgo.MessageComponent, 0, len(rows))

	for _, row := range rows {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%d. %s", row.Position+1, row.Name),
			Value:  row.Summary,
			Inline: true,
		})

		label := row.Button
		if label == "" {
			label = row.Name
		}

		buttons = append(buttons, discordgo.Button{
			Label:    label,
			Style:    discordgo.PrimaryButton,
			CustomID: rollSetButtonID(row.Position),
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		})
	}

	var components []discordgo.MessageComponent
	for start := 0; start < len(buttons); start += maxButtonsPerRow {
		end := min(start+maxButtonsPerRow, len(buttons))
		components = append(components, discordgo.ActionsRow{
			Components: buttons[start:end],
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: description,
				Color:       colorTable,
				Fields:      fields,
			},
		},
		Components: components,
	}
}

// renderError builds an ephemeral error embed
func renderError(title, message string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: message,
				Color:       colorError,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}
