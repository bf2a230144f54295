package discord

import (
	"io"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollSetButtonRoundTrip(t *testing.T) {
	id := rollSetButtonID(7)
	assert.Equal(t, "roll_set:7", id)

	position, ok := parseRollSetButton(id)
	require.True(t, ok)
	assert.Equal(t, 7, position)
}

func TestParseRollSetButtonRejects(t *testing.T) {
	for _, id := range []string{"roll_dice", "roll_set:", "roll_set:x", "roll_set:-1", ""} {
		_, ok := parseRollSetButton(id)
		assert.False(t, ok, id)
	}
}

func TestInteractionLocale(t *testing.T) {
	german := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Locale: discordgo.German}}
	french := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Locale: discordgo.French}}

	assert.Equal(t, "de-DE", interactionLocale(german, "en-US"))
	assert.Equal(t, "en-US", interactionLocale(french, "en-US"))
	assert.Equal(t, "en-US", interactionLocale(nil, "en-US"))
	assert.Equal(t, "en-US", interactionLocale(&discordgo.InteractionCreate{}, "en-US"))
}

func TestRenderRollAttachesImage(t *testing.T) {
	data := renderRoll("title", "body", []byte("image-bytes"), "image/webp")

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "title", data.Embeds[0].Title)
	assert.Equal(t, "body", data.Embeds[0].Description)
	assert.Equal(t, "attachment://dice.webp", data.Embeds[0].Image.URL)

	require.Len(t, data.Files, 1)
	assert.Equal(t, "dice.webp", data.Files[0].Name)
	assert.Equal(t, "image/webp", data.Files[0].ContentType)

	raw, err := io.ReadAll(data.Files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(raw))
}

func TestRenderTableSplitsButtonRows(t *testing.T) {
	rows := make([]tableRow, 12)
	for i := range rows {
		rows[i] = tableRow{Position: i, Name: "Set", Summary: "1d6"}
	}

	data := renderTable("Dice", "", rows)

	require.Len(t, data.Embeds, 1)
	assert.Len(t, data.Embeds[0].Fields, 12)
	assert.Equal(t, "1. Set", data.Embeds[0].Fields[0].Name)

	require.Len(t, data.Components, 3)
	assert.Len(t, data.Components[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, data.Components[2].(discordgo.ActionsRow).Components, 2)

	last := data.Components[2].(discordgo.ActionsRow).Components[1].(discordgo.Button)
	assert.Equal(t, "roll_set:11", last.CustomID)
}

func TestRenderErrorIsEphemeral(t *testing.T) {
	data := renderError("Input Error", "bad sides")

	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
	require.Len(t, data.Embeds, 1)
	assert.Equal(t, colorError, data.Embeds[0].Color)
}
