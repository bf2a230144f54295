package messaging

import (
	"golang.org/x/text/language"
)

const (
	// LocaleEnglish is the base locale
	LocaleEnglish = "en-US"

	// LocaleGerman is the German locale
	LocaleGerman = "de-DE"
)

// Message keys
const (
	KeyRollTitle     Key = "roll.title"
	KeyRollUntitled  Key = "roll.untitled"
	KeyRollValues    Key = "roll.values"
	KeyRollTotal     Key = "roll.total"
	KeyErrorTitle    Key = "error.title"
	KeyErrorDice     Key = "error.dice"
	KeyErrorSets     Key = "error.sets"
	KeyErrorColor    Key = "error.color"
	KeyErrorNotFound Key = "error.not_found"
	KeyErrorNoRoll   Key = "error.no_roll"
	KeyErrorGeneric  Key = "error.generic"
	KeyAppTitle      Key = "label.app_title"
	KeyHowManySets   Key = "label.how_many_sets"
	KeyDiceCount     Key = "label.dice_count"
	KeyDiceSides     Key = "label.dice_sides"
	KeyDiceColor     Key = "label.dice_color"
	KeyMarkColor     Key = "label.mark_color"
	KeyRoll          Key = "label.roll"
	KeyRollOnce      Key = "label.roll_once"
	KeySetupTable    Key = "label.setup_table"
	KeyEditSet       Key = "label.edit_set"
	KeyShowTable     Key = "label.show_table"
	KeySetPosition   Key = "label.set_position"
	KeySetNameOption Key = "label.set_name_option"
	KeyTableReady    Key = "label.table_ready"
	KeySetUpdated    Key = "label.set_updated"
	KeySetSummary    Key = "label.set_summary"
)

var supportedTags = []language.Tag{
	language.MustParse(LocaleEnglish),
	language.MustParse(LocaleGerman),
}

var supportedLocales = []string{LocaleEnglish, LocaleGerman}

var messages = map[string]map[Key]string{
	LocaleEnglish: {
		KeyRollTitle:     "%s - Roll Dice",
		KeyRollUntitled:  "Roll",
		KeyRollValues:    "Rolled: %s",
		KeyRollTotal:     "Total: %d",
		KeyErrorTitle:    "Input Error",
		KeyErrorDice:     "Please enter valid values for sides (2-50) and dice count (1-12).",
		KeyErrorSets:     "Please enter a valid number of sets (1-12).",
		KeyErrorColor:    "Please choose a valid color, for example white or #ff8800.",
		KeyErrorNotFound: "No dice sets are configured here yet.",
		KeyErrorNoRoll:   "This set has not been rolled yet.",
		KeyErrorGeneric:  "Something went wrong, please try again.",
		KeyAppTitle:      "Dice Roller with Adaptive Sizes",
		KeyHowManySets:   "How many sets do you want to roll? (1-12)",
		KeyDiceCount:     "Dice Count (max. 12):",
		KeyDiceSides:     "Dice Sides (max. 50):",
		KeyDiceColor:     "Dice Color:",
		KeyMarkColor:     "Number Color:",
		KeyRoll:          "Roll Dice",
		KeyRollOnce:      "Roll dice once",
		KeySetupTable:    "Set up dice sets for this channel",
		KeyEditSet:       "Change one dice set",
		KeyShowTable:     "Show the dice sets of this channel",
		KeySetPosition:   "Set number (1-12)",
		KeySetNameOption: "Set name",
		KeyTableReady:    "Configured %d dice sets.",
		KeySetUpdated:    "Updated %s.",
		KeySetSummary:    "%dd%d, %s on %s",
	},
	LocaleGerman: {
		KeyRollTitle:     "%s - Würfeln",
		KeyRollUntitled:  "Wurf",
		KeyRollValues:    "Gewürfelt: %s",
		KeyRollTotal:     "Gesamtergebnis: %d",
		KeyErrorTitle:    "Eingabefehler",
		KeyErrorDice:     "Bitte gültige Werte für Seiten (2-50) und Anzahl der Würfel (1-12) eingeben.",
		KeyErrorSets:     "Bitte eine gültige Anzahl von Sets (1-12) eingeben.",
		KeyErrorColor:    "Bitte eine gültige Farbe wählen, zum Beispiel white oder #ff8800.",
		KeyErrorNotFound: "Hier sind noch keine Würfelsets eingerichtet.",
		KeyErrorNoRoll:   "Dieses Set wurde noch nicht gewürfelt.",
		KeyErrorGeneric:  "Etwas ist schiefgelaufen, bitte versuche es erneut.",
		KeyAppTitle:      "Dice Roller mit adaptiven Größen",
		KeyHowManySets:   "Wie viele Sets möchtest du würfeln? (1-12)",
		KeyDiceCount:     "Anzahl Würfel (max. 12):",
		KeyDiceSides:     "Anzahl Seiten (max. 50):",
		KeyDiceColor:     "Würfelfarbe:",
		KeyMarkColor:     "Zahlenfarbe:",
		KeyRoll:          "Würfeln",
		KeyRollOnce:      "Einmal würfeln",
		KeySetupTable:    "Würfelsets für diesen Kanal einrichten",
		KeyEditSet:       "Ein Würfelset ändern",
		KeyShowTable:     "Die Würfelsets dieses Kanals anzeigen",
		KeySetPosition:   "Set-Nummer (1-12)",
		KeySetNameOption: "Name des Sets",
		KeyTableReady:    "%d Würfelsets eingerichtet.",
		KeySetUpdated:    "%s aktualisiert.",
		KeySetSummary:    "%dW%d, %s auf %s",
	},
}
