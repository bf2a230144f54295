package wordguess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dicetray/internal/dice"
)

// GuessError is a word game error
type GuessError string

func (e GuessError) Error() string {
	return string(e)
}

const (
	ErrNoWords     GuessError = "word list cannot be empty"
	ErrNilRoller   GuessError = "dice roller cannot be nil"
	ErrWrongLength GuessError = "guess has the wrong length"
	ErrGameOver    GuessError = "word already guessed"
)

// DefaultWords is the built-in word list
var DefaultWords = []string{"flower", "house", "python", "mother", "church", "monster"}

// Blank marks a letter that is not in the word
const Blank = "_"

// Config configures a game
type Config struct {
	// Words to pick from, DefaultWords when empty
	Words []string

	// Roller picks the word
	Roller dice.Roller
}

// Game is one round of the word guessing game
type Game struct {
	word     []rune
	attempts int
	solved   bool
}

// Result is the outcome of one guess
type Result struct {
	// Hint has one entry per letter: the uppercase letter when placed
	// correctly, the lowercase guess letter when it is elsewhere in the
	// word and Blank when it is absent
	Hint []string

	// Attempts counts every guess so far, wrong-length ones included
	Attempts int

	Solved bool
}

// String renders the hint with spaces between letters
func (r *Result) String() string {
	return strings.Join(r.Hint, " ")
}

// New picks a word and starts a game
func New(cfg *Config) (*Game, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	words := cfg.Words
	if len(words) == 0 {
		words = DefaultWords
	}

	word := strings.ToLower(strings.TrimSpace(words[cfg.Roller.Roll(len(words))-1]))
	if word == "" {
		return nil, ErrNoWords
	}

	return &Game{word: []rune(word)}, nil
}

// Len is the number of letters in the word
func (g *Game) Len() int {
	return len(g.word)
}

// Mask is the opening hint, one "_ " per letter
func (g *Game) Mask() string {
	return strings.Repeat(Blank+" ", len(g.word))
}

// Attempts is the number of guesses made
func (g *Game) Attempts() int {
	return g.attempts
}

// Solved reports whether the word was guessed
func (g *Game) Solved() bool {
	return g.solved
}

// Guess scores a guess. Comparison ignores case and surrounding space.
func (g *Game) Guess(text string) (*Result, error) {
	if g.solved {
		return nil, ErrGameOver
	}

	g.attempts++
	guess := []rune(strings.ToLower(strings.TrimSpace(text)))

	if len(guess) != len(g.word) {
		return &Result{Attempts: g.attempts}, fmt.Errorf("%w: expected %d letters", ErrWrongLength, len(g.word))
	}

	hint := make([]string, len(g.word))
	correct := 0
	for i, r := range guess {
		switch {
		case r == g.word[i]:
			hint[i] = strings.ToUpper(string(r))
			correct++
		case g.contains(r):
			hint[i] = string(r)
		default:
			hint[i] = Blank
		}
	}

	g.solved = correct == len(g.word)

	return &Result{
		Hint:     hint,
		Attempts: g.attempts,
		Solved:   g.solved,
	}, nil
}

func (g *Game) contains(r rune) bool {
	for _, w := range g.word {
		if w == r {
			return true
		}
	}
	return false
}

// IsWrongLength reports whether err came from a guess of the wrong length
func IsWrongLength(err error) bool {
	return errors.Is(err, ErrWrongLength)
}
