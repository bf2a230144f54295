package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/services/wordguess"
)

func main() {
	game, err := wordguess.New(&wordguess.Config{Roller: dice.New(&dice.Config{})})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := play(game, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the prompt loop until the word is guessed or input ends
func play(game *wordguess.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Welcome to the word guessing game!")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Your hint is: %s\n", game.Mask())

	for {
		fmt.Fprint(out, "What is your guess? ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}

		res, err := game.Guess(scanner.Text())
		switch {
		case wordguess.IsWrongLength(err):
			fmt.Fprintf(out, "\nThe guess must have %d characters. Try again!\n", game.Len())
			continue
		case err != nil:
			return err
		}

		if res.Solved {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Congratulations! You guessed it!")
			fmt.Fprintf(out, "It took you %d guesses!\n", res.Attempts)
			return nil
		}

		fmt.Fprintf(out, "\nYour hint is: %s\n", res)
	}
}
