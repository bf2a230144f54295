package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/board"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
	"github.com/KirkDiggler/dicetray/internal/render/palette"
	"github.com/KirkDiggler/dicetray/internal/services/messaging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// CLI flags
	sides := fs.Int("sides", models.DefaultDiceSides, "Sides per die (2-50)")
	count := fs.Int("count", 3, "Number of dice (1-12)")
	bg := fs.String("bg", models.DefaultDiceColor, "Die color, a name or #rrggbb")
	fg := fs.String("fg", models.DefaultMarkColor, "Pip and number color")
	width := fs.Int("width", 800, fmt.Sprintf("Container width in pixels (1-%d)", board.MaxCanvasSize))
	height := fs.Int("height", 600, fmt.Sprintf("Container height in pixels (1-%d)", board.MaxCanvasSize))
	formatName := fs.String("format", "png", "Output format: png or webp")
	out := fs.String("out", "", "Output file (default: dice.<format>)")
	seed := fs.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	locale := fs.String("locale", messaging.LocaleEnglish, "Locale for the printed result")
	supersample := fs.Int("supersample", 2, fmt.Sprintf("Supersampling factor (1-%d)", board.MaxSupersample))

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *sides < models.MinSides || *sides > models.MaxSides {
		return fmt.Errorf("sides must be between %d and %d", models.MinSides, models.MaxSides)
	}
	if *count < models.MinDiceCount || *count > models.MaxDiceCount {
		return fmt.Errorf("count must be between %d and %d", models.MinDiceCount, models.MaxDiceCount)
	}
	if *width < 1 || *height < 1 || *width > board.MaxCanvasSize || *height > board.MaxCanvasSize {
		return fmt.Errorf("width and height must be between 1 and %d", board.MaxCanvasSize)
	}
	if *supersample < 1 || *supersample > board.MaxSupersample {
		return fmt.Errorf("supersample must be between 1 and %d", board.MaxSupersample)
	}

	format, err := board.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	background, err := palette.Parse(*bg)
	if err != nil {
		return err
	}
	mark, err := palette.Parse(*fg)
	if err != nil {
		return err
	}

	renderer, err := face.NewRenderer()
	if err != nil {
		return err
	}

	roller := dice.New(&dice.Config{Seed: *seed})
	rs := models.NewRollSet("", "", *sides, dice.RollN(roller, *sides, *count), time.Now())

	img := board.Compose(renderer, rs, board.Options{
		Geometry:    layout.DefaultGrid(len(rs.Faces), float64(*width), float64(*height)),
		Background:  background,
		Mark:        mark,
		Supersample: *supersample,
		Gutter:      board.DefaultGutter,
	})

	path := *out
	if path == "" {
		path = "dice." + format.Extension()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := board.Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	msgs, err := messaging.NewService(nil)
	if err != nil {
		return err
	}
	msg, err := msgs.GetRollResultMessage(context.Background(), &messaging.GetRollResultMessageInput{
		Locale:    *locale,
		Values:    rs.Values(),
		Total:     rs.Total(),
		ShowTotal: rs.HasTotal(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, msg.Message)
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
