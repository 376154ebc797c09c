// Command furifit fits dictionary-form furigana onto conjugated Japanese words.
//
// Usage:
//
//	furifit fit 行った '[行|い]く'
//	furifit parse '[音楽|おん|がく]'
//	furifit reading '[引|ひ]っ[掛|か]かる'
//	furifit html '[音楽|おん|がく]'
//
// Exit status is 0 on success, 1 when the word does not fit the furigana and
// 2 for malformed furigana or usage errors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/furifit/core/errors"
	"github.com/FocuswithJustin/furifit/core/fitter"
	"github.com/FocuswithJustin/furifit/core/furi"
	"github.com/FocuswithJustin/furifit/internal/logging"
)

const version = "0.1.0"

// Globals holds flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" env:"FURIFIT_LOG_LEVEL" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" env:"FURIFIT_LOG_FORMAT" enum:"text,json"`
}

// CLI defines the command-line interface for furifit.
type CLI struct {
	Globals `embed:""`

	Fit     FitCmd     `cmd:"" help:"Fit dictionary-form furigana onto a word"`
	Parse   ParseCmd   `cmd:"" help:"Show the segments of a furigana string"`
	Reading ReadingCmd `cmd:"" help:"Show the spelling and reading of a furigana string"`
	HTML    HTMLCmd    `cmd:"" name:"html" help:"Render a furigana string as HTML ruby markup"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx context.Context
	out io.Writer
}

// FitCmd fits furigana onto a word.
type FitCmd struct {
	Word     string `arg:"" help:"Conjugated word, e.g. 行った"`
	Furigana string `arg:"" help:"Furigana of the dictionary form, e.g. [行|い]く"`
	HTML     bool   `name:"html" help:"Print the result as HTML ruby markup"`
}

func (c *FitCmd) Run(rc *runContext) error {
	start := time.Now()
	segments, err := fitter.FitSegments(c.Word, c.Furigana)
	if err != nil {
		logging.FitFailed(rc.ctx, c.Word, c.Furigana, err)
		return fmt.Errorf("cannot fit %q onto %q: %w", c.Furigana, c.Word, err)
	}
	result := furi.Encode(segments)
	logging.FitSucceeded(rc.ctx, c.Word, c.Furigana, result, time.Since(start))
	if c.HTML {
		fmt.Fprintln(rc.out, furi.RubyHTML(segments))
		return nil
	}
	fmt.Fprintln(rc.out, result)
	return nil
}

// ParseCmd prints one line per segment.
type ParseCmd struct {
	Furigana string `arg:"" help:"Furigana string, e.g. [音楽|おん|がく]"`
}

func (c *ParseCmd) Run(rc *runContext) error {
	segments, err := furi.Parse(c.Furigana)
	if err != nil {
		return err
	}
	logging.DebugContext(rc.ctx, "parsed furigana", "segments", len(segments))
	for _, seg := range segments {
		switch s := seg.(type) {
		case furi.Kana:
			fmt.Fprintf(rc.out, "kana\t%s\n", s.Text)
		case furi.Kanji:
			fmt.Fprintf(rc.out, "kanji\t%s\t%s\n", s.Literal, strings.Join(s.Readings, ","))
		}
	}
	return nil
}

// ReadingCmd prints the kanji-only and kana-only projections.
type ReadingCmd struct {
	Furigana string `arg:"" help:"Furigana string, e.g. [行|い]く"`
}

func (c *ReadingCmd) Run(rc *runContext) error {
	segments, err := furi.Parse(c.Furigana)
	if err != nil {
		return err
	}
	fmt.Fprintf(rc.out, "kanji: %s\n", furi.KanjiString(segments))
	fmt.Fprintf(rc.out, "kana: %s\n", furi.KanaString(segments))
	return nil
}

// HTMLCmd renders a furigana string as HTML ruby markup.
type HTMLCmd struct {
	Furigana string `arg:"" help:"Furigana string, e.g. [行|い]く"`
}

func (c *HTMLCmd) Run(rc *runContext) error {
	segments, err := furi.Parse(c.Furigana)
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, furi.RubyHTML(segments))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.out, "furifit version %s\n", version)
	return nil
}

// run parses args, executes the selected command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("furifit"),
		kong.Description("Fit dictionary-form furigana onto conjugated Japanese words"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "furifit: error: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "furifit: error: %v\n", err)
		return 2
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "furifit: error: %v\n", err)
		return 2
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "furifit: error: %v\n", err)
		return 2
	}
	logging.InitLogger(stderr, level, format)

	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	logging.DebugContext(ctx, "command started", "command", kctx.Command())

	if err := kctx.Run(&runContext{ctx: ctx, out: stdout}); err != nil {
		fmt.Fprintf(stderr, "furifit: error: %v\n", err)
		if errors.Is(err, errors.ErrMismatch) {
			return 1
		}
		return 2
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
