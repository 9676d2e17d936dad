package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/splice"
	splicefs "github.com/fwojciec/splice/fs"
	"github.com/fwojciec/splice/goquery"
	splicehtml "github.com/fwojciec/splice/html"
	"github.com/fwojciec/splice/htmltomarkdown"
	"github.com/fwojciec/splice/session"
	splog "github.com/fwojciec/splice/slog"
	"github.com/fwojciec/splice/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("splice"),
		kong.Description("Extract one section from a paginated HTML filing into a single document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cfg, err := cli.ResolveConfig()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", splice.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Runner: &session.Runner{
			Source:    splicefs.NewSource(),
			Parser:    splog.NewLoggingParser(splicehtml.NewParser(), logger),
			Locator:   splog.NewLoggingLocator(goquery.NewLocator(cfg.Tags...), logger),
			Extractor: splog.NewLoggingExtractor(splicehtml.NewExtractor(splicehtml.WithWrapperPrefix(cfg.WrapperPrefix)), logger),
			Styles:    goquery.NewStyleCollector(),
			Detector:  goquery.NewDetector(),
			Assembler: splicehtml.NewAssembler(),
			Store:     splog.NewLoggingStore(splicefs.NewStore(), logger),
			Converter: htmltomarkdown.NewConverter(),
			Logger:    logger,
		},
	}

	cmd := &ExtractCmd{
		Input:    cli.Input,
		Output:   cli.Output,
		Markdown: cli.Markdown,
		Config:   cfg,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Start    string   `short:"s" help:"Start marker text (overrides the profile)"`
	End      string   `short:"e" help:"End marker text (overrides the profile)"`
	Profile  string   `short:"p" default:"balance-sheet" help:"Marker profile to use"`
	Config   string   `short:"c" type:"path" help:"YAML file with additional marker profiles"`
	Tags     []string `help:"Locator tags in priority order (overrides the profile)"`
	Title    string   `help:"Title of the assembled document"`
	Markdown string   `short:"m" type:"path" help:"Also write a Markdown rendition to this path"`
	Verbose  bool     `short:"v" help:"Log every parse, lookup and extraction"`
	Input    string   `arg:"" required:"" type:"path" help:"Input file or directory of paginated files"`
	Output   string   `arg:"" required:"" type:"path" help:"Output HTML file"`
}

// ResolveConfig resolves the selected profile and applies flag overrides.
func (c *CLI) ResolveConfig() (splice.Config, error) {
	profiles := splice.BuiltinProfiles()
	if c.Config != "" {
		loaded, err := yaml.LoadProfiles(c.Config)
		if err != nil {
			return splice.Config{}, err
		}
		profiles = loaded
	}

	p, ok := profiles[c.Profile]
	if !ok {
		return splice.Config{}, splice.Errorf(splice.EINVALID, "unknown profile %q (available: %s)",
			c.Profile, strings.Join(splice.ProfileNames(profiles), ", "))
	}
	if c.Start != "" {
		p.Start = c.Start
	}
	if c.End != "" {
		p.End = c.End
	}
	if len(c.Tags) > 0 {
		p.Tags = c.Tags
	}
	if c.Title != "" {
		p.Title = c.Title
	}

	cfg := p.Config()
	if err := cfg.Validate(); err != nil {
		return splice.Config{}, err
	}
	return cfg, nil
}
