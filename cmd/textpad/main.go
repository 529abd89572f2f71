// Package main is the entry point for textpad, a terminal text prompt.
//
// textpad opens a text area (or a single-line field with -single), lets
// the user edit, and prints the submitted text to stdout. Escape cancels
// with exit status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/host"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	single     bool
	logPath    string
	logLevel   string
	text       string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, closeLog, err := newLogger(opts.logPath, opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	text := opts.text
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	app, err := host.New(screen, host.Options{
		Config:     cfg,
		ConfigPath: opts.configPath,
		Single:     opts.single,
		Text:       text,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("textpad started", "version", version, "single", opts.single)
	result, err := app.Run(ctx)
	if err != nil {
		if errors.Is(err, host.ErrCanceled) || errors.Is(err, context.Canceled) {
			logger.Info("textpad canceled")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(result)
	return 0
}

// newLogger logs to path, or nowhere when path is empty since the terminal
// belongs to the editor.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML settings file (watched for changes)")
	flag.StringVar(&opts.configPath, "c", "", "Path to settings file (shorthand)")
	flag.BoolVar(&opts.single, "single", false, "Edit a single-line field; Enter submits")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.text, "text", "", "Initial text")
	flag.StringVar(&opts.file, "file", "", "Read the initial text from this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textpad - terminal text prompt\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textpad [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+D (area) or Enter (-single)   Submit and print the text\n")
		fmt.Fprintf(os.Stderr, "  Escape                             Cancel\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Z / Ctrl+Y                    Undo / redo\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("textpad %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}
	return opts
}
