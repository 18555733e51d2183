package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexpath/lexpath"
	"github.com/lexpath/lexpath/internal/configuration"
	"github.com/lexpath/lexpath/internal/tui"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	opName      = flag.String("op", "normalize", "operation to apply (normalize, canonical, id, shortid, split, parts, validate, abs, list, walk)")
	grammarName = flag.String("grammar", "", "path grammar to parse under (posix, windows, native)")
	strict      = flag.Bool("strict", false, "classify and validate under strict rules")
	base        = flag.String("base", "", "base path for resolving relative inputs")
	workers     = flag.Int("workers", 0, "concurrent workers for batch processing (0 = automatic)")
	extFilter   = flag.String("ext", "", "extension filter for the list operation")
	interactive = flag.Bool("i", false, "launch the interactive inspector")
	configFile  = flag.String("config", "", "read settings from an environment file")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// resolveSettings layers the effective settings: compiled-in defaults first,
// then the environment file (when one was given), then any flags that were
// set explicitly on the command line.
func resolveSettings() (configuration.Settings, error) {
	settings := configuration.Settings{
		Grammar:  lexpath.Native,
		LogLevel: slog.LevelInfo,
	}

	if *configFile != "" {
		configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

		loaded, err := configHandler.Load(*configFile)
		if err != nil {
			return settings, err
		}

		settings = loaded
	}

	var flagErr error

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grammar":
			grammar, err := lexpath.ParseGrammar(*grammarName)
			if err != nil {
				flagErr = err

				return
			}

			settings.Grammar = grammar
		case "strict":
			settings.Strict = *strict
		case "base":
			settings.Base = *base
		case "workers":
			if *workers < 0 {
				flagErr = configuration.ErrInvalidWorkers

				return
			}

			settings.Workers = *workers
		}
	})

	if flagErr != nil {
		return settings, flagErr
	}

	return settings, nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging(slog.LevelInfo)
	setupSignalHandlers(cancel)
	setupDebugHandlers()

	settings, err := resolveSettings()
	if err != nil {
		slog.Error("Failed to resolve settings.", "err", err)
		ExitCode = 1

		return
	}

	setupLogging(settings.LogLevel)

	memObserver := newMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := NewCPUProfiler(ctx, cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := NewAllocProfiler(ctx, memprofile)
	defer allocProfiler.Stop()

	if *interactive {
		tuiHandler := tui.NewHandler(settings.Grammar, settings.Strict)
		defer tuiHandler.Stop()

		if err := tuiHandler.Launch(ctx, cancel); err != nil {
			slog.Error("Inspector failed.", "err", err)
			ExitCode = 1
		}

		return
	}

	app := NewApp(settings)

	if err := app.Run(ctx, *opName, flag.Args()); err != nil {
		slog.Error("Processing failed.", "err", err)
		ExitCode = 1
	}
}
