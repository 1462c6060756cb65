package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/config"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	runs := flag.Int("runs", -1, "Number of simulations to run (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Random seed, 0 seeds from the clock (-1 to use config default)")
	maxTurns := flag.Int("max-turns", -1, "Turn cap (-1 to use config default)")
	output := flag.String("output", "", "Report format: text, json or yaml (empty to use config default)")
	watch := flag.Bool("watch", false, "Re-run whenever the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	overrides := flagOverrides{
		logLevel: *logLevel,
		runs:     *runs,
		seed:     *seed,
		maxTurns: *maxTurns,
		output:   *output,
	}
	opts, err := resolveOptions(config.Get(), overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}

	setupLogging(opts.logLevel, opts.logFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, opts); err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	if !*watch {
		return
	}

	log.Info().Str("config", config.ConfigFilePath()).Msg("Watching config for changes")
	reloads := make(chan configReload, 1)
	config.WatchConfig(reloadHandler(overrides, reloads))

	// logging is only touched from this goroutine
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			return
		case r := <-reloads:
			if r.err != nil {
				log.Error().Err(r.err).Msg("Config reload rejected, keeping previous settings")
				continue
			}
			setupLogging(r.opts.logLevel, r.opts.logFormat)
			if err := run(ctx, os.Stdout, r.opts); err != nil {
				log.Error().Err(err).Msg("Simulation failed")
			}
		}
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// JSON output for production or when asked for
	if os.Getenv("APP_ENV") == "production" || format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	// Pretty console output for development
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
