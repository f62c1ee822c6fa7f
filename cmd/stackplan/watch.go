package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stackplan/stackplan-go/internal/logging"
)

// newWatchCmd creates the "watch" subcommand for recomposing on overrides changes.
func newWatchCmd() *cobra.Command {
	var (
		configFile   string
		debounce     time.Duration
		outputFormat string
		outputFile   string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompose the plan when the overrides file changes",
		Long: `Watch monitors the overrides file and recomposes the plan on each change.

The watch command:
- Monitors the overrides file (or ./stackplan.yaml) for changes
- Recomposes and re-renders the plan on each write
- Debounces rapid changes to avoid excessive recomposition

Examples:
    stackplan watch
    stackplan watch -c overrides.yaml -f yaml -o plan.yaml
    stackplan watch --debounce 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(watchOptions{
				configFile:   configFile,
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
				logLevel:     logLevel,
			})
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Overrides file (default: ./stackplan.yaml)")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	return cmd
}

type watchOptions struct {
	configFile   string
	debounce     time.Duration
	outputFormat string
	outputFile   string
	logLevel     string
}

// runWatch monitors the overrides file and recomposes on changes.
func runWatch(opts watchOptions) error {
	logger := logging.NewLogger(opts.logLevel)

	target := opts.configFile
	if target == "" {
		target = "stackplan.yaml"
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving overrides path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(absTarget)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absTarget), err)
	}
	logger.Info().Str("file", absTarget).Msg("watching overrides")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info().Msg("running initial compose")
	recompose(opts, logger)

	var debounceTimer *time.Timer
	recomposeChan := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != absTarget {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case recomposeChan <- struct{}{}:
				default:
				}
			})

		case <-recomposeChan:
			logger.Info().Msg("change detected, recomposing")
			recompose(opts, logger)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watch error")

		case <-sigChan:
			logger.Info().Msg("stopping watch")
			return nil
		}
	}
}

// recompose runs one compose pass, logging failures instead of exiting so the
// watch loop survives transient bad edits.
func recompose(opts watchOptions, logger zerolog.Logger) {
	if err := runCompose(opts.configFile, opts.outputFormat, opts.outputFile, opts.logLevel); err != nil {
		logger.Error().Err(err).Msg("compose failed")
		return
	}
	if opts.outputFile != "" {
		logger.Info().Str("file", opts.outputFile).Msg("plan written")
	}
}
