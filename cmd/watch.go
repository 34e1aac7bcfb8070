package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shadmazumder/jsonscrub/internal/config"
	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
	"github.com/shadmazumder/jsonscrub/internal/validation"
	"github.com/shadmazumder/jsonscrub/internal/watcher"
)

var watchDebounce time.Duration

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch <input.json>",
	Aliases: []string{"w"},
	Short:   "Re-sanitize a JSON document whenever it changes",
	Long: `Watch sanitizes the document once, then re-runs the pipeline each time
the file changes. Changes are debounced so editors that write in bursts
trigger a single run. Press Ctrl-C to stop.

Examples:
  jsonscrub watch input.json
  jsonscrub watch input.json --debounce 1s`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Delay after the last change before re-running")

	// The sanitize flags apply to every run.
	watchCmd.Flags().AddFlagSet(sanitizeCmd.Flags())
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	inputPath := args[0]
	if err := validation.ValidateInputPath(inputPath); err != nil {
		return scruberrors.SecurityError("cmd.watch", inputPath, err.Error())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	// Initial run before watching; a missing or broken input should fail
	// fast rather than silently wait for a change.
	if err := sanitizeFile(cmd, cfg, logger, inputPath); err != nil {
		return err
	}

	w := watcher.New(inputPath, watchDebounce, logger)
	err = w.Watch(ctx, func(ctx context.Context) error {
		return sanitizeFile(cmd, cfg, logger, inputPath)
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Watch stopped")
		return nil
	}
	return err
}
