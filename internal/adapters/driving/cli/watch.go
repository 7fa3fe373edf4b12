package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pillziy/pillziy-cli/internal/logger"
)

// reloader is implemented by repositories that can re-read their
// persisted state, picking up changes from other processes.
type reloader interface {
	Reload(ctx context.Context)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the medication list",
	Long: `Prints the medication list and reprints it whenever the
underlying store changes, e.g. when another pillziy process adds a
scanned medication.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if medicationRepo == nil {
		return errors.New("medication repository not configured")
	}
	if storePath == "" {
		return errors.New("store path not configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: saves replace the file via rename, which
	// would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(storePath)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printMedications(cmd, medicationRepo.List(ctx))
	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != storePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("store changed: %s", event.Op)
			if r, ok := medicationRepo.(reloader); ok {
				r.Reload(ctx)
			}
			cmd.Println()
			printMedications(cmd, medicationRepo.List(ctx))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
