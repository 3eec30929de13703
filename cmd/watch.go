package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Update @PrepareForTest whenever a Java file is saved",
		Long: `Watch a directory tree and run prepare on every Java file written in it.
Saves are debounced per file. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			root := m.Path(".")
			if len(args) == 1 {
				root = m.Path(args[0])
			}

			ui := newUI(cmd)
			watcher := domain.NewWatcher(watchAdapter, newUpdater(ui), ui)

			return watcher.Watch(ctx, domain.WatchArgs{
				Root:     root,
				Debounce: time.Duration(viper.GetInt(watchDebounceKey)) * time.Millisecond,
			})
		},
	}

	cmd.Flags().Int(debounceFlagName, defaultWatchDebounceMS, "quiet period in milliseconds before a saved file is prepared")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), watchDebounceKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
