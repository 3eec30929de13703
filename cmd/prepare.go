package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/mockprep/internal/domain"
)

// prepareCmd represents the prepare command.
var prepareCmd = newPrepareCmd()

func newPrepareCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prepare <file>...",
		Short: "Generate or update @PrepareForTest from mockStatic calls",
		Long:  prepareLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			updater := newUpdater(newUI(cmd))

			// Every file is attempted; each failure has been notified already.
			var errs error
			for _, path := range parsePaths(args) {
				if _, err := updater.Prepare(ctx, domain.PrepareArgs{Path: path, DryRun: dryRun}); err != nil {
					errs = errors.Join(errs, err)
				}
			}

			return reported(errs)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, dryRunFlagName, "n", false, "print the diff instead of writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}
