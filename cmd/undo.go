package cmd

import (
	"context"

	"github.com/spf13/cobra"

	m "gooze.dev/pkg/mockprep/internal/model"
)

// undoCmd represents the undo command.
var undoCmd = newUndoCmd()

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <file>",
		Short: "Revert the last @PrepareForTest update of a file",
		Long: `Restore a file to its contents before the last prepare run. Undo refuses
when the file was edited after that run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reported(newUpdater(newUI(cmd)).Undo(context.Background(), m.Path(args[0])))
		},
	}
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
