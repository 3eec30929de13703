package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mockprep/internal/controller"
	"gooze.dev/pkg/mockprep/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List Java files and their @PrepareForTest state",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := newUI(cmd)

			entries, err := domain.NewInventory(sourceFSAdapter, newLocator(ui)).List(ctx, domain.ListArgs{
				Paths:    parsePaths(args),
				Parallel: viper.GetInt(listParallelKey),
			})
			if err != nil {
				return fail(ctx, ui, err)
			}

			return ui.DisplayInventory(ctx, entries, controller.OutputFormat(viper.GetString(listFormatKey)))
		},
	}

	cmd.Flags().StringP(formatFlagName, "f", defaultListFormat, "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatKey)

	cmd.Flags().IntP(parallelFlagName, "p", defaultListParallel, "number of files parsed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), listParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
