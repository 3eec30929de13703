package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default mockprep.yaml configuration file",
		Long: `Create a mockprep.yaml in the current working directory with every setting at
its current value. The file covers the source layout (layout.main_root,
layout.test_root), test generation (scaffold.prefix, scaffold.template,
scaffold.open) and the undo journal (journal.dir, journal.max_entries),
along with the list, watch, editor and log settings.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
