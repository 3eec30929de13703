package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// scaffoldCmd represents the scaffold command.
var scaffoldCmd = newScaffoldCmd()

func newScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold <file>",
		Short: "Generate a JUnit test skeleton for a production class",
		Long:  scaffoldLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := newUI(cmd)

			tmpl, err := domain.LoadTestTemplate(viper.GetString(scaffoldTemplateKey), sourceFSAdapter)
			if err != nil {
				return fail(ctx, ui, err)
			}

			editor := adapter.NewLocalEditorAdapter(viper.GetString(editorCommandKey))
			scaffolder := domain.NewScaffolder(sourceFSAdapter, editor, newLocator(ui), ui, layoutFromConfig(), tmpl)

			_, err = scaffolder.Generate(ctx, domain.ScaffoldArgs{
				Path: m.Path(args[0]),
				Open: viper.GetBool(scaffoldOpenKey),
			})

			return reported(err)
		},
	}

	cmd.Flags().Bool(openFlagName, defaultScaffoldOpen, "open the generated test in the editor")
	bindFlagToConfig(cmd.Flags().Lookup(openFlagName), scaffoldOpenKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
}
