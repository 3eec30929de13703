// Package cmd provides the root command and CLI setup for mockprep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/controller"
	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var javaFileAdapter adapter.JavaFileAdapter
var watchAdapter adapter.WatchAdapter

var verboseFlag bool
var logFileFlag string
var debugFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	javaFileAdapter = adapter.NewLocalJavaFileAdapter()
	watchAdapter = adapter.NewLocalWatchAdapter()
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...              recursively scan current directory
  - ./app/src/...      recursively scan app/src
  - ./a ./b Foo.java   scan directories and single files`

const rootLongDescription = `Mockprep keeps PowerMock test classes in shape. It maintains the
@PrepareForTest annotation from the classes a test passes to mockStatic and
generates JUnit test skeletons for production classes.`

const prepareLongDescription = `Collect every mockStatic(X.class) call in each file and write the matching
@PrepareForTest block above @RunWith, adding the import when needed. An
existing block is replaced. Files that are already in sync are not touched.`

const scaffoldLongDescription = `Generate a JUnit test class for a production source file. The test is
written to the mirror package under the test source root and holds one
@Test stub per public method of the file's first class. An existing test
file is overwritten.`

const listLongDescription = `List Java files with their first class, public method count, the classes
they mock statically and whether @PrepareForTest is in sync.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "mockprep",
		Short:         "PowerMock test maintenance tool",
		Long:          rootLongDescription,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SilenceUsage = true
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&debugFlag, debugFlagName, viper.GetBool(notifyDebugKey), "show debug notifications")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debugFlagName), notifyDebugKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var shown reportedError
		if !errors.As(err, &shown) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

// reportedError wraps an error the handlers already showed as a notification.
type reportedError struct {
	err error
}

func (e reportedError) Error() string {
	return e.err.Error()
}

func (e reportedError) Unwrap() error {
	return e.err
}

func reported(err error) error {
	if err == nil {
		return nil
	}

	return reportedError{err: err}
}

// fail logs err, shows it to the user and marks it as reported.
func fail(ctx context.Context, ui controller.UI, err error) error {
	slog.Error("command failed", "error", err)
	ui.Notify(ctx, m.Notification{Level: m.LevelError, Title: "Error", Message: err.Error()})

	return reported(err)
}

func newUI(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout), controller.WithDebug(viper.GetBool(notifyDebugKey)))
}

func newLocator(ui controller.UI) domain.ClassLocator {
	return domain.NewClassLocator(javaFileAdapter, ui)
}

func newUpdater(ui controller.UI) domain.Updater {
	journal := adapter.NewLocalJournalStore(viper.GetString(journalDirKey), viper.GetInt(journalMaxEntriesKey))
	return domain.NewUpdater(sourceFSAdapter, journal, newLocator(ui), ui)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
