// Package cli wires the taskroll command tree. Commands are thin: each one
// maps onto store, picker, or importer operations followed by an explicit
// save, and only this package renders output or errors.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/taskroll-cli/taskroll/internal/logging"
)

var logger = logging.New("cli")

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagState   string
	flagNoColor bool
)

// rootCmd is the base command for taskroll.
var rootCmd = &cobra.Command{
	Use:   "taskroll",
	Short: "Daily weighted task picker",
	Long: `taskroll keeps a catalog of recurring tasks and rolls a weighted random
subset of them each day as "today's tasks". Tasks can be weighted, tagged,
rate-limited, capped, and temporarily disabled; the daily draw is stable
within a day and rolls over at a configurable cut-off time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env vars for flags not explicitly set on the command line.
		if !cmd.Flags().Changed("verbose") && os.Getenv("TASKROLL_VERBOSE") != "" {
			flagVerbose = true
		}
		if !cmd.Flags().Changed("quiet") && os.Getenv("TASKROLL_QUIET") != "" {
			flagQuiet = true
		}
		if !cmd.Flags().Changed("no-color") && (os.Getenv("NO_COLOR") != "" || os.Getenv("TASKROLL_NO_COLOR") != "") {
			flagNoColor = true
		}

		jsonFormat := os.Getenv("TASKROLL_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)

		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: TASKROLL_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: TASKROLL_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config document (env: TASKROLL_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagState, "state", "", "Path to the state document (env: TASKROLL_STATE)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output (env: TASKROLL_NO_COLOR, NO_COLOR)")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a fresh instance of the root command for use by the
// shell completion and man page generators. The generated docs include the
// persistent flags and every registered subcommand.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	// Local flag variables keep the exported command safe for generators.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output (env: TASKROLL_VERBOSE)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors (env: TASKROLL_QUIET)")
	cmd.PersistentFlags().String("config", "", "Path to the config document (env: TASKROLL_CONFIG)")
	cmd.PersistentFlags().String("state", "", "Path to the state document (env: TASKROLL_STATE)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output (env: TASKROLL_NO_COLOR, NO_COLOR)")

	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}
