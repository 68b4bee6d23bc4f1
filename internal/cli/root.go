package cli

import (
	"subdec/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subdec",
	Short: "Text subtitle decoder",
	Long: `Subdec decodes text subtitle packets: it converts cue bytes from
their source encoding to UTF-8 and parses the inline markup
(<b>, <i>, <font ...>, {\anN} overrides) into styled text segments.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
