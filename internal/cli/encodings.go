package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"subdec/internal/charset"
)

var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "List the source encodings accepted by --fallback-encoding",
	Long: `List the source encoding names accepted by --encoding and
--fallback-encoding, and whether a converter is available for each.

The special name "system" resolves to the platform's locale encoding.`,
	Args: cobra.NoArgs,
	RunE: runEncodings,
}

func init() {
	rootCmd.AddCommand(encodingsCmd)
}

func runEncodings(cmd *cobra.Command, args []string) error {
	names := charset.Encodings()

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		available := "yes"
		if !charset.HasConverter(name) {
			available = "no"
		}
		rows = append(rows, []string{name, available})
	}

	fmt.Println(renderTable([]string{"Encoding", "Available"}, rows))
	fmt.Println(`Use "system" to select the platform's locale encoding.`)

	return nil
}
