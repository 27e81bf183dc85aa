package cmd

import (
	"github.com/spf13/cobra"
)

// renderCmd is for printing each sequence of a list as desc:seq
var renderCmd = &cobra.Command{
	Use:                        "render [file] ... [fileN]",
	Short:                      "Print the sequences in files",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       renderRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Read the sequences of each file, in order, into a list and print them
one per line as description:sequence`,
	Example: "  genoma render enzymes.fa extra.yaml",
	Aliases: []string{"print", "cat"},
}

func renderRun(cmd *cobra.Command, args []string) error {
	l, err := loadList(args)
	if err != nil {
		return err
	}

	printLines(cmd.OutOrStdout(), l.String())
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
