package cmd

import (
	"github.com/spf13/cobra"
)

// diffCmd is for the sequences of one file that aren't in another
var diffCmd = &cobra.Command{
	Use:                        "diff [file] [other]",
	Short:                      "Print the sequences of a file that aren't in another",
	Args:                       cobra.ExactArgs(2),
	RunE:                       diffRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Print the sequences of the first file whose nucleotides aren't in any of the
second file's sequences, in their original order and with repeats kept`,
	Example: "  genoma diff enzymes.fa seen.fa",
}

func diffRun(cmd *cobra.Command, args []string) error {
	l, err := loadList(args[:1])
	if err != nil {
		return err
	}

	other, err := loadList(args[1:])
	if err != nil {
		return err
	}

	printLines(cmd.OutOrStdout(), l.Diff(other).String())
	return nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
