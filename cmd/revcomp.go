package cmd

import (
	"github.com/spf13/cobra"
)

// revcompCmd is for the reverse complement of each sequence
var revcompCmd = &cobra.Command{
	Use:                        "revcomp [file] ... [fileN]",
	Short:                      "Print the reverse complement of each sequence",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       revcompRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Replace each sequence with its reverse complement, the sequence of the
opposite strand read 5' to 3', and print them`,
	Example: "  genoma revcomp enzymes.fa",
	Aliases: []string{"rc"},
}

func revcompRun(cmd *cobra.Command, args []string) error {
	l, err := loadList(args)
	if err != nil {
		return err
	}

	for c := l.Begin(); !c.PastEnd(); c.Next() {
		s, _ := l.At(c)
		s.RevComp()
		l.Set(c, s)
	}

	printLines(cmd.OutOrStdout(), l.String())
	return nil
}

func init() {
	rootCmd.AddCommand(revcompCmd)
}
