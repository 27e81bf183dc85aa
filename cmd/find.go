package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// findCmd is for finding a pattern in the sequences of files
var findCmd = &cobra.Command{
	Use:                        "find [pattern] [file] ... [fileN]",
	Short:                      "Find a pattern in each sequence",
	Args:                       cobra.MinimumNArgs(2),
	RunE:                       findRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Print a table with a row per sequence with the pattern: its description,
the number of (possibly overlapping) occurrences and the first and last
positions they start at`,
	Example: "  genoma find GATATC enzymes.fa",
	Aliases: []string{"grep"},
}

func findRun(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}

	l, err := loadList(args[1:])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "desc\tcount\tfirst\tlast\n")
	for _, s := range l.Values() {
		if count := s.CountPattern(pattern); count > 0 {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", s.Desc(), count, s.Index(pattern), s.LastIndex(pattern))
		}
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(findCmd)
}
