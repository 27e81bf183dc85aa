package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCmd is for a table of per sequence properties
var statsCmd = &cobra.Command{
	Use:                        "stats [file] ... [fileN]",
	Short:                      "Print the length, GC content and runs of each sequence",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       statsRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Print a table with a row per sequence: its description, length, GC fraction,
whether it meets Chargaff's rule (A = T and C = G) and its longest run of a
single nucleotide`,
	Example: "  genoma stats enzymes.fa",
}

func statsRun(cmd *cobra.Command, args []string) error {
	l, err := loadList(args)
	if err != nil {
		return err
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "desc\tlength\tGC\tChargaff\tlongest run\n")
	for _, s := range l.Values() {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%t\t%d\n", s.Desc(), s.Len(), s.GC(), s.Chargaff(), s.MaxRunAny())
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
