package cmd

import (
	"fmt"
	"io"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
	"github.com/spf13/cobra"
)

// seqsCmd is for the sequence index of a list
var seqsCmd = &cobra.Command{
	Use:                        "seqs [file] ... [fileN]",
	Short:                      "List the distinct sequences in files",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       seqsRun,
	SuggestionsMinimumDistance: 2,
	Long: `
List the distinct nucleotide sequences in lexicographic order.

With --count, print the number of times a sequence is in the files. Only
nucleotides are compared, descriptions are ignored`,
	Example: `  genoma seqs enzymes.fa
  genoma seqs --count GATATC enzymes.fa`,
}

func seqsRun(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetString("count")
	if count != "" && !dna.Valid(count, "") {
		return fmt.Errorf("%q is not a valid sequence", count)
	}

	l, err := loadList(args)
	if err != nil {
		return err
	}

	if count != "" {
		fmt.Fprintln(cmd.OutOrStdout(), l.Count(dna.New(count, "")))
		return nil
	}

	printLines(cmd.OutOrStdout(), l.SeqList())
	return nil
}

// printLines prints a newline separated list, or nothing if it's empty
func printLines(w io.Writer, lines string) {
	if lines != "" {
		fmt.Fprintln(w, lines)
	}
}

func init() {
	seqsCmd.Flags().String("count", "", "sequence to count")

	rootCmd.AddCommand(seqsCmd)
}
