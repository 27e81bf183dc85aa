package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// codonsCmd is for the codon index of a list
var codonsCmd = &cobra.Command{
	Use:                        "codons [file] ... [fileN]",
	Short:                      "List the codons of the sequences in files",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       codonsRun,
	SuggestionsMinimumDistance: 2,
	Long: `
List the distinct codons of all sequences in lexicographic order.

With --codon, print the number of times the codon is in the sequences, or with
--seqs the distinct sequences it's in`,
	Example: `  genoma codons enzymes.fa
  genoma codons --codon ATC enzymes.fa
  genoma codons --codon ATC --seqs enzymes.fa`,
}

func codonsRun(cmd *cobra.Command, args []string) error {
	codon, _ := cmd.Flags().GetString("codon")
	seqs, _ := cmd.Flags().GetBool("seqs")
	if seqs && codon == "" {
		return fmt.Errorf("--seqs requires a --codon")
	}

	l, err := loadList(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case codon == "":
		printLines(out, l.CodonList())
	case seqs:
		printLines(out, l.SeqsWithCodonList(codon))
	default:
		fmt.Fprintln(out, l.CodonFrequency(codon))
	}
	return nil
}

func init() {
	codonsCmd.Flags().StringP("codon", "c", "", "codon to count")
	codonsCmd.Flags().Bool("seqs", false, "print the sequences with the codon instead of its count")

	rootCmd.AddCommand(codonsCmd)
}
