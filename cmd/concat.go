package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// concatCmd is for joining the sequences in files into one
var concatCmd = &cobra.Command{
	Use:                        "concat [file] ... [fileN]",
	Short:                      "Join the sequences in files into one",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       concatRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Join the nucleotides of every sequence, in order, into a single sequence
without a description. The sequence is printed, or saved to --out as a
two line record`,
	Example: "  genoma concat exons.fa --out gene.txt",
	Aliases: []string{"join"},
}

func concatRun(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	l, err := loadList(args)
	if err != nil {
		return err
	}

	joined := l.Join()
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), joined.String())
		return nil
	}
	return joined.Save(out)
}

func init() {
	concatCmd.Flags().StringP("out", "o", "", "output record file")

	rootCmd.AddCommand(concatCmd)
}
