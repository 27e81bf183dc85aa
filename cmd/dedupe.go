package cmd

import (
	"github.com/csalas-alarcon/genoma-humano/internal/seqio"
	"github.com/spf13/cobra"
)

// dedupeCmd is for removing repeated sequences, keeping the first of each
var dedupeCmd = &cobra.Command{
	Use:                        "dedupe [file] ... [fileN]",
	Short:                      "Remove repeated sequences",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       dedupeRun,
	SuggestionsMinimumDistance: 2,
	Long: `
Remove every sequence whose nucleotides are the same as an earlier one's.
The first of each is kept, in its original position.

The remaining sequences are printed, or written to --out: a FASTA file or
YAML manifest (by extension)`,
	Example: "  genoma dedupe enzymes.fa --out unique.fa --width 80",
	Aliases: []string{"uniq"},
}

func dedupeRun(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	l, err := loadList(args)
	if err != nil {
		return err
	}

	before := l.Len()
	l.Dedupe()
	if conf.Verbose {
		stderr.Printf("removed %d repeated sequences", before-l.Len())
	}

	if out == "" {
		printLines(cmd.OutOrStdout(), l.String())
		return nil
	}
	return seqio.Save(out, "", l.Values(), conf.Width)
}

func init() {
	dedupeCmd.Flags().StringP("out", "o", "", "output file <FASTA|YAML>")
	dedupeCmd.Flags().IntP("width", "w", 60, "line width of FASTA output, 0 for one line per sequence")

	rootCmd.AddCommand(dedupeCmd)
}
