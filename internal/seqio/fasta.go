package seqio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
)

// unwantedChars are removed from sequence lines, eg the base pair
// numbering of GenBank style sequences
var unwantedChars = regexp.MustCompile(`[\s\d]`)

// ParseFASTA reads the entries of a (multi-)FASTA file.
//
// Each header is used as its entry's description. The sequence lines after
// a header are joined, cleaned of whitespace and digits and upper-cased.
// Lines before the first header are ignored
func ParseFASTA(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var seqLines strings.Builder
	inEntry := false

	flush := func() {
		if inEntry {
			seq := unwantedChars.ReplaceAllString(seqLines.String(), "")
			entries[len(entries)-1].Seq = strings.ToUpper(seq)
		}
		seqLines.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), dna.MaxLineLength)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			entries = append(entries, Entry{Desc: strings.TrimSpace(line[1:])})
			inEntry = true
			continue
		}

		if inEntry {
			seqLines.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse FASTA: %w", err)
	}
	flush()

	return entries, nil
}

// WriteFASTA writes the sequences as a multi-FASTA file. Sequence lines
// are wrapped at width nucleotides, or not wrapped if width is less than 1
func WriteFASTA(w io.Writer, seqs []dna.Sequence, width int) error {
	bw := bufio.NewWriter(w)
	for _, s := range seqs {
		fmt.Fprintf(bw, ">%s\n", s.Desc())

		seq := s.Seq()
		lineWidth := width
		if lineWidth < 1 {
			lineWidth = len(seq)
		}
		for start := 0; start < len(seq); start += lineWidth {
			end := start + lineWidth
			if end > len(seq) {
				end = len(seq)
			}
			fmt.Fprintf(bw, "%s\n", seq[start:end])
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write FASTA: %w", err)
	}
	return nil
}

// ReadFASTA returns the entries of the FASTA file at path
func ReadFASTA(path string) ([]Entry, error) {
	return parseFile(path, ParseFASTA)
}
