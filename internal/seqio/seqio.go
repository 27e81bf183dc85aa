// Package seqio is for reading and writing files of DNA sequences:
// FASTA, YAML manifests and two line records
package seqio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
)

const (
	// FASTA files have a ">desc" header line followed by sequence lines
	FASTA = "fasta"

	// YAML manifests have a list of sequences with a desc and seq each
	YAML = "yaml"

	// Record files have a single sequence, its description on the first line
	// and the sequence on the second
	Record = "record"
)

var (
	// ErrNoSequences is returned when a file parses but has no sequences in it
	ErrNoSequences = errors.New("no sequences found")

	// ErrUnknownFormat is returned when a file's format can't be determined
	ErrUnknownFormat = errors.New("unknown sequence file format")
)

// extensions maps file extensions to the format of the file
var extensions = map[string]string{
	".fa":     FASTA,
	".fasta":  FASTA,
	".fna":    FASTA,
	".ffn":    FASTA,
	".yaml":   YAML,
	".yml":    YAML,
	".txt":    Record,
	".rec":    Record,
	".record": Record,
}

// Entry is a single sequence as it was read from a file, before validation
type Entry struct {
	// Desc is the description, the FASTA header or record's first line
	Desc string `yaml:"desc"`

	// Seq is the nucleotide sequence
	Seq string `yaml:"seq"`
}

// Sequence returns the entry as a dna.Sequence, and false if it isn't valid
func (e Entry) Sequence() (dna.Sequence, bool) {
	if !dna.Valid(e.Seq, e.Desc) {
		return dna.Default(), false
	}
	return dna.New(e.Seq, e.Desc), true
}

// FormatOf returns the format to use for a file. An explicit format is used
// as is, otherwise the format is guessed from the file's extension
func FormatOf(path, format string) (string, error) {
	switch format {
	case FASTA, YAML, Record:
		return format, nil
	case "":
		if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
			return f, nil
		}
		return "", fmt.Errorf("failed to guess the format of %s: %w", path, ErrUnknownFormat)
	}
	return "", fmt.Errorf("failed to read %s as %q: %w", path, format, ErrUnknownFormat)
}

// Load returns the entries in the file at path. The format is one of
// FASTA, YAML or Record, or empty to go by the file's extension
func Load(path, format string) ([]Entry, error) {
	format, err := FormatOf(path, format)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	switch format {
	case FASTA:
		entries, err = ReadFASTA(path)
	case YAML:
		entries, err = ReadManifest(path)
	case Record:
		var s dna.Sequence
		if err = s.Load(path); err == nil {
			entries = []Entry{{Desc: s.Desc(), Seq: s.Seq()}}
		}
	}
	if err != nil {
		return nil, err
	}

	if len(entries) < 1 {
		return nil, fmt.Errorf("failed to load %s: %w", path, ErrNoSequences)
	}
	return entries, nil
}

// parseFile opens the file at path and parses it with parse
func parseFile(path string, parse func(io.Reader) ([]Entry, error)) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// Save writes the sequences to the file at path. Record files hold exactly one sequence
func Save(path, format string, seqs []dna.Sequence, width int) error {
	format, err := FormatOf(path, format)
	if err != nil {
		return err
	}

	if format == Record {
		if len(seqs) != 1 {
			return fmt.Errorf("failed to write %s: a record holds 1 sequence, not %d", path, len(seqs))
		}
		return seqs[0].Save(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if format == FASTA {
		err = WriteFASTA(f, seqs, width)
	} else {
		err = WriteManifest(f, seqs)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}
