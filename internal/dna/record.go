package dna

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineLength is the longest line read from a sequence file, sequences
// are often kept on a single line
const MaxLineLength = 1 << 30

// ReadRecord parses a two line record: the description on the first line and
// the sequence on the second
func ReadRecord(r io.Reader) (Sequence, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Default(), fmt.Errorf("failed to read record: %w", err)
	}

	if len(lines) < 2 {
		return Default(), fmt.Errorf("failed to read record: expected 2 lines, found %d", len(lines))
	}

	desc, seq := lines[0], lines[1]
	if !Valid(seq, desc) {
		return Default(), fmt.Errorf("failed to read record: %q is not a valid sequence", seq)
	}

	return Sequence{seq: seq, desc: desc}, nil
}

// WriteRecord writes the sequence as a two line record, without a trailing newline
func (s Sequence) WriteRecord(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%s", s.desc, s.Seq()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Save writes the sequence to a two line record file at path
func (s Sequence) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := s.WriteRecord(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return f.Close()
}

// Load reads a two line record file into the sequence. If the file
// can't be read or isn't valid the sequence is reset to the default
func (s *Sequence) Load(path string) error {
	*s = Default()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	loaded, err := ReadRecord(f)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	*s = loaded
	return nil
}
