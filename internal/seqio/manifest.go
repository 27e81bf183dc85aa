package seqio

import (
	"errors"
	"fmt"
	"io"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
	"gopkg.in/yaml.v3"
)

// manifest is the document of a YAML sequence file:
//
//	sequences:
//	  - desc: EcoRV
//	    seq: GATATC
type manifest struct {
	Sequences []Entry `yaml:"sequences"`
}

// ParseManifest reads the entries of a YAML manifest
func ParseManifest(r io.Reader) ([]Entry, error) {
	var m manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m.Sequences, nil
}

// ReadManifest returns the entries of the YAML manifest at path
func ReadManifest(path string) ([]Entry, error) {
	return parseFile(path, ParseManifest)
}

// WriteManifest writes the sequences as a YAML manifest
func WriteManifest(w io.Writer, seqs []dna.Sequence) error {
	m := manifest{Sequences: make([]Entry, 0, len(seqs))}
	for _, s := range seqs {
		m.Sequences = append(m.Sequences, Entry{Desc: s.Desc(), Seq: s.Seq()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return enc.Close()
}
