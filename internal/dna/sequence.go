// Package dna is for single, validated DNA sequences and the queries that
// can be run against one of them
package dna

import (
	"strings"
)

const (
	// CodonLength is the length of the non-overlapping windows a sequence is split into
	CodonLength = 3

	// defaultSeq is the content of the canonical default sequence
	defaultSeq = "ATG"
)

// validate checks the content and description of new sequences
var validate = newValidator()

// complements maps each nucleotide to the one it pairs with
var complements = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// Sequence is a stretch of DNA and its description.
//
// A Sequence is either the canonical default (ATG with an empty description)
// or has a length that's a positive multiple of CodonLength, only A, T, C and G
// nucleotides, and a description without line breaks. The zero value is the default.
type Sequence struct {
	// seq is the nucleotide sequence, empty for the default
	seq string

	// desc is a free text description of the sequence
	desc string
}

// New returns a Sequence with the seq and desc passed, or the default
// Sequence if either is invalid
func New(seq, desc string) Sequence {
	if !Valid(seq, desc) {
		return Default()
	}
	return Sequence{seq: seq, desc: desc}
}

// Default returns the canonical default Sequence
func Default() Sequence {
	return Sequence{}
}

// Valid returns whether a seq and desc pair would make a valid Sequence
func Valid(seq, desc string) bool {
	return validSeq(seq) && validDesc(desc)
}

func validSeq(seq string) bool {
	return validate.Var(seq, "min=3,codons,nucleotides") == nil
}

func validDesc(desc string) bool {
	return validate.Var(desc, "singleline") == nil
}

// Seq returns the nucleotide sequence
func (s Sequence) Seq() string {
	if s.seq == "" {
		return defaultSeq
	}
	return s.seq
}

// Desc returns the description of the sequence
func (s Sequence) Desc() string {
	return s.desc
}

// Len returns the number of nucleotides in the sequence
func (s Sequence) Len() int {
	return len(s.Seq())
}

// SetSeq replaces the nucleotide sequence if the new one is valid.
// Returns whether the sequence was updated
func (s *Sequence) SetSeq(seq string) bool {
	if !validSeq(seq) {
		return false
	}
	s.seq = seq
	return true
}

// SetDesc replaces the description if it has no line breaks.
// Returns whether the description was updated
func (s *Sequence) SetDesc(desc string) bool {
	if !validDesc(desc) {
		return false
	}
	s.desc = desc
	return true
}

// Equal returns whether both the sequence and description match
func (s Sequence) Equal(other Sequence) bool {
	return s.Seq() == other.Seq() && s.desc == other.desc
}

// String returns the sequence as "desc:seq"
func (s Sequence) String() string {
	return s.desc + ":" + s.Seq()
}

// Count returns the number of times a single nucleotide is in the sequence
func (s Sequence) Count(base byte) int {
	return strings.Count(s.Seq(), string(base))
}

// Chargaff returns whether the sequence has as many A's as T's and
// as many C's as G's
func (s Sequence) Chargaff() bool {
	return s.Count('A') == s.Count('T') && s.Count('C') == s.Count('G')
}

// GC returns the ratio of G's and C's to the length of the sequence
func (s Sequence) GC() float64 {
	return float64(s.Count('G')+s.Count('C')) / float64(s.Len())
}

// CountPattern returns the number of places the pattern starts in the sequence.
// Matches may overlap, so "AAA" has two matches for "AA"
func (s Sequence) CountPattern(pattern string) int {
	if pattern == "" {
		return 0
	}

	seq := s.Seq()
	count := 0
	for i := 0; i+len(pattern) <= len(seq); i++ {
		if seq[i:i+len(pattern)] == pattern {
			count++
		}
	}
	return count
}

// CodonCount is CountPattern for patterns that are exactly one codon long.
// Other lengths have a count of 0
func (s Sequence) CodonCount(codon string) int {
	if len(codon) != CodonLength {
		return 0
	}
	return s.CountPattern(codon)
}

// Index returns the index of the first match of pattern, or -1
func (s Sequence) Index(pattern string) int {
	if pattern == "" {
		return -1
	}
	return strings.Index(s.Seq(), pattern)
}

// LastIndex returns the index of the last match of pattern, or -1
func (s Sequence) LastIndex(pattern string) int {
	if pattern == "" {
		return -1
	}
	return strings.LastIndex(s.Seq(), pattern)
}

// MaxRun returns the length of the longest unbroken run of base
func (s Sequence) MaxRun(base byte) int {
	seq := s.Seq()
	longest, run := 0, 0
	for i := 0; i < len(seq); i++ {
		if seq[i] != base {
			run = 0
			continue
		}

		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

// MaxRunAny returns the length of the longest unbroken run of any nucleotide
func (s Sequence) MaxRunAny() int {
	longest := 0
	for _, base := range []byte("ATCG") {
		if run := s.MaxRun(base); run > longest {
			longest = run
		}
	}
	return longest
}

// Mutate sets the nucleotide at pos to base. Returns false, and leaves
// the sequence as is, if pos is out of range or base isn't a nucleotide
func (s *Sequence) Mutate(pos int, base byte) bool {
	if _, ok := complements[base]; !ok {
		return false
	}

	seq := []byte(s.Seq())
	if pos < 0 || pos >= len(seq) {
		return false
	}

	seq[pos] = base
	s.seq = string(seq)
	return true
}

// Mutations returns the number of positions where the two sequences differ.
// Returns -1 if they're different lengths
func (s Sequence) Mutations(other Sequence) int {
	seq, otherSeq := s.Seq(), other.Seq()
	if len(seq) != len(otherSeq) {
		return -1
	}

	diffs := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] != otherSeq[i] {
			diffs++
		}
	}
	return diffs
}

// IsComplement returns whether every nucleotide in other pairs with the one
// at the same position in this sequence
func (s Sequence) IsComplement(other Sequence) bool {
	seq, otherSeq := s.Seq(), other.Seq()
	if len(seq) != len(otherSeq) {
		return false
	}

	for i := 0; i < len(seq); i++ {
		if complements[seq[i]] != otherSeq[i] {
			return false
		}
	}
	return true
}

// RevComp replaces the sequence with its reverse complement
func (s *Sequence) RevComp() {
	s.seq = revComp(s.Seq())
}

// Codons splits the sequence into non-overlapping codons starting at the first
// nucleotide. Any trailing nucleotides that don't fill a codon are dropped
func (s Sequence) Codons() []string {
	seq := s.Seq()
	codons := make([]string, 0, len(seq)/CodonLength)
	for i := 0; i+CodonLength <= len(seq); i += CodonLength {
		codons = append(codons, seq[i:i+CodonLength])
	}
	return codons
}

// revComp returns the reverse complement of a sequence
func revComp(seq string) string {
	var revCompBuilder strings.Builder
	revCompBuilder.Grow(len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		revCompBuilder.WriteByte(complements[seq[i]])
	}
	return revCompBuilder.String()
}
