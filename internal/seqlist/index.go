package seqlist

import (
	"github.com/csalas-alarcon/genoma-humano/internal/dna"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// index holds the counts derived from a List's sequences. Sequences are
// compared by their nucleotides only, descriptions are ignored
type index struct {
	// seqCount maps each distinct sequence to the number of times it's in the list
	seqCount *treemap.Map

	// codonCount maps each codon to the number of times it's in the codons
	// of every sequence in the list
	codonCount *treemap.Map

	// codonSeqs maps each codon to the set of distinct sequences with it as a codon
	codonSeqs map[string]*treeset.Set
}

func newIndex() *index {
	return &index{
		seqCount:   treemap.NewWithStringComparator(),
		codonCount: treemap.NewWithStringComparator(),
		codonSeqs:  make(map[string]*treeset.Set),
	}
}

// add counts a sequence that was inserted into the list
func (x *index) add(s dna.Sequence) {
	seq := s.Seq()
	increment(x.seqCount, seq, 1)

	for _, codon := range s.Codons() {
		increment(x.codonCount, codon, 1)

		seqs, ok := x.codonSeqs[codon]
		if !ok {
			seqs = treeset.NewWithStringComparator()
			x.codonSeqs[codon] = seqs
		}
		seqs.Add(seq)
	}
}

// retract un-counts a sequence that's being removed from the list. A sequence
// stays in codonSeqs until its last copy is retracted
func (x *index) retract(s dna.Sequence) {
	seq := s.Seq()
	remaining := increment(x.seqCount, seq, -1)

	for _, codon := range s.Codons() {
		increment(x.codonCount, codon, -1)

		if remaining > 0 {
			continue
		}

		if seqs, ok := x.codonSeqs[codon]; ok {
			seqs.Remove(seq)
			if seqs.Empty() {
				delete(x.codonSeqs, codon)
			}
		}
	}
}

// increment adds delta to the count of key, removing the key once its
// count reaches zero. Returns the new count
func increment(counts *treemap.Map, key string, delta int) int {
	count := delta + lookup(counts, key)
	if count <= 0 {
		counts.Remove(key)
		return 0
	}

	counts.Put(key, count)
	return count
}

// lookup returns the count of key, or 0 if it's absent
func lookup(counts *treemap.Map, key string) int {
	if count, ok := counts.Get(key); ok {
		return count.(int)
	}
	return 0
}

// keys returns the keys of a count map in ascending order
func keys(counts *treemap.Map) []string {
	ks := make([]string, 0, counts.Size())
	for _, k := range counts.Keys() {
		ks = append(ks, k.(string))
	}
	return ks
}
