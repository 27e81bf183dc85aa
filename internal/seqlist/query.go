package seqlist

import (
	"strings"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
	"github.com/emirpasic/gods/sets/hashset"
)

// Count returns the number of sequences in the list with the same nucleotides as s
func (l *List) Count(s dna.Sequence) int {
	return lookup(l.idx.seqCount, s.Seq())
}

// SeqFrequency is the same as Count
func (l *List) SeqFrequency(s dna.Sequence) int {
	return l.Count(s)
}

// CodonFrequency returns the number of times the codon is in the codons of
// every sequence in the list. Only exact codons are counted, anything that
// isn't CodonLength long has a frequency of 0
func (l *List) CodonFrequency(codon string) int {
	if len(codon) != dna.CodonLength {
		return 0
	}
	return lookup(l.idx.codonCount, codon)
}

// Codons returns every codon in the list's sequences, sorted
func (l *List) Codons() []string {
	return keys(l.idx.codonCount)
}

// CodonList returns Codons joined by newlines
func (l *List) CodonList() string {
	return strings.Join(l.Codons(), "\n")
}

// Seqs returns every distinct sequence in the list, sorted
func (l *List) Seqs() []string {
	return keys(l.idx.seqCount)
}

// SeqList returns Seqs joined by newlines
func (l *List) SeqList() string {
	return strings.Join(l.Seqs(), "\n")
}

// SeqsWithCodon returns the distinct sequences, sorted, that have the codon
func (l *List) SeqsWithCodon(codon string) []string {
	seqs, ok := l.idx.codonSeqs[codon]
	if !ok {
		return []string{}
	}

	withCodon := make([]string, 0, seqs.Size())
	for _, s := range seqs.Values() {
		withCodon = append(withCodon, s.(string))
	}
	return withCodon
}

// SeqsWithCodonList returns SeqsWithCodon joined by newlines
func (l *List) SeqsWithCodonList(codon string) string {
	return strings.Join(l.SeqsWithCodon(codon), "\n")
}

// Concat returns a new list with this list's sequences followed by other's
func (l *List) Concat(other *List) *List {
	concat := l.Clone()
	for e := other.seqs.Front(); e != nil; e = e.Next() {
		concat.PushBack(e.Value.(*entry).seq)
	}
	return concat
}

// Diff returns a new list with the sequences of this list whose nucleotides
// aren't in any sequence of other
func (l *List) Diff(other *List) *List {
	exclude := hashset.New()
	for _, seq := range other.Seqs() {
		exclude.Add(seq)
	}

	diff := New()
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		if s := e.Value.(*entry).seq; !exclude.Contains(s.Seq()) {
			diff.PushBack(s)
		}
	}
	return diff
}

// Join returns a single sequence with the nucleotides of every sequence in the
// list, in order, and no description. An empty list joins to the default sequence
func (l *List) Join() dna.Sequence {
	if l.Empty() {
		return dna.Default()
	}

	var joined strings.Builder
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		joined.WriteString(e.Value.(*entry).seq.Seq())
	}
	return dna.New(joined.String(), "")
}

// String returns each sequence as "desc:seq", one per line
func (l *List) String() string {
	lines := make([]string, 0, l.seqs.Len())
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		lines = append(lines, e.Value.(*entry).seq.String())
	}
	return strings.Join(lines, "\n")
}
