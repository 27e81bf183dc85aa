// Package seqlist is for an ordered list of DNA sequences that keeps
// counts of its sequences and their codons up to date as it's changed.
//
// Every change to the list goes through index.add and index.retract so that
// the counts, and the sequences sharing each codon, always match the list.
// Lists aren't safe for concurrent use.
package seqlist

import (
	"container/list"

	"github.com/csalas-alarcon/genoma-humano/internal/dna"
	"github.com/emirpasic/gods/sets/hashset"
)

// entry is a single sequence in the list
type entry struct {
	seq dna.Sequence

	// removed is set once the entry is no longer in the list, so cursors
	// that still reference it can tell they've been invalidated
	removed bool
}

// List is an ordered list of DNA sequences. Create Lists with New
type List struct {
	// seqs are the entries in the list, in order
	seqs *list.List

	// idx are the counts derived from seqs
	idx *index
}

// New returns an empty List
func New() *List {
	return &List{
		seqs: list.New(),
		idx:  newIndex(),
	}
}

// Clone returns a deep copy of the list with its own counts
func (l *List) Clone() *List {
	clone := New()
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		clone.PushBack(e.Value.(*entry).seq)
	}
	return clone
}

// Clear removes every sequence from the list. Cursors into the list are invalidated
func (l *List) Clear() {
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		e.Value.(*entry).removed = true
	}
	l.seqs.Init()
	l.idx = newIndex()
}

// Len returns the number of sequences in the list
func (l *List) Len() int {
	return l.seqs.Len()
}

// Empty returns whether the list has no sequences
func (l *List) Empty() bool {
	return l.seqs.Len() == 0
}

// Values returns a copy of the list's sequences in order
func (l *List) Values() []dna.Sequence {
	values := make([]dna.Sequence, 0, l.seqs.Len())
	for e := l.seqs.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(*entry).seq)
	}
	return values
}

// At returns the sequence the cursor points to. Returns the default
// sequence and false if the cursor isn't on a sequence in this list
func (l *List) At(c Cursor) (dna.Sequence, bool) {
	if !l.onSeq(c) {
		return dna.Default(), false
	}
	return c.elem.Value.(*entry).seq, true
}

// PushFront inserts a sequence at the front of the list
func (l *List) PushFront(s dna.Sequence) {
	l.idx.add(s)
	l.seqs.PushFront(&entry{seq: s})
}

// PushBack inserts a sequence at the back of the list
func (l *List) PushBack(s dna.Sequence) {
	l.idx.add(s)
	l.seqs.PushBack(&entry{seq: s})
}

// InsertBefore inserts a sequence so that it's where the cursor was, moving the
// cursor's sequence and those after it back by one. On the past-the-end cursor,
// it's the same as PushBack. Returns false if the cursor is unbound, is
// before-the-start, or is from another list
func (l *List) InsertBefore(c Cursor, s dna.Sequence) bool {
	switch {
	case c.owner != l || c.Unbound():
		return false
	case c.pos == pastEnd:
		l.PushBack(s)
		return true
	case c.pos == bound:
		l.idx.add(s)
		l.seqs.InsertBefore(&entry{seq: s}, c.elem)
		return true
	}
	return false
}

// InsertAfter inserts a sequence right after the cursor's sequence.
// Returns false if the cursor isn't on a sequence in this list
func (l *List) InsertAfter(c Cursor, s dna.Sequence) bool {
	if !l.onSeq(c) {
		return false
	}

	l.idx.add(s)
	l.seqs.InsertAfter(&entry{seq: s}, c.elem)
	return true
}

// Set replaces the sequence at the cursor. Returns false if the cursor
// isn't on a sequence in this list
func (l *List) Set(c Cursor, s dna.Sequence) bool {
	if !l.onSeq(c) {
		return false
	}

	// retract before adding, even if the sequence is unchanged
	e := c.elem.Value.(*entry)
	l.idx.retract(e.seq)
	l.idx.add(s)
	e.seq = s
	return true
}

// RemoveFront removes the first sequence. Returns false if the list is empty
func (l *List) RemoveFront() bool {
	if l.Empty() {
		return false
	}

	l.remove(l.seqs.Front())
	return true
}

// RemoveBack removes the last sequence. Returns false if the list is empty
func (l *List) RemoveBack() bool {
	if l.Empty() {
		return false
	}

	l.remove(l.seqs.Back())
	return true
}

// Remove removes the sequence at the cursor and unbinds the cursor. Returns false,
// and leaves the cursor as is, if it isn't on a sequence in this list
func (l *List) Remove(c *Cursor) bool {
	if c == nil || !l.onSeq(*c) {
		return false
	}

	l.remove(c.elem)
	c.elem = nil
	c.pos = unbound
	return true
}

// Dedupe removes every sequence that has the same nucleotides as one before
// it in the list, keeping the first of each
func (l *List) Dedupe() {
	seen := hashset.New()
	for e := l.seqs.Front(); e != nil; {
		next := e.Next()

		seq := e.Value.(*entry).seq.Seq()
		if seen.Contains(seq) {
			l.remove(e)
		} else {
			seen.Add(seq)
		}

		e = next
	}
}

// remove takes an element out of the list and un-counts its sequence
func (l *List) remove(e *list.Element) {
	removed := e.Value.(*entry)
	l.idx.retract(removed.seq)
	removed.removed = true
	l.seqs.Remove(e)
}

// onSeq returns whether the cursor is on a sequence in this list
func (l *List) onSeq(c Cursor) bool {
	return c.owner == l && c.pos == bound && !c.Unbound()
}
