package seqlist

import "container/list"

// position is the kind of place in a list a cursor is at
type position int

const (
	// unbound cursors aren't in any list. The zero Cursor and cursors
	// whose sequence was removed are unbound
	unbound position = iota

	// bound cursors are on a sequence in the list
	bound

	// pastEnd is the position after the last sequence
	pastEnd

	// beforeStart is the position before the first sequence
	beforeStart
)

// Cursor is a position in a List. It doesn't own the list's sequences and
// stops referencing one once that sequence is removed from the list.
//
// Cursor positions past either end of a list are sticky: Next on the
// past-the-end cursor and Prev on the before-the-start cursor do nothing.
type Cursor struct {
	owner *List
	elem  *list.Element
	pos   position
}

// Begin returns a cursor on the first sequence, or the past-the-end cursor if the list is empty
func (l *List) Begin() Cursor {
	if front := l.seqs.Front(); front != nil {
		return Cursor{owner: l, elem: front, pos: bound}
	}
	return l.End()
}

// End returns the past-the-end cursor
func (l *List) End() Cursor {
	return Cursor{owner: l, pos: pastEnd}
}

// Last returns a cursor on the last sequence, or the past-the-end cursor if the list is empty
func (l *List) Last() Cursor {
	if back := l.seqs.Back(); back != nil {
		return Cursor{owner: l, elem: back, pos: bound}
	}
	return l.End()
}

// BeforeFirst returns the before-the-start cursor
func (l *List) BeforeFirst() Cursor {
	return Cursor{owner: l, pos: beforeStart}
}

// Next moves the cursor to the next sequence, or past-the-end after the last one
func (c *Cursor) Next() {
	if c.Unbound() {
		return
	}

	switch c.pos {
	case bound:
		if next := c.elem.Next(); next != nil {
			c.elem = next
		} else {
			c.elem, c.pos = nil, pastEnd
		}
	case beforeStart:
		*c = c.owner.Begin()
	}
}

// Prev moves the cursor to the previous sequence, or before-the-start from the first one
func (c *Cursor) Prev() {
	if c.Unbound() {
		return
	}

	switch c.pos {
	case bound:
		if prev := c.elem.Prev(); prev != nil {
			c.elem = prev
		} else {
			c.elem, c.pos = nil, beforeStart
		}
	case pastEnd:
		if back := c.owner.seqs.Back(); back != nil {
			c.elem, c.pos = back, bound
		} else {
			c.pos = beforeStart
		}
	}
}

// Unbound returns whether the cursor isn't at any position in a list
func (c Cursor) Unbound() bool {
	switch c.pos {
	case unbound:
		return true
	case bound:
		return c.elem.Value.(*entry).removed
	}
	return false
}

// PastEnd returns whether this is a past-the-end cursor
func (c Cursor) PastEnd() bool {
	return c.pos == pastEnd
}

// BeforeStart returns whether this is a before-the-start cursor
func (c Cursor) BeforeStart() bool {
	return c.pos == beforeStart
}

// Equal returns whether two cursors are at the same position of the same list
func (c Cursor) Equal(other Cursor) bool {
	if c.owner != other.owner {
		return false
	}

	if c.Unbound() || other.Unbound() {
		return c.Unbound() && other.Unbound()
	}
	return c.pos == other.pos && c.elem == other.elem
}
