package rrbvector

// Iterator walks a Vector's elements in order without the O(log n)
// per-element cost of repeated Nth calls: it keeps the current leaf
// materialized and only re-descends the trie when it runs off the end
// of that leaf.
type Iterator[T any] struct {
	v        Vector[T]
	pos      int
	leaf     []T
	leafBase int
}

// Iterate returns an Iterator positioned before v's first element.
func (v Vector[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{v: v, pos: 0}
}

// Next reports whether there is another element and, if so, advances
// past it and returns it.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.pos >= it.v.count {
		return zero, false
	}
	if it.leaf == nil || it.pos < it.leafBase || it.pos >= it.leafBase+len(it.leaf) {
		it.loadLeaf(it.pos)
	}
	x := it.leaf[it.pos-it.leafBase]
	it.pos++
	return x, true
}

func (it *Iterator[T]) loadLeaf(i int) {
	v := it.v
	if off := v.tailOffset(); i >= off {
		it.leaf = v.tail
		it.leafBase = off
		return
	}
	n := v.root
	idx := i
	for level := v.shift; level > 0; level -= bits {
		slot := n.slotFor(idx, level)
		if n.sizes != nil && slot > 0 {
			idx -= n.sizes[slot-1]
		}
		n = n.children[slot]
	}
	it.leaf = n.leaves
	it.leafBase = i - (idx & mask)
}

// ForEach calls fn with every element of v, in order, stopping early if
// fn returns false.
func (v Vector[T]) ForEach(fn func(i int, x T) bool) {
	it := v.Iterate()
	i := 0
	for {
		x, ok := it.Next()
		if !ok {
			return
		}
		if !fn(i, x) {
			return
		}
		i++
	}
}
