package rrbvector

// Push returns a copy of v with x appended as the new last element.
// Cost is amortized O(1): almost every push only touches the tail.
func (v Vector[T]) Push(x T) Vector[T] {
	if len(v.tail) < width {
		newTail := append(make([]T, 0, width), v.tail...)
		newTail = append(newTail, x)
		return Vector[T]{count: v.count + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	newRoot, newShift := pushDown(v.root, v.shift, newLeaf(v.tail...))
	return Vector[T]{count: v.count + 1, shift: newShift, root: newRoot, tail: []T{x}}
}

// Append returns a copy of v with xs appended in order. Pushing more
// than one element at a time routes through a Transient so only the
// final result is published; Append() with no arguments is a no-op that
// returns v unchanged.
func (v Vector[T]) Append(xs ...T) Vector[T] {
	switch len(xs) {
	case 0:
		return v
	case 1:
		return v.Push(xs[0])
	default:
		t := v.AsTransient()
		t.Append(xs...)
		return t.Freeze()
	}
}

// pushDown pushes a full tail leaf into the trie as a whole leaf,
// growing the trie's height if the existing rightmost spine has no more
// room for it. Whether a spine node has room is decided purely by its
// arity (len < width), never by element counts, so this works the same
// whether root is a regular (push-built) node or a relaxed one produced
// by Concat.
func pushDown[T any](root *node[T], shift int, leaf *node[T]) (*node[T], int) {
	if root == nil {
		return leaf, 0
	}
	if shift == 0 {
		// root is itself a leaf; there is no internal spine to reuse. A
		// partial root leaf (left by a slice) can't precede another child
		// in a regular node, so the new parent gets a size table then.
		above := newInternal(root, newPath(0, leaf))
		if root.len < width {
			setSizes(above, bits)
		}
		return above, bits
	}
	if grown, ok := pushTail(shift, root, leaf); ok {
		return grown, shift
	}
	return newInternal(root, newPath(shift, leaf)), shift + bits
}

// newPath builds a chain of single-child internal nodes of the given
// height terminating in leaf, so it can be attached at an empty slot
// without walking further down by hand.
func newPath[T any](level int, leaf *node[T]) *node[T] {
	if level == 0 {
		return leaf
	}
	return newInternal(newPath(level-bits, leaf))
}

// pushTail tries to attach leaf as the new rightmost leaf somewhere
// under n (an internal node living at level), reusing as much of the
// existing rightmost spine as still has room: it always tries the
// current rightmost child first and only opens a new sibling here when
// that child's own spine is full, bottoming out at whether n itself has
// room for one more child. It reports ok=false, leaving n untouched,
// when n's arity is already exhausted, so the caller knows to grow the
// trie's height instead. sizes, where present, are patched in place
// along the same path rather than recomputed.
func pushTail[T any](level int, n *node[T], leaf *node[T]) (*node[T], bool) {
	if level == bits {
		if n.len == width {
			return nil, false
		}
		c := n.clone()
		c.children = append(c.children, leaf)
		c.len++
		if c.sizes != nil {
			c.sizes = append(c.sizes, lastSize(c.sizes)+leaf.len)
		}
		return c, true
	}

	last := n.len - 1
	if child, ok := pushTail(level-bits, n.children[last], leaf); ok {
		c := n.clone()
		c.children[last] = child
		if c.sizes != nil {
			c.sizes[last] += leaf.len
		}
		return c, true
	}

	if n.len == width {
		return nil, false
	}
	c := n.clone()
	c.children = append(c.children, newPath(level-bits, leaf))
	c.len++
	if c.sizes != nil {
		c.sizes = append(c.sizes, lastSize(c.sizes)+leaf.len)
	}
	return c, true
}

// lastSize returns the final entry of sizes, or 0 if it's empty, i.e.
// the cumulative count to extend from when appending one more entry.
func lastSize(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}
	return sizes[len(sizes)-1]
}
