package rrbvector

import "fmt"

// Validate walks the full structure of v and returns ErrInvariantViolated
// (wrapped with a description of what failed) if anything is
// inconsistent: a recorded size disagreeing with the subtree it
// describes, a leaf outside (0, width], a regular node whose non-last
// children aren't exactly full, or a tail whose length doesn't match
// count-tailOffset. It never panics; a passing Validate is the closest
// thing this package has to an executable definition of "well-formed".
func Validate[T any](v Vector[T]) error {
	if len(v.tail) > width {
		return fmt.Errorf("%w: tail length %d exceeds width", ErrInvariantViolated, len(v.tail))
	}
	if v.root == nil {
		if v.shift != 0 {
			return fmt.Errorf("%w: nil root with nonzero shift %d", ErrInvariantViolated, v.shift)
		}
		if v.count != len(v.tail) {
			return fmt.Errorf("%w: count %d disagrees with tail length %d", ErrInvariantViolated, v.count, len(v.tail))
		}
		return nil
	}

	if !v.root.isLeaf() && v.root.len == 1 && v.shift > 0 {
		return fmt.Errorf("%w: root has a single child but is not a leaf", ErrInvariantViolated)
	}
	if v.shift/bits >= maxHeight {
		return fmt.Errorf("%w: trie height %d exceeds maxHeight", ErrInvariantViolated, v.shift/bits)
	}

	size, err := validateNode(v.root, v.shift)
	if err != nil {
		return err
	}
	if size+len(v.tail) != v.count {
		return fmt.Errorf("%w: trie size %d + tail %d != count %d", ErrInvariantViolated, size, len(v.tail), v.count)
	}
	return nil
}

func validateNode[T any](n *node[T], shift int) (int, error) {
	if n.len == 0 {
		return 0, fmt.Errorf("%w: node with zero children", ErrInvariantViolated)
	}
	if n.len > width {
		return 0, fmt.Errorf("%w: node with %d children exceeds width", ErrInvariantViolated, n.len)
	}

	if shift == 0 {
		if !n.isLeaf() {
			return 0, fmt.Errorf("%w: node at shift 0 is not a leaf", ErrInvariantViolated)
		}
		if n.len != len(n.leaves) {
			return 0, fmt.Errorf("%w: leaf len field %d disagrees with slice length %d", ErrInvariantViolated, n.len, len(n.leaves))
		}
		return n.len, nil
	}

	if n.isLeaf() {
		return 0, fmt.Errorf("%w: internal node at shift %d has no children", ErrInvariantViolated, shift)
	}
	if n.len != len(n.children) {
		return 0, fmt.Errorf("%w: internal node len field %d disagrees with slice length %d", ErrInvariantViolated, n.len, len(n.children))
	}
	if n.sizes != nil && n.len != len(n.sizes) {
		return 0, fmt.Errorf("%w: size table length %d disagrees with children count %d", ErrInvariantViolated, len(n.sizes), n.len)
	}

	total := 0
	prev := 0
	for i := 0; i < n.len; i++ {
		childSize, err := validateNode(n.children[i], shift-bits)
		if err != nil {
			return 0, err
		}
		total += childSize

		if i < n.len-1 && n.sizes == nil && childSize != 1<<shift {
			return 0, fmt.Errorf("%w: regular node's child %d holds %d elements, want %d", ErrInvariantViolated, i, childSize, 1<<shift)
		}
		if n.sizes != nil {
			if n.sizes[i] != prev+childSize {
				return 0, fmt.Errorf("%w: size table entry %d is %d, want %d", ErrInvariantViolated, i, n.sizes[i], prev+childSize)
			}
			prev = n.sizes[i]
		}
	}
	return total, nil
}
