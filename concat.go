package rrbvector

// Concat returns a vector containing the elements of left followed by
// the elements of right, sharing as much structure with both inputs as
// the rebalance allows.
func Concat[T any](left, right Vector[T]) Vector[T] {
	if left.count == 0 {
		return right
	}
	if right.count == 0 {
		return left
	}

	if right.root == nil {
		return concatOntoTailOnly(left, right)
	}

	lRoot, lShift := left.root, left.shift
	if len(left.tail) > 0 {
		lRoot, lShift = pushDown(lRoot, lShift, newLeaf(left.tail...))
	}

	rootCandidate := concatSubTree(lRoot, lShift, right.root, right.shift, true)
	newShift := height(rootCandidate)
	for newShift > 0 && !rootCandidate.isLeaf() && rootCandidate.len == 1 {
		rootCandidate = rootCandidate.children[0]
		newShift -= bits
	}

	newRoot := rootCandidate
	if newShift > 0 {
		newRoot = setSizes(rootCandidate, newShift)
	}

	return Vector[T]{
		count: left.count + right.count,
		shift: newShift,
		root:  newRoot,
		tail:  append([]T(nil), right.tail...),
	}
}

// concatOntoTailOnly handles the case where right has no trie at all, so
// the result can often be produced by folding the two tails together
// instead of running the full rebalance.
func concatOntoTailOnly[T any](left, right Vector[T]) Vector[T] {
	switch {
	case len(left.tail) == width:
		newRoot, newShift := pushDown(left.root, left.shift, newLeaf(left.tail...))
		return Vector[T]{
			count: left.count + right.count,
			shift: newShift,
			root:  newRoot,
			tail:  append([]T(nil), right.tail...),
		}

	case len(left.tail)+len(right.tail) <= width:
		merged := append(append([]T(nil), left.tail...), right.tail...)
		return Vector[T]{count: left.count + right.count, shift: left.shift, root: left.root, tail: merged}

	default:
		combined := append(append([]T(nil), left.tail...), right.tail...)
		newRoot, newShift := pushDown(left.root, left.shift, newLeaf(combined[:width]...))
		return Vector[T]{
			count: left.count + right.count,
			shift: newShift,
			root:  newRoot,
			tail:  append([]T(nil), combined[width:]...),
		}
	}
}

// concatSubTree merges the tries rooted at left (height leftShift) and
// right (height rightShift), descending the taller side until the
// heights match and then rebalancing the exposed seam. isTop is true
// only for the outermost call, where the two tries may merge directly
// into a single leaf if they're small enough.
func concatSubTree[T any](left *node[T], leftShift int, right *node[T], rightShift int, isTop bool) *node[T] {
	switch {
	case leftShift > rightShift:
		centre := concatSubTree(left.children[left.len-1], leftShift-bits, right, rightShift, false)
		return rebalance(left, centre, nil, leftShift, isTop)

	case leftShift < rightShift:
		centre := concatSubTree(left, leftShift, right.children[0], rightShift-bits, false)
		return rebalance(nil, centre, right, rightShift, isTop)

	case leftShift == 0:
		if isTop && left.len+right.len <= width {
			merged := append(append([]T(nil), left.leaves...), right.leaves...)
			return newInternal(newLeaf(merged...))
		}
		return newInternal(left, right)

	default:
		centre := concatSubTree(left.children[left.len-1], leftShift-bits, right.children[0], rightShift-bits, false)
		return rebalance(left, centre, right, leftShift, isTop)
	}
}

// rebalance merges the children of left, centre, and right (each may be
// nil except centre) into one child sequence, redistributes that
// sequence through shuffle to satisfy the search-step invariant, and
// wraps the result appropriately for its position (isTop or not).
func rebalance[T any](left, centre, right *node[T], shift int, isTop bool) *node[T] {
	all := mergeChildren(left, centre, right)
	plan := shuffle(all)
	merged := copyAcross(all, plan, shift)

	if len(plan) <= width {
		if !isTop {
			return newInternal(setSizes(merged, shift))
		}
		return merged
	}

	lo := &node[T]{len: width, children: append([]*node[T]{}, merged.children[:width]...)}
	hi := &node[T]{len: len(plan) - width, children: append([]*node[T]{}, merged.children[width:]...)}
	return newInternal(setSizes(lo, shift), setSizes(hi, shift))
}

// mergeChildren concatenates left's children except its last (already
// folded into centre), all of centre's children, and right's children
// except its first (also folded into centre).
func mergeChildren[T any](left, centre, right *node[T]) *node[T] {
	children := make([]*node[T], 0, width*3)
	if left != nil {
		children = append(children, left.children[:left.len-1]...)
	}
	children = append(children, centre.children[:centre.len]...)
	if right != nil {
		children = append(children, right.children[1:right.len]...)
	}
	return &node[T]{len: len(children), children: children}
}

// shuffle computes a concat plan: the arity each output slot of the
// rebalanced node should have, redistributing grandchildren out of
// under-full slots until the slot count is within extras of optimal, or
// every remaining slot is already close enough to full that further
// redistribution can't help (the search-step invariant of spec.md §4.6).
func shuffle[T any](all *node[T]) []int {
	n := all.len
	sizes := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		sizes[i] = all.children[i].len
		total += sizes[i]
	}

	effectiveSlots := (total-1)/width + 1
	minWidth := width - invariant
	newLen := n

	for newLen > effectiveSlots+extras {
		i := 0
		for sizes[i] > minWidth {
			i++
		}

		el := sizes[i]
		for {
			minSize := el + sizes[i+1]
			if minSize > width {
				minSize = width
			}
			sizes[i] = minSize
			el = el + sizes[i+1] - minSize
			i++
			if el <= 0 {
				break
			}
		}

		for i < newLen-1 {
			sizes[i] = sizes[i+1]
			i++
		}
		newLen--
	}

	return sizes[:newLen]
}

// copyAcross executes a concat plan, building slen new nodes whose sizes
// match plan by walking all's children with a cursor, reusing a child
// pointer unchanged when a plan slot exactly matches it and otherwise
// splicing consecutive source children together.
func copyAcross[T any](all *node[T], plan []int, shift int) *node[T] {
	slen := len(plan)
	children := make([]*node[T], slen)
	idx, offset := 0, 0
	leafChildren := shift == bits

	for i := 0; i < slen; i++ {
		newSize := plan[i]
		src := all.children[idx]

		if offset == 0 && newSize == src.len {
			children[i] = src
			idx++
			continue
		}

		if leafChildren {
			leaf := &node[T]{len: newSize, leaves: make([]T, newSize)}
			filled := 0
			for filled < newSize {
				s := all.children[idx]
				take := min(newSize-filled, s.len-offset)
				copy(leaf.leaves[filled:filled+take], s.leaves[offset:offset+take])
				filled += take
				offset += take
				if offset == s.len {
					idx++
					offset = 0
				}
			}
			children[i] = leaf
		} else {
			in := &node[T]{len: newSize, children: make([]*node[T], newSize)}
			filled := 0
			for filled < newSize {
				s := all.children[idx]
				take := min(newSize-filled, s.len-offset)
				copy(in.children[filled:filled+take], s.children[offset:offset+take])
				filled += take
				offset += take
				if offset == s.len {
					idx++
					offset = 0
				}
			}
			children[i] = setSizes(in, shift-bits)
		}
	}

	return &node[T]{len: slen, children: children}
}
