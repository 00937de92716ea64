package rrbvector

import (
	"testing"
	"unsafe"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectNodes walks the trie rooted at n (living at shift), returning
// the address of every node visited as a uintptr, and also recording each
// one into seen, a Set3 used for O(1) membership tests against a second
// walk over a different (but structurally related) tree.
func collectNodes[T any](n *node[T], shift int, seen *set3.Set3[uintptr]) []uintptr {
	if n == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(n))
	seen.Add(addr)
	addrs := []uintptr{addr}
	if shift == 0 {
		return addrs
	}
	for i := 0; i < n.len; i++ {
		addrs = append(addrs, collectNodes(n.children[i], shift-bits, seen)...)
	}
	return addrs
}

// This is a white-box regression test: it reaches into Vector's
// unexported fields to confirm that operations documented as sharing
// structure actually do, at the level of individual node pointers
// rather than just observable behavior.
func TestPushSharesAllButTheSpine(t *testing.T) {
	t.Parallel()

	const n = 70016 // a multiple of width, so the tail is full
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	v := Of(xs...)

	before := set3.Empty[uintptr]()
	beforeAddrs := collectNodes(v.root, v.shift, before)
	require.Greater(t, len(beforeAddrs), 0)

	w := v.Push(-1)

	after := set3.Empty[uintptr]()
	collectNodes(w.root, w.shift, after)

	shared := 0
	for _, addr := range beforeAddrs {
		if after.Contains(addr) {
			shared++
		}
	}

	// Only the spine from the root down to the node that absorbed the
	// pushed-down tail should have been cloned; everything else must be
	// the very same node pointers as before.
	assert.Greater(t, shared, len(beforeAddrs)-v.shift/bits-2)
}

func TestUpdateClonesOnlyTheSpine(t *testing.T) {
	t.Parallel()

	const n = 40000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	v := Of(xs...)

	before := set3.Empty[uintptr]()
	beforeAddrs := collectNodes(v.root, v.shift, before)

	w, err := v.Update(n/2, -1)
	require.NoError(t, err)

	after := set3.Empty[uintptr]()
	collectNodes(w.root, w.shift, after)

	shared := 0
	for _, addr := range beforeAddrs {
		if after.Contains(addr) {
			shared++
		}
	}
	assert.Greater(t, shared, len(beforeAddrs)-(v.shift/bits)-2)

	untouched, _ := v.Nth(0)
	assert.Equal(t, 0, untouched, "original vector must be unaffected")
}

func TestTransientOwnedNodesAreNotSharedWithSource(t *testing.T) {
	t.Parallel()

	const n = 5000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	v := Of(xs...)
	tr := v.AsTransient()
	tr.Push(-1)
	tr.Update(0, -2)

	original, _ := v.Nth(0)
	assert.Equal(t, 0, original)

	frozen := tr.Freeze()
	mutated, _ := frozen.Nth(0)
	assert.Equal(t, -2, mutated)
}
