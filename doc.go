// Package rrbvector implements a persistent Relaxed Radix Balanced (RRB)
// vector: an indexed sequence with logarithmic-time random access, update,
// push, pop and slice, and amortized-logarithmic concatenation, all of
// which preserve every prior version via structural sharing.
//
// A Vector is a plain value; the zero value is the empty vector. Every
// mutating method returns a new Vector and never modifies its receiver.
// Branches unaffected by an operation are shared with the input, so old
// versions of a Vector remain valid and cheap to keep around.
//
// For bulk construction, Transient offers amortized O(1) pushes by
// mutating uniquely-owned nodes in place; call Freeze to recover a
// persistent Vector when done.
package rrbvector
