package merkletree

import "bytes"

// leafLocator resolves a leaf digest to its position within the leaf level.
// The two implementations are interchangeable strategies behind the same
// contract, and must resolve identically: the bytes of a tree or proof never
// depend on which one is in use.
type leafLocator interface {
	locate(digest []byte) (uint64, bool)
}

// digestIndex is the constant time strategy, populated during the leaf
// hashing pass when the tree is built with NewWithIndex.
type digestIndex map[string]uint64

func (x digestIndex) locate(digest []byte) (uint64, bool) {
	i, ok := x[string(digest)]
	return i, ok
}

// levelScan is the allocation free fallback used by New, a linear scan over
// the true (unpadded) leaf level. It scans from the end so that duplicate
// digests resolve to the last position, matching the last-wins overwrite of
// digestIndex.
type levelScan struct {
	t *Tree
}

func (s levelScan) locate(digest []byte) (uint64, bool) {
	for i := s.t.leafCount; i > 0; i-- {
		if bytes.Equal(s.t.node(i-1), digest) {
			return i - 1, true
		}
	}
	return 0, false
}
