package merkletree

import "hash"

// Algorithm binds a tree to a digest implementation. Any fixed output length
// digest exposing streaming update/finalize semantics will serve, which is
// exactly Go's hash.Hash contract. The constructor is retained, rather than a
// hasher instance, so that concurrent readers of a built tree never share
// hasher state.
type Algorithm func() hash.Hash

// Tree is an immutable binary hash tree over an ordered collection of leaf
// values.
//
// All levels live in one flat digest array, bottom to top, leaf level first
// and root last. Levels are padded to even length by duplicating their last
// digest, and padding digests are stored; leafCount is always the true,
// unpadded input length. See the package documentation for the storage
// layout.
type Tree struct {
	array     []byte
	height    uint64
	leafCount uint64
	outputLen int
	algo      Algorithm
	locator   leafLocator
}

// New builds a tree over values using the provided digest algorithm. Values
// are hashed in input order and the input slice is not retained. Proof
// lookups on the returned tree resolve leaf positions with a linear scan of
// the leaf level.
func New(values [][]byte, algo Algorithm) *Tree {
	return build(values, algo, false)
}

// NewWithIndex is New with an additional digest to position map, populated
// during the leaf hashing pass, so proof lookups are constant time. When two
// values share a digest the later position wins, which is also how the
// scanning mode of New resolves them: both constructors produce byte
// identical trees and proofs for the same input.
func NewWithIndex(values [][]byte, algo Algorithm) *Tree {
	return build(values, algo, true)
}

// IsEmpty reports whether the tree was built over zero leaves.
func (t *Tree) IsEmpty() bool {
	return t.leafCount == 0
}

// Root returns the root digest, which is always the final outputLen bytes of
// the digest array. It is empty if and only if the tree is empty.
func (t *Tree) Root() []byte {
	if t.IsEmpty() {
		return []byte{}
	}
	return t.array[len(t.array)-t.outputLen:]
}

// NodesCount returns the total number of digests stored, padding included.
func (t *Tree) NodesCount() uint64 {
	return uint64(len(t.array) / t.outputLen)
}

// LeafCount returns the number of values the tree was built over. Padding
// digests are never counted, so this is the original input length even when
// the stored leaf level is longer.
func (t *Tree) LeafCount() uint64 {
	return t.leafCount
}

// DataSize returns the size in bytes of the stored digest array.
func (t *Tree) DataSize() uint64 {
	return uint64(len(t.array))
}

// Height returns the number of levels, counting the leaf level and the root
// level inclusively. An empty tree has height 0; a single leaf tree has
// height 2, the leaf being paired with a duplicate of itself to form the
// root.
func (t *Tree) Height() uint64 {
	return t.height
}

// node returns the digest stored at the flat array index i. The returned
// slice aliases the tree's storage.
func (t *Tree) node(i uint64) []byte {
	return t.array[i*uint64(t.outputLen) : (i+1)*uint64(t.outputLen)]
}
