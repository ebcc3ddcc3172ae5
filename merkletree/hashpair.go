package merkletree

import (
	"bytes"
	"hash"
)

// HashLeaf returns the digest of the provided leaf value.
// ** the hasher is reset **
func HashLeaf(hasher hash.Hash, value []byte) []byte {
	hasher.Reset()
	hasher.Write(value)
	return hasher.Sum(nil)
}

// HashPair returns H(min(a,b) || max(a,b))
//
// The two digests are ordered lexicographically, byte by byte, before
// concatenation. This makes the operation commutative,
//
//	HashPair(h, a, b) == HashPair(h, b, a)
//
// so swapping the two children at any pairing position leaves the parent
// digest unchanged. Applied at every level this means a full reversal of the
// leaf list reproduces an identical root.
// ** the hasher is reset **
func HashPair(hasher hash.Hash, a []byte, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	hasher.Reset()
	hasher.Write(a)
	hasher.Write(b)
	return hasher.Sum(nil)
}
