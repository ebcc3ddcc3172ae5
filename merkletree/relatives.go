package merkletree

// Positions within a level are zero based. Once a level is padded to even
// length every position has both a sibling and a parent, so these functions
// are total and allocation free.

// SiblingIndex returns the position of the sibling of i within its level.
//
//	1       0       1
//	       / \     / \
//	0     0   1   2   3
//
// Siblings differ only in the lowest bit: the sibling of 2 is 3 and the
// sibling of 3 is 2.
func SiblingIndex(i uint64) uint64 {
	return i ^ 1
}

// ParentIndex returns the position of the parent of i within the next level
// up. Both members of a pair (2k, 2k+1) have parent k.
func ParentIndex(i uint64) uint64 {
	return i >> 1
}
