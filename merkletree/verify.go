package merkletree

import (
	"bytes"
	"errors"
	"fmt"
	"hash"
)

var ErrMalformedProof = errors.New("malformed proof")

// Verify reports whether proof recomputes this tree's root. A structurally
// invalid proof verifies false; verification never panics.
func (t *Tree) Verify(proof Proof) bool {
	ok, err := VerifyProof(t.algo(), proof, t.Root())
	return err == nil && ok
}

// VerifyProof folds proof left to right with HashPair and compares the
// result with root. It requires only the digest algorithm, not the tree, so
// a verifier holding a trusted root needs nothing else.
//
// The first chunk is the claimed leaf digest and every subsequent chunk is a
// sibling, so the fold is
//
//	running = HashPair(proof[0], proof[1])
//	running = HashPair(running, proof[i])  for each remaining chunk
//
// A proof shorter than two digests, or whose length is not a whole multiple
// of the digest size, is rejected with ErrMalformedProof.
func VerifyProof(hasher hash.Hash, proof Proof, root []byte) (bool, error) {

	outputLen := hasher.Size()

	if len(proof)%outputLen != 0 {
		return false, fmt.Errorf(
			"%w: length %d is not a multiple of the digest size %d", ErrMalformedProof, len(proof), outputLen)
	}
	if len(proof) < 2*outputLen {
		return false, fmt.Errorf(
			"%w: a leaf digest and at least one sibling are required", ErrMalformedProof)
	}

	running := []byte(proof[:outputLen])
	for next := outputLen; next < len(proof); next += outputLen {
		running = HashPair(hasher, running, proof[next:next+outputLen])
	}
	return bytes.Equal(running, root), nil
}
