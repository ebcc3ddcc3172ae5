package merkletree

// Proof is a self contained inclusion proof: the claimed leaf's digest
// followed by one sibling digest per level, leaf to root, root excluded. It
// is a flat concatenation of fixed size chunks with no framing; the chunk
// size is the digest size of the algorithm the tree was built with, which
// verifiers know out of band.
//
// A Proof is copied out of the tree's storage at build time. It has no
// ownership relationship with the tree that produced it and may freely
// outlive it.
type Proof []byte

// BuildProof returns the inclusion proof for the leaf matching value, or
// (nil, false) when no leaf hashes to the value's digest. Absence is a
// normal negative outcome, not an error.
//
// Lookup is by digest equality, so two distinct values hashing to the same
// digest are indistinguishable here. That is inherent to the scheme, not a
// defect of the lookup strategies.
func (t *Tree) BuildProof(value []byte) (Proof, bool) {
	if t.IsEmpty() {
		return nil, false
	}

	hasher := t.algo()
	pos, ok := t.locator.locate(HashLeaf(hasher, value))
	if !ok {
		return nil, false
	}

	// Seed the proof with the leaf's own digest, then walk towards the root
	// collecting the sibling at each level. A proof always holds exactly
	// height chunks.
	proof := make(Proof, 0, t.height*uint64(t.outputLen))
	proof = append(proof, t.node(pos)...)

	levelStart := uint64(0)
	levelLen := t.leafCount
	for {
		levelLen += levelLen & 1
		proof = append(proof, t.node(levelStart+SiblingIndex(pos))...)
		if levelLen/2 == 1 {
			// the next level is the root, which is never included
			return proof, true
		}
		levelStart += levelLen
		pos = ParentIndex(pos)
		levelLen /= 2
	}
}
