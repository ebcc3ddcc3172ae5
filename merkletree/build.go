package merkletree

// treeNodesCount returns the total digest count for a tree over leafCount
// values, accumulating the per level duplicate-last padding as construction
// will. The per level rounding diverges from a pure power of two model for
// some counts, so this is deliberately iterative rather than closed form.
func treeNodesCount(leafCount uint64) uint64 {
	nodes := uint64(0)
	for n := leafCount; n > 0; {
		n += n & 1
		nodes += n
		n /= 2
		if n == 1 {
			nodes++
			break
		}
	}
	return nodes
}

func build(values [][]byte, algo Algorithm, withIndex bool) *Tree {

	hasher := algo()

	t := &Tree{
		leafCount: uint64(len(values)),
		outputLen: hasher.Size(),
		algo:      algo,
	}
	outputLen := uint64(t.outputLen)
	t.array = make([]byte, 0, treeNodesCount(t.leafCount)*outputLen)

	var index digestIndex
	if withIndex {
		index = make(digestIndex, len(values))
	}

	// Level 0, the leaf digests in input order. A later duplicate digest
	// overwrites the index entry of an earlier one, so the index always
	// resolves to the last matching position.
	for i, v := range values {
		digest := HashLeaf(hasher, v)
		if withIndex {
			index[string(digest)] = uint64(i)
		}
		t.array = append(t.array, digest...)
	}

	if t.leafCount > 0 {

		levelStart := uint64(0)
		levelLen := t.leafCount
		for {
			if levelLen&1 == 1 {
				// Duplicate the last digest so pairing is well defined. The
				// copy is stored and hashed but never counted by LeafCount.
				t.array = append(t.array, t.node(levelStart+levelLen-1)...)
				levelLen++
			}
			t.height++

			for k := uint64(0); k < levelLen/2; k++ {
				left := t.node(levelStart + 2*k)
				right := t.node(levelStart + 2*k + 1)
				t.array = append(t.array, HashPair(hasher, left, right)...)
			}

			levelStart += levelLen
			levelLen /= 2
			if levelLen == 1 {
				// the level just produced is the root
				t.height++
				break
			}
		}
	}

	if withIndex {
		t.locator = index
	} else {
		t.locator = levelScan{t}
	}
	return t
}
