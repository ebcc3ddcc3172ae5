package merkletree

/*

# Overview

This package implements a binary merkle hash tree over an ordered collection
of leaf values: build once, then produce compact inclusion proofs for any
leaf and verify them against the root. It is intended as an integrity and
commitment primitive for content addressed or tamper evident systems.

The tree is realised as a single flat sequence of digests. Every level is
concatenated bottom to top, leaf level first and root last. Because each
level is padded to even length before pairing, navigation within a level
needs nothing more than

	sibling(i) = i ^ 1
	parent(i)  = i >> 1

and a running offset to the start of each level. No node structures are
materialised, ever. For the four value input [a, b, c, d] the stored array
is the post level-order flattening of

	2          H(H(ab)H(cd))
	1      H(ab)        H(cd)
	0    Ha    Hb     Hc    Hd

	[Ha, Hb, Hc, Hd, H(ab), H(cd), H(H(ab)H(cd))]

An odd length level is padded by duplicating its last digest. The padding
digest is stored and participates in hashing, but is never counted by
LeafCount. A single leaf is therefore paired with a copy of itself, so a one
leaf tree has height 2 and three nodes.

# Canonical pair ordering

Pair hashing sorts the two child digests lexicographically before
concatenation, see HashPair. The operation is commutative, which means the
root does not commit to the order of the two children at any pairing
position. In particular, reversing an entire leaf list reproduces the same
root. This departs from position committing constructions such as RFC 6962
and is a deliberate, load bearing property of the scheme: the tests pin it
and it must not be "corrected" to be position sensitive.

# Digest algorithms

Any fixed output length digest with streaming update/finalize semantics can
drive the tree, which in Go is exactly the hash.Hash contract. The digest
size is a property of the chosen algorithm and is never written into trees
or proofs; producers and verifiers agree on the algorithm out of band.

# Concurrency

A Tree and a Proof are immutable once built and may be read concurrently
without synchronisation. The Tree retains the algorithm constructor rather
than a hasher instance so proof building on a shared tree never shares
hasher state.

*/
