// Package checkpoint produces and verifies signed commitments to a merkle
// tree state. A checkpoint is a COSE Sign1 message whose payload is a
// deterministic CBOR encoding of the tree's root and leaf count. The root is
// detached from the published payload after signing, so a verifier is forced
// to recompute it from a tree they hold before the signature will verify.
package checkpoint

import (
	"github.com/datatrails/go-datatrails-common/cose"
)

// State defines the details we include in a signed commitment to a tree.
type State struct {
	// LeafCount is the number of values the tree was built over. Together
	// with the digest algorithm, which verifiers know out of band, it fixes
	// the full structure of the tree committing Root.
	LeafCount uint64 `cbor:"1,keyasint"`

	// Root is the tree's root digest. It is removed from the payload before
	// publication, see Signer.Sign1.
	Root []byte `cbor:"2,keyasint"`

	// Timestamp is the unix time (milliseconds) read at the time the root
	// was signed. Including it allows the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
}

// Checkpoint is a decoded signed commitment to a tree state.
type Checkpoint struct {
	Sign1Message cose.CoseSign1Message
	State        State
}
