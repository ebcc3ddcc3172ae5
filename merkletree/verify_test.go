package merkletree

import (
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyProofMalformed(t *testing.T) {
	algo := Algorithm(sha256.New)
	outputLen := sha256.Size

	tree := New(leafValues("one", "two", "three", "four"), algo)
	root := tree.Root()

	valid, ok := tree.BuildProof([]byte("one"))
	require.True(t, ok)

	tests := []struct {
		name  string
		proof Proof
	}{
		{"nil", nil},
		{"empty", Proof{}},
		{"single digest", valid[:outputLen]},
		{"truncated chunk", valid[:len(valid)-1]},
		{"trailing partial chunk", append(append(Proof{}, valid...), 0x01)},
		{"sub digest fragment", valid[:outputLen/2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyProof(algo(), tt.proof, root)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedProof)

			// the method form folds the failure into a plain false
			assert.False(t, tree.Verify(tt.proof))
		})
	}
}

func TestVerifyProofAgainstForeignRoot(t *testing.T) {
	algo := Algorithm(sha256.New)

	tree := New(leafValues("one", "two", "three", "four"), algo)
	other := New(leafValues("five", "six", "seven", "eight"), algo)

	proof, ok := tree.BuildProof([]byte("one"))
	require.True(t, ok)

	// structurally sound, just not a proof for that root
	verified, err := VerifyProof(algo(), proof, other.Root())
	require.NoError(t, err)
	assert.False(t, verified)

	verified, err = VerifyProof(algo(), proof, tree.Root())
	require.NoError(t, err)
	assert.True(t, verified)
}

// TestVerifyProofStandalone confirms a verifier needs only the algorithm and
// a trusted root, not the tree the proof was built from.
func TestVerifyProofStandalone(t *testing.T) {
	algo := Algorithm(sha512.New)

	root := func() ([]byte, Proof) {
		tree := NewWithIndex(leafValues("one", "two", "three", "four", "five"), algo)
		proof, ok := tree.BuildProof([]byte("four"))
		require.True(t, ok)
		r := make([]byte, len(tree.Root()))
		copy(r, tree.Root())
		return r, proof
	}

	// the tree is out of scope by the time we verify
	trustedRoot, proof := root()

	verified, err := VerifyProof(algo(), proof, trustedRoot)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	tree := New(leafValues("one", "two"), sha256.New)

	proof, ok := tree.BuildProof([]byte("one"))
	require.True(t, ok)

	// a sha512 verifier sees two sha256 digests as one malformed chunk
	verified, err := VerifyProof(sha512.New(), proof, tree.Root())
	assert.False(t, verified)
	assert.ErrorIs(t, err, ErrMalformedProof)
}
