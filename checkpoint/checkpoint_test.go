package checkpoint

import (
	"crypto/elliptic"
	"crypto/sha256"
	"testing"
	"time"

	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/datatrails/go-datatrails-merkletree/merkletesting"
	"github.com/datatrails/go-datatrails-merkletree/merkletree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_Sign1(t *testing.T) {

	logger.New("TEST")

	type fields struct {
		issuer string
		kid    string
		curve  elliptic.Curve
	}
	type args struct {
		subject  string
		state    State
		external []byte
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "common case P-256 & ES256",
			fields: fields{
				issuer: "synsation.org",
				kid:    "tree attestation key 1",
				curve:  elliptic.P256(),
			},
			args: args{
				subject: "merkletree-attestor",
				state: State{
					LeafCount: 1,
					Root:      []byte{1},
					Timestamp: 1234,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			key := TestGenerateECKey(t, tt.fields.curve)
			signer := TestNewSigner(t, tt.fields.issuer)
			coseSigner := TestNewCoseSigner(t, key)

			coseMsg, err := signer.Sign1(
				coseSigner, tt.fields.kid, &key.PublicKey, tt.args.subject, tt.args.state, tt.args.external)
			if (err != nil) != tt.wantErr {
				t.Errorf("Signer.Sign1() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			signed, state, err := DecodeSigned(signer.cborCodec, coseMsg)
			assert.NoError(t, err)

			// verification must fail while the root is still detached
			err = VerifySigned(
				signer.cborCodec,
				dtcose.NewCWTPublicKeyProvider(signed),
				signed, state, nil,
			)
			assert.Error(t, err)

			// restoring the root completes the verification
			state.Root = tt.args.state.Root
			err = VerifySigned(
				signer.cborCodec,
				dtcose.NewCWTPublicKeyProvider(signed),
				signed, state, nil,
			)
			assert.NoError(t, err)
		})
	}
}

// TestCheckpointOverTree signs the state of a real tree and verifies it the
// way a relying party would: recompute the root from a tree they hold, then
// complete the signature check.
func TestCheckpointOverTree(t *testing.T) {

	cfg := merkletesting.TestConfig{Seed: 1698342521, TestLabelPrefix: "TestCheckpointOverTree"}
	tc := merkletesting.NewTestContext(t, cfg)
	g := merkletesting.NewTestGenerator(t, cfg)

	values := g.GenerateLeafValues(33)
	tree := merkletree.NewWithIndex(values, sha256.New)

	state := State{
		LeafCount: tree.LeafCount(),
		Root:      tree.Root(),
		Timestamp: time.Now().UnixMilli(),
	}

	key := TestGenerateECKey(t, elliptic.P256())
	signer := TestNewSigner(t, "synsation.org")
	coseSigner := TestNewCoseSigner(t, key)

	coseMsg, err := signer.Sign1(
		coseSigner, "tree attestation key 1", &key.PublicKey, "merkletree-attestor", state, nil)
	require.NoError(t, err)

	signed, unverified, err := DecodeSigned(signer.cborCodec, coseMsg)
	require.NoError(t, err)
	require.Equal(t, tree.LeafCount(), unverified.LeafCount)
	require.Nil(t, unverified.Root)

	// A verifier rebuilds the tree from the values they hold and restores
	// the root before checking the signature.
	verifierTree := merkletree.New(values, sha256.New)
	require.Equal(t, unverified.LeafCount, verifierTree.LeafCount())
	unverified.Root = verifierTree.Root()

	err = VerifySigned(
		signer.cborCodec,
		dtcose.NewCWTPublicKeyProvider(signed),
		signed, unverified, nil,
	)
	assert.NoError(t, err)

	tc.Log.Debugf("checkpoint verified: leaves=%d root=%x", unverified.LeafCount, unverified.Root)
}
