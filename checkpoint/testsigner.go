package checkpoint

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func TestGenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func TestNewSigner(t *testing.T, issuer string) Signer {
	cborCodec, err := NewCodec()
	require.NoError(t, err)
	return NewSigner(issuer, cborCodec)
}

// TestNewCoseSigner returns an ES256 signer over the provided key, suitable
// for signing checkpoints in tests.
func TestNewCoseSigner(t *testing.T, key ecdsa.PrivateKey) cose.Signer {
	coseSigner, err := cose.NewSigner(cose.AlgorithmES256, &key)
	require.NoError(t, err)
	return coseSigner
}
