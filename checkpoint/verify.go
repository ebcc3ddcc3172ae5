package checkpoint

import (
	"crypto"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSigned decodes the State values from a signed checkpoint message.
// See VerifySigned for how to complete verification; the state as decoded
// will not verify because the root was detached after signing.
func DecodeSigned(
	codec dtcbor.CBORCodec, msg []byte,
) (*dtcose.CoseSign1Message, State, error) {

	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newDecOptions()...)
	if err != nil {
		return nil, State{}, err
	}

	var unverifiedState State
	err = codec.UnmarshalInto(signed.Payload, &unverifiedState)
	if err != nil {
		return nil, State{}, err
	}
	return signed, unverifiedState, nil
}

// VerifySigned applies the provided state to the signed message and verifies
// the result.
//
// Verification of a checkpoint is a 3 step process:
//  1. Use DecodeSigned to obtain the State from the signed message. This
//     state will not verify as the root was removed after signing.
//  2. Recompute the root from a tree with State.LeafCount leaves.
//  3. Set State.Root to the recomputed root and call this function to
//     complete the verification.
func VerifySigned(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, unverifiedState State, external []byte,
) error {

	var err error
	signed.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}
