package vrf

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignature(t *testing.T, engine *VRF, alpha []byte) (*Signature, *KeyPair, *Proof) {
	t.Helper()

	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	proof, err := engine.Prove(kp, alpha)
	require.NoError(t, err)

	return NewSignature(kp.PublicKey, proof.Pi), kp, proof
}

func TestSignatureValidate(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()
	alpha := []byte("message under test")

	sig, _, proof := newTestSignature(t, engine, alpha)
	assert.Len(t, sig.Bytes(), SignatureLen)

	beta, err := sig.Validate(engine, alpha)
	require.NoError(t, err)
	assert.Equal(t, proof.Beta, beta)

	// cached path returns the same output
	again, err := sig.Validate(engine, alpha)
	require.NoError(t, err)
	assert.Equal(t, beta, again)

	// the cache is keyed by alpha, a different message still fails
	_, err = sig.Validate(engine, []byte("another message"))
	assert.ErrorIs(t, err, ErrInvalidProof)

	// and the earlier success is still served afterwards
	final, err := sig.Validate(engine, alpha)
	require.NoError(t, err)
	assert.Equal(t, beta, final)
}

func TestSignatureValidateBadBody(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()
	alpha := []byte("message under test")

	sig, kp, proof := newTestSignature(t, engine, alpha)

	short := NewSignature(kp.PublicKey, proof.Pi[:ProofLen-1])
	_, err := short.Validate(engine, alpha)
	assert.ErrorIs(t, err, ErrInvalidProofLength)

	long := NewSignature(kp.PublicKey, append(proof.Pi, 0))
	_, err = long.Validate(engine, alpha)
	assert.ErrorIs(t, err, ErrInvalidProofLength)

	tampered := sig.Bytes()
	tampered[SignatureLen-1] ^= 0x01
	_, err = NewSignature(tampered[:compressedPointLen], tampered[compressedPointLen:]).Validate(engine, alpha)
	assert.Error(t, err)
}

func TestSignatureSigner(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()
	alpha := []byte("who signed this")

	sig, kp, _ := newTestSignature(t, engine, alpha)

	pubkey, err := crypto.DecompressPubkey(kp.PublicKey)
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(*pubkey)

	signer, err := sig.Signer()
	require.NoError(t, err)
	assert.Equal(t, want, signer)

	// cached lookup agrees
	signer, err = sig.Signer()
	require.NoError(t, err)
	assert.Equal(t, want, signer)

	bad := NewSignature(make([]byte, compressedPointLen), make([]byte, ProofLen))
	_, err = bad.Signer()
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)

	truncated := NewSignature(kp.PublicKey, nil)
	_, err = truncated.Signer()
	assert.ErrorIs(t, err, ErrInvalidProofLength)
}

func TestSignatureRLP(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()
	alpha := []byte("over the wire")

	sig, _, proof := newTestSignature(t, engine, alpha)

	data, err := rlp.EncodeToBytes(sig)
	require.NoError(t, err)

	var decoded Signature
	require.NoError(t, rlp.DecodeBytes(data, &decoded))
	assert.Equal(t, sig.Bytes(), decoded.Bytes())

	// the decoded envelope starts with a cold cache and still validates
	beta, err := decoded.Validate(engine, alpha)
	require.NoError(t, err)
	assert.Equal(t, proof.Beta, beta)
}

func TestSignaturesValidate(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()
	alpha := []byte("batch message")

	var (
		sigs  Signatures
		wants [][]byte
	)
	for range 5 {
		sig, _, proof := newTestSignature(t, engine, alpha)
		sigs = append(sigs, sig)
		wants = append(wants, proof.Beta)
	}

	betas, err := sigs.Validate(engine, alpha)
	require.NoError(t, err)
	require.Len(t, betas, len(sigs))
	for i, beta := range betas {
		assert.Equal(t, wants[i], beta)
	}

	// one bad envelope fails the whole batch
	broken, _, _ := newTestSignature(t, engine, []byte("different message"))
	sigs = append(sigs, broken)

	_, err = sigs.Validate(engine, alpha)
	assert.ErrorIs(t, err, ErrInvalidProof)
}

func TestSignaturesValidateEmpty(t *testing.T) {
	engine := NewSecp256k1Sha256Tai()

	betas, err := Signatures{}.Validate(engine, []byte("anything"))
	require.NoError(t, err)
	assert.Empty(t, betas)
}
