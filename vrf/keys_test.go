package vrf

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	assert.Len(t, kp.PrivateKey, PrivateKeyLen)
	assert.Len(t, kp.PublicKey, compressedPointLen)

	_, err = ParsePoint(kp.PublicKey)
	assert.NoError(t, err)

	// two draws never collide
	kp2, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.NotEqual(t, kp.PrivateKey, kp2.PrivateKey)
}

func TestNewKeyPairFromPrivateKey(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	rebuilt, err := NewKeyPairFromPrivateKey(kp.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey, rebuilt.PrivateKey)
	assert.Equal(t, kp.PublicKey, rebuilt.PublicKey)

	// the copy detaches from the caller's buffer
	buf := append([]byte(nil), kp.PrivateKey...)
	viaBuf, err := NewKeyPairFromPrivateKey(buf)
	require.NoError(t, err)
	buf[0] ^= 0xff
	assert.Equal(t, kp.PrivateKey, viaBuf.PrivateKey)

	// N-1 is the largest valid scalar
	n := crypto.S256().Params().N
	almostN := make([]byte, PrivateKeyLen)
	new(big.Int).Sub(n, big.NewInt(1)).FillBytes(almostN)
	_, err = NewKeyPairFromPrivateKey(almostN)
	assert.NoError(t, err)
}

func TestNewKeyPairFromPrivateKeyRejects(t *testing.T) {
	n := crypto.S256().Params().N
	atN := make([]byte, PrivateKeyLen)
	n.FillBytes(atN)

	tests := []struct {
		name string
		priv []byte
	}{
		{"nil", nil},
		{"short", make([]byte, PrivateKeyLen-1)},
		{"long", make([]byte, PrivateKeyLen+1)},
		{"zero", make([]byte, PrivateKeyLen)},
		{"group order", atN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyPairFromPrivateKey(tt.priv)
			assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
		})
	}
}
