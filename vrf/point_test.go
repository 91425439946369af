package vrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointCompressed(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	pt, err := ParsePoint(kp.PublicKey)
	require.NoError(t, err)

	assert.Equal(t, kp.PublicKey, pt.Compressed())
	assert.True(t, (&mergedCurve{}).IsOnCurve(pt.x, pt.y))
}

func TestParsePointUncompressed(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	pt, err := ParsePoint(kp.PublicKey)
	require.NoError(t, err)

	raw := pt.Uncompressed()
	assert.Len(t, raw, uncompressedPointLen)
	assert.EqualValues(t, 0x04, raw[0])

	back, err := ParsePoint(raw)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey, back.Compressed())
}

func TestParsePointBadInput(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	pt, err := ParsePoint(kp.PublicKey)
	require.NoError(t, err)

	badPrefixCompressed := append([]byte(nil), kp.PublicKey...)
	badPrefixCompressed[0] = 0x05

	badPrefixUncompressed := append([]byte(nil), pt.Uncompressed()...)
	badPrefixUncompressed[0] = 0x05

	// tweak y so the coordinates no longer satisfy the curve equation
	offCurve := append([]byte(nil), pt.Uncompressed()...)
	offCurve[uncompressedPointLen-1] ^= 0x01

	// x at the field prime is out of range
	xOverflow := make([]byte, compressedPointLen)
	xOverflow[0] = 0x02
	(&mergedCurve{}).Params().P.FillBytes(xOverflow[1:])

	tests := []struct {
		name string
		b    []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"too short", kp.PublicKey[:32]},
		{"too long", append(append([]byte(nil), kp.PublicKey...), 0)},
		{"bad compressed prefix", badPrefixCompressed},
		{"bad uncompressed prefix", badPrefixUncompressed},
		{"off curve", offCurve},
		{"x not a field element", xOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoint(tt.b)
			assert.ErrorIs(t, err, ErrInvalidEncodedPoint)
		})
	}
}
