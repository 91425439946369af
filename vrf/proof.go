// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	challengeLen = 16
	scalarLen    = 32
)

// constants
const (
	// ProofLen is the serialized proof size: compressed Gamma, the
	// challenge and the response scalar.
	ProofLen = compressedPointLen + challengeLen + scalarLen

	// HashLen is the pseudorandom output size.
	HashLen = 32
)

// Proof carries both results of proving: the transferable proof bytes Pi
// and the pseudorandom output Beta they commit to.
type Proof struct {
	Pi   []byte
	Beta []byte
}

// DecodedProof is the in-memory form of serialized proof bytes.
type DecodedProof struct {
	Gamma *Point
	C     *big.Int
	S     *big.Int
}

// EncodeProof serializes a decoded proof into its 81-byte wire form.
func EncodeProof(p *DecodedProof) []byte {
	out := make([]byte, 0, ProofLen)
	out = append(out, p.Gamma.Compressed()...)
	out = append(out, Int2Bytes(p.C, challengeLen)...)
	out = append(out, Int2Bytes(p.S, scalarLen)...)
	return out
}

// DecodeProof parses proof bytes. The length must equal ProofLen exactly
// and the embedded Gamma must name a curve point; c and s are taken as
// big-endian integers. Encoding a decoded proof reproduces the input
// byte for byte.
func DecodeProof(pi []byte) (*DecodedProof, error) {
	if len(pi) != ProofLen {
		return nil, errors.WithMessagef(ErrInvalidProofLength, "%d bytes, %d needed", len(pi), ProofLen)
	}

	gamma, err := ParsePoint(pi[:compressedPointLen])
	if err != nil {
		return nil, err
	}

	return &DecodedProof{
		Gamma: gamma,
		C:     new(big.Int).SetBytes(pi[compressedPointLen : compressedPointLen+challengeLen]),
		S:     new(big.Int).SetBytes(pi[compressedPointLen+challengeLen:]),
	}, nil
}
