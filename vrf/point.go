// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"math/big"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	compressedPointLen   = 33
	uncompressedPointLen = 65
)

// Point is a validated point on secp256k1. Values enter the package through
// ParsePoint or engine computations only and never hold the point at
// infinity, so both encodings below always succeed.
type Point struct {
	x, y *big.Int
}

// ParsePoint decodes a SEC 1 encoded point: either the 33-byte compressed
// form (prefix 0x02/0x03) or the 65-byte uncompressed form (prefix 0x04).
// Curve membership is checked by the underlying secp256k1 library. Any
// failure reports ErrInvalidEncodedPoint.
func ParsePoint(b []byte) (*Point, error) {
	switch len(b) {
	case compressedPointLen:
		if b[0] != 0x02 && b[0] != 0x03 {
			return nil, errors.WithMessagef(ErrInvalidEncodedPoint, "prefix %#02x", b[0])
		}
	case uncompressedPointLen:
		if b[0] != 0x04 {
			return nil, errors.WithMessagef(ErrInvalidEncodedPoint, "prefix %#02x", b[0])
		}
	default:
		return nil, errors.WithMessagef(ErrInvalidEncodedPoint, "length %d", len(b))
	}

	pub, err := decred.ParsePubKey(b)
	if err != nil {
		return nil, errors.WithMessage(ErrInvalidEncodedPoint, err.Error())
	}

	pk := pub.ToECDSA()
	return &Point{x: pk.X, y: pk.Y}, nil
}

// Compressed encodes p in the 33-byte compressed form.
func (p *Point) Compressed() []byte {
	out := make([]byte, compressedPointLen)
	out[0] = 2 + byte(p.y.Bit(0))
	p.x.FillBytes(out[1:])
	return out
}

// Uncompressed encodes p in the 65-byte uncompressed form.
func (p *Point) Uncompressed() []byte {
	out := make([]byte, uncompressedPointLen)
	out[0] = 4
	p.x.FillBytes(out[1:33])
	p.y.FillBytes(out[33:])
	return out
}
