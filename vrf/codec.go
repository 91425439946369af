// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"math/big"

	"github.com/ethereum/go-ethereum/log"
)

// Int2Bytes encodes v big-endian into exactly length bytes. Short values
// are left padded with zeros; long values lose their high-order bytes, the
// historical wire behavior every deployed verifier depends on.
func Int2Bytes(v *big.Int, length int) []byte {
	raw := v.Bytes()
	if len(raw) <= length {
		out := make([]byte, length)
		copy(out[length-len(raw):], raw)
		return out
	}
	// big.Int encodes minimally, so whatever is dropped here starts with
	// a nonzero byte and the caller passed a value outside the protocol
	// domain.
	log.Warn("truncating high-order bytes of scalar encoding", "have", len(raw), "want", length)
	return raw[len(raw)-length:]
}

// Bits2Int interprets b as a big-endian integer, discarding excess
// low-order bits when b carries more than qBitLen of them (RFC 6979 2.3.2).
func Bits2Int(b []byte, qBitLen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if excess := len(b)*8 - qBitLen; excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}

// Bits2Bytes brings a digest into the group domain: the value is reduced
// by q at most once and encoded into roLen bytes (RFC 6979 2.3.4).
func Bits2Bytes(b []byte, q *big.Int, roLen int) []byte {
	z1 := Bits2Int(b, q.BitLen())
	z2 := new(big.Int).Sub(z1, q)
	if z2.Sign() < 0 {
		return Int2Bytes(z1, roLen)
	}
	return Int2Bytes(z2, roLen)
}
