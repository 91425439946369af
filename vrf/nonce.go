// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"math/big"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// generateNonce derives the proving nonce from the private key and the
// hashed input point. The digest of the compressed point is brought into
// the group domain with Bits2Bytes and then fed to the secp256k1 library's
// RFC 6979 HMAC-DRBG, which only emits scalars in [1, N-1]. No system
// randomness is involved anywhere on this path.
func (v *VRF) generateNonce(privKey []byte, h *Point) *big.Int {
	hasher := v.cfg.NewHasher()
	hasher.Write(h.Compressed())
	digest := hasher.Sum(nil)

	seed := Bits2Bytes(digest, v.curve.Params().N, scalarLen)
	k := decred.NonceRFC6979(privKey, seed, nil, nil, 0)

	kBytes := k.Bytes()
	return new(big.Int).SetBytes(kBytes[:])
}
