// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"crypto/elliptic"
	"math/big"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
)

// mergedCurve splices the fast halves of two secp256k1 implementations:
// parameters and point arithmetic from the decred library, scalar
// multiplication from the go-ethereum one. Both halves are reentrant, so
// the curve is safe to share between goroutines.
type mergedCurve struct{}

// Params returns the parameters for the curve.
func (c *mergedCurve) Params() *elliptic.CurveParams {
	return decred.S256().Params()
}

// IsOnCurve reports whether the given (x,y) lies on the curve.
func (c *mergedCurve) IsOnCurve(x, y *big.Int) bool {
	return decred.S256().IsOnCurve(x, y)
}

// Add returns the sum of (x1,y1) and (x2,y2).
func (c *mergedCurve) Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int) {
	return decred.S256().Add(x1, y1, x2, y2)
}

// Double returns 2*(x,y).
func (c *mergedCurve) Double(x1, y1 *big.Int) (x, y *big.Int) {
	return decred.S256().Double(x1, y1)
}

// ScalarMult returns k*(Bx,By) where k is a number in big-endian form.
func (c *mergedCurve) ScalarMult(x1, y1 *big.Int, k []byte) (x, y *big.Int) {
	return crypto.S256().ScalarMult(x1, y1, k)
}

// ScalarBaseMult returns k*G, where G is the base point of the group
// and k is an integer in big-endian form.
func (c *mergedCurve) ScalarBaseMult(k []byte) (x, y *big.Int) {
	return crypto.S256().ScalarBaseMult(k)
}
