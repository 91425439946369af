// Copyright (c) 2025 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
)

func FuzzSignatureDecoding(f *testing.F) {
	engine := NewSecp256k1Sha256Tai()

	f.Fuzz(func(t *testing.T, input, alpha []byte) {
		var sig Signature
		if err := rlp.DecodeBytes(input, &sig); err != nil {
			return
		}
		_, _ = sig.Validate(engine, alpha)
		_, _ = sig.Signer()
	})
}
