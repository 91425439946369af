// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import "hash"

// Config is the ciphersuite identity of an engine. It is immutable once
// handed to New; producer and verifier must run the same values or proofs
// will not cross-check.
type Config struct {
	// SuiteString is the one-byte suite identifier mixed into every digest.
	SuiteString byte

	// NewHasher constructs the digest function behind hash-to-curve,
	// challenge derivation and output derivation.
	NewHasher func() hash.Hash
}
