// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import "errors"

// Failures reported by this package. They are terminal: nothing is retried
// internally and no partial output ever accompanies an error. Callers match
// them with errors.Is; call sites may attach context on top.
var (
	// ErrInvalidKeyMaterial marks a private scalar outside [1, N-1] or
	// public key bytes that do not decode.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrInvalidEncodedPoint marks point bytes violating the SEC 1 layout
	// or naming a point off the curve.
	ErrInvalidEncodedPoint = errors.New("invalid encoded point")

	// ErrHashToCurveExhausted marks try-and-increment running out of
	// counter values before hitting a curve point.
	ErrHashToCurveExhausted = errors.New("hash to curve exhausted")

	// ErrScalarOperationFailed marks a point multiply or combine that
	// produced no usable point.
	ErrScalarOperationFailed = errors.New("scalar operation failed")

	// ErrInvalidProofLength marks proof bytes shorter or longer than ProofLen.
	ErrInvalidProofLength = errors.New("invalid proof length")

	// ErrInvalidProof marks a well-formed proof that fails verification.
	ErrInvalidProof = errors.New("invalid proof")
)
