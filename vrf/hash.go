// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import "math/big"

// Domain separation bytes. Each digest computed by the protocol starts
// with the suite byte followed by one of these.
const (
	domainHashToCurve = 0x01
	domainChallenge   = 0x02
	domainOutput      = 0x03
)

// hashToCurve maps (pk, alpha) onto the curve by try and increment: a
// counter byte is appended to the suite-tagged digest input until the
// digest, prefixed with 0x02, parses as a compressed point. The walk is
// deterministic, so prover and verifier always land on the same point.
// Exhausting all 256 counters fails with ErrHashToCurveExhausted.
func (v *VRF) hashToCurve(pk *Point, alpha []byte) (*Point, error) {
	hasher := v.cfg.NewHasher()
	pkBytes := pk.Compressed()

	candidate := make([]byte, 1, 1+hasher.Size())
	candidate[0] = 0x02
	for ctr := 0; ctr < 256; ctr++ {
		hasher.Reset()
		hasher.Write([]byte{v.cfg.SuiteString, domainHashToCurve})
		hasher.Write(pkBytes)
		hasher.Write(alpha)
		hasher.Write([]byte{byte(ctr)})
		candidate = hasher.Sum(candidate[:1])

		if pt, err := ParsePoint(candidate); err == nil {
			metricHashToCurveTries().Observe(int64(ctr + 1))
			return pt, nil
		}
	}
	return nil, ErrHashToCurveExhausted
}

// challenge derives the Fiat-Shamir challenge binding the given points
// together. The digest covers the compressed form of every point in caller
// order; its first challengeLen bytes, read big-endian, are the challenge.
func (v *VRF) challenge(points ...*Point) *big.Int {
	hasher := v.cfg.NewHasher()
	hasher.Write([]byte{v.cfg.SuiteString, domainChallenge})
	for _, pt := range points {
		hasher.Write(pt.Compressed())
	}
	return new(big.Int).SetBytes(hasher.Sum(nil)[:challengeLen])
}

// proofToHash derives the pseudorandom output committed by Gamma. Only
// Gamma goes in, which is what lets Verify recompute Beta without the
// prover's scalars.
func (v *VRF) proofToHash(gamma *Point) []byte {
	hasher := v.cfg.NewHasher()
	hasher.Write([]byte{v.cfg.SuiteString, domainOutput})
	hasher.Write(gamma.Compressed())
	return hasher.Sum(nil)
}
