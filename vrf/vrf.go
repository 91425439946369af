// Copyright (c) 2023 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vrf implements a verifiable random function over secp256k1 with
// try-and-increment hashing, SHA-256 digests and RFC 6979 nonces. Prove
// maps a private key and an input to a pseudorandom output plus a proof;
// anyone holding the public key can check the proof and recompute the same
// output, and nobody can compute the output without the private key.
package vrf

import (
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/subtle"
	"math/big"

	"github.com/pkg/errors"
)

// VRF proves and verifies under one ciphersuite. A value is immutable
// after New and safe for concurrent use.
type VRF struct {
	cfg   Config
	curve elliptic.Curve
}

// New creates an engine for the given ciphersuite.
func New(cfg Config) *VRF {
	return &VRF{cfg: cfg, curve: &mergedCurve{}}
}

// NewSecp256k1Sha256Tai creates the engine for the secp256k1_sha256_tai
// ciphersuite, suite byte 0xfe.
func NewSecp256k1Sha256Tai() *VRF {
	return New(Config{
		SuiteString: 0xfe,
		NewHasher:   sha256.New,
	})
}

// Prove evaluates the function for alpha under kp. It returns the 81-byte
// proof Pi together with the 32-byte output Beta that Pi commits to. The
// result is deterministic: proving the same key and alpha twice yields
// identical bytes.
func (v *VRF) Prove(kp *KeyPair, alpha []byte) (pf *Proof, err error) {
	defer func() { countProofOp("prove", err) }()

	x, err := v.privateScalar(kp.PrivateKey)
	if err != nil {
		return nil, err
	}
	y, err := ParsePoint(kp.PublicKey)
	if err != nil {
		return nil, errors.WithMessagef(ErrInvalidKeyMaterial, "public key: %s", err)
	}

	h, err := v.hashToCurve(y, alpha)
	if err != nil {
		return nil, err
	}

	gamma, err := v.scalarMult(h, kp.PrivateKey)
	if err != nil {
		return nil, err
	}

	k := v.generateNonce(kp.PrivateKey, h)
	kBytes := Int2Bytes(k, scalarLen)

	kB, err := v.scalarBaseMult(kBytes)
	if err != nil {
		return nil, err
	}
	kH, err := v.scalarMult(h, kBytes)
	if err != nil {
		return nil, err
	}

	c := v.challenge(h, gamma, kB, kH)

	// s = (c*x + k) mod N
	s := new(big.Int).Mul(c, x)
	s.Add(s, k)
	s.Mod(s, v.curve.Params().N)

	return &Proof{
		Pi:   EncodeProof(&DecodedProof{Gamma: gamma, C: c, S: s}),
		Beta: v.proofToHash(gamma),
	}, nil
}

// Verify checks pi against publicKey and alpha and returns the output it
// commits to. The challenge is recomputed from scratch, so a proof bound
// to different key material or a different alpha fails with
// ErrInvalidProof.
func (v *VRF) Verify(publicKey, alpha, pi []byte) (beta []byte, err error) {
	defer func() { countProofOp("verify", err) }()

	p, err := DecodeProof(pi)
	if err != nil {
		return nil, err
	}
	y, err := ParsePoint(publicKey)
	if err != nil {
		return nil, errors.WithMessagef(ErrInvalidKeyMaterial, "public key: %s", err)
	}

	h, err := v.hashToCurve(y, alpha)
	if err != nil {
		return nil, err
	}

	cBytes := Int2Bytes(p.C, scalarLen)
	sBytes := Int2Bytes(p.S, scalarLen)

	// u = s*B - c*Y
	sB, err := v.scalarBaseMult(sBytes)
	if err != nil {
		return nil, err
	}
	cY, err := v.scalarMult(y, cBytes)
	if err != nil {
		return nil, err
	}
	u, err := v.sub(sB, cY)
	if err != nil {
		return nil, err
	}

	// w = s*H - c*Gamma
	sH, err := v.scalarMult(h, sBytes)
	if err != nil {
		return nil, err
	}
	cGamma, err := v.scalarMult(p.Gamma, cBytes)
	if err != nil {
		return nil, err
	}
	w, err := v.sub(sH, cGamma)
	if err != nil {
		return nil, err
	}

	c := v.challenge(h, p.Gamma, u, w)
	if subtle.ConstantTimeCompare(Int2Bytes(c, challengeLen), Int2Bytes(p.C, challengeLen)) != 1 {
		return nil, ErrInvalidProof
	}
	return v.proofToHash(p.Gamma), nil
}

// privateScalar validates raw private key bytes into a scalar in [1, N-1].
func (v *VRF) privateScalar(priv []byte) (*big.Int, error) {
	if len(priv) != PrivateKeyLen {
		return nil, errors.WithMessagef(ErrInvalidKeyMaterial, "private key length %d", len(priv))
	}
	x := new(big.Int).SetBytes(priv)
	if x.Sign() == 0 || x.Cmp(v.curve.Params().N) >= 0 {
		return nil, errors.WithMessage(ErrInvalidKeyMaterial, "private key out of range")
	}
	return x, nil
}

// scalarMult returns k*p, rejecting results with no finite representation.
func (v *VRF) scalarMult(p *Point, k []byte) (*Point, error) {
	x, y := v.curve.ScalarMult(p.x, p.y, k)
	if !finite(x, y) {
		return nil, ErrScalarOperationFailed
	}
	return &Point{x: x, y: y}, nil
}

// scalarBaseMult returns k*G.
func (v *VRF) scalarBaseMult(k []byte) (*Point, error) {
	x, y := v.curve.ScalarBaseMult(k)
	if !finite(x, y) {
		return nil, ErrScalarOperationFailed
	}
	return &Point{x: x, y: y}, nil
}

// sub returns p - q by negating q and combining; the curve exposes no
// subtraction primitive.
func (v *VRF) sub(p, q *Point) (*Point, error) {
	negY := new(big.Int).Sub(v.curve.Params().P, q.y)
	x, y := v.curve.Add(p.x, p.y, q.x, negY)
	if !finite(x, y) {
		return nil, ErrScalarOperationFailed
	}
	return &Point{x: x, y: y}, nil
}

// finite reports whether the coordinate pair names an affine point. The
// curve backends hand back nil or zero pairs for the point at infinity,
// which the protocol never accepts.
func finite(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	return x.Sign() != 0 || y.Sign() != 0
}
