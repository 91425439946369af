// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"io"
	"runtime"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SignatureLen is the envelope body size.
const SignatureLen = compressedPointLen + ProofLen

// Signature binds a proof to the compressed public key it verifies under,
// so the pair can travel and be checked as one unit.
// Composed by [ Compressed Public Key(33bytes) + Proof(81bytes) ]
type Signature struct {
	body  []byte
	cache struct {
		signer atomic.Value
		beta   atomic.Value
	}
}

// validated remembers one successful Validate call.
type validated struct {
	alpha string
	beta  []byte
}

// NewSignature creates a new signature.
func NewSignature(pub, pi []byte) *Signature {
	var sig Signature
	sig.body = append(sig.body, pub...)
	sig.body = append(sig.body, pi...)

	return &sig
}

// Bytes returns the content in byte slice.
func (sig *Signature) Bytes() []byte {
	return append([]byte(nil), sig.body...)
}

// Validate checks the embedded proof against alpha using engine and
// returns the output it commits to. A success is cached, keyed by alpha,
// so revalidating the same envelope is free.
func (sig *Signature) Validate(engine *VRF, alpha []byte) ([]byte, error) {
	if cached := sig.cache.beta.Load(); cached != nil {
		if v := cached.(*validated); v.alpha == string(alpha) {
			return v.beta, nil
		}
	}

	if len(sig.body) != SignatureLen {
		return nil, errors.WithMessagef(ErrInvalidProofLength, "signature length %d, %d needed", len(sig.body), SignatureLen)
	}

	pub := make([]byte, compressedPointLen)
	pi := make([]byte, ProofLen)

	copy(pub, sig.body[:])
	copy(pi, sig.body[compressedPointLen:])

	beta, err := engine.Verify(pub, alpha, pi)
	if err != nil {
		return nil, err
	}

	sig.cache.beta.Store(&validated{alpha: string(alpha), beta: beta})
	return beta, nil
}

// Signer computes the address from the public key.
func (sig *Signature) Signer() (common.Address, error) {
	if cached := sig.cache.signer.Load(); cached != nil {
		return cached.(common.Address), nil
	}

	if len(sig.body) != SignatureLen {
		return common.Address{}, errors.WithMessagef(ErrInvalidProofLength, "signature length %d, %d needed", len(sig.body), SignatureLen)
	}

	pub := make([]byte, compressedPointLen)
	copy(pub, sig.body[:])

	pubkey, err := crypto.DecompressPubkey(pub)
	if err != nil {
		return common.Address{}, errors.WithMessage(ErrInvalidKeyMaterial, err.Error())
	}

	signer := crypto.PubkeyToAddress(*pubkey)
	sig.cache.signer.Store(signer)
	return signer, nil
}

// EncodeRLP implements rlp.Encoder.
func (sig *Signature) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &sig.body)
}

// DecodeRLP implements rlp.Decoder.
func (sig *Signature) DecodeRLP(s *rlp.Stream) error {
	var body []byte

	if err := s.Decode(&body); err != nil {
		return err
	}
	*sig = Signature{body: body}
	return nil
}

// Signatures is a set of envelopes checked as one unit.
type Signatures []*Signature

// Validate checks every signature against the same alpha, fanning the work
// out over the available cores, and returns the outputs in input order.
// The first failure wins and names the offending index.
func (sigs Signatures) Validate(engine *VRF, alpha []byte) ([][]byte, error) {
	betas := make([][]byte, len(sigs))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, sig := range sigs {
		g.Go(func() error {
			beta, err := sig.Validate(engine, alpha)
			if err != nil {
				return errors.WithMessagef(err, "signature #%d", i)
			}
			betas[i] = beta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return betas, nil
}
