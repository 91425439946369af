// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrf

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// PrivateKeyLen is the raw private key size.
const PrivateKeyLen = 32

// KeyPair is caller-owned key material: the raw 32-byte private scalar and
// the SEC 1 encoded public key, compressed or uncompressed. Operations
// read the fields and never mutate or retain them; both are validated
// wherever a KeyPair enters the package.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
}

// GenerateKeyPair creates a key pair from system randomness. This is the
// only entropy-consuming operation in the package; proving and verifying
// are fully deterministic.
func GenerateKeyPair() (*KeyPair, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.WithMessage(err, "generate secp256k1 key")
	}
	return &KeyPair{
		PrivateKey: crypto.FromECDSA(key),
		PublicKey:  crypto.CompressPubkey(&key.PublicKey),
	}, nil
}

// NewKeyPairFromPrivateKey derives the compressed public key for a raw
// private scalar. The scalar must be 32 bytes naming a value in [1, N-1],
// otherwise ErrInvalidKeyMaterial is reported.
func NewKeyPairFromPrivateKey(priv []byte) (*KeyPair, error) {
	if len(priv) != PrivateKeyLen {
		return nil, errors.WithMessagef(ErrInvalidKeyMaterial, "private key length %d", len(priv))
	}
	key, err := crypto.ToECDSA(priv)
	if err != nil {
		return nil, errors.WithMessage(ErrInvalidKeyMaterial, err.Error())
	}
	return &KeyPair{
		PrivateKey: append([]byte(nil), priv...),
		PublicKey:  crypto.CompressPubkey(&key.PublicKey),
	}, nil
}
