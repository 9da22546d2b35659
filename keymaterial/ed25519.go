package keymaterial

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Ed25519Tag is the multicodec varint prefix for an Ed25519 public key.
var Ed25519Tag = [2]byte{0xed, 0x01}

// Ed25519KeyMaterial signs and verifies with an Ed25519 pair. It owns
// copies of the key bytes and is immutable after construction.
type Ed25519KeyMaterial struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey // nil on verification-only instances
}

// Ed25519FromPublicKey interprets pub as a raw 32-byte Ed25519 public key
// and returns a verification-only instance. It is the Constructor
// registered under Ed25519Tag.
func Ed25519FromPublicKey(pub []byte) (KeyMaterial, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: want a %d-byte Ed25519 public key, got %d bytes",
			ErrInvalidKeyEncoding, ed25519.PublicKeySize, len(pub))
	}
	return &Ed25519KeyMaterial{pub: append(ed25519.PublicKey(nil), pub...)}, nil
}

// NewEd25519KeyMaterial wraps an externally generated pair: a 32-byte
// public key and a 64-byte private key. Correspondence between the two
// halves is the caller's responsibility and is not checked here.
func NewEd25519KeyMaterial(pub, priv []byte) (*Ed25519KeyMaterial, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: want a %d-byte Ed25519 public key, got %d bytes",
			ErrInvalidKeyEncoding, ed25519.PublicKeySize, len(pub))
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: want a %d-byte Ed25519 private key, got %d bytes",
			ErrInvalidKeyEncoding, ed25519.PrivateKeySize, len(priv))
	}
	return &Ed25519KeyMaterial{
		pub:  append(ed25519.PublicKey(nil), pub...),
		priv: append(ed25519.PrivateKey(nil), priv...),
	}, nil
}

// GenerateEd25519 returns key material around a fresh pair from crypto/rand.
func GenerateEd25519() (*Ed25519KeyMaterial, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Ed25519KeyMaterial{pub: pub, priv: priv}, nil
}

// PublicKey returns a copy of the 32-byte public key.
func (k *Ed25519KeyMaterial) PublicKey() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), k.pub...)
}

// PrivateKey returns a copy of the 64-byte private key, or nil on
// verification-only instances.
func (k *Ed25519KeyMaterial) PrivateKey() ed25519.PrivateKey {
	if k.priv == nil {
		return nil
	}
	return append(ed25519.PrivateKey(nil), k.priv...)
}

// JWTAlgorithmName reports "EdDSA".
func (k *Ed25519KeyMaterial) JWTAlgorithmName() string { return "EdDSA" }

// DID derives "did:key:z" + base58btc(0xed 0x01 || public key).
func (k *Ed25519KeyMaterial) DID() (string, error) {
	return encodeDID(Ed25519Tag, k.pub), nil
}

// Sign returns the raw 64-byte Ed25519 signature over payload.
func (k *Ed25519KeyMaterial) Sign(payload []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrMissingSigningKey
	}
	return ed25519.Sign(k.priv, payload), nil
}

// Verify checks a raw 64-byte Ed25519 signature over payload.
func (k *Ed25519KeyMaterial) Verify(payload, sig []byte) error {
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: want a %d-byte Ed25519 signature, got %d bytes",
			ErrInvalidSignatureEncoding, ed25519.SignatureSize, len(sig))
	}
	if !ed25519.Verify(k.pub, payload, sig) {
		return ErrSignatureVerificationFailed
	}
	return nil
}

// Compile-time assertion that Ed25519KeyMaterial implements KeyMaterial.
var _ KeyMaterial = (*Ed25519KeyMaterial)(nil)
