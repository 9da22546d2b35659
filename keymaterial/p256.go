package keymaterial

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// P256Tag is the multicodec varint prefix for a P-256 public key.
var P256Tag = [2]byte{0x80, 0x24}

// p256SignatureSize is the fixed width of an r||s ECDSA signature over
// P-256, as used in JWS rather than ASN.1 DER.
const p256SignatureSize = 64

// P256KeyMaterial signs and verifies with ECDSA over NIST P-256 and
// SHA-256. DID payloads carry the public key as a 33-byte compressed SEC1
// point; signatures are fixed-width r||s.
type P256KeyMaterial struct {
	pub  *ecdsa.PublicKey
	priv *ecdsa.PrivateKey // nil on verification-only instances
}

// P256FromPublicKey interprets pub as a compressed SEC1 P-256 point and
// returns a verification-only instance. It is the Constructor registered
// under P256Tag.
func P256FromPublicKey(pub []byte) (KeyMaterial, error) {
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), pub)
	if x == nil {
		return nil, fmt.Errorf("%w: not a compressed SEC1 P-256 point", ErrInvalidKeyEncoding)
	}
	return &P256KeyMaterial{pub: &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}}, nil
}

// NewP256KeyMaterial wraps an externally generated private key. Keys on
// curves other than P-256 are refused.
func NewP256KeyMaterial(priv *ecdsa.PrivateKey) (*P256KeyMaterial, error) {
	if priv.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: key is on %s, want P-256", ErrInvalidKeyEncoding, priv.Curve.Params().Name)
	}
	return &P256KeyMaterial{pub: &priv.PublicKey, priv: priv}, nil
}

// GenerateP256 returns key material around a fresh pair from crypto/rand.
func GenerateP256() (*P256KeyMaterial, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return &P256KeyMaterial{pub: &priv.PublicKey, priv: priv}, nil
}

// PublicKey returns the public key.
func (k *P256KeyMaterial) PublicKey() *ecdsa.PublicKey { return k.pub }

// PrivateKey returns the private key, or nil on verification-only
// instances.
func (k *P256KeyMaterial) PrivateKey() *ecdsa.PrivateKey { return k.priv }

// JWTAlgorithmName reports "ES256".
func (k *P256KeyMaterial) JWTAlgorithmName() string { return "ES256" }

// DID derives "did:key:z" + base58btc(0x80 0x24 || compressed SEC1 point).
func (k *P256KeyMaterial) DID() (string, error) {
	return encodeDID(P256Tag, elliptic.MarshalCompressed(k.pub.Curve, k.pub.X, k.pub.Y)), nil
}

// Sign returns a fixed-width 64-byte r||s ECDSA signature over the SHA-256
// digest of payload.
func (k *P256KeyMaterial) Sign(payload []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrMissingSigningKey
	}
	digest := sha256.Sum256(payload)
	r, s, err := ecdsa.Sign(rand.Reader, k.priv, digest[:])
	if err != nil {
		return nil, err
	}
	sig := make([]byte, p256SignatureSize)
	r.FillBytes(sig[:p256SignatureSize/2])
	s.FillBytes(sig[p256SignatureSize/2:])
	return sig, nil
}

// Verify checks a fixed-width 64-byte r||s ECDSA signature over the
// SHA-256 digest of payload.
func (k *P256KeyMaterial) Verify(payload, sig []byte) error {
	if len(sig) != p256SignatureSize {
		return fmt.Errorf("%w: want a %d-byte r||s ECDSA signature, got %d bytes",
			ErrInvalidSignatureEncoding, p256SignatureSize, len(sig))
	}
	r := new(big.Int).SetBytes(sig[:p256SignatureSize/2])
	s := new(big.Int).SetBytes(sig[p256SignatureSize/2:])
	digest := sha256.Sum256(payload)
	if !ecdsa.Verify(k.pub, digest[:], r, s) {
		return ErrSignatureVerificationFailed
	}
	return nil
}

// Compile-time assertion that P256KeyMaterial implements KeyMaterial.
var _ KeyMaterial = (*P256KeyMaterial)(nil)
