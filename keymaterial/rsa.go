package keymaterial

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
)

// RSATag is the multicodec varint prefix for an RSA public key.
var RSATag = [2]byte{0x85, 0x24}

// minRSABits is the smallest modulus GenerateRSA accepts.
const minRSABits = 2048

// RSAKeyMaterial signs and verifies with RSASSA-PKCS1-v1_5 over SHA-256.
// DID payloads carry the public key as PKCS#1 DER.
type RSAKeyMaterial struct {
	pub  *rsa.PublicKey
	priv *rsa.PrivateKey // nil on verification-only instances
}

// RSAFromPublicKey interprets pub as a PKCS#1 DER RSAPublicKey and returns
// a verification-only instance. It is the Constructor registered under
// RSATag.
func RSAFromPublicKey(pub []byte) (KeyMaterial, error) {
	pk, err := x509.ParsePKCS1PublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing PKCS#1 RSA public key: %v", ErrInvalidKeyEncoding, err)
	}
	return &RSAKeyMaterial{pub: pk}, nil
}

// NewRSAKeyMaterial wraps an externally generated private key.
func NewRSAKeyMaterial(priv *rsa.PrivateKey) *RSAKeyMaterial {
	return &RSAKeyMaterial{pub: &priv.PublicKey, priv: priv}
}

// GenerateRSA returns key material around a fresh pair from crypto/rand.
// Moduli below 2048 bits are refused.
func GenerateRSA(bits int) (*RSAKeyMaterial, error) {
	if bits < minRSABits {
		return nil, fmt.Errorf("RSA modulus must be at least %d bits, got %d", minRSABits, bits)
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	return NewRSAKeyMaterial(priv), nil
}

// PublicKey returns the public key.
func (k *RSAKeyMaterial) PublicKey() *rsa.PublicKey { return k.pub }

// PrivateKey returns the private key, or nil on verification-only
// instances.
func (k *RSAKeyMaterial) PrivateKey() *rsa.PrivateKey { return k.priv }

// JWTAlgorithmName reports "RS256".
func (k *RSAKeyMaterial) JWTAlgorithmName() string { return "RS256" }

// DID derives "did:key:z" + base58btc(0x85 0x24 || PKCS#1 DER public key).
func (k *RSAKeyMaterial) DID() (string, error) {
	return encodeDID(RSATag, x509.MarshalPKCS1PublicKey(k.pub)), nil
}

// Sign returns an RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of
// payload.
func (k *RSAKeyMaterial) Sign(payload []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrMissingSigningKey
	}
	digest := sha256.Sum256(payload)
	return rsa.SignPKCS1v15(rand.Reader, k.priv, crypto.SHA256, digest[:])
}

// Verify checks an RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of
// payload. A signature whose length differs from the modulus size is
// malformed.
func (k *RSAKeyMaterial) Verify(payload, sig []byte) error {
	if len(sig) != k.pub.Size() {
		return fmt.Errorf("%w: want a %d-byte RSA signature, got %d bytes",
			ErrInvalidSignatureEncoding, k.pub.Size(), len(sig))
	}
	digest := sha256.Sum256(payload)
	if err := rsa.VerifyPKCS1v15(k.pub, crypto.SHA256, digest[:], sig); err != nil {
		return ErrSignatureVerificationFailed
	}
	return nil
}

// Compile-time assertion that RSAKeyMaterial implements KeyMaterial.
var _ KeyMaterial = (*RSAKeyMaterial)(nil)
