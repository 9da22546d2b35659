package keymaterial

import (
	"errors"

	"github.com/mr-tron/base58"
)

// KeyMaterial is the capability contract a token library consumes. One
// instance wraps a single asymmetric key pair; the private half is optional,
// and verification-only instances refuse to sign.
//
// Implementations are immutable after construction and safe for concurrent
// use.
type KeyMaterial interface {
	// JWTAlgorithmName reports the JOSE algorithm identifier for this key
	// type, e.g. "EdDSA".
	JWTAlgorithmName() string

	// DID derives the did:key identifier of the public key.
	DID() (string, error)

	// Sign produces a signature over payload with the private key. It fails
	// with ErrMissingSigningKey on verification-only instances.
	Sign(payload []byte) ([]byte, error)

	// Verify checks sig over payload against the public key. It returns nil
	// for a valid signature, ErrInvalidSignatureEncoding if sig is
	// malformed, and ErrSignatureVerificationFailed otherwise.
	Verify(payload, sig []byte) error
}

// Constructor builds key material from untagged public key bytes. A DID
// parser registers one Constructor per multicodec tag so tagged key bytes
// dispatch to the right implementation.
type Constructor func(pub []byte) (KeyMaterial, error)

var (
	// ErrInvalidKeyEncoding is returned when raw bytes do not decode to a
	// valid public key for the requested key type.
	ErrInvalidKeyEncoding = errors.New("invalid public key encoding")

	// ErrMissingSigningKey is returned when signing is requested on a
	// verification-only instance.
	ErrMissingSigningKey = errors.New("no private key; cannot sign data")

	// ErrInvalidSignatureEncoding is returned when signature bytes are
	// malformed for the key type.
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")

	// ErrSignatureVerificationFailed is returned when a well-formed
	// signature does not validate. For a token library this is the expected
	// rejection of tampered or forged tokens, not a system fault.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
)

// encodeDID renders "did:key:z" + base58btc(tag || payload). The leading z
// is the multibase prefix for base58btc; the 2-byte tag is the multicodec
// varint identifying the key type.
func encodeDID(tag [2]byte, payload []byte) string {
	buf := make([]byte, 0, len(tag)+len(payload))
	buf = append(buf, tag[:]...)
	buf = append(buf, payload...)
	return "did:key:z" + base58.Encode(buf)
}
