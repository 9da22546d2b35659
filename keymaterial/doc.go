// Package keymaterial provides the key-material adapters a UCAN token
// library signs and verifies with.
//
// Contents
//
//   - The KeyMaterial capability contract (algorithm name, did:key
//     derivation, sign, verify) and its error taxonomy
//   - An Ed25519 adapter ("EdDSA", multicodec tag 0xed 0x01, raw 64-byte
//     signatures)
//   - An RSA adapter ("RS256", tag 0x85 0x24, PKCS#1 DER key payloads)
//   - A P-256 adapter ("ES256", tag 0x80 0x24, compressed SEC1 key
//     payloads, fixed-width r||s signatures)
//
// # Notes
//
// All operations are pure functions of the immutable key material, so
// instances are safe for concurrent use. Failures surface as explicit
// errors to the immediate caller; nothing is logged or retried. A
// verification-only instance (constructed from public key bytes alone)
// refuses to sign with ErrMissingSigningKey.
//
// Constructing a pair does not check that the private half corresponds to
// the public half; callers supplying ready-made pairs own that guarantee.
package keymaterial
