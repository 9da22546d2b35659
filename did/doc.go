// Package did parses did:key identifiers into key material.
//
// A Parser holds (multicodec tag, constructor) bindings; Parse strips the
// did:key:z prefix, base58btc-decodes the payload, and dispatches the
// untagged key bytes to the constructor bound to the leading 2-byte tag.
// DefaultParser binds the Ed25519, RSA and P-256 adapters from package
// keymaterial; additional key types register their own tags without
// changes here.
package did
