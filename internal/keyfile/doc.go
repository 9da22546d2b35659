// Package keyfile provides encrypted on-disk storage for a signing key.
//
// A Record (algorithm name plus serialized key halves) is sealed with
// chacha20poly1305 under a scrypt-derived key and written atomically with
// mode 0600. It backs the ucan-keys CLI only; the keymaterial and did
// packages never touch the filesystem.
package keyfile
