// Package commands defines the ucan-keys CLI.
//
// Commands
//
//   - keygen   Generate a signing key and store it encrypted
//   - did      Print the stored key's did:key identifier
//   - sign     Sign a file or stdin, printing a base64url signature
//   - verify   Check a signature against a did:key or the stored key
//   - resolve  Parse a did:key and describe the key it carries
//
// # Implementation
//
// The root command exposes --keyfile and --passphrase as persistent flags;
// subcommands open the encrypted key file on demand and reconstitute the
// right keymaterial adapter from the stored algorithm name.
package commands
