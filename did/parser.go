package did

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

// keyPrefix is the did:key method prefix; the trailing z is the multibase
// prefix for base58btc.
const keyPrefix = "did:key:z"

// Binding associates a 2-byte multicodec tag with the Constructor that
// builds key material from the untagged key bytes that follow it.
type Binding struct {
	Tag         [2]byte
	Constructor keymaterial.Constructor
}

// Parser resolves did:key strings to key material by dispatching on the
// multicodec tag of the decoded payload. It is immutable after
// construction and safe for concurrent use.
type Parser struct {
	bindings []Binding
}

// NewParser returns a Parser with the given tag bindings. Earlier bindings
// win when a tag appears twice.
func NewParser(bindings ...Binding) *Parser {
	return &Parser{bindings: bindings}
}

// DefaultParser returns a Parser with the three built-in key types bound.
func DefaultParser() *Parser {
	return NewParser(
		Binding{Tag: keymaterial.Ed25519Tag, Constructor: keymaterial.Ed25519FromPublicKey},
		Binding{Tag: keymaterial.RSATag, Constructor: keymaterial.RSAFromPublicKey},
		Binding{Tag: keymaterial.P256Tag, Constructor: keymaterial.P256FromPublicKey},
	)
}

// Parse resolves a did:key string to verification-only key material.
func (p *Parser) Parse(did string) (keymaterial.KeyMaterial, error) {
	if !strings.HasPrefix(did, keyPrefix) {
		return nil, fmt.Errorf("unsupported DID %q: want prefix %q", did, keyPrefix)
	}
	raw, err := base58.Decode(strings.TrimPrefix(did, keyPrefix))
	if err != nil {
		return nil, fmt.Errorf("decoding base58 payload of %q: %w", did, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("DID %q: payload too short to carry a multicodec tag", did)
	}
	var tag [2]byte
	copy(tag[:], raw[:2])
	for _, b := range p.bindings {
		if b.Tag == tag {
			return b.Constructor(raw[2:])
		}
	}
	return nil, fmt.Errorf("DID %q: no key constructor registered for multicodec tag 0x%02x 0x%02x",
		did, tag[0], tag[1])
}
