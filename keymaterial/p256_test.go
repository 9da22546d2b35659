package keymaterial_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"

	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

// makeP256 creates key material around a fresh pair.
func makeP256(t *testing.T) *keymaterial.P256KeyMaterial {
	t.Helper()
	km, err := keymaterial.GenerateP256()
	if err != nil {
		t.Fatalf("GenerateP256: %v", err)
	}
	return km
}

func TestP256SignVerify(t *testing.T) {
	km := makeP256(t)

	sig, err := km.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != 64 {
		t.Fatalf("want 64-byte r||s signature, got %d bytes", len(sig))
	}
	if err := km.Verify([]byte("hello"), sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	err = km.Verify([]byte("hellO"), sig)
	if !errors.Is(err, keymaterial.ErrSignatureVerificationFailed) {
		t.Fatalf("want ErrSignatureVerificationFailed, got %v", err)
	}
}

func TestP256DID(t *testing.T) {
	km := makeP256(t)

	did, err := km.DID()
	if err != nil {
		t.Fatalf("DID: %v", err)
	}
	if !strings.HasPrefix(did, "did:key:z") {
		t.Fatalf("want prefix did:key:z, got %q", did)
	}

	raw, err := base58.Decode(strings.TrimPrefix(did, "did:key:z"))
	if err != nil {
		t.Fatalf("base58 decode: %v", err)
	}
	if raw[0] != 0x80 || raw[1] != 0x24 {
		t.Fatalf("want multicodec tag 80 24, got %02x %02x", raw[0], raw[1])
	}
	pub := km.PublicKey()
	if !bytes.Equal(raw[2:], elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y)) {
		t.Fatal("decoded DID payload does not reproduce the compressed point")
	}
	if len(raw[2:]) != 33 {
		t.Fatalf("want 33-byte compressed point, got %d bytes", len(raw[2:]))
	}
}

func TestP256VerificationOnly(t *testing.T) {
	full := makeP256(t)
	pub := full.PublicKey()

	km, err := keymaterial.P256FromPublicKey(elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y))
	if err != nil {
		t.Fatalf("P256FromPublicKey: %v", err)
	}
	if _, err := km.Sign([]byte("hello")); !errors.Is(err, keymaterial.ErrMissingSigningKey) {
		t.Fatalf("want ErrMissingSigningKey, got %v", err)
	}

	sig, err := full.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := km.Verify([]byte("hello"), sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestP256FromPublicKeyGarbage(t *testing.T) {
	for _, b := range [][]byte{nil, make([]byte, 32), make([]byte, 65)} {
		_, err := keymaterial.P256FromPublicKey(b)
		if !errors.Is(err, keymaterial.ErrInvalidKeyEncoding) {
			t.Fatalf("length %d: want ErrInvalidKeyEncoding, got %v", len(b), err)
		}
	}
}

func TestP256MalformedSignature(t *testing.T) {
	km := makeP256(t)

	for _, n := range []int{0, 63, 65, 72} {
		err := km.Verify([]byte("hello"), make([]byte, n))
		if !errors.Is(err, keymaterial.ErrInvalidSignatureEncoding) {
			t.Fatalf("length %d: want ErrInvalidSignatureEncoding, got %v", n, err)
		}
	}
}

func TestNewP256KeyMaterialRefusesOtherCurves(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if _, err := keymaterial.NewP256KeyMaterial(priv); !errors.Is(err, keymaterial.ErrInvalidKeyEncoding) {
		t.Fatalf("want ErrInvalidKeyEncoding, got %v", err)
	}
}

func TestP256JWTAlgorithmName(t *testing.T) {
	if got := makeP256(t).JWTAlgorithmName(); got != "ES256" {
		t.Fatalf("want ES256, got %q", got)
	}
}
