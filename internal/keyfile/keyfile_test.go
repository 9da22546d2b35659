package keyfile_test

import (
	"path/filepath"
	"testing"

	"github.com/whalelephant/go-ucan-keys/internal/keyfile"
	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

// makeRecord builds an ed25519 record around a fresh pair.
func makeRecord(t *testing.T) (keyfile.Record, *keymaterial.Ed25519KeyMaterial) {
	t.Helper()
	km, err := keymaterial.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	rec := keyfile.Record{
		Algorithm: keyfile.AlgorithmEd25519,
		Public:    km.PublicKey(),
		Private:   km.PrivateKey(),
	}
	return rec, km
}

func TestSaveLoad_OK(t *testing.T) {
	s := keyfile.NewStore(filepath.Join(t.TempDir(), "key.enc"))
	rec, km := makeRecord(t)

	if err := s.Save("pass", rec); err != nil {
		t.Fatalf("save key file: %v", err)
	}
	got, err := s.Load("pass")
	if err != nil {
		t.Fatalf("load key file: %v", err)
	}
	if got.Algorithm != keyfile.AlgorithmEd25519 {
		t.Fatalf("want algorithm ed25519, got %q", got.Algorithm)
	}

	// The reconstituted adapter signs for the original pair.
	loaded, err := got.KeyMaterial()
	if err != nil {
		t.Fatalf("KeyMaterial: %v", err)
	}
	sig, err := loaded.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := km.Verify([]byte("hello"), sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestLoad_WrongPassphrase_Fails(t *testing.T) {
	s := keyfile.NewStore(filepath.Join(t.TempDir(), "key.enc"))
	rec, _ := makeRecord(t)

	if err := s.Save("correct", rec); err != nil {
		t.Fatalf("save key file: %v", err)
	}
	if _, err := s.Load("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestRecord_UnknownAlgorithm(t *testing.T) {
	rec := keyfile.Record{Algorithm: "dsa"}
	if _, err := rec.KeyMaterial(); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestRecord_PublicOnly(t *testing.T) {
	rec, km := makeRecord(t)
	rec.Private = nil

	loaded, err := rec.KeyMaterial()
	if err != nil {
		t.Fatalf("KeyMaterial: %v", err)
	}
	if _, err := loaded.Sign([]byte("hello")); err == nil {
		t.Fatal("expected public-only record to refuse signing")
	}
	sig, err := km.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := loaded.Verify([]byte("hello"), sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}
