package keyfile

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/whalelephant/go-ucan-keys/internal/util/memzero"
	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

// Algorithm names stored in a Record.
const (
	AlgorithmEd25519 = "ed25519"
	AlgorithmRSA     = "rsa"
	AlgorithmP256    = "p256"
)

// Record is the decrypted content of a key file: an algorithm name plus the
// serialized key halves. Ed25519 keys are raw bytes; RSA keys are PKCS#1
// DER; P-256 keys are a compressed SEC1 point and a SEC1 EC private key.
type Record struct {
	Algorithm string `json:"algorithm"`
	Public    []byte `json:"public"`
	Private   []byte `json:"private,omitempty"`
}

// KeyMaterial reconstitutes the adapter for the stored algorithm.
func (r Record) KeyMaterial() (keymaterial.KeyMaterial, error) {
	switch r.Algorithm {
	case AlgorithmEd25519:
		if len(r.Private) == 0 {
			return keymaterial.Ed25519FromPublicKey(r.Public)
		}
		return keymaterial.NewEd25519KeyMaterial(r.Public, r.Private)
	case AlgorithmRSA:
		if len(r.Private) == 0 {
			return keymaterial.RSAFromPublicKey(r.Public)
		}
		priv, err := x509.ParsePKCS1PrivateKey(r.Private)
		if err != nil {
			return nil, fmt.Errorf("parsing PKCS#1 RSA private key: %w", err)
		}
		return keymaterial.NewRSAKeyMaterial(priv), nil
	case AlgorithmP256:
		if len(r.Private) == 0 {
			return keymaterial.P256FromPublicKey(r.Public)
		}
		priv, err := x509.ParseECPrivateKey(r.Private)
		if err != nil {
			return nil, fmt.Errorf("parsing SEC1 EC private key: %w", err)
		}
		return keymaterial.NewP256KeyMaterial(priv)
	default:
		return nil, fmt.Errorf("unknown key algorithm %q", r.Algorithm)
	}
}

// Store persists a single encrypted key record on disk.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store writing to path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path reports where the store reads and writes.
func (s *Store) Path() string { return s.path }

// Save encrypts rec with the passphrase and writes it to disk.
func (s *Store) Save(passphrase string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.path, ct, 0o600)
}

// Load reads and decrypts the key record.
func (s *Store) Load(passphrase string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return Record{}, err
	}
	defer memzero.Zero(pt)

	var rec Record
	if err := json.Unmarshal(pt, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
