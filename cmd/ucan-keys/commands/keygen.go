package commands

import (
	"crypto/elliptic"
	"crypto/x509"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whalelephant/go-ucan-keys/internal/keyfile"
	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

func keygenCmd() *cobra.Command {
	var (
		algorithm string
		rsaBits   int
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec, km, err := generateRecord(algorithm, rsaBits)
			if err != nil {
				return err
			}
			did, err := km.DID()
			if err != nil {
				return err
			}
			s, err := store()
			if err != nil {
				return err
			}
			if err := s.Save(passphrase, rec); err != nil {
				return err
			}
			fmt.Printf("Key created at %s\nDID: %s\n", s.Path(), did)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", keyfile.AlgorithmEd25519, "key algorithm (ed25519, rsa, p256)")
	cmd.Flags().IntVar(&rsaBits, "rsa-bits", 2048, "RSA modulus size (rsa only)")
	return cmd
}

// generateRecord creates a fresh pair for the algorithm and serializes it
// into a key file record.
func generateRecord(algorithm string, rsaBits int) (keyfile.Record, keymaterial.KeyMaterial, error) {
	switch algorithm {
	case keyfile.AlgorithmEd25519:
		km, err := keymaterial.GenerateEd25519()
		if err != nil {
			return keyfile.Record{}, nil, err
		}
		rec := keyfile.Record{
			Algorithm: keyfile.AlgorithmEd25519,
			Public:    km.PublicKey(),
			Private:   km.PrivateKey(),
		}
		return rec, km, nil
	case keyfile.AlgorithmRSA:
		km, err := keymaterial.GenerateRSA(rsaBits)
		if err != nil {
			return keyfile.Record{}, nil, err
		}
		rec := keyfile.Record{
			Algorithm: keyfile.AlgorithmRSA,
			Public:    x509.MarshalPKCS1PublicKey(km.PublicKey()),
			Private:   x509.MarshalPKCS1PrivateKey(km.PrivateKey()),
		}
		return rec, km, nil
	case keyfile.AlgorithmP256:
		km, err := keymaterial.GenerateP256()
		if err != nil {
			return keyfile.Record{}, nil, err
		}
		priv, err := x509.MarshalECPrivateKey(km.PrivateKey())
		if err != nil {
			return keyfile.Record{}, nil, err
		}
		pub := km.PublicKey()
		rec := keyfile.Record{
			Algorithm: keyfile.AlgorithmP256,
			Public:    elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y),
			Private:   priv,
		}
		return rec, km, nil
	default:
		return keyfile.Record{}, nil, fmt.Errorf("unknown algorithm %q (want ed25519, rsa or p256)", algorithm)
	}
}
