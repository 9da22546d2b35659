package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/whalelephant/go-ucan-keys/did"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <did>",
		Short: "Parse a did:key and print its algorithm and key fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := did.DefaultParser().Parse(args[0])
			if err != nil {
				return err
			}
			raw, err := base58.Decode(strings.TrimPrefix(args[0], "did:key:z"))
			if err != nil {
				return err
			}
			fmt.Printf("Algorithm:   %s\nFingerprint: %s\n", km.JWTAlgorithmName(), fingerprint(raw[2:]))
			return nil
		},
	}
}

// fingerprint returns a short hex digest of the key payload for display.
func fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
