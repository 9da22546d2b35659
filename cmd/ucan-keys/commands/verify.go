package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whalelephant/go-ucan-keys/did"
	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

func verifyCmd() *cobra.Command {
	var (
		signer    string
		signature string
	)
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a signature over a file (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args)
			if err != nil {
				return err
			}
			sig, err := base64.RawURLEncoding.DecodeString(signature)
			if err != nil {
				return fmt.Errorf("decoding base64url signature: %w", err)
			}

			// Verify against a DID when given, otherwise the stored key.
			var km keymaterial.KeyMaterial
			if signer != "" {
				km, err = did.DefaultParser().Parse(signer)
			} else {
				km, err = loadKeyMaterial()
			}
			if err != nil {
				return err
			}

			if err := km.Verify(payload, sig); err != nil {
				return err
			}
			fmt.Println("Signature OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&signer, "did", "", "signer's did:key (default: the stored key)")
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "base64url signature to check")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
