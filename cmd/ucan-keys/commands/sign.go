package commands

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/whalelephant/go-ucan-keys/keymaterial"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a file (or stdin) and print the base64url signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args)
			if err != nil {
				return err
			}
			km, err := loadKeyMaterial()
			if err != nil {
				return err
			}
			sig, err := km.Sign(payload)
			if err != nil {
				return err
			}
			fmt.Println(base64.RawURLEncoding.EncodeToString(sig))
			return nil
		},
	}
}

// loadKeyMaterial opens the key file and reconstitutes its adapter.
func loadKeyMaterial() (keymaterial.KeyMaterial, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	s, err := store()
	if err != nil {
		return nil, err
	}
	rec, err := s.Load(passphrase)
	if err != nil {
		return nil, err
	}
	return rec.KeyMaterial()
}

// readPayload reads the single file argument, or stdin when absent or "-".
func readPayload(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
