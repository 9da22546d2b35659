package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/whalelephant/go-ucan-keys/internal/keyfile"
)

var (
	keyfilePath string
	passphrase  string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ucan-keys",
		Short: "Generate, inspect and use did:key signing keys",
	}

	root.PersistentFlags().StringVar(&keyfilePath, "keyfile", "", "encrypted key file (default ~/.ucan-keys/key.enc)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the key file")

	root.AddCommand(keygenCmd(), didCmd(), signCmd(), verifyCmd(), resolveCmd())
	return root.Execute()
}

// store resolves the key file path, creating its directory if needed.
func store() (*keyfile.Store, error) {
	path := keyfilePath
	if path == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, ".ucan-keys", "key.enc")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return keyfile.NewStore(path), nil
}
