package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func didCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "did",
		Short: "Print the stored key's DID",
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := loadKeyMaterial()
			if err != nil {
				return err
			}
			did, err := km.DID()
			if err != nil {
				return err
			}
			fmt.Println(did)
			return nil
		},
	}
}
