package commands

import (
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

func hashToScalarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-to-scalar <hex>",
		Short: "Keccak-256 reduced mod l",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex("data", args[0])
			if err != nil {
				return err
			}
			printLine(cmd, engine.HashToScalar(data))
			return nil
		},
	}
}

func hashToPointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-to-point <hex>",
		Short: "Map bytes into the prime-order subgroup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex("data", args[0])
			if err != nil {
				return err
			}
			printLine(cmd, engine.HashToPoint(data))
			return nil
		},
	}
}

func fastHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fast-hash <hex>",
		Short: "Keccak-256",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex("data", args[0])
			if err != nil {
				return err
			}
			printLine(cmd, cryptonote.FastHash(data))
			return nil
		},
	}
}
