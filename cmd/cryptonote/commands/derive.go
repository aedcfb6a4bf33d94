package commands

import (
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

func derivationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derivation <public> <secret>",
		Short: "Print 8*secret*public",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := decode32("public", args[0])
			if err != nil {
				return err
			}
			sec, err := decode32("secret", args[1])
			if err != nil {
				return err
			}
			d, err := engine.GenerateKeyDerivation(cryptonote.PublicKey(pub), cryptonote.SecretKey(sec))
			if err != nil {
				return err
			}
			printLine(cmd, d)
			return nil
		},
	}
}

// derivationArgs parses the <derivation> <index> <key> triple shared by the
// derive family.
func derivationArgs(args []string) (cryptonote.KeyDerivation, uint64, [cryptonote.KeySize]byte, error) {
	var key [cryptonote.KeySize]byte

	d, err := decode32("derivation", args[0])
	if err != nil {
		return cryptonote.KeyDerivation{}, 0, key, err
	}

	idx, err := parseIndex(args[1])
	if err != nil {
		return cryptonote.KeyDerivation{}, 0, key, err
	}

	if len(args) > 2 {
		key, err = decode32("key", args[2])
		if err != nil {
			return cryptonote.KeyDerivation{}, 0, key, err
		}
	}

	return cryptonote.KeyDerivation(d), idx, key, nil
}

func derivationToScalarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derivation-to-scalar <derivation> <index>",
		Short: "Print Hs(derivation || varint(index))",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, idx, _, err := derivationArgs(args)
			if err != nil {
				return err
			}
			s, err := engine.DerivationToScalar(d, idx)
			if err != nil {
				return err
			}
			printLine(cmd, s)
			return nil
		},
	}
}

func derivePublicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive-public <derivation> <index> <base-public>",
		Short: "Print the one-time output public key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, idx, base, err := derivationArgs(args)
			if err != nil {
				return err
			}
			pub, err := engine.DerivePublicKey(d, idx, cryptonote.PublicKey(base))
			if err != nil {
				return err
			}
			printLine(cmd, pub)
			return nil
		},
	}
}

func deriveSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive-secret <derivation> <index> <base-secret>",
		Short: "Print the one-time output secret key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, idx, base, err := derivationArgs(args)
			if err != nil {
				return err
			}
			sec, err := engine.DeriveSecretKey(d, idx, cryptonote.SecretKey(base))
			if err != nil {
				return err
			}
			printLine(cmd, sec)
			return nil
		},
	}
}

func underiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "underive <derivation> <index> <output-public>",
		Short: "Recover the base public key of an output",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, idx, out, err := derivationArgs(args)
			if err != nil {
				return err
			}
			base, err := engine.UnderivePublicKey(d, idx, cryptonote.PublicKey(out))
			if err != nil {
				return err
			}
			printLine(cmd, base)
			return nil
		},
	}
}
