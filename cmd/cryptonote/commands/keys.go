package commands

import (
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, sec, err := engine.GenerateKeys()
			if err != nil {
				return err
			}
			printLine(cmd, "public:", pub)
			printLine(cmd, "secret:", sec)
			return nil
		},
	}
}

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <secret>",
		Short: "Print secret*G",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := decode32("secret", args[0])
			if err != nil {
				return err
			}
			pub, err := engine.SecretKeyToPublicKey(cryptonote.SecretKey(sec))
			if err != nil {
				return err
			}
			printLine(cmd, pub)
			return nil
		},
	}
}

func checkKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-key <public>",
		Short: "Report whether a public key is a valid subgroup point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := decode32("public", args[0])
			if err != nil {
				return err
			}
			printLine(cmd, engine.CheckKey(cryptonote.PublicKey(pub)))
			return nil
		},
	}
}

func checkScalarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-scalar <scalar>",
		Short: "Report whether a scalar is reduced mod l",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := decode32("scalar", args[0])
			if err != nil {
				return err
			}
			printLine(cmd, engine.CheckScalar(cryptonote.EllipticCurveScalar(s)))
			return nil
		},
	}
}

func keyImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key-image <public> <secret>",
		Short: "Print secret*Hp(public)",
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
			img, err := engine.GenerateKeyImage(cryptonote.PublicKey(pub), cryptonote.SecretKey(sec))
			if err != nil {
				return err
			}
			printLine(cmd, img)
			return nil
		},
	}
}
