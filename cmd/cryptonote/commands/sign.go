package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <prefix-hash> <public> <secret>",
		Short: "Schnorr-sign a 32-byte prefix hash",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := decode32("prefix", args[0])
			if err != nil {
				return err
			}
			pub, err := decode32("public", args[1])
			if err != nil {
				return err
			}
			sec, err := decode32("secret", args[2])
			if err != nil {
				return err
			}
			sig, err := engine.GenerateSignature(cryptonote.Hash(prefix), cryptonote.PublicKey(pub), cryptonote.SecretKey(sec))
			if err != nil {
				return err
			}
			printLine(cmd, hex.EncodeToString(sig[:]))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <prefix-hash> <public> <signature>",
		Short: "Check a Schnorr signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := decode32("prefix", args[0])
			if err != nil {
				return err
			}
			pub, err := decode32("public", args[1])
			if err != nil {
				return err
			}
			raw, err := decodeHex("signature", args[2])
			if err != nil {
				return err
			}
			sig, err := cryptonote.ParseSignature(raw)
			if err != nil {
				return err
			}
			printLine(cmd, engine.CheckSignature(cryptonote.Hash(prefix), cryptonote.PublicKey(pub), sig))
			return nil
		},
	}
}
