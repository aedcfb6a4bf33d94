package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

var (
	ringPrefix string
	ringImage  string
	ringKeys   string
	ringSecret string
	ringIndex  int
)

func ringFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ringPrefix, "prefix", "", "32-byte prefix hash")
	cmd.Flags().StringVar(&ringImage, "image", "", "key image of the signer")
	cmd.Flags().StringVar(&ringKeys, "ring", "", "comma-separated ring member public keys, in order")
	_ = cmd.MarkFlagRequired("prefix")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("ring")
}

func parseRingFlags() (cryptonote.Hash, cryptonote.KeyImage, []cryptonote.PublicKey, error) {
	prefix, err := decode32("prefix", ringPrefix)
	if err != nil {
		return cryptonote.Hash{}, cryptonote.KeyImage{}, nil, err
	}
	image, err := decode32("image", ringImage)
	if err != nil {
		return cryptonote.Hash{}, cryptonote.KeyImage{}, nil, err
	}
	pubs, err := parseRing(ringKeys)
	if err != nil {
		return cryptonote.Hash{}, cryptonote.KeyImage{}, nil, err
	}
	return cryptonote.Hash(prefix), cryptonote.KeyImage(image), pubs, nil
}

func ringSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring-sign",
		Short: "Produce a linkable ring signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, image, pubs, err := parseRingFlags()
			if err != nil {
				return err
			}
			sec, err := decode32("secret", ringSecret)
			if err != nil {
				return err
			}
			sig, err := engine.GenerateRingSignature(prefix, image, pubs, cryptonote.SecretKey(sec), ringIndex)
			if err != nil {
				return err
			}
			printLine(cmd, hex.EncodeToString(sig.Bytes()))
			return nil
		},
	}
	ringFlags(cmd)
	cmd.Flags().StringVar(&ringSecret, "secret", "", "secret key of the signer")
	cmd.Flags().IntVar(&ringIndex, "index", 0, "position of the signer in --ring")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func ringVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring-verify <signature>",
		Short: "Check a linkable ring signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, image, pubs, err := parseRingFlags()
			if err != nil {
				return err
			}
			raw, err := decodeHex("signature", args[0])
			if err != nil {
				return err
			}
			sig, err := cryptonote.ParseRingSignature(raw, len(pubs))
			if err != nil {
				return err
			}
			printLine(cmd, engine.CheckRingSignature(prefix, image, pubs, sig))
			return nil
		},
	}
	ringFlags(cmd)
	return cmd
}
