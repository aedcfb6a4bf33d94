package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
	"github.com/athanorlabs/go-cryptonote/ed25519"
	"github.com/athanorlabs/go-cryptonote/kyber"
)

var (
	backend string
	seedHex string
	engine  *cryptonote.Engine
)

// backends are selectable by their Name with --backend.
var backends = []cryptonote.Curve{
	ed25519.NewCurve(),
	kyber.NewCurve(),
}

func findBackend(name string) (cryptonote.Curve, error) {
	names := make([]string, 0, len(backends))
	for _, c := range backends {
		if c.Name() == name {
			return c, nil
		}
		names = append(names, c.Name())
	}
	return nil, fmt.Errorf("unknown backend %q (want one of %s)", name, strings.Join(names, ", "))
}

func newEngine(backend, seedHex string) (*cryptonote.Engine, error) {
	curve, err := findBackend(backend)
	if err != nil {
		return nil, err
	}
	opts := []cryptonote.Option{cryptonote.WithCurve(curve)}

	if seedHex != "" {
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --seed: %w", err)
		}
		opts = append(opts, cryptonote.WithRandom(cryptonote.NewDeterministicReader(seed)))
	}

	return cryptonote.NewEngine(opts...), nil
}

// NewRootCmd builds the command tree. Flags are rebound on every call.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cryptonote",
		Short:        "CryptoNote elliptic-curve primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			engine, err = newEngine(backend, seedHex)
			return err
		},
	}

	root.PersistentFlags().StringVar(&backend, "backend", "ed25519", "group backend: ed25519 or kyber")
	root.PersistentFlags().StringVar(&seedHex, "seed", "", "hex seed for deterministic randomness (testing only)")

	root.AddCommand(
		backendCmd(),
		keygenCmd(),
		pubkeyCmd(),
		checkKeyCmd(),
		checkScalarCmd(),
		keyImageCmd(),
		hashToScalarCmd(),
		hashToPointCmd(),
		fastHashCmd(),
		derivationCmd(),
		derivationToScalarCmd(),
		derivePublicCmd(),
		deriveSecretCmd(),
		underiveCmd(),
		signCmd(),
		verifyCmd(),
		ringSignCmd(),
		ringVerifyCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func backendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Print the selected group backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, engine.Curve().Name())
			return nil
		},
	}
}
