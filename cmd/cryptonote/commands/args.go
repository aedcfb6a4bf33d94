package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-cryptonote"
)

func decodeHex(name, arg string) ([]byte, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func decode32(name, arg string) ([cryptonote.KeySize]byte, error) {
	var out [cryptonote.KeySize]byte
	b, err := decodeHex(name, arg)
	if err != nil {
		return out, err
	}
	if len(b) != cryptonote.KeySize {
		return out, fmt.Errorf("%s: %w: want %d bytes, got %d", name, cryptonote.ErrWrongLength, cryptonote.KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

func parseIndex(arg string) (uint64, error) {
	idx, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("output index: %w", err)
	}
	return idx, nil
}

func parseRing(arg string) ([]cryptonote.PublicKey, error) {
	if arg == "" {
		return nil, fmt.Errorf("%w: empty ring", cryptonote.ErrRingSize)
	}

	members := strings.Split(arg, ",")
	pubs := make([]cryptonote.PublicKey, len(members))
	for i, m := range members {
		b, err := decode32(fmt.Sprintf("ring member %d", i), strings.TrimSpace(m))
		if err != nil {
			return nil, err
		}
		pubs[i] = cryptonote.PublicKey(b)
	}
	return pubs, nil
}

func printLine(cmd *cobra.Command, v ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), v...)
}
