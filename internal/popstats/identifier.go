package popstats

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Mode selects how a lookup input is interpreted.
type Mode string

const (
	// ModeAuto resolves inputs that decode as Bitcoin addresses and uses
	// everything else as a pubkey.
	ModeAuto Mode = "auto"
	// ModePubkey uses the input as a pubkey.
	ModePubkey Mode = "pubkey"
	// ModeAddress always resolves the input as an address first.
	ModeAddress Mode = "address"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModePubkey, ModeAddress:
		return m, nil
	default:
		return "", fmt.Errorf("unknown lookup mode %q", s)
	}
}

// NetParams returns the chain parameters for a config network name.
func NetParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3", "testnet":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown bitcoin network %q", network)
	}
}

// IsAddress reports whether input decodes as a Bitcoin address on the given
// network. Serialized public keys decode as pay-to-pubkey addresses and are
// reported as not being an address.
func IsAddress(input string, params *chaincfg.Params) bool {
	addr, err := btcutil.DecodeAddress(strings.TrimSpace(input), params)
	if err != nil {
		return false
	}
	if _, ok := addr.(*btcutil.AddressPubKey); ok {
		return false
	}
	return addr.IsForNet(params)
}
