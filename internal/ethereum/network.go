package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnsupportedNetwork = errors.New("unsupported network")

// Network is one of the chains payments are accepted on.
type Network int

const (
	Mainnet Network = iota + 1
	Testnet
)

var networkNames = map[Network]string{
	Mainnet: "base",
	Testnet: "base-sepolia",
}

var networkChainIDs = map[Network]int64{
	Mainnet: 8453,
	Testnet: 84532,
}

// ParseNetwork accepts a chain name ("base", "base-sepolia") or a tier name
// ("mainnet", "testnet"), case-insensitively.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base", "mainnet":
		return Mainnet, nil
	case "base-sepolia", "testnet":
		return Testnet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
}

// String returns the tier name stored alongside payments.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	}
	return fmt.Sprintf("network(%d)", int(n))
}

// ChainName returns the public chain name, e.g. "base-sepolia".
func (n Network) ChainName() string {
	return networkNames[n]
}

func (n Network) ChainID() int64 {
	return networkChainIDs[n]
}

func (n Network) Valid() bool {
	_, ok := networkNames[n]
	return ok
}

// NetworkConfig binds a network to the endpoint and token it is verified against.
type NetworkConfig struct {
	Network      Network
	RPCURL       string
	TokenAddress common.Address
}
