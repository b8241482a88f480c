package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Dial connects to the RPC endpoint of cfg and checks that it serves the
// expected chain.
func Dial(ctx context.Context, cfg NetworkConfig) (*ethclient.Client, error) {
	if !cfg.Network.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, cfg.Network)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s rpc: %w", cfg.Network.ChainName(), err)
	}

	if err := CheckChainID(ctx, client, cfg.Network); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// CheckChainID fails when client is connected to a chain other than network.
func CheckChainID(ctx context.Context, client EthClient, network Network) error {
	id, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: chain id of %s: %w", ErrRPCUnavailable, network.ChainName(), err)
	}
	if !id.IsInt64() || id.Int64() != network.ChainID() {
		return fmt.Errorf("%s rpc serves chain %s, want %d", network.ChainName(), id, network.ChainID())
	}
	return nil
}
