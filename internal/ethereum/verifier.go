package ethereum

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

var (
	ErrRPCUnavailable = errors.New("chain rpc unavailable")
	ErrInvalidTxHash  = errors.New("invalid transaction hash")
	ErrInvalidSender  = errors.New("invalid sender address")
)

const defaultRPCTimeout = 10 * time.Second

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// TransferEventTopic is keccak256("Transfer(address,address,uint256)").
var TransferEventTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// ValidTxHash reports whether s is a 0x-prefixed 32 byte hex hash.
func ValidTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

type Endpoint struct {
	Config NetworkConfig
	Client EthClient
}

type Settings struct {
	Receiver  common.Address
	MinAmount *uint256.Int
	// Timeout bounds the RPC calls of one verification independently of the caller's deadline.
	Timeout time.Duration
}

type endpoint struct {
	client EthClient
	token  common.Address
}

// Verifier checks that a transaction is a successful token transfer of at least
// the configured amount from the claimed sender to the configured receiver.
type Verifier struct {
	endpoints map[Network]endpoint
	receiver  common.Address
	minAmount *uint256.Int
	timeout   time.Duration
}

func NewVerifier(endpoints []Endpoint, settings Settings) *Verifier {
	eps := make(map[Network]endpoint, len(endpoints))
	for _, ep := range endpoints {
		eps[ep.Config.Network] = endpoint{
			client: ep.Client,
			token:  ep.Config.TokenAddress,
		}
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultRPCTimeout
	}

	minAmount := new(uint256.Int)
	if settings.MinAmount != nil {
		minAmount.Set(settings.MinAmount)
	}

	return &Verifier{
		endpoints: eps,
		receiver:  settings.Receiver,
		minAmount: minAmount,
		timeout:   timeout,
	}
}

// Verify fetches the receipt of txHash on network and validates it. Expected
// rejections come back as a VerificationResult with Valid == false. A returned
// error means the input was malformed or the chain could not be reached; the
// latter wraps ErrRPCUnavailable and may be retried.
func (v *Verifier) Verify(ctx context.Context, txHash string, network Network, expectedSender string) (VerificationResult, error) {
	if !ValidTxHash(txHash) {
		return VerificationResult{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, txHash)
	}
	if !common.IsHexAddress(expectedSender) {
		return VerificationResult{}, fmt.Errorf("%w: %q", ErrInvalidSender, expectedSender)
	}
	ep, ok := v.endpoints[network]
	if !ok {
		return VerificationResult{}, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, network)
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	hash := common.HexToHash(txHash)
	receipt, err := ep.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return rejected(ReasonNotFound, "transaction not found"), nil
		}
		return VerificationResult{}, fmt.Errorf("%w: fetch receipt %s: %w", ErrRPCUnavailable, hash.Hex(), err)
	}
	if receipt == nil {
		return rejected(ReasonNotFound, "transaction not found"), nil
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return rejected(ReasonTransactionFailed, "transaction reverted"), nil
	}

	sender := common.HexToAddress(expectedSender)
	transfer, ok := v.findTransfer(receipt.Logs, ep.token, sender)
	if !ok {
		return rejected(ReasonNoTransferEvent, "no token transfer in transaction"), nil
	}

	if transfer.From != sender {
		return rejected(ReasonSenderMismatch, "transfer was not sent by this wallet"), nil
	}
	if transfer.To != v.receiver {
		return rejected(ReasonReceiverMismatch, "transfer was not sent to the payment address"), nil
	}
	if transfer.Value.Lt(v.minAmount) {
		return rejected(ReasonInsufficientAmount, "amount too low"), nil
	}

	if receipt.BlockNumber == nil {
		return VerificationResult{}, fmt.Errorf("%w: receipt %s has no block number", ErrRPCUnavailable, hash.Hex())
	}
	header, err := ep.client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("%w: fetch block %s: %w", ErrRPCUnavailable, receipt.BlockNumber, err)
	}

	return VerificationResult{
		Valid: true,
		Transfer: Transfer{
			TxHash:         hash.Hex(),
			From:           transfer.From.Hex(),
			To:             transfer.To.Hex(),
			Amount:         transfer.Value,
			BlockNumber:    receipt.BlockNumber.Uint64(),
			BlockTimestamp: time.Unix(int64(header.Time), 0).UTC(),
		},
	}, nil
}

type transferLog struct {
	From  common.Address
	To    common.Address
	Value *uint256.Int
}

// findTransfer decodes the Transfer events emitted by token and picks the one
// closest to the expected payment: sender and receiver both matching (at or
// above the minimum first), then receiver only, then sender only, then the
// first transfer so the caller can report what did not match.
func (v *Verifier) findTransfer(logs []*types.Log, token, sender common.Address) (transferLog, bool) {
	var (
		best     transferLog
		bestRank = -1
	)
	for _, log := range logs {
		if log == nil || log.Address != token {
			continue
		}
		transfer, ok := decodeTransfer(log)
		if !ok {
			continue
		}
		if rank := v.rankTransfer(transfer, sender); rank > bestRank {
			best, bestRank = transfer, rank
		}
	}
	return best, bestRank >= 0
}

func (v *Verifier) rankTransfer(t transferLog, sender common.Address) int {
	switch {
	case t.From == sender && t.To == v.receiver && !t.Value.Lt(v.minAmount):
		return 4
	case t.From == sender && t.To == v.receiver:
		return 3
	case t.To == v.receiver:
		return 2
	case t.From == sender:
		return 1
	}
	return 0
}

// decodeTransfer reads an ERC-20 Transfer log: from and to are the indexed
// topics (addresses left-padded to 32 bytes), value is the 32 byte data word.
func decodeTransfer(log *types.Log) (transferLog, bool) {
	if len(log.Topics) != 3 || log.Topics[0] != TransferEventTopic {
		return transferLog{}, false
	}
	if len(log.Data) != 32 {
		return transferLog{}, false
	}

	return transferLog{
		From:  common.BytesToAddress(log.Topics[1].Bytes()[12:]),
		To:    common.BytesToAddress(log.Topics[2].Bytes()[12:]),
		Value: new(uint256.Int).SetBytes32(log.Data),
	}, true
}
