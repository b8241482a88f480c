package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paygate/internal/ethereum"
	"paygate/internal/repository"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	outcomeCredited  = "credited"
	outcomeAlreadyIn = "already_used"
	outcomeDuplicate = "duplicate"
	outcomeInvalid   = "invalid_input"
	outcomeError     = "error"
)

var errNotMinedYet = errors.New("receipt not available yet")

// RetryPolicy bounds how often an unreachable RPC or a missing receipt is
// asked again within one submission.
type RetryPolicy struct {
	MaxRetries      uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type PaymentSettings struct {
	CreditsPerPayment int
	Retry             RetryPolicy
}

// PaymentOrchestrator turns a submitted transaction hash into credits, at most
// once per hash.
type PaymentOrchestrator struct {
	logs     *zap.SugaredLogger
	ledger   Ledger
	verifier Verifier
	metrics  Recorder
	settings PaymentSettings
}

func NewPaymentOrchestrator(logger *zap.SugaredLogger, ledger Ledger, verifier Verifier, metrics Recorder, settings PaymentSettings) *PaymentOrchestrator {
	return &PaymentOrchestrator{
		logs:     logger,
		ledger:   ledger,
		verifier: verifier,
		metrics:  metrics,
		settings: settings,
	}
}

// SubmitPayment verifies txHash on network as a payment from address and
// credits the account. A hash that was already credited yields ErrAlreadyUsed
// (or ErrDuplicateTransaction when two submissions race).
func (o *PaymentOrchestrator) SubmitPayment(ctx context.Context, address, txHash, networkName string) (PaymentResult, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		o.metrics.PaymentOutcome(networkName, outcomeInvalid)
		return PaymentResult{}, err
	}
	txHash = strings.ToLower(strings.TrimSpace(txHash))
	if !ethereum.ValidTxHash(txHash) {
		o.metrics.PaymentOutcome(networkName, outcomeInvalid)
		return PaymentResult{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, txHash)
	}
	network, err := ethereum.ParseNetwork(networkName)
	if err != nil {
		o.metrics.PaymentOutcome(networkName, outcomeInvalid)
		return PaymentResult{}, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, networkName)
	}

	_, err = o.ledger.FindPayment(ctx, txHash)
	switch {
	case err == nil:
		o.metrics.PaymentOutcome(network.String(), outcomeAlreadyIn)
		o.logs.Infow("payment already recorded", "tx_hash", txHash, "address", address)
		return PaymentResult{}, ErrAlreadyUsed
	case !errors.Is(err, repository.ErrPaymentNotFound):
		o.metrics.PaymentOutcome(network.String(), outcomeError)
		return PaymentResult{}, fmt.Errorf("%w: find payment: %w", ErrTryAgain, err)
	}

	result, err := o.verify(ctx, txHash, network, address)
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, ErrTransactionNotFound) {
			outcome = string(ethereum.ReasonNotFound)
		}
		o.metrics.PaymentOutcome(network.String(), outcome)
		o.logs.Errorw("payment verification failed",
			"tx_hash", txHash,
			"network", network.String(),
			"error", err)
		return PaymentResult{}, err
	}
	if !result.Valid {
		o.metrics.PaymentOutcome(network.String(), string(result.Reason))
		o.logs.Infow("payment rejected",
			"tx_hash", txHash,
			"network", network.String(),
			"address", address,
			"reason", result.Reason)
		return PaymentResult{}, reasonError(result.Reason)
	}

	payment, account, err := o.ledger.RecordVerifiedPayment(ctx, repository.PaymentParams{
		Address:        address,
		TxHash:         txHash,
		Amount:         result.Transfer.Amount.Dec(),
		CreditsToAdd:   o.settings.CreditsPerPayment,
		Network:        network.String(),
		BlockTimestamp: result.Transfer.BlockTimestamp,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			o.metrics.PaymentOutcome(network.String(), outcomeDuplicate)
			return PaymentResult{}, ErrDuplicateTransaction
		}
		o.metrics.PaymentOutcome(network.String(), outcomeError)
		return PaymentResult{}, fmt.Errorf("%w: record payment: %w", ErrTryAgain, err)
	}

	o.metrics.PaymentOutcome(network.String(), outcomeCredited)
	o.logs.Infow("payment credited",
		"tx_hash", payment.TxHash,
		"network", payment.Network,
		"address", account.Address,
		"credits_added", payment.CreditsAdded,
		"paid_credits", account.PaidCredits)

	return PaymentResult{
		Success:        true,
		TxHash:         payment.TxHash,
		Network:        payment.Network,
		Amount:         payment.Amount,
		CreditsAdded:   payment.CreditsAdded,
		PaidCredits:    account.PaidCredits,
		TotalPurchased: account.TotalPurchased,
	}, nil
}

// History lists the payments credited to address, newest first.
func (o *PaymentOrchestrator) History(ctx context.Context, address string) ([]PaymentRecord, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return nil, err
	}

	payments, err := o.ledger.Payments(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: list payments: %w", ErrTryAgain, err)
	}

	records := make([]PaymentRecord, len(payments))
	for i, p := range payments {
		records[i] = PaymentRecord{
			TxHash:       p.TxHash,
			Amount:       p.Amount,
			CreditsAdded: p.CreditsAdded,
			Network:      p.Network,
			Timestamp:    p.Timestamp,
		}
	}
	return records, nil
}

// verify asks the chain, retrying while the RPC is unreachable or the receipt
// is not there yet. Terminal outcomes end the loop at once.
func (o *PaymentOrchestrator) verify(ctx context.Context, txHash string, network ethereum.Network, address string) (ethereum.VerificationResult, error) {
	operation := func() (ethereum.VerificationResult, error) {
		result, err := o.verifier.Verify(ctx, txHash, network, address)
		if err != nil {
			if errors.Is(err, ethereum.ErrRPCUnavailable) {
				o.logs.Warnw("chain rpc unavailable, retrying", "tx_hash", txHash, "error", err)
				return result, err
			}
			return result, backoff.Permanent(err)
		}
		if result.Reason == ethereum.ReasonNotFound {
			return result, errNotMinedYet
		}
		return result, nil
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(o.backOff()),
		backoff.WithMaxTries(o.settings.Retry.MaxRetries+1),
	)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, errNotMinedYet):
		return result, ErrTransactionNotFound
	case errors.Is(err, ethereum.ErrInvalidTxHash):
		return result, fmt.Errorf("%w: %w", ErrInvalidTxHash, err)
	case errors.Is(err, ethereum.ErrInvalidSender):
		return result, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	case errors.Is(err, ethereum.ErrUnsupportedNetwork):
		return result, fmt.Errorf("%w: %w", ErrUnsupportedNetwork, err)
	}
	return result, fmt.Errorf("%w: verify transaction: %w", ErrTryAgain, err)
}

func (o *PaymentOrchestrator) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if o.settings.Retry.InitialInterval > 0 {
		b.InitialInterval = o.settings.Retry.InitialInterval
	}
	if o.settings.Retry.MaxInterval > 0 {
		b.MaxInterval = o.settings.Retry.MaxInterval
	}
	return b
}
