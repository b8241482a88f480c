package core

import (
	"errors"

	"paygate/internal/ethereum"
)

// Input errors are raised before any I/O and are never worth retrying.
var (
	ErrInvalidAddress     = errors.New("invalid wallet address")
	ErrInvalidTxHash      = errors.New("invalid transaction hash")
	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrInvalidSignature   = errors.New("signature does not match wallet")
	ErrChallengeNotFound  = errors.New("login challenge not found or expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminDisabled      = errors.New("admin access is not configured")
)

// Terminal verification errors. The same transaction will never be credited.
var (
	ErrAlreadyUsed          = errors.New("transaction already used")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrTransactionFailed    = errors.New("transaction failed on chain")
	ErrNoTransferEvent      = errors.New("no token transfer found in transaction")
	ErrSenderMismatch       = errors.New("transfer was not sent from this wallet")
	ErrReceiverMismatch     = errors.New("transfer was not sent to the payment address")
	ErrInsufficientAmount   = errors.New("amount too low")
)

// Transient errors. Submitting the same transaction again later is safe.
var (
	ErrTransactionNotFound = errors.New("transaction not found yet")
	ErrTryAgain            = errors.New("temporarily unavailable")
)

// ErrInsufficientCredits is the normal outcome for a wallet that has used up
// its free tier and holds no paid credits.
var ErrInsufficientCredits = errors.New("insufficient credits")

var terminalErrors = []error{
	ErrAlreadyUsed,
	ErrDuplicateTransaction,
	ErrTransactionFailed,
	ErrNoTransferEvent,
	ErrSenderMismatch,
	ErrReceiverMismatch,
	ErrInsufficientAmount,
}

var reasonErrors = map[ethereum.Reason]error{
	ethereum.ReasonNotFound:           ErrTransactionNotFound,
	ethereum.ReasonTransactionFailed:  ErrTransactionFailed,
	ethereum.ReasonNoTransferEvent:    ErrNoTransferEvent,
	ethereum.ReasonSenderMismatch:     ErrSenderMismatch,
	ethereum.ReasonReceiverMismatch:   ErrReceiverMismatch,
	ethereum.ReasonInsufficientAmount: ErrInsufficientAmount,
}

// IsTerminal reports whether err is a definitive rejection of a payment.
func IsTerminal(err error) bool {
	for _, target := range terminalErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsTransient reports whether err may go away if the request is repeated.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTryAgain) || errors.Is(err, ErrTransactionNotFound)
}

func reasonError(reason ethereum.Reason) error {
	if err, ok := reasonErrors[reason]; ok {
		return err
	}
	return ErrTryAgain
}
