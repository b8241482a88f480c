package ethereum

import (
	"time"

	"github.com/holiman/uint256"
)

// Reason classifies why a transaction did not verify.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonNotFound           Reason = "not_found"
	ReasonTransactionFailed  Reason = "transaction_failed"
	ReasonNoTransferEvent    Reason = "no_transfer_event"
	ReasonSenderMismatch     Reason = "sender_mismatch"
	ReasonReceiverMismatch   Reason = "receiver_mismatch"
	ReasonInsufficientAmount Reason = "insufficient_amount"
)

// Terminal reports whether retrying the same transaction can never change the outcome.
func (r Reason) Terminal() bool {
	return r != ReasonNone && r != ReasonNotFound
}

// Transfer is a decoded token Transfer event together with its block data.
type Transfer struct {
	TxHash         string       `json:"txHash"`
	From           string       `json:"from"`
	To             string       `json:"to"`
	Amount         *uint256.Int `json:"amount"`
	BlockNumber    uint64       `json:"blockNumber"`
	BlockTimestamp time.Time    `json:"blockTimestamp"`
}

// VerificationResult is the outcome of checking one transaction. Expected
// rejections are reported here rather than as errors.
type VerificationResult struct {
	Valid    bool     `json:"valid"`
	Reason   Reason   `json:"reason,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Transfer Transfer `json:"transfer"`
}

func rejected(reason Reason, detail string) VerificationResult {
	return VerificationResult{
		Valid:  false,
		Reason: reason,
		Detail: detail,
	}
}
