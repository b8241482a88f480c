package core

import (
	"context"
	"fmt"
	"strings"

	"paygate/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	usageSourceFree   = "free"
	usageSourcePaid   = "paid"
	usageSourceDenied = "denied"
)

// UsageGate decides whether a wallet may run a unit of gated work and charges
// for it once the work has completed.
type UsageGate struct {
	logs          *zap.SugaredLogger
	ledger        Ledger
	metrics       Recorder
	freeTierLimit int
}

func NewUsageGate(logger *zap.SugaredLogger, ledger Ledger, metrics Recorder, freeTierLimit int) *UsageGate {
	return &UsageGate{
		logs:          logger,
		ledger:        ledger,
		metrics:       metrics,
		freeTierLimit: freeTierLimit,
	}
}

// CheckUsage reports what the wallet may do right now. It does not consume anything.
func (g *UsageGate) CheckUsage(ctx context.Context, address string) (UsageDecision, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return UsageDecision{}, err
	}

	account, err := g.ledger.Account(ctx, address)
	if err != nil {
		return UsageDecision{}, fmt.Errorf("%w: read account: %w", ErrTryAgain, err)
	}
	return g.decide(account), nil
}

// Consume charges one unit to the wallet, free tier first. Callers invoke it
// only after the gated work succeeded.
func (g *UsageGate) Consume(ctx context.Context, address string) (ConsumeResult, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return ConsumeResult{}, err
	}

	result, err := g.ledger.ConsumeOneUnit(ctx, address)
	if err != nil {
		return ConsumeResult{}, fmt.Errorf("%w: consume unit: %w", ErrTryAgain, err)
	}

	if !result.Success {
		g.metrics.UsageConsumed(usageSourceDenied)
		g.logs.Infow("usage denied, no credits left", "address", address)
		return ConsumeResult{Usage: g.decide(result.Account)}, ErrInsufficientCredits
	}

	source := usageSourcePaid
	if result.UsedFree {
		source = usageSourceFree
	}
	g.metrics.UsageConsumed(source)

	return ConsumeResult{
		UsedFree: result.UsedFree,
		Usage:    g.decide(result.Account),
	}, nil
}

// Balance returns the wallet's credit state after any due free-tier reset.
func (g *UsageGate) Balance(ctx context.Context, address string) (Balance, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return Balance{}, err
	}

	account, err := g.ledger.Account(ctx, address)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: read account: %w", ErrTryAgain, err)
	}

	return Balance{
		Address:        account.Address,
		FreeUsageCount: account.FreeUsageCount,
		PaidCredits:    account.PaidCredits,
		TotalPurchased: account.TotalPurchased,
		LastFreeReset:  account.LastFreeReset,
		Usage:          g.decide(account),
	}, nil
}

func (g *UsageGate) decide(account repository.Account) UsageDecision {
	freeRemaining := max(0, g.freeTierLimit-account.FreeUsageCount)
	paidRemaining := max(0, account.PaidCredits)
	canUse := freeRemaining > 0 || paidRemaining > 0

	return UsageDecision{
		CanUse:        canUse,
		NeedsPayment:  !canUse,
		FreeRemaining: freeRemaining,
		PaidRemaining: paidRemaining,
	}
}

func normalizeAddress(address string) (string, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return address, nil
}
