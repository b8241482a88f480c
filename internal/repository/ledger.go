package repository

import (
	"context"
	"errors"
	"fmt"
	"paygate/internal/db"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrLostUpdate           = errors.New("account changed concurrently")
)

// Policy is the free-tier allowance applied to every account.
type Policy struct {
	FreeTierLimit int
	ResetPeriod   time.Duration
}

// Ledger keeps wallet credit balances and the payments that funded them.
// Every mutation re-reads the account row under a lock inside its own
// transaction; nothing is cached between calls.
type Ledger struct {
	db     Storage
	policy Policy
	now    func() time.Time
}

func NewLedger(db Storage, policy Policy, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		db:     db,
		policy: policy,
		now:    now,
	}
}

func (l *Ledger) Migrate() error {
	err := l.db.MigrateModels(&Account{}, &Payment{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// GetOrCreateAccount returns the account for address, creating it with a fresh
// free tier if it does not exist yet.
func (l *Ledger) GetOrCreateAccount(ctx context.Context, address string) (Account, error) {
	var account Account
	err := l.db.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		account, err = l.lockAccount(tx, address)
		return err
	})
	if err != nil {
		return Account{}, fmt.Errorf("get or create account: %w", err)
	}
	return account, nil
}

// ApplyFreeTierReset zeroes the free usage counter once the reset period has
// elapsed since the last reset. The second return value reports whether a reset happened.
func (l *Ledger) ApplyFreeTierReset(account Account) (Account, bool) {
	now := l.now().UTC()
	if now.Sub(account.LastFreeReset) < l.policy.ResetPeriod {
		return account, false
	}
	account.FreeUsageCount = 0
	account.LastFreeReset = now
	return account, true
}

// Account returns the current state of an account with any due free-tier reset
// applied and persisted.
func (l *Ledger) Account(ctx context.Context, address string) (Account, error) {
	var account Account
	err := l.db.Transaction(ctx, func(tx *gorm.DB) error {
		locked, err := l.lockAccount(tx, address)
		if err != nil {
			return err
		}

		reset, didReset := l.ApplyFreeTierReset(locked)
		if didReset {
			err = tx.Model(&Account{}).
				Where("address = ?", reset.Address).
				Updates(map[string]any{
					"free_usage":      reset.FreeUsageCount,
					"last_free_reset": reset.LastFreeReset,
				}).Error
			if err != nil {
				return fmt.Errorf("persist free tier reset: %w", err)
			}
		}

		account = reset
		return nil
	})
	if err != nil {
		return Account{}, fmt.Errorf("load account: %w", err)
	}
	return account, nil
}

// ConsumeOneUnit charges one unit of usage, preferring the free tier over paid
// credits. When neither is available the result reports Success == false and no
// state changes.
func (l *Ledger) ConsumeOneUnit(ctx context.Context, address string) (ConsumeResult, error) {
	var result ConsumeResult
	err := l.db.Transaction(ctx, func(tx *gorm.DB) error {
		locked, err := l.lockAccount(tx, address)
		if err != nil {
			return err
		}

		account, didReset := l.ApplyFreeTierReset(locked)

		query := tx.Model(&Account{}).Where("address = ?", account.Address)
		updates := map[string]any{
			"last_free_reset": account.LastFreeReset,
		}

		switch {
		case account.FreeUsageCount < l.policy.FreeTierLimit:
			if didReset {
				account.FreeUsageCount = 1
			} else {
				account.FreeUsageCount++
			}
			updates["free_usage"] = account.FreeUsageCount
			result.UsedFree = true
		case account.PaidCredits > 0:
			account.PaidCredits--
			updates["paid_credits"] = gorm.Expr("paid_credits - 1")
			query = query.Where("paid_credits > 0")
		default:
			result = ConsumeResult{Success: false, Account: account}
			return nil
		}

		res := query.Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("update account: %w", res.Error)
		}
		if res.RowsAffected != 1 {
			return ErrLostUpdate
		}

		result.Success = true
		result.Account = account
		return nil
	})
	if err != nil {
		return ConsumeResult{}, fmt.Errorf("consume unit: %w", err)
	}
	return result, nil
}

// FindPayment looks up the payment recorded for txHash.
func (l *Ledger) FindPayment(ctx context.Context, txHash string) (Payment, error) {
	var payment Payment
	err := l.db.GetOneBy(ctx, "tx_hash", normalize(txHash), &payment)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Payment{}, ErrPaymentNotFound
		}
		return Payment{}, fmt.Errorf("get payment by hash: %w", err)
	}
	return payment, nil
}

// RecordVerifiedPayment stores the payment and credits the account in a single
// transaction. A transaction hash that already has a record yields
// ErrDuplicateTransaction and leaves the ledger untouched.
func (l *Ledger) RecordVerifiedPayment(ctx context.Context, params PaymentParams) (Payment, Account, error) {
	if params.CreditsToAdd <= 0 {
		return Payment{}, Account{}, fmt.Errorf("credits to add must be positive, got %d", params.CreditsToAdd)
	}

	payment := Payment{
		TxHash:         normalize(params.TxHash),
		AccountAddress: normalize(params.Address),
		Amount:         params.Amount,
		CreditsAdded:   params.CreditsToAdd,
		Network:        params.Network,
		Verified:       true,
		Timestamp:      params.BlockTimestamp.UTC(),
	}

	var account Account
	err := l.db.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := l.lockAccount(tx, payment.AccountAddress); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&Payment{}).Where("tx_hash = ?", payment.TxHash).Count(&existing).Error; err != nil {
			return fmt.Errorf("check existing payment: %w", err)
		}
		if existing > 0 {
			return ErrDuplicateTransaction
		}

		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTransaction
			}
			return fmt.Errorf("insert payment: %w", err)
		}

		err := tx.Model(&Account{}).
			Where("address = ?", payment.AccountAddress).
			Updates(map[string]any{
				"paid_credits":    gorm.Expr("paid_credits + ?", payment.CreditsAdded),
				"total_purchased": gorm.Expr("total_purchased + ?", payment.CreditsAdded),
			}).Error
		if err != nil {
			return fmt.Errorf("credit account: %w", err)
		}

		return tx.Where("address = ?", payment.AccountAddress).First(&account).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) || errors.Is(err, db.ErrDuplicateKey) {
			return Payment{}, Account{}, ErrDuplicateTransaction
		}
		return Payment{}, Account{}, fmt.Errorf("record payment: %w", err)
	}

	return payment, account, nil
}

// Payments lists the payments credited to address, newest block first.
func (l *Ledger) Payments(ctx context.Context, address string) ([]Payment, error) {
	payments := []Payment{}
	err := l.db.GetAllBy(ctx, "account_address", normalize(address), "timestamp desc", &payments)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	return payments, nil
}

// lockAccount creates the account row if needed and reads it back under a row
// lock held until tx ends.
func (l *Ledger) lockAccount(tx *gorm.DB, address string) (Account, error) {
	address = normalize(address)
	if address == "" {
		return Account{}, errors.New("empty account address")
	}

	fresh := Account{
		Address:       address,
		LastFreeReset: l.now().UTC(),
	}
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error
	if err != nil {
		return Account{}, fmt.Errorf("create account: %w", err)
	}

	var account Account
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address).
		First(&account).Error
	if err != nil {
		return Account{}, fmt.Errorf("lock account: %w", err)
	}
	return account, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
