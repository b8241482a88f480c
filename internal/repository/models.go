package repository

import "time"

// Account is the credit state of one wallet. Address is always lower-cased.
type Account struct {
	Address        string    `gorm:"primaryKey;size:42"`
	FreeUsageCount int       `gorm:"column:free_usage;not null;default:0"`
	PaidCredits    int       `gorm:"not null;default:0"`
	LastFreeReset  time.Time `gorm:"not null"`
	TotalPurchased int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Payment is an on-chain transfer that has been verified and credited. TxHash is
// the primary key, so the database itself refuses a second record for the same hash.
type Payment struct {
	TxHash         string `gorm:"primaryKey;size:66"`
	AccountAddress string `gorm:"size:42;not null;index"`
	// Amount is the transferred value in the token's smallest unit, as a decimal string.
	Amount       string `gorm:"size:80;not null"`
	CreditsAdded int    `gorm:"not null"`
	// Network is "mainnet" or "testnet".
	Network  string `gorm:"size:16;not null"`
	Verified bool   `gorm:"not null;default:true"`
	// Timestamp is the time of the block the transfer was included in.
	Timestamp time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// PaymentParams describes a verified transfer to be credited.
type PaymentParams struct {
	Address        string
	TxHash         string
	Amount         string
	CreditsToAdd   int
	Network        string
	BlockTimestamp time.Time
}

// ConsumeResult reports the outcome of consuming one unit of usage.
type ConsumeResult struct {
	Success  bool
	UsedFree bool
	Account  Account
}
