package core

import "time"

// UsageDecision is derived from an account at the time it was read.
type UsageDecision struct {
	CanUse        bool `json:"canUse"`
	NeedsPayment  bool `json:"needsPayment"`
	FreeRemaining int  `json:"freeRemaining"`
	PaidRemaining int  `json:"paidRemaining"`
}

type ConsumeResult struct {
	UsedFree bool          `json:"usedFree"`
	Usage    UsageDecision `json:"usage"`
}

type PaymentResult struct {
	Success        bool   `json:"success"`
	TxHash         string `json:"txHash"`
	Network        string `json:"network"`
	Amount         string `json:"amount"`
	CreditsAdded   int    `json:"creditsAdded"`
	PaidCredits    int    `json:"paidCredits"`
	TotalPurchased int    `json:"totalPurchased"`
}

type Challenge struct {
	Message   string    `json:"message"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PaymentRecord struct {
	TxHash       string    `json:"txHash"`
	Amount       string    `json:"amount"`
	CreditsAdded int       `json:"creditsAdded"`
	Network      string    `json:"network"`
	Timestamp    time.Time `json:"timestamp"`
}

type Balance struct {
	Address        string        `json:"address"`
	FreeUsageCount int           `json:"freeUsageCount"`
	PaidCredits    int           `json:"paidCredits"`
	TotalPurchased int           `json:"totalPurchased"`
	LastFreeReset  time.Time     `json:"lastFreeReset"`
	Usage          UsageDecision `json:"usage"`
}
