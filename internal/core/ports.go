package core

import (
	"context"
	"time"

	"paygate/internal/ethereum"
	"paygate/internal/repository"
	tokenIssuer "paygate/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Account(ctx context.Context, address string) (repository.Account, error)
	GetOrCreateAccount(ctx context.Context, address string) (repository.Account, error)
	ConsumeOneUnit(ctx context.Context, address string) (repository.ConsumeResult, error)
	FindPayment(ctx context.Context, txHash string) (repository.Payment, error)
	RecordVerifiedPayment(ctx context.Context, params repository.PaymentParams) (repository.Payment, repository.Account, error)
	Payments(ctx context.Context, address string) ([]repository.Payment, error)
}

//counterfeiter:generate -o fake -fake-name Verifier . Verifier
type Verifier interface {
	Verify(ctx context.Context, txHash string, network ethereum.Network, expectedSender string) (ethereum.VerificationResult, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name NonceStore . NonceStore
type NonceStore interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Take(ctx context.Context, key string) (string, bool, error)
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	PaymentOutcome(network string, outcome string)
	UsageConsumed(source string)
}
