package handler

import (
	"context"
	"net/http"

	"paygate/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Challenge(ctx context.Context, address string) (core.Challenge, error)
	Login(ctx context.Context, address, nonce, signature string) (string, error)
	Authenticate(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name UsageService . UsageService
type UsageService interface {
	CheckUsage(ctx context.Context, address string) (core.UsageDecision, error)
	Consume(ctx context.Context, address string) (core.ConsumeResult, error)
	Balance(ctx context.Context, address string) (core.Balance, error)
}

//counterfeiter:generate -o fake -fake-name PaymentService . PaymentService
type PaymentService interface {
	SubmitPayment(ctx context.Context, address, txHash, network string) (core.PaymentResult, error)
	History(ctx context.Context, address string) ([]core.PaymentRecord, error)
}

//counterfeiter:generate -o fake -fake-name AdminAuthorizer . AdminAuthorizer
type AdminAuthorizer interface {
	Authorize(key string) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
