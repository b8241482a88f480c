package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	tokenIssuer "paygate/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	challengeTTL     = 5 * time.Minute
	sessionHours     = 24
	noncePrefix      = "paygate:nonce:"
	challengeMessage = "Sign in to paygate with wallet %s.\n\nNonce: %s\nExpires: %s"
)

// WalletAuth signs wallets in with a personal_sign challenge and issues
// session tokens whose subject is the wallet address.
type WalletAuth struct {
	logs      *zap.SugaredLogger
	ledger    Ledger
	jwtIssuer JWTIssuer
	nonces    NonceStore
	now       func() time.Time
}

func NewWalletAuth(logger *zap.SugaredLogger, ledger Ledger, jwt JWTIssuer, nonces NonceStore, now func() time.Time) *WalletAuth {
	if now == nil {
		now = time.Now
	}
	return &WalletAuth{
		logs:      logger,
		ledger:    ledger,
		jwtIssuer: jwt,
		nonces:    nonces,
		now:       now,
	}
}

// Challenge creates a single use sign-in message for address. Each challenge is
// stored under its own nonce, so requesting one never invalidates another.
func (a *WalletAuth) Challenge(ctx context.Context, address string) (Challenge, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return Challenge{}, err
	}

	nonce := uuid.NewString()
	expiresAt := a.now().Add(challengeTTL).UTC()
	message := fmt.Sprintf(challengeMessage, address, nonce, expiresAt.Format(time.RFC3339))

	if err := a.nonces.Set(ctx, nonceKey(address, nonce), message, challengeTTL); err != nil {
		return Challenge{}, fmt.Errorf("%w: store challenge: %w", ErrTryAgain, err)
	}

	return Challenge{
		Message:   message,
		Nonce:     nonce,
		ExpiresAt: expiresAt,
	}, nil
}

// Login checks that signature is the wallet's personal_sign over the challenge
// issued with nonce and returns a signed session token.
func (a *WalletAuth) Login(ctx context.Context, address, nonce, signature string) (string, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(nonce); err != nil {
		return "", ErrChallengeNotFound
	}

	message, ok, err := a.nonces.Take(ctx, nonceKey(address, nonce))
	if err != nil {
		return "", fmt.Errorf("%w: load challenge: %w", ErrTryAgain, err)
	}
	if !ok {
		return "", ErrChallengeNotFound
	}

	signer, err := recoverSigner(message, signature)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if signer != common.HexToAddress(address) {
		return "", ErrInvalidSignature
	}

	if _, err := a.ledger.GetOrCreateAccount(ctx, address); err != nil {
		return "", fmt.Errorf("%w: create account: %w", ErrTryAgain, err)
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Address:    address,
		Expiration: sessionHours,
	})
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("wallet signed in", "address", address)
	return signed, nil
}

// Authenticate returns the wallet address a session token was issued to.
func (a *WalletAuth) Authenticate(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	subject, err := tokenIssuer.Subject(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	address, err := normalizeAddress(subject)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return address, nil
}

func nonceKey(address, nonce string) string {
	return noncePrefix + address + ":" + strings.ToLower(nonce)
}

func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	// wallets produce v as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// AdminGuard checks the operator key sent with admin requests against a
// bcrypt hash.
type AdminGuard struct {
	keyHash []byte
}

func NewAdminGuard(keyHash string) *AdminGuard {
	return &AdminGuard{keyHash: []byte(keyHash)}
}

func (g *AdminGuard) Authorize(key string) error {
	if len(g.keyHash) == 0 {
		return ErrAdminDisabled
	}
	if key == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(g.keyHash, []byte(key)); err != nil {
		return ErrUnauthorized
	}
	return nil
}
