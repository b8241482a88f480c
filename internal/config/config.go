package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"paygate/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidValue error = errors.New("invalid environment variable value")

const (
	apiPortEnvKey          = "API_PORT"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	receiverEnvKey         = "PAYMENT_RECEIVER_ADDRESS"
	freeTierLimitEnvKey    = "FREE_TIER_LIMIT"
	freeTierResetEnvKey    = "FREE_TIER_RESET_DAYS"
	paymentPriceEnvKey     = "PAYMENT_PRICE"
	tokenDecimalsEnvKey    = "TOKEN_DECIMALS"
	creditsPerPayEnvKey    = "CREDITS_PER_PAYMENT"
	rpcTimeoutEnvKey       = "RPC_TIMEOUT"
	mainnetRPCEnvKey       = "MAINNET_RPC_URL"
	mainnetTokenEnvKey     = "MAINNET_TOKEN_ADDRESS"
	testnetRPCEnvKey       = "TESTNET_RPC_URL"
	testnetTokenEnvKey     = "TESTNET_TOKEN_ADDRESS"
	redisURLEnvKey         = "REDIS_URL"
	verifyCacheTTLEnvKey   = "VERIFICATION_CACHE_TTL"
	adminKeyHashEnvKey     = "ADMIN_KEY_HASH"
	paymentRateLimitEnvKey = "PAYMENT_RATE_LIMIT"
	trustedProxiesEnvKey   = "TRUSTED_PROXIES"
)

const (
	defaultFreeTierLimit     = 5
	defaultFreeTierResetDays = 30
	defaultPaymentPrice      = "0.01"
	defaultTokenDecimals     = 6
	defaultCreditsPerPayment = 5
	defaultRPCTimeout        = 10 * time.Second
	defaultVerifyCacheTTL    = 10 * time.Minute
	defaultPaymentRateLimit  = 30

	defaultMainnetRPC   = "https://mainnet.base.org"
	defaultMainnetToken = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	defaultTestnetRPC   = "https://sepolia.base.org"
	defaultTestnetToken = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"
)

type Network struct {
	RPCURL       string
	TokenAddress string
}

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string

	ReceiverAddress   string
	FreeTierLimit     int
	FreeTierResetDays int
	PaymentPrice      string
	TokenDecimals     uint8
	// MinPaymentAmount is PaymentPrice in the token's smallest unit, never zero.
	MinPaymentAmount  *uint256.Int
	CreditsPerPayment int
	RPCTimeout        time.Duration

	Mainnet Network
	Testnet Network

	RedisURL             string
	VerificationCacheTTL time.Duration
	AdminKeyHash         string
	PaymentRateLimit     int
	// TrustedProxies are the peers whose X-Forwarded-For / X-Real-IP headers
	// identify the client. Empty means the connection address is used.
	TrustedProxies       []*net.IPNet
}

// NewApp reads the application configuration from the environment. A .env file
// in the working directory, if present, is loaded first without overriding
// variables that are already set.
func NewApp() (App, error) {
	_ = godotenv.Load()

	var app App
	var err error

	if app.Port, err = required(apiPortEnvKey); err != nil {
		return App{}, err
	}
	if app.DBConnectionURL, err = required(dbConnEnvKey); err != nil {
		return App{}, err
	}
	if app.JWTSecret, err = required(jwtSecretEnvKey); err != nil {
		return App{}, err
	}
	if app.ReceiverAddress, err = required(receiverEnvKey); err != nil {
		return App{}, err
	}
	if !common.IsHexAddress(app.ReceiverAddress) {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, receiverEnvKey)
	}

	if app.FreeTierLimit, err = positiveInt(freeTierLimitEnvKey, defaultFreeTierLimit); err != nil {
		return App{}, err
	}
	if app.FreeTierResetDays, err = positiveInt(freeTierResetEnvKey, defaultFreeTierResetDays); err != nil {
		return App{}, err
	}
	if app.CreditsPerPayment, err = positiveInt(creditsPerPayEnvKey, defaultCreditsPerPayment); err != nil {
		return App{}, err
	}
	if app.PaymentRateLimit, err = positiveInt(paymentRateLimitEnvKey, defaultPaymentRateLimit); err != nil {
		return App{}, err
	}

	decimals, err := intInRange(tokenDecimalsEnvKey, defaultTokenDecimals, 0, 77)
	if err != nil {
		return App{}, err
	}
	app.TokenDecimals = uint8(decimals)
	app.PaymentPrice = optional(paymentPriceEnvKey, defaultPaymentPrice)
	if app.MinPaymentAmount, err = units.ParseUnits(app.PaymentPrice, app.TokenDecimals); err != nil {
		return App{}, fmt.Errorf("%w: %s=%q: %w", errInvalidValue, paymentPriceEnvKey, app.PaymentPrice, err)
	}
	if app.MinPaymentAmount.IsZero() {
		return App{}, fmt.Errorf("%w: %s must be greater than zero", errInvalidValue, paymentPriceEnvKey)
	}

	if app.RPCTimeout, err = duration(rpcTimeoutEnvKey, defaultRPCTimeout); err != nil {
		return App{}, err
	}
	if app.VerificationCacheTTL, err = duration(verifyCacheTTLEnvKey, defaultVerifyCacheTTL); err != nil {
		return App{}, err
	}

	app.Mainnet = Network{
		RPCURL:       optional(mainnetRPCEnvKey, defaultMainnetRPC),
		TokenAddress: optional(mainnetTokenEnvKey, defaultMainnetToken),
	}
	app.Testnet = Network{
		RPCURL:       optional(testnetRPCEnvKey, defaultTestnetRPC),
		TokenAddress: optional(testnetTokenEnvKey, defaultTestnetToken),
	}
	if !common.IsHexAddress(app.Mainnet.TokenAddress) {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, mainnetTokenEnvKey)
	}
	if !common.IsHexAddress(app.Testnet.TokenAddress) {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, testnetTokenEnvKey)
	}

	app.RedisURL = optional(redisURLEnvKey, "")
	app.AdminKeyHash = optional(adminKeyHashEnvKey, "")
	if app.TrustedProxies, err = networks(trustedProxiesEnvKey); err != nil {
		return App{}, err
	}

	return app, nil
}

func required(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return strings.TrimSpace(val), nil
}

func optional(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}

func positiveInt(key string, def int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, val)
	}
	return n, nil
}

func intInRange(key string, def, min, max int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, val)
	}
	return n, nil
}

// networks parses a comma separated list of CIDRs or bare IPs.
func networks(key string) ([]*net.IPNet, error) {
	val := optional(key, "")
	if val == "" {
		return nil, nil
	}

	var nets []*net.IPNet
	for _, item := range strings.Split(val, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !strings.Contains(item, "/") {
			ip := net.ParseIP(item)
			if ip == nil {
				return nil, fmt.Errorf("%w: %s=%q", errInvalidValue, key, item)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", errInvalidValue, key, item)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

func duration(key string, def time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(val))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, val)
	}
	return d, nil
}
