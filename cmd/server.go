package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paygate/internal/cache"
	"paygate/internal/config"
	"paygate/internal/core"
	"paygate/internal/db"
	"paygate/internal/ethereum"
	"paygate/internal/http/handler"
	"paygate/internal/http/handler/middleware"
	"paygate/internal/http/payload"
	"paygate/internal/http/server"
	"paygate/internal/metrics"
	"paygate/internal/repository"
	"paygate/pkg/jwt"
	"paygate/pkg/log"
	"paygate/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	dialTimeout       = 15 * time.Second
	verifyRetries     = 3
	verifyRetryPeriod = 500 * time.Millisecond
	verifyRetryCap    = 4 * time.Second
)

type store interface {
	ethereum.ResultCache
	core.NonceStore
}

func Start() error {
	logger := log.NewZapLogger("paygate", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.Open(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), dialTimeout)
	err = dbConn.Ping(pingCtx)
	cancelPing()
	if err != nil {
		logger.Errorw("database is not reachable", "error", err)
		return err
	}

	// repository
	ledger := repository.NewLedger(dbConn, repository.Policy{
		FreeTierLimit: config.FreeTierLimit,
		ResetPeriod:   time.Duration(config.FreeTierResetDays) * 24 * time.Hour,
	}, time.Now)

	if err := ledger.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	kv, err := newStore(ctx, logger, config.RedisURL)
	if err != nil {
		logger.Errorw("redis connection failed", "error", err)
		return err
	}

	endpoints, err := dialNetworks(ctx, logger, []ethereum.NetworkConfig{
		{
			Network:      ethereum.Mainnet,
			RPCURL:       config.Mainnet.RPCURL,
			TokenAddress: common.HexToAddress(config.Mainnet.TokenAddress),
		},
		{
			Network:      ethereum.Testnet,
			RPCURL:       config.Testnet.RPCURL,
			TokenAddress: common.HexToAddress(config.Testnet.TokenAddress),
		},
	})
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}

	logger.Infow("payment terms",
		"price", units.FormatUnits(config.MinPaymentAmount, config.TokenDecimals),
		"min_amount", config.MinPaymentAmount.Dec(),
		"credits_per_payment", config.CreditsPerPayment,
		"receiver", config.ReceiverAddress)

	// verifier
	verifier := ethereum.NewCachedVerifier(
		ethereum.NewVerifier(endpoints, ethereum.Settings{
			Receiver:  common.HexToAddress(config.ReceiverAddress),
			MinAmount: config.MinPaymentAmount,
			Timeout:   config.RPCTimeout,
		}),
		kv,
		config.VerificationCacheTTL,
		logger)

	stats := metrics.New()

	// core
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret), "paygate")
	usage := core.NewUsageGate(logger, ledger, stats, config.FreeTierLimit)
	payments := core.NewPaymentOrchestrator(logger, ledger, verifier, stats, core.PaymentSettings{
		CreditsPerPayment: config.CreditsPerPayment,
		Retry: core.RetryPolicy{
			MaxRetries:      verifyRetries,
			InitialInterval: verifyRetryPeriod,
			MaxInterval:     verifyRetryCap,
		},
	})
	auth := core.NewWalletAuth(logger, ledger, jwtService, kv, time.Now)
	admin := core.NewAdminGuard(config.AdminKeyHash)

	// handler
	paygateHlr := handler.NewPaygateHandler(
		logger,
		payload.DecodeValidator{},
		auth,
		usage,
		payments,
		admin)

	checks := map[string]handler.Pinger{"database": dbConn}
	if redisStore, ok := kv.(*cache.RedisStore); ok {
		checks["redis"] = redisStore
	}
	healthHlr := handler.NewHealthHandler(logger, checks)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	observe := middleware.NewMetricsMiddleware(stats).Metrics
	limiter := middleware.NewRateLimiter(logger, config.PaymentRateLimit, config.TrustedProxies, time.Now)
	authLimiter := middleware.NewRateLimiter(logger, config.PaymentRateLimit, config.TrustedProxies, time.Now)

	// register routes
	mux.Handle(handler.Challenge, observe(handler.Challenge, authLimiter.Limit(http.HandlerFunc(paygateHlr.HandleChallenge))))
	mux.Handle(handler.Login, observe(handler.Login, http.HandlerFunc(paygateHlr.HandleLogin)))
	mux.Handle(handler.GetUsage, observe(handler.GetUsage, http.HandlerFunc(paygateHlr.HandleGetUsage)))
	mux.Handle(handler.GetAccount, observe(handler.GetAccount, http.HandlerFunc(paygateHlr.HandleGetAccount)))
	mux.Handle(handler.ConsumeUsage, observe(handler.ConsumeUsage, http.HandlerFunc(paygateHlr.HandleConsumeUsage)))
	mux.Handle(handler.SubmitPayment, observe(handler.SubmitPayment, limiter.Limit(http.HandlerFunc(paygateHlr.HandleSubmitPayment))))
	mux.Handle(handler.GetPayments, observe(handler.GetPayments, http.HandlerFunc(paygateHlr.HandleGetPayments)))
	mux.Handle(handler.AdminPayments, observe(handler.AdminPayments, http.HandlerFunc(paygateHlr.HandleAdminPayments)))
	mux.HandleFunc(handler.Health, healthHlr.HandleHealth)
	mux.Handle("GET /metrics", stats.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// newStore picks Redis when a URL is configured and falls back to an
// in-process store for single instance deployments.
func newStore(ctx context.Context, logger *zap.SugaredLogger, redisURL string) (store, error) {
	if redisURL == "" {
		logger.Warnw("REDIS_URL not set, nonces and verification results are kept in memory")
		return cache.NewMemoryStore(time.Now), nil
	}

	client, err := cache.DialRedis(ctx, redisURL)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisStore(client), nil
}

// dialNetworks connects to every configured network. A network whose node is
// unreachable is left out; at least one has to come up.
func dialNetworks(ctx context.Context, logger *zap.SugaredLogger, networks []ethereum.NetworkConfig) ([]ethereum.Endpoint, error) {
	var endpoints []ethereum.Endpoint
	var errs []error
	for _, cfg := range networks {
		client, err := ethereum.Dial(ctx, cfg)
		if err != nil {
			logger.Errorw("network disabled",
				"network", cfg.Network.ChainName(),
				"error", err)
			errs = append(errs, err)
			continue
		}

		logger.Infow("network enabled",
			"network", cfg.Network.ChainName(),
			"chain_id", cfg.Network.ChainID(),
			"token", cfg.TokenAddress.Hex())
		endpoints = append(endpoints, ethereum.Endpoint{Config: cfg, Client: client})
	}

	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no network available: %w", errors.Join(errs...))
	}
	return endpoints, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return sdErr
	}

	return err
}
