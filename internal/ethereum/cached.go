package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "paygate:verify:"

// CachedVerifier remembers outcomes that can no longer change. Valid results
// and terminal rejections are stored; not found and RPC failures never are.
type CachedVerifier struct {
	next   TransferVerifier
	cache  ResultCache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedVerifier(next TransferVerifier, cache ResultCache, ttl time.Duration, logger *zap.SugaredLogger) *CachedVerifier {
	return &CachedVerifier{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedVerifier) Verify(ctx context.Context, txHash string, network Network, expectedSender string) (VerificationResult, error) {
	key := cacheKey(txHash, network, expectedSender)

	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warnw("verification cache read failed",
			"key", key,
			"error", err,
		)
	} else if ok {
		var cached VerificationResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		c.logger.Warnw("discarding corrupt verification cache entry", "key", key)
	}

	result, err := c.next.Verify(ctx, txHash, network, expectedSender)
	if err != nil {
		return result, err
	}
	if !result.Valid && !result.Reason.Terminal() {
		return result, nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warnw("encode verification result", "key", key, "error", err)
		return result, nil
	}
	if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.logger.Warnw("verification cache write failed",
			"key", key,
			"error", err,
		)
	}
	return result, nil
}

func cacheKey(txHash string, network Network, sender string) string {
	return fmt.Sprintf("%s%s:%s:%s", cacheKeyPrefix, network, strings.ToLower(txHash), strings.ToLower(sender))
}
