package ethereum_test

import (
	"context"
	"errors"
	"time"

	"paygate/internal/cache"
	"paygate/internal/ethereum"
	"paygate/internal/ethereum/fake"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}

var _ = Describe("CachedVerifier", func() {
	var (
		next   *fake.TransferVerifier
		store  *cache.MemoryStore
		cached *ethereum.CachedVerifier
		ctx    context.Context
		sender string
	)

	verify := func() (ethereum.VerificationResult, error) {
		return cached.Verify(ctx, testTxHash, ethereum.Testnet, sender)
	}

	BeforeEach(func() {
		next = new(fake.TransferVerifier)
		store = cache.NewMemoryStore(nil)
		ctx = context.Background()
		sender = senderAddress.Hex()
		cached = ethereum.NewCachedVerifier(next, store, time.Minute, zap.NewNop().Sugar())
	})

	When("the transfer is valid", func() {
		BeforeEach(func() {
			next.VerifyReturns(ethereum.VerificationResult{
				Valid: true,
				Transfer: ethereum.Transfer{
					TxHash:         testTxHash,
					Amount:         uint256.NewInt(10000),
					BlockTimestamp: time.Unix(1740830400, 0).UTC(),
				},
			}, nil)
		})

		It("serves repeated checks from the cache", func() {
			first, err := verify()
			Expect(err).NotTo(HaveOccurred())
			second, err := verify()
			Expect(err).NotTo(HaveOccurred())

			Expect(next.VerifyCallCount()).To(Equal(1))
			Expect(second.Valid).To(BeTrue())
			Expect(second.Transfer.Amount.Eq(first.Transfer.Amount)).To(BeTrue())
			Expect(second.Transfer.BlockTimestamp.Equal(first.Transfer.BlockTimestamp)).To(BeTrue())
		})

		It("keys on the sender", func() {
			_, _ = verify()
			sender = otherAddress.Hex()
			_, _ = verify()

			Expect(next.VerifyCallCount()).To(Equal(2))
		})
	})

	When("the rejection is terminal", func() {
		BeforeEach(func() {
			next.VerifyReturns(ethereum.VerificationResult{Reason: ethereum.ReasonSenderMismatch}, nil)
		})

		It("caches it", func() {
			_, _ = verify()
			result, err := verify()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonSenderMismatch))
			Expect(next.VerifyCallCount()).To(Equal(1))
		})
	})

	When("the transaction is not found yet", func() {
		BeforeEach(func() {
			next.VerifyReturns(ethereum.VerificationResult{Reason: ethereum.ReasonNotFound}, nil)
		})

		It("asks the chain every time", func() {
			_, _ = verify()
			_, _ = verify()
			Expect(next.VerifyCallCount()).To(Equal(2))
		})
	})

	When("the chain is unavailable", func() {
		BeforeEach(func() {
			next.VerifyReturns(ethereum.VerificationResult{}, ethereum.ErrRPCUnavailable)
		})

		It("returns the error and caches nothing", func() {
			_, err := verify()
			Expect(err).To(MatchError(ethereum.ErrRPCUnavailable))
			_, _ = verify()
			Expect(next.VerifyCallCount()).To(Equal(2))
		})
	})

	When("the cache fails", func() {
		BeforeEach(func() {
			cached = ethereum.NewCachedVerifier(next, failingCache{}, time.Minute, zap.NewNop().Sugar())
			next.VerifyReturns(ethereum.VerificationResult{Valid: true}, nil)
		})

		It("falls through to the chain", func() {
			result, err := verify()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
		})
	})
})
