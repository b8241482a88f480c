package core_test

import (
	"context"
	"errors"

	"paygate/internal/core"
	"paygate/internal/core/fake"
	"paygate/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const wallet = "0xAbCdEf0000000000000000000000000000000001"

var _ = Describe("UsageGate", func() {
	var (
		fakeLedger  *fake.Ledger
		fakeMetrics *fake.Recorder
		ctx         context.Context

		gate *core.UsageGate

		fakeErr error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeMetrics = new(fake.Recorder)
		ctx = context.Background()

		gate = core.NewUsageGate(zap.NewNop().Sugar(), fakeLedger, fakeMetrics, 5)

		fakeErr = errors.New("fake error")
	})

	Describe("CheckUsage", func() {
		var (
			account  repository.Account
			decision core.UsageDecision
			err      error
		)

		JustBeforeEach(func() {
			fakeLedger.AccountReturns(account, nil)
			decision, err = gate.CheckUsage(ctx, wallet)
		})

		When("the free tier has room", func() {
			BeforeEach(func() {
				account = repository.Account{FreeUsageCount: 2}
			})

			It("allows use without payment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(decision).To(Equal(core.UsageDecision{
					CanUse:        true,
					FreeRemaining: 3,
				}))
			})

			It("reads the lower-cased address", func() {
				_, address := fakeLedger.AccountArgsForCall(0)
				Expect(address).To(Equal("0xabcdef0000000000000000000000000000000001"))
			})
		})

		When("only paid credits remain", func() {
			BeforeEach(func() {
				account = repository.Account{FreeUsageCount: 5, PaidCredits: 2}
			})

			It("allows use", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(decision.CanUse).To(BeTrue())
				Expect(decision.FreeRemaining).To(BeZero())
				Expect(decision.PaidRemaining).To(Equal(2))
			})
		})

		When("nothing remains", func() {
			BeforeEach(func() {
				account = repository.Account{FreeUsageCount: 5}
			})

			It("asks for payment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(decision.CanUse).To(BeFalse())
				Expect(decision.NeedsPayment).To(BeTrue())
			})
		})

		It("does not consume anything", func() {
			Expect(fakeLedger.ConsumeOneUnitCallCount()).To(BeZero())
		})
	})

	Describe("CheckUsage with bad input", func() {
		It("rejects a malformed address without touching the ledger", func() {
			_, err := gate.CheckUsage(ctx, "0x1234")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(fakeLedger.AccountCallCount()).To(BeZero())
		})

		It("reports storage failures as transient", func() {
			fakeLedger.AccountReturns(repository.Account{}, fakeErr)
			_, err := gate.CheckUsage(ctx, wallet)
			Expect(err).To(MatchError(core.ErrTryAgain))
			Expect(core.IsTransient(err)).To(BeTrue())
		})
	})

	Describe("Consume", func() {
		var (
			result core.ConsumeResult
			err    error
		)

		JustBeforeEach(func() {
			result, err = gate.Consume(ctx, wallet)
		})

		When("the free tier is used", func() {
			BeforeEach(func() {
				fakeLedger.ConsumeOneUnitReturns(repository.ConsumeResult{
					Success:  true,
					UsedFree: true,
					Account:  repository.Account{FreeUsageCount: 1},
				}, nil)
			})

			It("reports the remaining allowance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.UsedFree).To(BeTrue())
				Expect(result.Usage.FreeRemaining).To(Equal(4))
			})

			It("counts a free unit", func() {
				Expect(fakeMetrics.UsageConsumedArgsForCall(0)).To(Equal("free"))
			})
		})

		When("a paid credit is used", func() {
			BeforeEach(func() {
				fakeLedger.ConsumeOneUnitReturns(repository.ConsumeResult{
					Success: true,
					Account: repository.Account{FreeUsageCount: 5, PaidCredits: 4},
				}, nil)
			})

			It("reports the remaining credits", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.UsedFree).To(BeFalse())
				Expect(result.Usage.PaidRemaining).To(Equal(4))
				Expect(fakeMetrics.UsageConsumedArgsForCall(0)).To(Equal("paid"))
			})
		})

		When("nothing is left", func() {
			BeforeEach(func() {
				fakeLedger.ConsumeOneUnitReturns(repository.ConsumeResult{
					Account: repository.Account{FreeUsageCount: 5},
				}, nil)
			})

			It("returns insufficient credits", func() {
				Expect(err).To(MatchError(core.ErrInsufficientCredits))
				Expect(result.Usage.NeedsPayment).To(BeTrue())
				Expect(core.IsTerminal(err)).To(BeFalse())
				Expect(core.IsTransient(err)).To(BeFalse())
				Expect(fakeMetrics.UsageConsumedArgsForCall(0)).To(Equal("denied"))
			})
		})

		When("the ledger fails", func() {
			BeforeEach(func() {
				fakeLedger.ConsumeOneUnitReturns(repository.ConsumeResult{}, fakeErr)
			})

			It("returns a transient error", func() {
				Expect(err).To(MatchError(core.ErrTryAgain))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Balance", func() {
		It("combines the account with the usage decision", func() {
			fakeLedger.AccountReturns(repository.Account{
				Address:        "0xabcdef0000000000000000000000000000000001",
				FreeUsageCount: 5,
				PaidCredits:    3,
				TotalPurchased: 10,
			}, nil)

			balance, err := gate.Balance(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.PaidCredits).To(Equal(3))
			Expect(balance.TotalPurchased).To(Equal(10))
			Expect(balance.Usage.CanUse).To(BeTrue())
		})
	})
})
