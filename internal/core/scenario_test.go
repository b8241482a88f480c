package core_test

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"paygate/internal/core"
	"paygate/internal/core/fake"
	"paygate/internal/db"
	"paygate/internal/ethereum"
	ethfake "paygate/internal/ethereum/fake"
	"paygate/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Paying for usage", func() {
	var (
		ctx  context.Context
		now  time.Time
		gate *core.UsageGate

		orchestrator *core.PaymentOrchestrator
		ledger       *repository.Ledger
		client       *ethfake.EthClient

		sender   = common.HexToAddress(wallet)
		receiver = common.HexToAddress("0x00000000000000000000000000000000000000aa")
		token    = common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e")
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		store, err := db.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(store.Close)

		ledger = repository.NewLedger(store, repository.Policy{
			FreeTierLimit: 5,
			ResetPeriod:   30 * 24 * time.Hour,
		}, func() time.Time { return now })
		Expect(ledger.Migrate()).To(Succeed())

		amount := uint256.NewInt(10000).Bytes32()
		client = new(ethfake.EthClient)
		client.TransactionReceiptReturns(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(77),
			Logs: []*types.Log{{
				Address: token,
				Topics: []common.Hash{
					ethereum.TransferEventTopic,
					common.BytesToHash(sender.Bytes()),
					common.BytesToHash(receiver.Bytes()),
				},
				Data: amount[:],
			}},
		}, nil)
		client.HeaderByNumberReturns(&types.Header{Time: uint64(now.Add(-time.Minute).Unix())}, nil)

		verifier := ethereum.NewVerifier([]ethereum.Endpoint{{
			Config: ethereum.NetworkConfig{Network: ethereum.Testnet, TokenAddress: token},
			Client: client,
		}}, ethereum.Settings{
			Receiver:  receiver,
			MinAmount: uint256.NewInt(10000),
			Timeout:   time.Second,
		})

		metrics := new(fake.Recorder)
		gate = core.NewUsageGate(zap.NewNop().Sugar(), ledger, metrics, 5)
		orchestrator = core.NewPaymentOrchestrator(zap.NewNop().Sugar(), ledger, verifier, metrics, core.PaymentSettings{
			CreditsPerPayment: 5,
			Retry:             core.RetryPolicy{MaxRetries: 1, InitialInterval: time.Millisecond},
		})

		for range 5 {
			_, err := gate.Consume(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("unlocks usage after a verified payment and never credits the same hash twice", func() {
		decision, err := gate.CheckUsage(ctx, wallet)
		Expect(err).NotTo(HaveOccurred())
		Expect(decision.CanUse).To(BeFalse())
		Expect(decision.NeedsPayment).To(BeTrue())

		_, err = gate.Consume(ctx, wallet)
		Expect(err).To(MatchError(core.ErrInsufficientCredits))

		result, err := orchestrator.SubmitPayment(ctx, wallet, txHash, "base-sepolia")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.CreditsAdded).To(Equal(5))
		Expect(result.PaidCredits).To(Equal(5))
		Expect(result.TotalPurchased).To(Equal(5))

		decision, err = gate.CheckUsage(ctx, wallet)
		Expect(err).NotTo(HaveOccurred())
		Expect(decision.CanUse).To(BeTrue())

		consumed, err := gate.Consume(ctx, wallet)
		Expect(err).NotTo(HaveOccurred())
		Expect(consumed.UsedFree).To(BeFalse())
		Expect(consumed.Usage.PaidRemaining).To(Equal(4))

		_, err = orchestrator.SubmitPayment(ctx, wallet, txHash, "base-sepolia")
		Expect(err).To(MatchError(core.ErrAlreadyUsed))

		balance, err := gate.Balance(ctx, wallet)
		Expect(err).NotTo(HaveOccurred())
		Expect(balance.PaidCredits).To(Equal(4))
		Expect(balance.TotalPurchased).To(Equal(5))
		Expect(client.TransactionReceiptCallCount()).To(Equal(1))
	})

	It("stores the block time of the transfer", func() {
		_, err := orchestrator.SubmitPayment(ctx, wallet, txHash, "testnet")
		Expect(err).NotTo(HaveOccurred())

		history, err := orchestrator.History(ctx, wallet)
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(HaveLen(1))
		Expect(history[0].Timestamp).To(BeTemporally("==", now.Add(-time.Minute)))
		Expect(history[0].Amount).To(Equal("10000"))
	})

	It("rejects a transfer claimed by another wallet", func() {
		_, err := orchestrator.SubmitPayment(ctx, "0x00000000000000000000000000000000000000bb", txHash, "testnet")
		Expect(err).To(MatchError(core.ErrSenderMismatch))

		history, err := orchestrator.History(ctx, "0x00000000000000000000000000000000000000bb")
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(BeEmpty())
	})
})
