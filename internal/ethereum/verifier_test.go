package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"paygate/internal/ethereum"
	"paygate/internal/ethereum/fake"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	tokenAddress    = common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e")
	receiverAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	senderAddress   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	otherAddress    = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

const testTxHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

func transferLog(token, from, to common.Address, amount uint64) *types.Log {
	data := uint256.NewInt(amount).Bytes32()
	return &types.Log{
		Address: token,
		Topics: []common.Hash{
			ethereum.TransferEventTopic,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: data[:],
	}
}

func receipt(status uint64, logs ...*types.Log) *types.Receipt {
	return &types.Receipt{
		Status:      status,
		Logs:        logs,
		BlockNumber: big.NewInt(1234),
	}
}

var _ = Describe("Verifier", func() {
	var (
		client   *fake.EthClient
		verifier *ethereum.Verifier
		ctx      context.Context

		network ethereum.Network
		hash    string
		sender  string

		result ethereum.VerificationResult
		err    error
	)

	BeforeEach(func() {
		client = new(fake.EthClient)
		ctx = context.Background()

		verifier = ethereum.NewVerifier([]ethereum.Endpoint{{
			Config: ethereum.NetworkConfig{
				Network:      ethereum.Testnet,
				TokenAddress: tokenAddress,
			},
			Client: client,
		}}, ethereum.Settings{
			Receiver:  receiverAddress,
			MinAmount: uint256.NewInt(10000),
			Timeout:   time.Second,
		})

		network = ethereum.Testnet
		hash = testTxHash
		sender = senderAddress.Hex()

		client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
			transferLog(tokenAddress, senderAddress, receiverAddress, 10000),
		), nil)
		client.HeaderByNumberReturns(&types.Header{Time: 1740830400}, nil)
	})

	JustBeforeEach(func() {
		result, err = verifier.Verify(ctx, hash, network, sender)
	})

	When("the transfer matches", func() {
		It("returns a valid result with the decoded transfer", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
			Expect(result.Reason).To(Equal(ethereum.ReasonNone))
			Expect(result.Transfer.From).To(Equal(senderAddress.Hex()))
			Expect(result.Transfer.To).To(Equal(receiverAddress.Hex()))
			Expect(result.Transfer.Amount.Uint64()).To(Equal(uint64(10000)))
			Expect(result.Transfer.BlockNumber).To(Equal(uint64(1234)))
			Expect(result.Transfer.BlockTimestamp).To(Equal(time.Unix(1740830400, 0).UTC()))
		})

		It("looks up the receipt by hash and the header by its block", func() {
			_, gotHash := client.TransactionReceiptArgsForCall(0)
			Expect(gotHash).To(Equal(common.HexToHash(testTxHash)))
			_, number := client.HeaderByNumberArgsForCall(0)
			Expect(number.Int64()).To(Equal(int64(1234)))
		})
	})

	When("the sender is given in a different case", func() {
		BeforeEach(func() {
			sender = "0x00000000000000000000000000000000000000BB"
		})

		It("still matches", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
		})
	})

	When("the amount is one unit short", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, receiverAddress, 9999),
			), nil)
		})

		It("rejects with insufficient amount", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeFalse())
			Expect(result.Reason).To(Equal(ethereum.ReasonInsufficientAmount))
		})
	})

	When("the amount exceeds the price", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, receiverAddress, 50000),
			), nil)
		})

		It("accepts it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
		})
	})

	When("the transfer comes from another wallet", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, otherAddress, receiverAddress, 10000),
			), nil)
		})

		It("rejects with sender mismatch", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonSenderMismatch))
		})
	})

	When("the transfer pays someone else", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, otherAddress, 10000),
			), nil)
		})

		It("rejects with receiver mismatch", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonReceiverMismatch))
		})
	})

	When("several transfers are emitted", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, otherAddress, 1),
				transferLog(tokenAddress, senderAddress, receiverAddress, 10000),
			), nil)
		})

		It("uses the one paying the receiver", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
		})
	})

	When("another wallet pays the receiver earlier in the same transaction", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, otherAddress, receiverAddress, 10000),
				transferLog(tokenAddress, senderAddress, receiverAddress, 10000),
			), nil)
		})

		It("uses the sender's own transfer", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
			Expect(result.Transfer.From).To(Equal(senderAddress.Hex()))
		})
	})

	When("the sender pays the receiver twice and only the second covers the price", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, receiverAddress, 10),
				transferLog(tokenAddress, senderAddress, receiverAddress, 20000),
			), nil)
		})

		It("uses the transfer that covers the price", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeTrue())
			Expect(result.Transfer.Amount.Uint64()).To(Equal(uint64(20000)))
		})
	})

	When("only another wallet pays the receiver", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(tokenAddress, senderAddress, otherAddress, 10000),
				transferLog(tokenAddress, otherAddress, receiverAddress, 10000),
			), nil)
		})

		It("rejects with sender mismatch", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonSenderMismatch))
		})
	})

	When("the transaction reverted", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusFailed), nil)
		})

		It("rejects with transaction failed", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonTransactionFailed))
		})
	})

	When("the transfer was emitted by another token contract", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful,
				transferLog(otherAddress, senderAddress, receiverAddress, 10000),
			), nil)
		})

		It("rejects with no transfer event", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonNoTransferEvent))
		})
	})

	When("the transfer log is malformed", func() {
		BeforeEach(func() {
			log := transferLog(tokenAddress, senderAddress, receiverAddress, 10000)
			log.Data = log.Data[:31]
			client.TransactionReceiptReturns(receipt(types.ReceiptStatusSuccessful, log), nil)
		})

		It("rejects with no transfer event", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(ethereum.ReasonNoTransferEvent))
		})
	})

	When("the transaction is unknown", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(nil, goethereum.NotFound)
		})

		It("rejects with not found", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Valid).To(BeFalse())
			Expect(result.Reason).To(Equal(ethereum.ReasonNotFound))
			Expect(result.Reason.Terminal()).To(BeFalse())
		})
	})

	When("the rpc call fails", func() {
		BeforeEach(func() {
			client.TransactionReceiptReturns(nil, errors.New("connection refused"))
		})

		It("returns an rpc unavailable error", func() {
			Expect(err).To(MatchError(ethereum.ErrRPCUnavailable))
		})
	})

	When("the rpc call outlives the timeout", func() {
		BeforeEach(func() {
			verifier = ethereum.NewVerifier([]ethereum.Endpoint{{
				Config: ethereum.NetworkConfig{Network: ethereum.Testnet, TokenAddress: tokenAddress},
				Client: client,
			}}, ethereum.Settings{
				Receiver:  receiverAddress,
				MinAmount: uint256.NewInt(10000),
				Timeout:   10 * time.Millisecond,
			})
			client.TransactionReceiptStub = func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
		})

		It("returns an rpc unavailable error", func() {
			Expect(err).To(MatchError(ethereum.ErrRPCUnavailable))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	When("the block header cannot be fetched", func() {
		BeforeEach(func() {
			client.HeaderByNumberReturns(nil, errors.New("boom"))
		})

		It("returns an rpc unavailable error", func() {
			Expect(err).To(MatchError(ethereum.ErrRPCUnavailable))
		})
	})

	When("the hash is malformed", func() {
		BeforeEach(func() {
			hash = "0x1234"
		})

		It("fails without calling the chain", func() {
			Expect(err).To(MatchError(ethereum.ErrInvalidTxHash))
			Expect(client.TransactionReceiptCallCount()).To(BeZero())
		})
	})

	When("the sender is malformed", func() {
		BeforeEach(func() {
			sender = "not-an-address"
		})

		It("fails without calling the chain", func() {
			Expect(err).To(MatchError(ethereum.ErrInvalidSender))
			Expect(client.TransactionReceiptCallCount()).To(BeZero())
		})
	})

	When("the network has no endpoint", func() {
		BeforeEach(func() {
			network = ethereum.Mainnet
		})

		It("fails with unsupported network", func() {
			Expect(err).To(MatchError(ethereum.ErrUnsupportedNetwork))
		})
	})
})

var _ = Describe("CheckChainID", func() {
	var client *fake.EthClient

	BeforeEach(func() {
		client = new(fake.EthClient)
	})

	It("accepts the expected chain", func() {
		client.ChainIDReturns(big.NewInt(84532), nil)
		Expect(ethereum.CheckChainID(context.Background(), client, ethereum.Testnet)).To(Succeed())
	})

	It("rejects a different chain", func() {
		client.ChainIDReturns(big.NewInt(1), nil)
		Expect(ethereum.CheckChainID(context.Background(), client, ethereum.Testnet)).NotTo(Succeed())
	})

	It("reports rpc failures as unavailable", func() {
		client.ChainIDReturns(nil, errors.New("down"))
		err := ethereum.CheckChainID(context.Background(), client, ethereum.Mainnet)
		Expect(err).To(MatchError(ethereum.ErrRPCUnavailable))
	})
})
