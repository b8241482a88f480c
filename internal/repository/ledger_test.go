package repository_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"paygate/internal/db"
	"paygate/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	wallet = "0xAbCdEf0000000000000000000000000000000001"
	txHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
)

var _ = Describe("Ledger", func() {
	var (
		gormDB *gorm.DB
		ledger *repository.Ledger
		ctx    context.Context
		now    time.Time
		policy repository.Policy
	)

	setAccount := func(account repository.Account) {
		Expect(gormDB.Save(&account).Error).To(Succeed())
	}

	reload := func() repository.Account {
		var account repository.Account
		Expect(gormDB.Where("address = ?", "0xabcdef0000000000000000000000000000000001").First(&account).Error).To(Succeed())
		return account
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		policy = repository.Policy{FreeTierLimit: 5, ResetPeriod: 30 * 24 * time.Hour}

		var err error
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		gormDB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		sqlDB, err := gormDB.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		DeferCleanup(sqlDB.Close)

		ledger = repository.NewLedger(db.NewFromGorm(gormDB), policy, func() time.Time { return now })
		Expect(ledger.Migrate()).To(Succeed())
	})

	Describe("GetOrCreateAccount", func() {
		It("creates a normalized account once", func() {
			first, err := ledger.GetOrCreateAccount(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Address).To(Equal("0xabcdef0000000000000000000000000000000001"))
			Expect(first.FreeUsageCount).To(Equal(0))
			Expect(first.PaidCredits).To(Equal(0))
			Expect(first.LastFreeReset).To(BeTemporally("==", now))

			now = now.Add(time.Hour)
			second, err := ledger.GetOrCreateAccount(ctx, "0xABCDEF0000000000000000000000000000000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.LastFreeReset).To(BeTemporally("==", first.LastFreeReset))

			var count int64
			Expect(gormDB.Model(&repository.Account{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("ApplyFreeTierReset", func() {
		It("resets once the period has elapsed", func() {
			account := repository.Account{FreeUsageCount: 5, LastFreeReset: now.Add(-policy.ResetPeriod)}
			reset, didReset := ledger.ApplyFreeTierReset(account)
			Expect(didReset).To(BeTrue())
			Expect(reset.FreeUsageCount).To(Equal(0))
			Expect(reset.LastFreeReset).To(BeTemporally("==", now))
		})

		It("keeps the count before the boundary", func() {
			account := repository.Account{FreeUsageCount: 5, LastFreeReset: now.Add(-policy.ResetPeriod + time.Second)}
			kept, didReset := ledger.ApplyFreeTierReset(account)
			Expect(didReset).To(BeFalse())
			Expect(kept.FreeUsageCount).To(Equal(5))
		})
	})

	Describe("Account", func() {
		It("persists a due reset", func() {
			setAccount(repository.Account{
				Address:        "0xabcdef0000000000000000000000000000000001",
				FreeUsageCount: 5,
				LastFreeReset:  now.Add(-31 * 24 * time.Hour),
			})

			account, err := ledger.Account(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.FreeUsageCount).To(Equal(0))
			Expect(reload().FreeUsageCount).To(Equal(0))
			Expect(reload().LastFreeReset).To(BeTemporally("==", now))
		})
	})

	Describe("ConsumeOneUnit", func() {
		When("free usage is available", func() {
			It("increments the free counter", func() {
				result, err := ledger.ConsumeOneUnit(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.UsedFree).To(BeTrue())
				Expect(reload().FreeUsageCount).To(Equal(1))
			})
		})

		When("the free tier is exhausted but credits remain", func() {
			BeforeEach(func() {
				setAccount(repository.Account{
					Address:        "0xabcdef0000000000000000000000000000000001",
					FreeUsageCount: 5,
					PaidCredits:    2,
					LastFreeReset:  now.Add(-time.Hour),
				})
			})

			It("decrements paid credits", func() {
				result, err := ledger.ConsumeOneUnit(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.UsedFree).To(BeFalse())
				Expect(result.Account.PaidCredits).To(Equal(1))
				Expect(reload().PaidCredits).To(Equal(1))
				Expect(reload().FreeUsageCount).To(Equal(5))
			})
		})

		When("nothing is left", func() {
			BeforeEach(func() {
				setAccount(repository.Account{
					Address:        "0xabcdef0000000000000000000000000000000001",
					FreeUsageCount: 5,
					LastFreeReset:  now.Add(-time.Hour),
				})
			})

			It("reports failure without changing state", func() {
				result, err := ledger.ConsumeOneUnit(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(reload().FreeUsageCount).To(Equal(5))
				Expect(reload().PaidCredits).To(Equal(0))
			})
		})

		When("the reset boundary is reached exactly", func() {
			BeforeEach(func() {
				setAccount(repository.Account{
					Address:        "0xabcdef0000000000000000000000000000000001",
					FreeUsageCount: 5,
					LastFreeReset:  now.Add(-policy.ResetPeriod),
				})
			})

			It("uses the fresh free tier and leaves the counter at one", func() {
				result, err := ledger.ConsumeOneUnit(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.UsedFree).To(BeTrue())

				account := reload()
				Expect(account.FreeUsageCount).To(Equal(1))
				Expect(account.LastFreeReset).To(BeTemporally("==", now))
			})
		})

		When("two callers race for the last credit", func() {
			BeforeEach(func() {
				setAccount(repository.Account{
					Address:        "0xabcdef0000000000000000000000000000000001",
					FreeUsageCount: 5,
					PaidCredits:    1,
					LastFreeReset:  now.Add(-time.Hour),
				})
			})

			It("lets exactly one succeed", func() {
				var (
					wg        sync.WaitGroup
					mu        sync.Mutex
					successes int
				)
				for i := 0; i < 2; i++ {
					wg.Add(1)
					go func() {
						defer GinkgoRecover()
						defer wg.Done()
						result, err := ledger.ConsumeOneUnit(ctx, wallet)
						Expect(err).NotTo(HaveOccurred())
						if result.Success {
							mu.Lock()
							successes++
							mu.Unlock()
						}
					}()
				}
				wg.Wait()

				Expect(successes).To(Equal(1))
				Expect(reload().PaidCredits).To(Equal(0))
			})
		})
	})

	Describe("RecordVerifiedPayment", func() {
		var params repository.PaymentParams

		BeforeEach(func() {
			params = repository.PaymentParams{
				Address:        wallet,
				TxHash:         txHash,
				Amount:         "10000",
				CreditsToAdd:   5,
				Network:        "testnet",
				BlockTimestamp: now.Add(-time.Minute),
			}
		})

		It("stores the payment and credits the account", func() {
			payment, account, err := ledger.RecordVerifiedPayment(ctx, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(payment.TxHash).To(Equal(txHash))
			Expect(payment.AccountAddress).To(Equal("0xabcdef0000000000000000000000000000000001"))
			Expect(payment.Verified).To(BeTrue())
			Expect(account.PaidCredits).To(Equal(5))
			Expect(account.TotalPurchased).To(Equal(5))

			found, err := ledger.FindPayment(ctx, txHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Amount).To(Equal("10000"))
			Expect(found.Timestamp).To(BeTemporally("==", params.BlockTimestamp))
		})

		It("refuses the same transaction twice", func() {
			_, _, err := ledger.RecordVerifiedPayment(ctx, params)
			Expect(err).NotTo(HaveOccurred())

			params.Address = "0x0000000000000000000000000000000000000002"
			_, _, err = ledger.RecordVerifiedPayment(ctx, params)
			Expect(err).To(MatchError(repository.ErrDuplicateTransaction))

			Expect(reload().PaidCredits).To(Equal(5))
			Expect(reload().TotalPurchased).To(Equal(5))

			var count int64
			Expect(gormDB.Model(&repository.Payment{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("credits a racing submission once", func() {
			var (
				wg         sync.WaitGroup
				mu         sync.Mutex
				recorded   int
				duplicates int
			)
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, _, err := ledger.RecordVerifiedPayment(ctx, params)
					mu.Lock()
					defer mu.Unlock()
					if err == nil {
						recorded++
						return
					}
					Expect(err).To(MatchError(repository.ErrDuplicateTransaction))
					duplicates++
				}()
			}
			wg.Wait()

			Expect(recorded).To(Equal(1))
			Expect(duplicates).To(Equal(3))
			Expect(reload().PaidCredits).To(Equal(5))
		})

		It("rejects a non-positive credit amount", func() {
			params.CreditsToAdd = 0
			_, _, err := ledger.RecordVerifiedPayment(ctx, params)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FindPayment", func() {
		It("returns ErrPaymentNotFound for unknown hashes", func() {
			_, err := ledger.FindPayment(ctx, txHash)
			Expect(err).To(MatchError(repository.ErrPaymentNotFound))
		})
	})

	Describe("Payments", func() {
		It("lists an account's payments newest first", func() {
			for i, hash := range []string{
				"0x0000000000000000000000000000000000000000000000000000000000000001",
				"0x0000000000000000000000000000000000000000000000000000000000000002",
			} {
				_, _, err := ledger.RecordVerifiedPayment(ctx, repository.PaymentParams{
					Address:        wallet,
					TxHash:         hash,
					Amount:         "10000",
					CreditsToAdd:   5,
					Network:        "mainnet",
					BlockTimestamp: now.Add(time.Duration(i) * time.Minute),
				})
				Expect(err).NotTo(HaveOccurred())
			}

			payments, err := ledger.Payments(ctx, wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(2))
			Expect(payments[0].TxHash).To(HaveSuffix("2"))
			Expect(reload().TotalPurchased).To(Equal(10))
		})
	})
})
