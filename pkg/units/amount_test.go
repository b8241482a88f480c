package units_test

import (
	"paygate/pkg/units"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Amount", func() {
	DescribeTable("ParseUnits",
		func(in string, decimals int, expected uint64) {
			v, err := units.ParseUnits(in, uint8(decimals))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Uint64()).To(Equal(expected))
		},
		Entry("cent of a six decimal token", "0.01", 6, uint64(10000)),
		Entry("whole units", "5", 6, uint64(5000000)),
		Entry("trailing zeros beyond precision", "1.2500000", 6, uint64(1250000)),
		Entry("leading dot", ".5", 2, uint64(50)),
		Entry("zero", "0", 18, uint64(0)),
		Entry("no decimals", "42", 0, uint64(42)),
	)

	DescribeTable("ParseUnits rejects",
		func(in string, decimals int, expected error) {
			_, err := units.ParseUnits(in, uint8(decimals))
			Expect(err).To(MatchError(expected))
		},
		Entry("empty", "", 6, units.ErrInvalidAmount),
		Entry("negative", "-1", 6, units.ErrInvalidAmount),
		Entry("letters", "1e6", 6, units.ErrInvalidAmount),
		Entry("dangling dot", "1.", 6, units.ErrInvalidAmount),
		Entry("lone dot", ".", 6, units.ErrInvalidAmount),
		Entry("too precise", "0.0000001", 6, units.ErrTooPrecise),
	)

	It("handles amounts wider than 64 bits", func() {
		v, err := units.ParseUnits("1000000000000", 18)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Dec()).To(Equal("1000000000000000000000000000000"))
	})

	DescribeTable("FormatUnits",
		func(v uint64, decimals int, expected string) {
			Expect(units.FormatUnits(uint256.NewInt(v), uint8(decimals))).To(Equal(expected))
		},
		Entry("cent", uint64(10000), 6, "0.01"),
		Entry("whole", uint64(5000000), 6, "5"),
		Entry("zero", uint64(0), 6, "0"),
		Entry("no decimals", uint64(7), 0, "7"),
	)
})
