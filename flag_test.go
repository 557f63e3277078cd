package bitwise_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/wjessop/bitwise"
)

type testFlag int

const (
	A testFlag = iota
	B
	C
	D
	E
	F
)

func (f testFlag) Bit() int { return bitwise.BitOf(f) }

func (f testFlag) String() string {
	return string(rune('A' + int(f)))
}

var testFlags = bitwise.NewEnum(F, E, D, C, B, A)

// sparseFlag is bound through a lookup function instead of a variant list.
type sparseFlag uint8

func (f sparseFlag) Bit() int { return bitwise.BitOf(f) }

var sparseFlags = bitwise.NewEnumFunc[sparseFlag](func(bit int) (sparseFlag, bool) {
	switch bit {
	case 0, 2, 5:
		return sparseFlag(bit), true
	}
	return 0, false
})

func expectInvalidBit(err error, bit int) {
	ExpectWithOffset(1, err).Should(HaveOccurred())
	ExpectWithOffset(1, errors.Is(err, bitwise.ErrInvalidBitPosition)).Should(BeTrue())

	var invalid *bitwise.InvalidBitPositionError
	ExpectWithOffset(1, errors.As(err, &invalid)).Should(BeTrue())
	ExpectWithOffset(1, invalid.Bit).Should(Equal(bit))
	ExpectWithOffset(1, err.Error()).Should(ContainSubstring(fmt.Sprintf("position `%d`", bit)))
}

var _ = Describe("Enum", func() {
	Context("ToMask", func() {
		DescribeTable("single flags",
			func(f testFlag, bit int, mask bitwise.Bitmask) {
				Expect(f.Bit()).Should(Equal(bit))
				Expect(bitwise.ToMask(f)).Should(Equal(mask))
				Expect(testFlags.ToMask(f)).Should(Equal(mask))
			},
			Entry("0th position", A, 0, bitwise.Bitmask(1)),
			Entry("2nd position", C, 2, bitwise.Bitmask(4)),
			Entry("5th position", F, 5, bitwise.Bitmask(32)),
		)

		It("combines several flags", func() {
			Expect(testFlags.ToMask(B, D)).Should(Equal(bitwise.Bitmask(10)))
			Expect(testFlags.ToMask()).Should(Equal(bitwise.EmptyBitfield))
		})
	})

	Context("TryFromBit", func() {
		It("finds defined positions", func() {
			for _, f := range []testFlag{A, C, F} {
				got, ok := testFlags.TryFromBit(f.Bit())
				Expect(ok).Should(BeTrue())
				Expect(got).Should(Equal(f))
			}
		})

		It("reports a miss without failing", func() {
			_, ok := testFlags.TryFromBit(10)
			Expect(ok).Should(BeFalse())
		})
	})

	Context("FromBit", func() {
		It("finds defined positions", func() {
			got, err := testFlags.FromBit(2)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).Should(Equal(C))
		})

		It("fails on an undefined position", func() {
			_, err := testFlags.FromBit(10)
			expectInvalidBit(err, 10)
		})
	})

	Context("FromMask", func() {
		DescribeTable("valid masks",
			func(mask bitwise.Bitmask, want []testFlag) {
				got, err := testFlags.FromMask(mask)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(got).Should(Equal(want))
			},
			Entry("single flag", bitwise.Bitmask(2), []testFlag{B}),
			Entry("multiple flags", bitwise.Bitmask(10), []testFlag{B, D}),
			Entry("empty mask", bitwise.EmptyBitfield, []testFlag{}),
			Entry("every flag", bitwise.Bitmask(63), []testFlag{A, B, C, D, E, F}),
		)

		DescribeTable("masks with undefined bits",
			func(mask bitwise.Bitmask, bit int) {
				got, err := testFlags.FromMask(mask)
				Expect(got).Should(BeNil())
				expectInvalidBit(err, bit)
			},
			Entry("single flag outside of defined range", bitwise.Bitmask(256), 8),
			Entry("multiple flags outside of defined range", bitwise.Bitmask(768), 8),
			Entry("additional flag outside of defined range", bitwise.Bitmask(257), 8),
			Entry("sign bit", bitwise.AllBitfields, 6),
		)

		It("round trips through ToMask", func() {
			got, err := testFlags.FromMask(testFlags.ToMask(E, A, C))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).Should(Equal([]testFlag{A, C, E}))
		})
	})

	Context("domain", func() {
		It("lists variants in bit order", func() {
			Expect(testFlags.Variants()).Should(Equal([]testFlag{A, B, C, D, E, F}))
			Expect(testFlags.Mask()).Should(Equal(bitwise.Bitmask(63)))
		})

		It("keeps the first variant for a shared position", func() {
			dup := bitwise.NewEnum(namedFlag{"first", 1}, namedFlag{"second", 1}, namedFlag{"zero", 0})
			got, err := dup.FromBit(1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got.name).Should(Equal("first"))
			Expect(dup.Variants()).Should(HaveLen(2))
		})

		It("validates masks", func() {
			Expect(testFlags.Validate(0)).Should(Succeed())
			Expect(testFlags.Validate(63)).Should(Succeed())
			expectInvalidBit(testFlags.Validate(64|512), 6)
		})

		It("describes masks", func() {
			Expect(testFlags.Describe(10)).Should(Equal([]string{"B", "D"}))
			Expect(testFlags.Describe(257)).Should(Equal([]string{"A", "bit(8)"}))
			Expect(testFlags.Describe(0)).Should(BeEmpty())
		})
	})

	Context("lookup functions", func() {
		It("binds sparse positions", func() {
			Expect(bitwise.ToMask(sparseFlag(0))).Should(Equal(bitwise.Bitmask(1)))
			Expect(bitwise.ToMask(sparseFlag(2))).Should(Equal(bitwise.Bitmask(4)))
			Expect(bitwise.ToMask(sparseFlag(5))).Should(Equal(bitwise.Bitmask(32)))
			Expect(sparseFlags.Mask()).Should(Equal(bitwise.Bitmask(37)))
			Expect(sparseFlags.Variants()).Should(Equal([]sparseFlag{0, 2, 5}))
		})

		It("rejects positions between variants", func() {
			_, ok := sparseFlags.TryFromBit(1)
			Expect(ok).Should(BeFalse())

			got, err := sparseFlags.FromMask(5)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).Should(Equal([]sparseFlag{0, 2}))

			_, err = sparseFlags.FromMask(6)
			expectInvalidBit(err, 1)
		})
	})
})

type namedFlag struct {
	name string
	bit  int
}

func (f namedFlag) Bit() int { return f.bit }
