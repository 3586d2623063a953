package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zv64/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = emu.NewRegFile()
	})

	It("should preset sp to the nominal memory size", func() {
		Expect(regFile.ReadReg(emu.RegSP)).To(Equal(uint64(0x8000000)))
	})

	It("should start every other register at zero", func() {
		for i := uint8(0); i < emu.NumRegs; i++ {
			if i == emu.RegSP {
				continue
			}
			Expect(regFile.ReadReg(i)).To(BeZero(), "x%d", i)
		}
		Expect(regFile.PC).To(BeZero())
	})

	It("should read back written values", func() {
		regFile.WriteReg(31, 0xDEADBEEFCAFEBABE)
		Expect(regFile.ReadReg(31)).To(Equal(uint64(0xDEADBEEFCAFEBABE)))
	})

	It("should discard writes to x0", func() {
		regFile.WriteReg(0, 42)
		Expect(regFile.ReadReg(0)).To(BeZero())
		Expect(regFile.X[0]).To(BeZero())
	})

	It("should read x0 as zero even if the backing slot is set", func() {
		regFile.X[0] = 7
		Expect(regFile.ReadReg(0)).To(BeZero())
		Expect(regFile.Snapshot()[0]).To(BeZero())
	})

	It("should panic on an out-of-range index", func() {
		Expect(func() { regFile.ReadReg(32) }).To(Panic())
		Expect(func() { regFile.WriteReg(255, 1) }).To(Panic())
	})

	It("should name every register", func() {
		Expect(emu.ABINames[0]).To(Equal("zero"))
		Expect(emu.ABINames[2]).To(Equal(" sp "))
		Expect(emu.ABINames[27]).To(Equal(" s11"))
		for _, name := range emu.ABINames {
			Expect(name).To(HaveLen(4))
		}
	})
})
