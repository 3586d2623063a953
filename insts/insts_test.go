package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zv64/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should name operations by mnemonic", func() {
		Expect(insts.OpADDI.String()).To(Equal("addi"))
		Expect(insts.OpADD.String()).To(Equal("add"))
		Expect(insts.OpUnknown.String()).To(Equal("unknown"))
	})

	It("should name formats", func() {
		Expect(insts.FormatR.String()).To(Equal("R"))
		Expect(insts.FormatJ.String()).To(Equal("J"))
		Expect(insts.FormatUnknown.String()).To(Equal("?"))
	})
})
