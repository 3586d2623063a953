package emu_test

import (
	"bytes"
	"log/slog"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zv64/emu"
	"github.com/sarchlab/zv64/insts"
)

var _ = Describe("Observers", func() {
	var (
		mockCtrl *gomock.Controller
		observer *MockObserver
		logBuf   *bytes.Buffer
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		observer = NewMockObserver(mockCtrl)
		logBuf = &bytes.Buffer{}
		logger = slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{
			Level: emu.LevelTrace,
		}))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should notify observers once per cycle in PC order", func() {
		var pcs []uint64

		first := observer.EXPECT().
			ObserveStep(gomock.Any()).
			Do(func(r emu.StepResult) {
				Expect(r.Inst.Op).To(Equal(insts.OpADDI))
				pcs = append(pcs, r.PC)
			})
		second := observer.EXPECT().
			ObserveStep(gomock.Any()).
			Do(func(r emu.StepResult) {
				Expect(r.Inst.Op).To(Equal(insts.OpUnknown))
				Expect(r.Unimplemented).To(HaveOccurred())
				pcs = append(pcs, r.PC)
			})
		gomock.InOrder(first, second)

		e := emu.NewEmulator(emu.WithLogger(logger), emu.WithObserver(observer))
		e.LoadProgram(program(encodeADDI(1, 0, 1), 0x00000073))

		Expect(e.Run()).To(Succeed())
		Expect(pcs).To(Equal([]uint64{0, 4}))
	})

	It("should not notify observers on a failed fetch", func() {
		observer.EXPECT().ObserveStep(gomock.Any()).Times(0)

		e := emu.NewEmulator(emu.WithLogger(logger), emu.WithObserver(observer))
		e.LoadProgram([]byte{0x01})

		Expect(e.Run()).To(HaveOccurred())
	})

	Describe("LogObserver", func() {
		It("should trace the advancing program counter", func() {
			e := emu.NewEmulator(
				emu.WithLogger(logger),
				emu.WithObserver(emu.NewLogObserver(logger)),
			)
			e.LoadProgram(program(encodeADDI(1, 0, 1), encodeADD(2, 1, 1)))

			Expect(e.Run()).To(Succeed())

			out := logBuf.String()
			Expect(out).To(ContainSubstring("msg=step pc=0x0 next_pc=0x4"))
			Expect(out).To(ContainSubstring("msg=step pc=0x4 next_pc=0x8"))
			Expect(out).To(ContainSubstring("op=addi"))
			Expect(out).To(ContainSubstring("op=add"))
		})

		It("should be filtered out above LevelTrace", func() {
			quiet := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))
			e := emu.NewEmulator(
				emu.WithLogger(quiet),
				emu.WithObserver(emu.NewLogObserver(quiet)),
			)
			e.LoadProgram(program(encodeADDI(1, 0, 1)))

			Expect(e.Run()).To(Succeed())
			Expect(logBuf.String()).To(BeEmpty())
		})
	})

	Describe("Stats", func() {
		It("should count instructions by operation and opcode", func() {
			stats := emu.NewStats()
			e := emu.NewEmulator(emu.WithLogger(logger), emu.WithObserver(stats))
			e.LoadProgram(program(
				encodeADDI(1, 0, 1),
				encodeADDI(1, 1, 1),
				encodeADD(2, 1, 1),
				0x00000073,
				0x0020B423,
				0x0020B423,
			))

			Expect(e.Run()).To(Succeed())

			Expect(stats.Instructions).To(Equal(uint64(6)))
			Expect(stats.ByOp[insts.OpADDI]).To(Equal(uint64(2)))
			Expect(stats.ByOp[insts.OpADD]).To(Equal(uint64(1)))
			Expect(stats.ByOp[insts.OpUnknown]).To(Equal(uint64(3)))
			Expect(stats.Ops()).To(Equal([]insts.Op{insts.OpUnknown, insts.OpADDI, insts.OpADD}))
			Expect(stats.UnimplementedOpcodes()).To(Equal([]uint8{0x23, 0x73}))
			Expect(stats.Unimplemented[0x23]).To(Equal(uint64(2)))
		})
	})
})
