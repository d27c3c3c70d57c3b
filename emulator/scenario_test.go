package emulator_test

import (
	"bytes"
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/regmach/config"
	"github.com/ezrec/regmach/emulator"
	"github.com/ezrec/regmach/machine"
)

var _ = Describe("Emulator", func() {
	var (
		emu    *emulator.Emulator
		output *bytes.Buffer
	)

	load := func(source string) {
		err := emu.Load(slices.Values(strings.Split(source, "\n")))
		Expect(err).NotTo(HaveOccurred())
	}

	register := func(name string) int64 {
		value, err := emu.Registers.Get(name)
		Expect(err).NotTo(HaveOccurred())
		return value
	}

	BeforeEach(func() {
		emu = emulator.NewEmulator(nil)
		output = &bytes.Buffer{}
		emu.Sink = &machine.WriterSink{Writer: output}
		emu.Sleep = nil
	})

	It("should halt with the incremented register", func() {
		load("LOAD R1,=10\nINC R1\nHALT")

		Expect(emu.Run()).To(Succeed())
		Expect(emu.Halted).To(BeTrue())
		Expect(emu.Errored).To(BeFalse())
		Expect(register("R1")).To(Equal(int64(11)))
	})

	It("should fail a branch to a label not yet passed", func() {
		load("BR skip\nLOAD R1,=99\nskip:\nHALT")

		err := emu.Run()
		Expect(err).To(MatchError(machine.ErrLabelUndefined("skip")))
		Expect(emu.Errored).To(BeTrue())
		Expect(emu.Halted).To(BeFalse())
		Expect(register("R1")).To(BeZero())

		var rt *emulator.ErrRuntime
		Expect(err).To(BeAssignableToTypeOf(rt))
	})

	It("should round trip an immediate through memory", func() {
		load("LOAD R1,=5\nSTORE R1,10\nLOAD R2,10\nHALT")

		Expect(emu.Run()).To(Succeed())
		Expect(register("R2")).To(Equal(int64(5)))
	})

	It("should add the index register at execution", func() {
		load("LOAD R2,=3\nLOAD R1,[4,R2]\nHALT\n\n\n\n\n77")

		Expect(emu.Run()).To(Succeed())
		Expect(register("R1")).To(Equal(int64(77)))
	})

	It("should take the remainder from the updated quotient", func() {
		load("LOAD R1,=100\nLOAD R2,=7\nDIV R1,R2\nHALT")

		Expect(emu.Run()).To(Succeed())
		Expect(register("R1")).To(Equal(int64(14)))
		Expect(register("R2")).To(Equal(int64(0)))
	})

	It("should leave the second operand of arithmetic alone", func() {
		load("LOAD R1,=6\nLOAD R2,=4\nADD R1,R2\nMUL R1,R2\nSUB R1,R2\nHALT")

		Expect(emu.Run()).To(Succeed())
		Expect(register("R1")).To(Equal(int64(36)))
		Expect(register("R2")).To(Equal(int64(4)))
	})

	It("should print registers and memory", func() {
		load("LOAD R3,=42\nPRINT R3\nPRINT 0\nHALT")

		Expect(emu.Run()).To(Succeed())
		Expect(output.String()).To(Equal("R3 = 42\n[0] = LOAD R3,=42\n"))
	})

	It("should dump registers, labels and memory", func() {
		load("here:\nLOAD R6,=9\nDUMP\nHALT")

		Expect(emu.Run()).To(Succeed())
		dump := output.String()
		Expect(dump).To(ContainSubstring("R6"))
		Expect(dump).To(ContainSubstring("here"))
		Expect(dump).To(ContainSubstring("LOAD R6,=9"))
	})

	It("should persist disk writes across runs", func() {
		load("LOAD R1,=8\nWRITE R1,0\nHALT")
		Expect(emu.Run()).To(Succeed())

		load("READ R2,0\nHALT")
		Expect(emu.Run()).To(Succeed())
		Expect(register("R2")).To(Equal(int64(8)))
	})

	Context("with a starting address", func() {
		BeforeEach(func() {
			cfg := config.Default()
			cfg.StartingAddress = 500
			cfg.MemorySize = 8
			emu = emulator.NewEmulator(cfg)
			emu.Sink = &machine.WriterSink{Writer: output}
		})

		It("should translate every addressing mode", func() {
			load("LOAD R1,506\nLOAD R2,@506\nSTORE R2,$2\nHALT\n\n\n507\n3")

			Expect(emu.Run()).To(Succeed())
			Expect(register("R1")).To(Equal(int64(507)))
			Expect(register("R2")).To(Equal(int64(3)))

			cell, err := emu.Peek(504)
			Expect(err).NotTo(HaveOccurred())
			Expect(cell).To(Equal(machine.NumberCell(3)))
		})

		It("should reject addresses outside the window", func() {
			load("LOAD R1,6\nHALT")

			err := emu.Run()
			Expect(err).To(MatchError(&machine.ErrOutOfRange{}))
			Expect(emu.Errored).To(BeTrue())
		})
	})
})
