package assembler

import "github.com/pkg/errors"

// Encode packs an instruction into its 32-bit word: the opcode id in the
// top 6 bits, then each operand at its layout position, zero padding below.
func Encode(ins *Instruction) (uint32, error) {
	t := ins.Type
	if len(ins.Values) != len(t.Operands) {
		return 0, errors.Wrapf(ErrOperandArity, "%s takes %d operands, got %d",
			t.Name, len(t.Operands), len(ins.Values))
	}
	word := uint32(t.Opcode) << 26
	position := uint(opcodeBits)
	for i, spec := range t.Operands {
		word |= ins.Values[i] << (32 - uint(spec.Bits) - position)
		position += uint(spec.Bits)
	}
	return word, nil
}

// encodeLine turns one cleaned executable line into a machine word. Macro
// mnemonics expand here: the parsed operands are installed as the current
// instruction, the expander computes the base instruction's operands, and
// encoding proceeds against the base type.
func (a *Assembler) encodeLine(clean string) (uint32, error) {
	mnemonic, tokens := splitInstruction(clean)
	values, raw, err := a.parseOperands(tokens)
	if err != nil {
		return 0, err
	}

	if t := a.reg.InstructionNamed(mnemonic); t != nil {
		return Encode(NewInstruction(t, values, raw))
	}

	m := a.reg.MacroNamed(mnemonic)
	if m == nil {
		return 0, errors.Wrapf(ErrUnknownOpcode, "%q", mnemonic)
	}
	base := a.reg.Instruction(m.Base)
	a.ctx.SetCurrent(NewInstruction(base, values, raw))
	expanded, err := m.Expand(a.ctx)
	if err != nil {
		return 0, err
	}
	return Encode(NewInstruction(base, expanded, raw))
}
