package assembler

// opcodeBits is the width of the opcode field at the top of every
// instruction word.
const opcodeBits = 6

// OpcodeID identifies an instruction type. The id occupies bits 31..26 of
// the encoded word.
type OpcodeID int

const (
	INVOP OpcodeID = -1

	LIW   OpcodeID = 1
	ADDI  OpcodeID = 2
	ADD   OpcodeID = 3
	MOV   OpcodeID = 4
	CMPR  OpcodeID = 5
	CMPI  OpcodeID = 6
	JMPCR OpcodeID = 7
	JMP   OpcodeID = 8
	NOP   OpcodeID = 63
)

// MacroID identifies a macro. Macros are never encoded; each expands to a
// real instruction.
type MacroID int

const (
	INVMACRO MacroID = iota - 1
	INC
	LIWL
	LIWH
	JMPEQ
	JMPL
	JMPLEQ
	JMPG
	JMPGEQ
	LABREG
	LABJMP
	RET
)

// Condition values written to CR by cmpr/cmpi and tested by jmpcr.
type Condition uint32

const (
	EQUAL Condition = iota
	LESS
	LESS_OR_EQUAL
	GREATER
	GREATER_OR_EQUAL
)

// OperandKind tells the decoder how to render an operand field.
type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandImmediate
)

func (k OperandKind) String() string {
	switch k {
	case OperandRegister:
		return "reg"
	case OperandImmediate:
		return "imm"
	}
	return "?"
}

// OperandSpec is one slot of an instruction's bit layout.
type OperandSpec struct {
	Kind OperandKind
	Bits uint8
}

func reg(bits uint8) OperandSpec { return OperandSpec{Kind: OperandRegister, Bits: bits} }
func imm(bits uint8) OperandSpec { return OperandSpec{Kind: OperandImmediate, Bits: bits} }

// InstructionType is the schema for one instruction: its mnemonic and the
// ordered operand layout packed below the opcode field.
type InstructionType struct {
	Name     string
	Opcode   OpcodeID
	Operands []OperandSpec
}

// Expander computes the operand vector a macro expands to. It runs with the
// macro's own operands installed as the context's current instruction and
// may read raw operands and resolve labels.
type Expander func(ctx *Context) ([]uint32, error)

// MacroType binds a macro mnemonic to its base instruction and expander.
type MacroType struct {
	Name   string
	Macro  MacroID
	Base   OpcodeID
	Expand Expander
}

// Instruction is one parsed executable line: the instruction type it
// encodes against, the numeric operand values, and the raw operand tokens
// (quoted operands appear only here).
type Instruction struct {
	Type   *InstructionType
	Values []uint32
	Raw    []string
}

// NewInstruction masks each operand value to its slot's width. Surplus
// values are kept unmasked; the encoder rejects them as an arity error.
func NewInstruction(t *InstructionType, values []uint32, raw []string) *Instruction {
	masked := make([]uint32, len(values))
	for i, v := range values {
		if i < len(t.Operands) {
			v &= mask(t.Operands[i].Bits)
		}
		masked[i] = v
	}
	return &Instruction{Type: t, Values: masked, Raw: raw}
}

func mask(bits uint8) uint32 {
	if bits >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << bits) - 1
}
