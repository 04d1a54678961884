package assembler

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry is the catalogue of instruction and macro types. It is populated
// once at startup and read-only afterwards; translations share it by
// reference.
type Registry struct {
	instByID     map[OpcodeID]*InstructionType
	instByName   map[string]*InstructionType
	macroByID    map[MacroID]*MacroType
	macroByName  map[string]*MacroType
	macrosByBase map[OpcodeID][]*MacroType
}

// NewRegistry returns an empty registry. Most callers want Default instead.
func NewRegistry() *Registry {
	return &Registry{
		instByID:     make(map[OpcodeID]*InstructionType),
		instByName:   make(map[string]*InstructionType),
		macroByID:    make(map[MacroID]*MacroType),
		macroByName:  make(map[string]*MacroType),
		macrosByBase: make(map[OpcodeID][]*MacroType),
	}
}

// RegisterInstruction records an instruction type. The opcode field plus
// every operand field must fit the 32-bit word.
func (r *Registry) RegisterInstruction(name string, id OpcodeID, operands ...OperandSpec) error {
	total := uint(opcodeBits)
	for _, op := range operands {
		total += uint(op.Bits)
	}
	if total > 32 {
		return errors.Wrapf(ErrBitOverflow, "%s: %d bits", name, total)
	}
	t := &InstructionType{Name: name, Opcode: id, Operands: operands}
	r.instByID[id] = t
	r.instByName[name] = t
	return nil
}

// RegisterMacro records a macro type. The base opcode must already be
// registered.
func (r *Registry) RegisterMacro(name string, id MacroID, base OpcodeID, expand Expander) error {
	if r.instByID[base] == nil {
		return errors.Wrapf(ErrUnknownOpcode, "macro %s: base opcode id %d", name, base)
	}
	m := &MacroType{Name: name, Macro: id, Base: base, Expand: expand}
	r.macroByID[id] = m
	r.macroByName[name] = m
	r.macrosByBase[base] = append(r.macrosByBase[base], m)
	return nil
}

// Instruction looks up an instruction type by opcode id, nil on miss.
func (r *Registry) Instruction(id OpcodeID) *InstructionType {
	return r.instByID[id]
}

// InstructionNamed looks up an instruction type by mnemonic, nil on miss.
func (r *Registry) InstructionNamed(name string) *InstructionType {
	return r.instByName[name]
}

// Macro looks up a macro type by macro id, nil on miss.
func (r *Registry) Macro(id MacroID) *MacroType {
	return r.macroByID[id]
}

// MacroNamed looks up a macro type by mnemonic, nil on miss.
func (r *Registry) MacroNamed(name string) *MacroType {
	return r.macroByName[name]
}

// MacrosFor lists the macros that expand to the given base instruction.
func (r *Registry) MacrosFor(base OpcodeID) []*MacroType {
	return r.macrosByBase[base]
}

// Instructions lists every registered instruction type in opcode order.
func (r *Registry) Instructions() []*InstructionType {
	out := make([]*InstructionType, 0, len(r.instByID))
	for _, t := range r.instByID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Opcode < out[j].Opcode })
	return out
}

// Macros lists every registered macro type in macro-id order.
func (r *Registry) Macros() []*MacroType {
	out := make([]*MacroType, 0, len(r.macroByID))
	for _, m := range r.macroByID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Macro < out[j].Macro })
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry seeded with the canonical SPARK
// catalogue. It is built on first use and must not be mutated.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		if err := seed(r); err != nil {
			panic(err) // the canonical catalogue is static
		}
		defaultReg = r
	})
	return defaultReg
}

func seed(r *Registry) error {
	instructions := []struct {
		name     string
		id       OpcodeID
		operands []OperandSpec
	}{
		{"liw", LIW, []OperandSpec{reg(5), imm(16), imm(1)}},
		{"addi", ADDI, []OperandSpec{reg(5), reg(5), imm(16)}},
		{"add", ADD, []OperandSpec{reg(5), reg(5), reg(5)}},
		{"mov", MOV, []OperandSpec{reg(5), reg(5)}},
		{"cmpr", CMPR, []OperandSpec{reg(5), reg(5)}},
		{"cmpi", CMPI, []OperandSpec{reg(5), imm(16)}},
		{"jmpcr", JMPCR, []OperandSpec{reg(5), imm(16)}},
		{"jmp", JMP, []OperandSpec{reg(5)}},
		{"nop", NOP, nil},
	}
	for _, ins := range instructions {
		if err := r.RegisterInstruction(ins.name, ins.id, ins.operands...); err != nil {
			return err
		}
	}
	return seedMacros(r)
}
