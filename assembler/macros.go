package assembler

import "github.com/pkg/errors"

// Macro expanders run after the line's operands are parsed and installed as
// the context's current instruction. They return the operand vector for the
// base instruction; label-relative macros resolve labels through the
// context at this point.

func seedMacros(r *Registry) error {
	jumps := []struct {
		name string
		id   MacroID
		cond Condition
	}{
		{"jmpeq", JMPEQ, EQUAL},
		{"jmpl", JMPL, LESS},
		{"jmpleq", JMPLEQ, LESS_OR_EQUAL},
		{"jmpg", JMPG, GREATER},
		{"jmpgeq", JMPGEQ, GREATER_OR_EQUAL},
	}
	for _, j := range jumps {
		if err := r.RegisterMacro(j.name, j.id, JMPCR, conditionalJump(j.cond)); err != nil {
			return err
		}
	}

	macros := []struct {
		name   string
		id     MacroID
		base   OpcodeID
		expand Expander
	}{
		{"inc", INC, ADDI, expandInc},
		{"liwl", LIWL, LIW, liwHalf(0)},
		{"liwh", LIWH, LIW, liwHalf(1)},
		{"labreg", LABREG, ADDI, expandLabelRegister},
		{"labjmp", LABJMP, ADDI, expandLabelJump},
		{"ret", RET, JMP, expandRet},
	}
	for _, m := range macros {
		if err := r.RegisterMacro(m.name, m.id, m.base, m.expand); err != nil {
			return err
		}
	}
	return nil
}

// conditionalJump expands `jmpXX r` into `jmpcr r, cond`.
func conditionalJump(cond Condition) Expander {
	return func(ctx *Context) ([]uint32, error) {
		target, err := operand(ctx, 0)
		if err != nil {
			return nil, err
		}
		return []uint32{target, uint32(cond)}, nil
	}
}

// expandInc expands `inc r` into `addi r, r, 1`.
func expandInc(ctx *Context) ([]uint32, error) {
	r, err := operand(ctx, 0)
	if err != nil {
		return nil, err
	}
	return []uint32{r, r, 1}, nil
}

// liwHalf expands `liwl r, imm` / `liwh r, imm` into `liw r, imm, half`.
func liwHalf(half uint32) Expander {
	return func(ctx *Context) ([]uint32, error) {
		dst, err := operand(ctx, 0)
		if err != nil {
			return nil, err
		}
		value, err := operand(ctx, 1)
		if err != nil {
			return nil, err
		}
		return []uint32{dst, value, half}, nil
	}
}

// expandLabelRegister expands `labreg r, 'L'` into
// `addi r, pc, L.offset - (cpuLine-1)*4`.
func expandLabelRegister(ctx *Context) ([]uint32, error) {
	dst, err := operand(ctx, 0)
	if err != nil {
		return nil, err
	}
	name, err := rawOperand(ctx, 1)
	if err != nil {
		return nil, err
	}
	delta, err := labelDelta(ctx, name)
	if err != nil {
		return nil, err
	}
	return []uint32{dst, uint32(PC), delta}, nil
}

// expandLabelJump expands `labjmp 'L'` into
// `addi jr, pc, L.offset - (cpuLine-1)*4`.
func expandLabelJump(ctx *Context) ([]uint32, error) {
	name, err := rawOperand(ctx, 0)
	if err != nil {
		return nil, err
	}
	delta, err := labelDelta(ctx, name)
	if err != nil {
		return nil, err
	}
	return []uint32{uint32(JR), uint32(PC), delta}, nil
}

// expandRet expands `ret` into `jmp retaddr`.
func expandRet(ctx *Context) ([]uint32, error) {
	return []uint32{uint32(RETADDR)}, nil
}

func operand(ctx *Context, i int) (uint32, error) {
	ins := ctx.Current()
	if ins == nil || i >= len(ins.Values) {
		return 0, errors.Wrapf(ErrOperandArity, "macro operand %d missing", i)
	}
	return ins.Values[i], nil
}

func rawOperand(ctx *Context, i int) (string, error) {
	ins := ctx.Current()
	if ins == nil || i >= len(ins.Raw) {
		return "", errors.Wrapf(ErrOperandArity, "macro operand %d missing", i)
	}
	return ins.Raw[i], nil
}

// labelDelta is the distance from the current instruction to a label, in
// bytes. The subtraction wraps for backward references; the 16-bit
// immediate mask keeps the two's-complement form.
func labelDelta(ctx *Context, name string) (uint32, error) {
	lab, err := ctx.FindLabel(name)
	if err != nil {
		return 0, err
	}
	return lab.Offset - uint32(ctx.CPULine()-1)*4, nil
}
