package assembler

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Decode renders one host-order instruction word as assembly text: the
// mnemonic, a space, then comma-separated operands. Registers print by
// canonical name; immediates print in hex, sign-extended at their own
// width.
func Decode(reg *Registry, word uint32) (string, error) {
	id := OpcodeID((word >> 26) & 0x3F)
	t := reg.Instruction(id)
	if t == nil {
		return "", errors.Wrapf(ErrUnknownOpcode, "id %d in word %08X", id, word)
	}

	var sb strings.Builder
	sb.WriteString(t.Name)
	position := uint(32 - opcodeBits)
	for i, spec := range t.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		position -= uint(spec.Bits)
		v := (word >> position) & mask(spec.Bits)
		switch spec.Kind {
		case OperandRegister:
			sb.WriteString(Register(v).String())
		case OperandImmediate:
			sb.WriteString(formatImmediate(v, spec.Bits))
		}
	}
	return sb.String(), nil
}

// formatImmediate views the field at its own signed width: negative values
// print as -0x<abs>, the rest as plain hex. Single-bit fields are bare
// flags and print unsigned.
func formatImmediate(v uint32, bits uint8) string {
	var signed int64
	switch bits {
	case 1:
		return fmt.Sprintf("0x%X", v)
	case 8:
		signed = int64(int8(uint8(v)))
	case 16:
		signed = int64(int16(uint16(v)))
	case 32:
		signed = int64(int32(v))
	default:
		logrus.Warnf("no rendering for %d-bit immediate, operand omitted", bits)
		return ""
	}
	if signed < 0 {
		return fmt.Sprintf("-0x%X", -signed)
	}
	return fmt.Sprintf("0x%X", signed)
}
