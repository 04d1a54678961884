package assembler

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSplitInstruction(t *testing.T) {
	tests := []struct {
		name     string
		clean    string
		mnemonic string
		tokens   []string
	}{
		{"three operands", "add r0,r1,r2", "add", []string{"r0", "r1", "r2"}},
		{"one operand", "jmp r0", "jmp", []string{"r0"}},
		{"no operands", "nop", "nop", nil},
		{"quoted operand", "labjmp 'loop'", "labjmp", []string{"'loop'"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mnemonic, tokens := splitInstruction(tt.clean)
			if mnemonic != tt.mnemonic {
				t.Errorf("mnemonic = %q, want %q", mnemonic, tt.mnemonic)
			}
			if len(tokens) != len(tt.tokens) {
				t.Fatalf("tokens = %q, want %q", tokens, tt.tokens)
			}
			for i := range tokens {
				if tokens[i] != tt.tokens[i] {
					t.Errorf("token %d = %q, want %q", i, tokens[i], tt.tokens[i])
				}
			}
		})
	}
}

func TestParseImmediate(t *testing.T) {
	tests := []struct {
		tok  string
		want uint32
	}{
		{"0", 0},
		{"5", 5},
		{"65535", 0xFFFF},
		{"4294967295", 0xFFFFFFFF},
		{"0x10", 0x10},
		{"0xFFFF", 0xFFFF},
		{"0b101", 5},
		{"-1", 0xFFFFFFFF},
		{"-5", 0xFFFFFFFB},
		{"-0x10", 0xFFFFFFF0},
		{"-0b1", 0xFFFFFFFF},
	}
	for _, tt := range tests {
		got, err := parseImmediate(tt.tok)
		if err != nil {
			t.Errorf("parseImmediate(%q) failed: %v", tt.tok, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseImmediate(%q) = %08X, want %08X", tt.tok, got, tt.want)
		}
	}
}

func TestParseImmediate_Rejects(t *testing.T) {
	for _, tok := range []string{"", "-", "zzz", "0x", "0xZZ", "0b2", "4294967296", "12.5"} {
		if _, err := parseImmediate(tok); !errors.Is(err, ErrOperandParse) {
			t.Errorf("parseImmediate(%q) = %v, want ErrOperandParse in chain", tok, err)
		}
	}
}

func TestOperandValue(t *testing.T) {
	a := NewAssembler(Default())
	tests := []struct {
		tok  string
		want uint32
	}{
		{"a0", 0},
		{"r15", 23},
		{"jr", 24},
		{"sp", 28},
		{"rtchi", 31},
		{"42", 42},
		{"0x2A", 42},
	}
	for _, tt := range tests {
		got, err := a.operandValue(tt.tok)
		if err != nil {
			t.Errorf("operandValue(%q) failed: %v", tt.tok, err)
			continue
		}
		if got != tt.want {
			t.Errorf("operandValue(%q) = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

// An alias shadows even a canonical register name.
func TestOperandValue_AliasShadows(t *testing.T) {
	a := NewAssembler(Default())
	if err := a.Context().SetRegisterMacro("a0", R5); err != nil {
		t.Fatalf("SetRegisterMacro failed: %v", err)
	}
	got, err := a.operandValue("a0")
	if err != nil {
		t.Fatalf("operandValue failed: %v", err)
	}
	if got != uint32(R5) {
		t.Errorf("operandValue(\"a0\") = %d, want %d (r5 through alias)", got, R5)
	}
}

func TestParseOperands_QuotedStaysRaw(t *testing.T) {
	a := NewAssembler(Default())
	values, raw, err := a.parseOperands([]string{"r0", "'loop'"})
	if err != nil {
		t.Fatalf("parseOperands failed: %v", err)
	}
	if len(values) != 1 || values[0] != uint32(R0) {
		t.Errorf("values = %v, want just r0", values)
	}
	if len(raw) != 2 || raw[0] != "r0" || raw[1] != "loop" {
		t.Errorf("raw = %q, want [\"r0\" \"loop\"]", raw)
	}
}

func TestParseOperands_BadToken(t *testing.T) {
	a := NewAssembler(Default())
	_, _, err := a.parseOperands([]string{"r0", "wat"})
	if !errors.Is(err, ErrOperandParse) {
		t.Errorf("error = %v, want ErrOperandParse in chain", err)
	}
}
