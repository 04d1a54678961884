package assembler

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// splitInstruction cuts a cleaned executable line into its mnemonic and raw
// operand tokens. Cleanup has already removed the space after each comma.
func splitInstruction(clean string) (string, []string) {
	sp := strings.IndexByte(clean, ' ')
	if sp < 0 {
		return clean, nil
	}
	rest := clean[sp+1:]
	if rest == "" {
		return clean[:sp], nil
	}
	return clean[:sp], strings.Split(rest, ",")
}

// parseOperands resolves raw tokens to numeric values. Every token lands in
// the raw list; quoted tokens land only there, unquoted ones also parse to
// a value.
func (a *Assembler) parseOperands(tokens []string) ([]uint32, []string, error) {
	var (
		values []uint32
		raw    []string
	)
	for _, tok := range tokens {
		if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
			raw = append(raw, tok[1:len(tok)-1])
			continue
		}
		raw = append(raw, tok)
		v, err := a.operandValue(tok)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, v)
	}
	return values, raw, nil
}

// operandValue resolves one unquoted token: register macro first, then
// canonical register, then integer.
func (a *Assembler) operandValue(tok string) (uint32, error) {
	if r, ok := a.ctx.ResolveAlias(tok); ok {
		return uint32(r), nil
	}
	if r := RegisterByName(tok); r != INVREG {
		return uint32(r), nil
	}
	return parseImmediate(tok)
}

// parseImmediate accepts decimal, 0x hex, and 0b binary forms. A leading
// '-' negates; the result truncates to 32 bits.
func parseImmediate(tok string) (uint32, error) {
	s := tok
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrOperandParse, "%q", tok)
	}
	u := uint32(v)
	if neg {
		u = -u
	}
	return u, nil
}
