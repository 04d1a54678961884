package assembler

import "strings"

// LineType tags what a cleaned source line is.
type LineType int

const (
	LineEmpty LineType = iota
	LineLabel
	LineRegisterMacro
	LineExecutable
)

func (t LineType) String() string {
	switch t {
	case LineEmpty:
		return "empty"
	case LineLabel:
		return "label"
	case LineRegisterMacro:
		return "register-macro"
	case LineExecutable:
		return "executable"
	}
	return "?"
}

// CleanLine normalizes one raw source line: the comment is cut at the first
// ';', leading spaces go, the space after a comma goes, runs of spaces
// collapse, spaces touching '=' go, a space in penultimate position goes,
// and bytes outside [0x20, 0x82] go. An empty result means the line carries
// no token.
//
// The deletion rules interact (the penultimate rule depends on the final
// length), so the walk runs to a fixed point; that makes the result
// idempotent under CleanLine.
func CleanLine(raw string) string {
	s := cleanPass(raw)
	for {
		next := cleanPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanPass(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	b := []byte(line)
	i := 0
	for {
		// a lone character is no token
		if i == 1 && len(b) == 1 {
			return ""
		}
		if i >= len(b) {
			break
		}
		if b[0] == ' ' {
			b = b[1:]
			continue
		}
		var prev, next byte
		if i > 0 {
			prev = b[i-1]
		}
		if i < len(b)-1 {
			next = b[i+1]
		}
		cur := b[i]
		switch {
		case cur == ',' && next == ' ':
			b = append(b[:i+1], b[i+2:]...)
		case cur == ' ' && prev == ' ':
			b = append(b[:i], b[i+1:]...)
		case cur == ' ' && (next == '=' || prev == '='):
			b = append(b[:i], b[i+1:]...)
		case cur == ' ' && i+1 == len(b)-1:
			b = append(b[:i], b[i+1:]...)
		case cur < 0x20 || cur > 0x82:
			b = append(b[:i], b[i+1:]...)
		default:
			i++
		}
	}
	return string(b)
}

// ClassifyLine tags a cleaned line. A label wins over a register macro when
// both patterns match.
func ClassifyLine(clean string) LineType {
	if len(clean) == 0 {
		return LineEmpty
	}
	if strings.IndexByte(clean, ':') > 0 {
		return LineLabel
	}
	if eq := strings.IndexByte(clean, '='); eq > 0 && strings.Count(clean, "=") == 1 {
		if RegisterByName(clean[eq+1:]) != INVREG {
			return LineRegisterMacro
		}
	}
	return LineExecutable
}
