// Package assembler translates between SPARK assembly text and the
// instruction set's 32-bit big-endian machine words, in both directions.
//
// Assembly runs in two passes: an expansion pass resolves #include and
// #includePath directives into one ordered line buffer, then an encode pass
// cleans, classifies, and encodes each buffered line. Labels are recorded
// inline; macros that reference them expand lazily during encoding.
package assembler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Assembler drives one translation from source text to machine words.
// Create a fresh one per run.
type Assembler struct {
	reg       *Registry
	ctx       *Context
	expanding map[string]bool // canonical paths on the include stack
	words     []uint32
}

func NewAssembler(reg *Registry) *Assembler {
	return &Assembler{
		reg:       reg,
		ctx:       NewContext(),
		expanding: make(map[string]bool),
	}
}

// Context exposes the run's state, e.g. to pre-seed include search paths.
func (a *Assembler) Context() *Context { return a.ctx }

// AssembleFile translates one source file. Relative includes resolve
// against the file's directory.
func (a *Assembler) AssembleFile(path string) ([]uint32, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInputRead, "%v", err)
	}
	a.ctx.SetFile(path)
	return a.Assemble(string(src), filepath.Dir(path))
}

// Assemble translates source text to host-order machine words. baseDir
// anchors relative includes; empty means the working directory.
func (a *Assembler) Assemble(source, baseDir string) ([]uint32, error) {
	var lines []string
	if err := a.expandSource(source, baseDir, &lines); err != nil {
		return nil, err
	}
	for _, rawLine := range lines {
		a.ctx.NextAsmLine()
		clean := CleanLine(rawLine)
		a.ctx.SetLine(rawLine, clean)
		if err := a.translateLine(clean); err != nil {
			var skip *IgnoreError
			if errors.As(err, &skip) {
				logrus.Debugf("%s:%d: ignoring line: %s", a.ctx.File(), a.ctx.AsmLine(), skip.Reason)
				continue
			}
			return nil, &LineError{
				File: a.ctx.File(),
				Line: a.ctx.AsmLine(),
				Raw:  rawLine,
				Err:  err,
			}
		}
	}
	return a.words, nil
}

func (a *Assembler) translateLine(clean string) error {
	switch ClassifyLine(clean) {
	case LineEmpty:
		return &IgnoreError{Reason: "empty after cleanup"}
	case LineLabel:
		name := clean[:strings.IndexByte(clean, ':')]
		// the next executable line's offset
		a.ctx.AddLabel(name, uint32(a.ctx.CPULine()+1)*4)
		return nil
	case LineRegisterMacro:
		eq := strings.IndexByte(clean, '=')
		return a.ctx.SetRegisterMacro(clean[:eq], RegisterByName(clean[eq+1:]))
	default:
		line := a.ctx.NextCPULine()
		word, err := a.encodeLine(clean)
		if err != nil {
			return err
		}
		a.words = append(a.words, word)
		logrus.Debugf("%04X  %08X  %s", (line-1)*4, word, clean)
		return nil
	}
}

// Disassembler drives the reverse translation, machine words to text.
type Disassembler struct {
	reg *Registry

	// Hexdump annotates each line with its encoded word and byte offset.
	Hexdump bool
}

func NewDisassembler(reg *Registry) *Disassembler {
	return &Disassembler{reg: reg}
}

// DisassembleFile translates one binary file.
func (d *Disassembler) DisassembleFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInputRead, "%v", err)
	}
	return d.Disassemble(data)
}

// Disassemble translates a big-endian word stream into assembly lines.
func (d *Disassembler) Disassemble(data []byte) ([]string, error) {
	words := WordsFromBytes(data)
	lines := make([]string, 0, len(words))
	for i, w := range words {
		line, err := Decode(d.reg, w)
		if err != nil {
			return nil, errors.Wrapf(err, "byte offset %08X", i*4)
		}
		lines = append(lines, line)
	}
	if d.Hexdump {
		annotate(lines, words)
	}
	return lines, nil
}

// annotate right-pads every line to the longest one and appends the word
// and its byte offset as a trailing comment.
func annotate(lines []string, words []uint32) {
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	for i, l := range lines {
		lines[i] = fmt.Sprintf("%-*s ; %08X\t%08X", width, l, words[i], i*4)
	}
}
