package assembler

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Label names a byte offset into the emitted instruction stream.
type Label struct {
	Name   string
	Offset uint32
}

// Context is the state of one translation: labels, include search paths,
// register aliases, the instruction being expanded, and the two line
// counters. A context belongs to a single run and is never shared.
type Context struct {
	labels   []Label
	searched []string // absolute include search paths, in registration order
	aliases  map[string]Register
	current  *Instruction

	file    string
	raw     string
	clean   string
	cpuLine int // executable lines seen, 1-based once the first is reached
	asmLine int // all physical lines, diagnostics only
}

func NewContext() *Context {
	return &Context{aliases: make(map[string]Register)}
}

// AddLabel records a label definition.
func (c *Context) AddLabel(name string, offset uint32) {
	c.labels = append(c.labels, Label{Name: name, Offset: offset})
}

// FindLabel returns the first label with the given name.
func (c *Context) FindLabel(name string) (Label, error) {
	for _, l := range c.labels {
		if l.Name == name {
			return l, nil
		}
	}
	return Label{}, errors.Wrapf(ErrUnknownLabel, "%q", name)
}

// Labels returns the labels recorded so far, in definition order.
func (c *Context) Labels() []Label { return c.labels }

// SetRegisterMacro binds an alias to a register. Rebinding an existing
// alias overwrites it; the shadowing is logged.
func (c *Context) SetRegisterMacro(alias string, r Register) error {
	if r == INVREG {
		return errors.Wrapf(ErrInvalidRegisterMacro, "%q", alias)
	}
	if old, ok := c.aliases[alias]; ok && old != r {
		logrus.WithFields(logrus.Fields{
			"macro": alias,
			"old":   old.String(),
			"new":   r.String(),
		}).Warn("register macro rebound")
	}
	c.aliases[alias] = r
	return nil
}

// ResolveAlias looks up a register macro by its representation.
func (c *Context) ResolveAlias(alias string) (Register, bool) {
	r, ok := c.aliases[alias]
	return r, ok
}

// AddIncludePath canonicalizes a search path to absolute form with symlinks
// resolved and appends it. The path must exist. Paths already present are
// kept once.
func (c *Context) AddIncludePath(path string) error {
	abs, err := filepath.Abs(path)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return errors.Wrapf(ErrPath, "%q: %v", path, err)
	}
	for _, p := range c.searched {
		if p == abs {
			return nil
		}
	}
	c.searched = append(c.searched, abs)
	return nil
}

// IncludePaths returns the registered search paths in order.
func (c *Context) IncludePaths() []string { return c.searched }

// SetCurrent installs the instruction that macro expanders read from.
func (c *Context) SetCurrent(ins *Instruction) { c.current = ins }

// Current returns the instruction being expanded, nil outside encoding.
func (c *Context) Current() *Instruction { return c.current }

// SetFile records the file the driver is translating, for diagnostics.
func (c *Context) SetFile(path string) { c.file = path }

// File returns the current file path.
func (c *Context) File() string { return c.file }

// SetLine records the line under translation, for diagnostics.
func (c *Context) SetLine(raw, clean string) {
	c.raw = raw
	c.clean = clean
}

// Line returns the raw and cleaned forms of the line under translation.
func (c *Context) Line() (raw, clean string) { return c.raw, c.clean }

// NextCPULine advances the executable-line counter and returns it. Only
// lines that emit a machine word advance this counter.
func (c *Context) NextCPULine() int {
	c.cpuLine++
	return c.cpuLine
}

// CPULine returns the executable-line counter.
func (c *Context) CPULine() int { return c.cpuLine }

// NextAsmLine advances the physical-line counter and returns it.
func (c *Context) NextAsmLine() int {
	c.asmLine++
	return c.asmLine
}

// AsmLine returns the physical-line counter.
func (c *Context) AsmLine() int { return c.asmLine }
