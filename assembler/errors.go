package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrInputRead indicates the source or binary input could not be read
	ErrInputRead = errors.New("cannot read input")

	// ErrBitOverflow indicates an instruction registration whose opcode
	// and operand fields exceed the 32-bit word
	ErrBitOverflow = errors.New("operand layout exceeds 32 bits")

	// ErrPath indicates an include search path that could not be
	// canonicalized to an absolute path
	ErrPath = errors.New("cannot canonicalize include path")

	// ErrIncludeResolve indicates an include name no search path resolves
	ErrIncludeResolve = errors.New("include not found")

	// ErrIncludeConflict indicates an include name resolved by more than
	// one search path
	ErrIncludeConflict = errors.New("include is ambiguous")

	// ErrIncludeCycle indicates a file that includes itself, directly or
	// through other files
	ErrIncludeCycle = errors.New("include cycle")

	// ErrUnknownOpcode indicates a mnemonic absent from both the
	// instruction and macro catalogues, or an undecodable opcode id
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnknownLabel indicates a label reference with no definition
	ErrUnknownLabel = errors.New("unknown label")

	// ErrOperandParse indicates an operand token that is neither a
	// register, an alias, nor an integer
	ErrOperandParse = errors.New("cannot parse operand")

	// ErrOperandArity indicates an operand count mismatch against the
	// instruction type
	ErrOperandArity = errors.New("operand count mismatch")

	// ErrInvalidRegisterMacro indicates an alias bound to no register
	ErrInvalidRegisterMacro = errors.New("invalid register macro")
)

// IgnoreError marks a line the driver skips instead of failing on. The run
// continues after logging it.
type IgnoreError struct {
	Reason string
}

func (e *IgnoreError) Error() string { return e.Reason }

// LineError ties a fatal error to the source position it arose from.
type LineError struct {
	File string
	Line int
	Raw  string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Raw, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
