package assembler

// Register identifies one architectural SPARK register by its 5-bit index.
type Register int

const (
	A0 Register = iota
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	JR
	PC
	RETVAL
	RETADDR
	SP
	CR
	RTCLO
	RTCHI
)

// INVREG marks "not a register".
const INVREG Register = -1

// registerNames is the canonical index-to-name table. Operand fields are
// 5 bits wide, so every decodable index has an entry.
var registerNames = [32]string{
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"jr", "pc", "retval", "retaddr", "sp", "cr", "rtclo", "rtchi",
}

var registersByName = make(map[string]Register, len(registerNames))

func init() {
	for i, name := range registerNames {
		registersByName[name] = Register(i)
	}
}

func (r Register) String() string {
	if r < 0 || int(r) >= len(registerNames) {
		return "invreg"
	}
	return registerNames[r]
}

// RegisterByName maps a canonical lowercase name to its register, or INVREG
// when the name is not in the table.
func RegisterByName(name string) Register {
	if r, ok := registersByName[name]; ok {
		return r
	}
	return INVREG
}
