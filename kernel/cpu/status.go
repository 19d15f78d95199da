package cpu

// Raw STATUS32 bit positions. These are fixed by the architecture and must
// never change independently of the context-switch code that consumes them.
const (
	statusIRQLevelShift      = 1
	statusIRQLevelMask  Word = 0xf << statusIRQLevelShift
	statusStackCheck    Word = 1 << 14
	statusUserSleep     Word = 1 << 20
	statusIRQEnable     Word = 1 << 31
)

// IRQLevel is an interrupt priority level encoded in the E field of the
// status word.
type IRQLevel uint8

// DefIRQLevel is the default deferred interrupt level for new threads. The
// status word of a fresh thread is armed with this level but keeps the
// enable bit clear; the final instruction of the context-switch path
// re-enables interrupts so a new thread can never be preempted before its
// context is fully committed.
const DefIRQLevel IRQLevel = 15

// Status is the decoded form of the STATUS32 word. The rest of the kernel
// manipulates these named fields; the raw bit layout only appears when a
// Status is serialized into an initial context record.
type Status struct {
	// Level is the interrupt priority level held in the E field.
	Level IRQLevel

	// StackCheck arms hardware stack bounds checking.
	StackCheck bool

	// UserSleep permits sleep instructions at the user privilege level.
	UserSleep bool

	// IRQEnable is the master interrupt enable bit.
	IRQEnable bool
}

// Word serializes the status into its raw STATUS32 encoding.
func (s Status) Word() Word {
	word := (Word(s.Level) << statusIRQLevelShift) & statusIRQLevelMask
	if s.StackCheck {
		word |= statusStackCheck
	}
	if s.UserSleep {
		word |= statusUserSleep
	}
	if s.IRQEnable {
		word |= statusIRQEnable
	}
	return word
}

// DecodeStatus reconstructs the named fields from a raw STATUS32 word.
func DecodeStatus(word Word) Status {
	return Status{
		Level:      IRQLevel((word & statusIRQLevelMask) >> statusIRQLevelShift),
		StackCheck: word&statusStackCheck != 0,
		UserSleep:  word&statusUserSleep != 0,
		IRQEnable:  word&statusIRQEnable != 0,
	}
}
