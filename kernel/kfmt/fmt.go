// Package kfmt provides a minimal, allocation-free Printf implementation
// that can be used before any memory management is available, plus the
// kernel panic entry point.
package kfmt

import "io"

// numBufSize defines the scratch buffer size for formatting numbers.
const numBufSize = 32

var (
	errMissingArg = []byte("(MISSING)")
	errWrongType  = []byte("%!(WRONGTYPE)")
	errNoVerb     = []byte("%!(NOVERB)")
	errExtraArg   = []byte("%!(EXTRA)")
	trueValue     = []byte("true")
	falseValue    = []byte("false")

	// numBuf is a shared scratch buffer for number formatting.
	numBuf [numBufSize]byte

	// singleByte is a shared buffer for emitting single characters
	// without triggering a slice allocation.
	singleByte = []byte{0}

	// earlyBuf captures Printf output generated before an output sink is
	// registered.
	earlyBuf ringBuffer

	// outputSink is the io.Writer where Printf sends its output. While
	// nil, output is redirected to earlyBuf.
	outputSink io.Writer
)

// SetOutputSink sets the target for Printf calls to w and drains any output
// accumulated in the early buffer into it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyBuf)
	}
}

// Printf formats its arguments and writes them to the registered output
// sink. It supports the following verbs:
//
//	%s	string or []byte, uninterpreted
//	%o	integer, base 8
//	%d	integer, base 10
//	%x	integer, base 16 with lower-case letters
//	%t	"true" or "false"
//
// An optional decimal width may precede the verb. Strings and base-10
// integers shorter than the width are left-padded with spaces; base-8 and
// base-16 integers are left-padded with zeroes. All built-in integer types
// are supported; no formatting performed by this package allocates memory.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but writes the formatted output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		fmtLen       = len(format)
		nextArgIndex int
	)

	for index := 0; index < fmtLen; {
		ch := format[index]
		index++
		if ch != '%' {
			writeByte(w, ch)
			continue
		}

		// Scan the optional width digits til we hit the verb.
		padLen := 0
		for ; index < fmtLen && format[index] >= '0' && format[index] <= '9'; index++ {
			padLen = (padLen * 10) + int(format[index]-'0')
		}

		if index >= fmtLen {
			doWrite(w, errNoVerb)
			break
		}

		verb := format[index]
		index++

		if verb == '%' {
			writeByte(w, '%')
			continue
		}

		if verb != 'o' && verb != 'd' && verb != 'x' && verb != 's' && verb != 't' {
			doWrite(w, errNoVerb)
			continue
		}

		if nextArgIndex >= len(args) {
			doWrite(w, errMissingArg)
			continue
		}

		arg := args[nextArgIndex]
		nextArgIndex++

		switch verb {
		case 'o':
			fmtInt(w, arg, 8, padLen)
		case 'd':
			fmtInt(w, arg, 10, padLen)
		case 'x':
			fmtInt(w, arg, 16, padLen)
		case 's':
			fmtString(w, arg, padLen)
		case 't':
			fmtBool(w, arg)
		}
	}

	// Report unused args
	for ; nextArgIndex < len(args); nextArgIndex++ {
		doWrite(w, errExtraArg)
	}
}

// fmtBool prints a formatted version of boolean value v.
func fmtBool(w io.Writer, v interface{}) {
	bVal, isBool := v.(bool)
	if !isBool {
		doWrite(w, errWrongType)
		return
	}

	if bVal {
		doWrite(w, trueValue)
		return
	}
	doWrite(w, falseValue)
}

// fmtString prints a formatted version of string or []byte value v, applying
// the padding specified by padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch sVal := v.(type) {
	case string:
		fmtRepeat(w, ' ', padLen-len(sVal))
		// converting the string to a byte slice would allocate so we
		// emit it one byte at a time.
		for i := 0; i < len(sVal); i++ {
			writeByte(w, sVal[i])
		}
	case []byte:
		fmtRepeat(w, ' ', padLen-len(sVal))
		doWrite(w, sVal)
	default:
		doWrite(w, errWrongType)
	}
}

// fmtRepeat writes count bytes with value ch.
func fmtRepeat(w io.Writer, ch byte, count int) {
	for i := 0; i < count; i++ {
		writeByte(w, ch)
	}
}

// fmtInt prints out a formatted version of v in the requested base, applying
// the padding specified by padLen. This function supports all built-in
// signed and unsigned integer types and base 8, 10 and 16 output.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		uVal     uint64
		negative bool
	)

	switch val := v.(type) {
	case uint8:
		uVal = uint64(val)
	case uint16:
		uVal = uint64(val)
	case uint32:
		uVal = uint64(val)
	case uint64:
		uVal = val
	case uint:
		uVal = uint64(val)
	case uintptr:
		uVal = uint64(val)
	case int8:
		negative = val < 0
		uVal = abs64(int64(val))
	case int16:
		negative = val < 0
		uVal = abs64(int64(val))
	case int32:
		negative = val < 0
		uVal = abs64(int64(val))
	case int64:
		negative = val < 0
		uVal = abs64(val)
	case int:
		negative = val < 0
		uVal = abs64(int64(val))
	default:
		doWrite(w, errWrongType)
		return
	}

	padCh := byte('0')
	if base == 10 {
		padCh = ' '
	}
	if padLen >= numBufSize {
		padLen = numBufSize - 1
	}

	index := numBufSize
	for {
		index--
		numBuf[index] = "0123456789abcdef"[uVal%uint64(base)]
		uVal /= uint64(base)
		if uVal == 0 {
			break
		}
	}

	if negative {
		index--
		numBuf[index] = '-'
	}

	for numBufSize-index < padLen {
		index--
		numBuf[index] = padCh
	}

	doWrite(w, numBuf[index:])
}

// abs64 returns the absolute value of v as an unsigned integer.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// writeByte emits a single byte through the shared single-byte buffer.
func writeByte(w io.Writer, ch byte) {
	singleByte[0] = ch
	doWrite(w, singleByte)
}

// doWrite writes p to w, redirecting to the early buffer while no sink is
// registered.
func doWrite(w io.Writer, p []byte) {
	if w == nil {
		w = &earlyBuf
	}
	w.Write(p)
}
