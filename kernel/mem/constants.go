package mem

import "unsafe"

const (
	// WordSize is the size of a machine word for this build. The original
	// target ties register and pointer width together so the stack layout
	// code below expresses all offsets in multiples of WordSize.
	WordSize = Size(unsafe.Sizeof(uintptr(0)))

	// StackAlign is the alignment required for stack pointers and for the
	// base of the initial context record carved from a stack.
	StackAlign = WordSize
)
