package mesh

import "errors"

var (
	// ErrTransportNil indicates that a nil Transport was provided.
	ErrTransportNil = errors.New("transport is nil")

	// ErrRegistryNil indicates that a nil opcode registry was provided.
	ErrRegistryNil = errors.New("registry is nil")

	// ErrElementClosed indicates an operation on a closed element.
	ErrElementClosed = errors.New("element closed")

	// ErrOpcodeBound indicates that a handler is already bound to the opcode.
	ErrOpcodeBound = errors.New("handler already bound to opcode")

	// ErrTaskExists indicates that a task with the same name is already
	// running.
	ErrTaskExists = errors.New("task already exists")
)
