package easel

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParent is returned by operations that composite into a parent
	// (PasteToParent, ChildHandle.Paste) when the node is detached.
	ErrNoParent = errors.New("easel: node has no parent")

	// ErrDisposed is returned when rendering or pasting a disposed node.
	ErrDisposed = errors.New("easel: node is disposed")

	// ErrReservedKey is wrapped by the MisuseError raised when a property or
	// state key uses the reserved "$" namespace.
	ErrReservedKey = errors.New("easel: key uses the reserved \"$\" namespace")

	// ErrUnknownChild is returned by a ChildHandle whose name is not registered
	// on the rendering node.
	ErrUnknownChild = errors.New("easel: unknown child")
)

// RenderError reports a drawing-logic slot that returned an error. The
// surface state of the slot has been restored; the node stays stale with the
// failing slot still pending.
type RenderError struct {
	Node string
	Slot int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("easel: render %q slot %d: %v", e.Node, e.Slot, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// MisuseError is the panic value for programmer errors: reserved keys, nil
// or cyclic children, operations on disposed nodes.
type MisuseError struct {
	Op  string
	Err error
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("easel: %s: %v", e.Op, e.Err)
}

func (e *MisuseError) Unwrap() error { return e.Err }

// misuse panics with a MisuseError.
func misuse(op string, err error) {
	panic(&MisuseError{Op: op, Err: err})
}
