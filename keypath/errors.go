package keypath

import "errors"

var (
	// ErrTooManySubscripts indicates a requested or derived depth exceeds the
	// engine's maximum subscript count.
	ErrTooManySubscripts = errors.New("keypath: too many subscripts")

	// ErrInvalidSubscriptType indicates a subscript value that is neither a
	// byte string nor numeric-coercible.
	ErrInvalidSubscriptType = errors.New("keypath: subscript is not a string or number")

	// ErrNotMutable indicates a substitution attempted on a buffer that was
	// not produced by ToMutable, or whose handle does not expose every
	// populated slot.
	ErrNotMutable = errors.New("keypath: buffer is not a mutable cursor")

	// ErrInvalidDepth indicates an introspection or render depth outside the
	// populated range.
	ErrInvalidDepth = errors.New("keypath: depth out of range")

	// ErrCorruptDepth indicates a handle whose declared depth is negative or
	// exceeds its buffer's populated depth. This is an internal-consistency
	// guard, not a caller-misuse error.
	ErrCorruptDepth = errors.New("keypath: corrupt handle depth")

	// ErrInvalidVarname indicates an empty variable name or one longer than
	// the engine permits.
	ErrInvalidVarname = errors.New("keypath: invalid variable name")

	// ErrSubscriptTooLong indicates a single subscript longer than the
	// engine's maximum string length.
	ErrSubscriptTooLong = errors.New("keypath: subscript exceeds maximum length")

	// ErrPathTooBig indicates the combined varname and subscript bytes
	// exceed the maximum size of one path allocation.
	ErrPathTooBig = errors.New("keypath: path exceeds maximum total size")
)
