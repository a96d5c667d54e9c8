// Package format houses the engine-defined limits and low-level
// classification rules for hierarchical key paths. The goal is to keep these
// constants in one place, independent from the public API, so higher-level
// packages can validate and render paths without duplicating engine lore.
package format

const (
	// MaxSubscripts is the maximum number of subscripts the engine accepts
	// in a single key path. Paths reaching exactly this depth are valid;
	// deriving one subscript deeper is an error.
	MaxSubscripts = 31

	// MaxVarnameLen is the maximum length of a variable name in bytes,
	// excluding the optional leading '^' that marks a global name.
	MaxVarnameLen = 31

	// MaxSubscriptLen is the maximum length of a single subscript in bytes.
	// This matches the engine's maximum string length (1 MiB).
	MaxSubscriptLen = 1 << 20

	// MaxPathBytes bounds the total byte payload of one path allocation:
	// varname plus every subscript. It exists so a single corrupt length
	// can never drive an arena allocation into gigabytes.
	MaxPathBytes = MaxSubscripts*MaxSubscriptLen + 1 + MaxVarnameLen

	// TypicalSubLen is the working guess for the byte length of a subscript,
	// used when reserving byte headroom at construction time. Small integer
	// and short string subscripts dominate real workloads.
	TypicalSubLen = 10

	// SlotHeadroom is the number of spare subscript slots reserved beyond
	// the requested depth at construction time. Most callers descend at
	// most this many levels below their starting node, so the headroom
	// lets those descents extend the same arena without reallocating.
	SlotHeadroom = 5

	// ScratchSubsLen is the byte-headroom companion of a full-depth scratch
	// allocation: enough subscript bytes for MaxSubscripts typical entries.
	ScratchSubsLen = TypicalSubLen * MaxSubscripts
)
