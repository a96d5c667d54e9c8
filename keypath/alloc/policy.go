package alloc

import "github.com/joshuapare/pathkit/internal/format"

// Growth policy for path buffer allocations.
//
// The policy reserves headroom at construction so that the common pattern
// (build a path, then descend a handful of subscripts below it) extends the
// original arena instead of reallocating. Deeper descents still work; they
// just pay for one more allocation.

const (
	// ScratchRegionSize is the default region size for a ScratchArena:
	// enough for a full-depth path of typical subscripts, twice over, so
	// one copy-on-write inside a call still fits the region.
	ScratchRegionSize = 2 * (format.ScratchSubsLen + format.MaxVarnameLen + 1)
)

// SlotCapacity returns the number of subscript slots to reserve for a path
// of the given depth, including headroom. The result never exceeds
// MaxSubscripts, since no path can use more slots than that.
func SlotCapacity(depth int) int {
	c := depth + format.SlotHeadroom
	if c > format.MaxSubscripts {
		c = format.MaxSubscripts
	}
	if c < depth {
		c = depth
	}
	return c
}

// ByteCapacity returns the arena size to reserve for a path whose varname
// and subscripts total need bytes, including byte headroom matching the
// reserved slots. The result is capped at MaxPathBytes; callers validate
// their payload against the hard limits before allocating.
func ByteCapacity(need int) int {
	c := need + format.SlotHeadroom*format.TypicalSubLen
	if c > format.MaxPathBytes {
		c = format.MaxPathBytes
	}
	if c < need {
		c = need
	}
	return c
}
