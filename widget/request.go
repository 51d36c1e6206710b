package widget

import (
	"fmt"

	"github.com/lixenwraith/tuikit/geom"
)

// DimensionKind classifies a per-axis size constraint
type DimensionKind uint8

const (
	DimensionUnknown DimensionKind = iota // unbounded
	DimensionExactly
	DimensionAtMost
)

// DimensionRequest is the space a parent offers a child on one axis
type DimensionRequest struct {
	Kind DimensionKind
	N    int
}

// Unknown is an unbounded request
func Unknown() DimensionRequest {
	return DimensionRequest{Kind: DimensionUnknown}
}

// Exactly requests exactly n cells
func Exactly(n int) DimensionRequest {
	return DimensionRequest{Kind: DimensionExactly, N: max(n, 0)}
}

// AtMost offers up to n cells
func AtMost(n int) DimensionRequest {
	return DimensionRequest{Kind: DimensionAtMost, N: max(n, 0)}
}

// Reduced removes offset cells from a bounded request, saturating at zero
func (d DimensionRequest) Reduced(offset int) DimensionRequest {
	if d.Kind == DimensionUnknown {
		return d
	}
	return DimensionRequest{Kind: d.Kind, N: max(d.N-offset, 0)}
}

// Limit returns the bound and whether there is one
func (d DimensionRequest) Limit() (int, bool) {
	return d.N, d.Kind != DimensionUnknown
}

func (d DimensionRequest) String() string {
	switch d.Kind {
	case DimensionExactly:
		return fmt.Sprintf("exactly(%d)", d.N)
	case DimensionAtMost:
		return fmt.Sprintf("at_most(%d)", d.N)
	default:
		return "unknown"
	}
}

// SizeRequest pairs the per-axis constraints of a size negotiation
type SizeRequest struct {
	W DimensionRequest
	H DimensionRequest
}

// Unbounded offers unlimited space on both axes
func Unbounded() SizeRequest {
	return SizeRequest{W: Unknown(), H: Unknown()}
}

// AtMostSize offers up to size on both axes
func AtMostSize(size geom.Vec2) SizeRequest {
	return SizeRequest{W: AtMost(size.X), H: AtMost(size.Y)}
}

// Reduced removes offset from both axes
func (r SizeRequest) Reduced(offset geom.Vec2) SizeRequest {
	return SizeRequest{W: r.W.Reduced(offset.X), H: r.H.Reduced(offset.Y)}
}
