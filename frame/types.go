package frame

import "errors"

// Sentinel errors returned by ToCanonical.
var (
	// ErrTooFew indicates that the polygon has fewer than three vertices.
	ErrTooFew = errors.New("frame: polygon needs at least 3 vertices")

	// ErrEdgeIndex indicates an edge index outside [0, len(p)).
	ErrEdgeIndex = errors.New("frame: edge index out of range")

	// ErrZeroEdge indicates that the chosen edge has zero length and so
	// admits no orientation.
	ErrZeroEdge = errors.New("frame: reference edge has zero length")
)

// Options configures ToCanonical.
//
// InPlace — reindex and rotate the caller's vertex slice instead of cloning
// it. With the default (false) the input polygon is left untouched and the
// canonical polygon owns fresh storage; with InPlace the returned polygon
// aliases the input.
type Options struct {
	InPlace bool // mutate the caller's vertex slice
}

// DefaultOptions returns the default configuration: the input polygon is
// cloned, never mutated.
func DefaultOptions() Options {
	return Options{InPlace: false}
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
