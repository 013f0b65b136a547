package instance

import "errors"

// Sentinel InvalidInstance errors (spec §7). All are fatal and surfaced to
// the caller of Load/Parse without wrapping in a custom error type, since
// the message itself carries the diagnostic detail.
var (
	// ErrCannotOpen is returned when the instance path cannot be read.
	ErrCannotOpen = errors.New("instance: cannot open file")

	// ErrUnsupportedEdgeWeightType is returned for any EDGE_WEIGHT_TYPE other
	// than EXPLICIT or EUC_2D.
	ErrUnsupportedEdgeWeightType = errors.New("instance: only EDGE_WEIGHT_TYPE EXPLICIT or EUC_2D are understood")

	// ErrUnsupportedEdgeWeightFormat is returned when EDGE_WEIGHT_TYPE is
	// EXPLICIT but EDGE_WEIGHT_FORMAT is not FULL_MATRIX.
	ErrUnsupportedEdgeWeightFormat = errors.New("instance: only EDGE_WEIGHT_FORMAT FULL_MATRIX is understood when EDGE_WEIGHT_TYPE is EXPLICIT")

	// ErrUnknownSection is returned for a section header the parser does not
	// recognize.
	ErrUnknownSection = errors.New("instance: unrecognized section")

	// ErrNonzeroDepotDemand is returned when the depot's demand is not 0.
	ErrNonzeroDepotDemand = errors.New("instance: nonzero depot demand")

	// ErrNonzeroDepotService is returned when the depot's service duration is
	// not 0.
	ErrNonzeroDepotService = errors.New("instance: nonzero depot service duration")

	// ErrNonzeroDepotRelease is returned when the depot's release time is not
	// 0.
	ErrNonzeroDepotRelease = errors.New("instance: nonzero depot release time")

	// ErrNonzeroDepotTWEarly is returned when the depot's time window does not
	// open at 0.
	ErrNonzeroDepotTWEarly = errors.New("instance: nonzero depot time window open")

	// ErrInvalidTimeWindow is returned when a client's twEarly >= twLate.
	ErrInvalidTimeWindow = errors.New("instance: time window early must be before late")

	// ErrDepotID is returned when DEPOT_SECTION does not start with id 1.
	ErrDepotID = errors.New("instance: depot id must be 1")

	// ErrMultipleDepots is returned when DEPOT_SECTION contains more than
	// one depot.
	ErrMultipleDepots = errors.New("instance: expected exactly one depot")

	// ErrDimensionMismatch is returned when the distance matrix does not
	// match the declared DIMENSION.
	ErrDimensionMismatch = errors.New("instance: distance matrix does not match problem size")

	// ErrMissingDimension is returned when no DIMENSION section precedes a
	// section that depends on it.
	ErrMissingDimension = errors.New("instance: DIMENSION must appear before client sections")

	// ErrMalformedSection is returned when a section's data cannot be parsed
	// as the expected number of whitespace-separated tokens.
	ErrMalformedSection = errors.New("instance: malformed section data")
)
