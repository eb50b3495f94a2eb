package geom

import "github.com/pkg/errors"

// Error kinds shared by the pipeline. Stages wrap these with context, so test
// for them with errors.Is.
var (
	// ErrInvalidPolygon reports a boundary that cannot be triangulated: fewer
	// than three points, coincident consecutive points or a self-intersection.
	ErrInvalidPolygon = errors.New("polysample: invalid polygon")
	// ErrDegenerateGeometry reports a triangulation with zero total area.
	ErrDegenerateGeometry = errors.New("polysample: degenerate geometry")
	// ErrInvalidArgument reports a bad count or radius, rejected before any work.
	ErrInvalidArgument = errors.New("polysample: invalid argument")
)
