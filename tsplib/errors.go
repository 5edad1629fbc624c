// Package tsplib — sentinel errors for the instance loader.
//
// One sentinel per failure category of the TSPLIB95 reading pipeline;
// call sites wrap the sentinel with the offending token or line so that
// errors.Is keeps the category while the message stays precise.
package tsplib

import (
	"errors"
	"fmt"
)

// Loader error categories.
var (
	// ErrIO indicates the instance file could not be read.
	ErrIO = errors.New("tsplib: cannot read instance file")

	// ErrInvalidKeyword indicates an unrecognised header or section keyword.
	ErrInvalidKeyword = errors.New("tsplib: invalid keyword")

	// ErrInvalidProblemType indicates a TYPE value outside the TSPLIB95 domain.
	ErrInvalidProblemType = errors.New("tsplib: invalid TYPE value")

	// ErrInvalidDimension indicates a missing or malformed DIMENSION value.
	ErrInvalidDimension = errors.New("tsplib: invalid DIMENSION value")

	// ErrInvalidEdgeWeightType indicates an EDGE_WEIGHT_TYPE outside the TSPLIB95 domain.
	ErrInvalidEdgeWeightType = errors.New("tsplib: invalid EDGE_WEIGHT_TYPE value")

	// ErrInvalidEdgeWeightFormat indicates an EDGE_WEIGHT_FORMAT outside the TSPLIB95 domain.
	ErrInvalidEdgeWeightFormat = errors.New("tsplib: invalid EDGE_WEIGHT_FORMAT value")

	// ErrInvalidEdgeDataFormat indicates an EDGE_DATA_FORMAT outside the TSPLIB95 domain.
	ErrInvalidEdgeDataFormat = errors.New("tsplib: invalid EDGE_DATA_FORMAT value")

	// ErrInvalidNodeCoordType indicates a NODE_COORD_TYPE outside the TSPLIB95 domain.
	ErrInvalidNodeCoordType = errors.New("tsplib: invalid NODE_COORD_TYPE value")

	// ErrInvalidDisplayDataType indicates a DISPLAY_DATA_TYPE outside the TSPLIB95 domain.
	ErrInvalidDisplayDataType = errors.New("tsplib: invalid DISPLAY_DATA_TYPE value")

	// ErrUnsupported indicates a well-formed instance the solver cannot
	// handle (EXPLICIT matrices, 3D metrics, non-TSP problem types, …).
	ErrUnsupported = errors.New("tsplib: unsupported instance feature")

	// ErrDataSection indicates truncated or malformed coordinate data.
	ErrDataSection = errors.New("tsplib: malformed data section")
)

// wrapToken attaches the offending token/line to a category sentinel.
func wrapToken(sentinel error, token string) error {
	return fmt.Errorf("%w: %q", sentinel, token)
}
