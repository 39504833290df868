// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

const errPrefix = "raster3d: "

// Kind identifies a class of pipeline error. Callers can test for a
// specific kind with errors.Is(err, raster3d.SomeKind).
type Kind int

// Error kinds.
const (
	// InvalidDimensions is returned by InitializeRender when W or H
	// is <= 0.
	InvalidDimensions Kind = iota + 1

	// Uninitialized is returned by Render when called before a
	// successful InitializeRender, or with a nil shader.
	Uninitialized

	// InvalidRenderType is returned by Render when the RenderType is
	// not one of List, Indexed, Fan or Strip.
	InvalidRenderType

	// OutOfRangeIndex is reported (via the logger, see SetLogger) when
	// an Indexed primitive references a vertex outside [0, NumVertices).
	// The offending triangle is skipped; Render itself does not fail.
	OutOfRangeIndex
)

func (k Kind) String() string {
	switch k {
	case InvalidDimensions:
		return "invalid dimensions"
	case Uninitialized:
		return "uninitialized"
	case InvalidRenderType:
		return "invalid render type"
	case OutOfRangeIndex:
		return "out of range index"
	default:
		return "unknown error"
	}
}

// Error implements the error interface, so a bare Kind can be
// returned and compared against with errors.Is.
func (k Kind) Error() string { return errPrefix + k.String() }

// pipelineError pairs a Kind with a specific reason, so errors.Is
// still matches the Kind while the message carries detail.
type pipelineError struct {
	kind   Kind
	reason string
}

func (e *pipelineError) Error() string { return errPrefix + e.reason }

func (e *pipelineError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

func newErr(kind Kind, reason string) error {
	return &pipelineError{kind: kind, reason: reason}
}
