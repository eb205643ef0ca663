// Package erosion wires the labelling, SDF-L, quantized-interpolation,
// flood-fill, field-operator, contour-flow, smart-blur and envelope/
// gradient-texture stages into a single command registry, following the
// CommandSpec/ArgSpec pattern the teacher uses in pkg/stdimg/commands.go.
package erosion

import "github.com/Fepozopo/erosion/pkg/errs"

// Code, Error and the sentinel errors are aliased from pkg/errs so that
// callers of this package see one consistent error surface without
// pkg/erosion having to depend on (and cycle through) the domain
// packages that also report errs.Error values.
type (
	Code  = errs.Code
	Error = errs.Error
)

const (
	CodeOK              = errs.CodeOK
	CodeInvalidArgument = errs.CodeInvalidArgument
	CodeAllocation      = errs.CodeAllocation
	CodeIterationLimit  = errs.CodeIterationLimit
	CodeShapeMismatch   = errs.CodeShapeMismatch
)

var (
	ErrInvalidArgument = errs.ErrInvalidArgument
	ErrAllocation      = errs.ErrAllocation
	ErrIterationLimit  = errs.ErrIterationLimit
	ErrShapeMismatch   = errs.ErrShapeMismatch

	InvalidArgument = errs.InvalidArgument
	ShapeMismatch   = errs.ShapeMismatch
	IterationLimit  = errs.IterationLimit
	Allocation      = errs.Allocation
)
