package aggregate

import "github.com/pkg/errors"

// Precondition errors returned by Aggregate. They are wrapped with the
// offending axis where one exists; test with errors.Is.
var (
	ErrNilOperator  = errors.New("aggregate: nil operator")
	ErrNilView      = errors.New("aggregate: nil view")
	ErrScalarView   = errors.New("aggregate: view has rank 0")
	ErrEmpty        = errors.New("aggregate: view has no elements")
	ErrInvalidShape = errors.New("aggregate: negative axis length")
)
