package graph

import "errors"

var (
	// ErrTypeMismatch is returned when a PropertyValue is accessed as a kind
	// it does not hold. It signals a logic error in the caller, not bad data.
	ErrTypeMismatch = errors.New("property value kind mismatch")

	// ErrDanglingReference is returned by AddEdge when an endpoint id does not
	// name a stored node. The caller should re-resolve the entity and retry.
	ErrDanglingReference = errors.New("edge endpoint does not exist")

	// ErrDuplicateID is returned by AddEdge when the given edge id is already
	// in use. Reusing an id would silently desynchronize the adjacency index,
	// so the store rejects it instead.
	ErrDuplicateID = errors.New("id already in use")
)
