package domain

import "errors"

// ErrObjectNotFound is returned when a mesh reference no longer resolves in the scene.
var ErrObjectNotFound = errors.New("object not found")

// ErrNoSelection is returned when a selection-dependent operation runs with nothing selected.
var ErrNoSelection = errors.New("nothing selected")

// ErrStateNotFound is returned when no persisted tool state exists for the scene.
var ErrStateNotFound = errors.New("tool state not found")

// ErrSolverUnavailable is returned when the external Dem Bones command cannot be located.
var ErrSolverUnavailable = errors.New("solver unavailable")
