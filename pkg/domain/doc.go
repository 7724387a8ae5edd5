/*
Package domain contains the core domain models for the Dem Bones tool.

It defines the fundamental entities of a decomposition run: mesh references,
topology signatures, run parameters and run outcomes. This package is kept pure
and free of external dependencies like I/O or process execution, following
Hexagonal Architecture principles.

# Key Entities

  - Mesh reference: an opaque, '|'-separated path to a scene object.
  - Signature: per-mesh vertex/face/edge counts used as a match gate.
  - RunParams: the four integer parameters forwarded to the solver.
  - ToolState: the source/target pair held by the controller between runs.
*/
package domain
