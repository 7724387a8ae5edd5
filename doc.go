// Package dembones is an operator layer around the Dem Bones skinning
// decomposition solver. It binds a source (skinned) and target (blendshape
// or cached) mesh pair from the scene selection, validates the pair and the
// solve parameters, compares mesh topology, and drives the external solver
// binary over a frame range.
//
// The library surface lives under pkg/: domain types in pkg/domain, the
// host/solver/store ports in pkg/ports, and the session controller in
// pkg/controller. The dembones command wires those to a scene directory and
// adds installation tooling for the host application.
package dembones
