/*
Package ports defines the interfaces between the tool's core logic and the
outside world: the hosting scene, the external solver command and the state
store. Concrete implementations live under internal/adapters (filesystem,
process) and pkg/adapters/memory (tests).
*/
package ports
