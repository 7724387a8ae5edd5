package domain

import "fmt"

// RunParams are the integer parameters forwarded verbatim to the solver.
type RunParams struct {
	StartFrame  int `json:"start_frame" yaml:"start_frame" mapstructure:"start_frame"`
	EndFrame    int `json:"end_frame" yaml:"end_frame" mapstructure:"end_frame"`
	GlobalIters int `json:"global_iters" yaml:"global_iters" mapstructure:"global_iters"`
	NumBones    int `json:"num_bones" yaml:"num_bones" mapstructure:"num_bones"`
}

// SolveJob is a fully resolved request for the external solver command.
type SolveJob struct {
	SourceMesh string    `json:"source_mesh"`
	TargetMesh string    `json:"target_mesh"`
	Params     RunParams `json:"params"`
}

// RunResult reports the outcome of a single solver invocation.
// Message is operator-facing; Output carries the raw solver log when available.
type RunResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
}

// ToolState is the controller's persistent snapshot: the two mesh references
// currently bound to the session. It survives between CLI invocations so that
// 'source', 'target' and 'run' compose.
type ToolState struct {
	SourceMesh string `json:"source_mesh"`
	TargetMesh string `json:"target_mesh"`
}

// SuccessMessage formats the canonical post-run message shown to the operator.
func SuccessMessage(numBones int, targetPath string) string {
	return fmt.Sprintf("SUCCESS! %d bones created on '%s'", numBones, ShortName(targetPath))
}
