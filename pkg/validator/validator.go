// Package validator performs pre-run input validation for the Dem Bones tool.
//
// Validation is exhaustive: every applicable violation is collected into one
// ordered list rather than stopping at the first, so the operator can fix all
// inputs in a single pass. Check order is fixed: source mesh, target mesh,
// distinctness, frame range, parameters, topology.
package validator

import (
	"fmt"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
	"github.com/riglab/dembones/pkg/topology"
)

// MsgTopologyMismatch is the canonical topology failure message.
const MsgTopologyMismatch = "Source and target meshes do not have matching topology"

// ValidateMesh checks presence and existence of a single mesh reference.
// label is the capitalized role used in messages ("Source mesh", "Target mesh").
func ValidateMesh(host ports.Host, meshPath, label string) []*Violation {
	var out []*Violation
	switch {
	case meshPath == "":
		out = append(out, &Violation{Check: "mesh", Message: label + " is not set"})
	case !host.ObjectExists(meshPath):
		out = append(out, &Violation{Check: "mesh", Message: label + " does not exist"})
	}
	return out
}

// ValidateFrameRange requires a strictly increasing frame range.
func ValidateFrameRange(startFrame, endFrame int) []*Violation {
	if startFrame >= endFrame {
		return []*Violation{{
			Check: "frame_range",
			Message: fmt.Sprintf("Start frame (%d) must be less than end frame (%d)",
				startFrame, endFrame),
		}}
	}
	return nil
}

// ValidateParameters requires both solver parameters to be at least 1.
func ValidateParameters(globalIters, numBones int) []*Violation {
	var out []*Violation
	if globalIters < 1 {
		out = append(out, &Violation{Check: "global_iters", Message: "Global iterations must be at least 1"})
	}
	if numBones < 1 {
		out = append(out, &Violation{Check: "num_bones", Message: "Number of bones must be at least 1"})
	}
	return out
}

// ValidateAll composes every check and returns all violations found, in check
// order. The topology gate only runs when both meshes resolve, so a missing
// mesh never produces a redundant mismatch message.
func ValidateAll(host ports.Host, source, target string, params domain.RunParams) (bool, []string) {
	var violations []*Violation

	violations = append(violations, ValidateMesh(host, source, "Source mesh")...)
	violations = append(violations, ValidateMesh(host, target, "Target mesh")...)

	if source != "" && target != "" && source == target {
		violations = append(violations, &Violation{
			Check:   "distinct",
			Message: "Source and target meshes cannot be the same",
		})
	}

	violations = append(violations, ValidateFrameRange(params.StartFrame, params.EndFrame)...)
	violations = append(violations, ValidateParameters(params.GlobalIters, params.NumBones)...)

	if source != "" && target != "" &&
		host.ObjectExists(source) && host.ObjectExists(target) {
		if report := topology.Compare(host, source, target); !report.Match {
			violations = append(violations, &Violation{
				Check:   "topology",
				Message: MsgTopologyMismatch,
			})
		}
	}

	if len(violations) > 0 {
		agg := &AggregateError{Violations: violations}
		return false, agg.Messages()
	}
	return true, nil
}
