// Package topology compares the topology of two scene meshes through the
// Host evaluation port.
package topology

import (
	"fmt"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Compare evaluates both meshes and reports whether their signatures match.
// An unresolvable mesh surfaces as a non-match with the cause in Detail; the
// caller never has to handle a failure separately from a mismatch.
func Compare(host ports.Host, source, target string) domain.TopologyReport {
	report := domain.TopologyReport{
		Source: domain.MeshInfo{Name: domain.ShortName(source)},
		Target: domain.MeshInfo{Name: domain.ShortName(target)},
	}

	srcSig, err := host.Topology(source)
	if err != nil {
		report.Detail = fmt.Sprintf("failed to evaluate '%s': %v", report.Source.Name, err)
		return report
	}
	report.Source.Signature = srcSig

	tgtSig, err := host.Topology(target)
	if err != nil {
		report.Detail = fmt.Sprintf("failed to evaluate '%s': %v", report.Target.Name, err)
		return report
	}
	report.Target.Signature = tgtSig

	report.Match = srcSig.Equal(tgtSig)
	return report
}
