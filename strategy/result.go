package strategy

import (
	"fmt"

	"github.com/tessellate/meshfront/meshmodel"
)

// MeshingFailed describes why the outer loop gave up without closing
// the front: it is carried as data on Result rather than
// returned as an error, since a mesh-time failure is not a caller
// bug — the partial mesh is still meaningful for inspection.
type MeshingFailed struct {
	// Reason is a short, human-readable description of what stalled
	// progress (e.g. "normal and wide-search passes both exhausted
	// the front without a commit").
	Reason string
	// NGenerated is how many facets had been committed when the loop
	// gave up.
	NGenerated int
}

func (f *MeshingFailed) Error() string {
	return fmt.Sprintf("meshing failed after %d elements: %s", f.NGenerated, f.Reason)
}

// Result is what Run always returns: a value, never a raised error.
// Mesh is populated on both success and failure — on failure it holds
// the partial mesh generated so far, still internally consistent.
type Result struct {
	Success bool
	Mesh    *meshmodel.Mesh
	NElems  int
	Failure *MeshingFailed
}

// Err returns the failure as an error, or nil on success, for callers
// that want ordinary Go error-handling idiom at the call site despite
// the structured-value propagation policy underneath.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return r.Failure
}
