// Package strategy drives the outer advancing-front loop: repeatedly
// pulls a base edge from the front, hands it to the front-update
// decision kernel, and reacts to commit/reject/escalate/terminate as
// a fixed-order phased state machine with no branching on the
// caller's part. There is no fixed iteration count to march through;
// termination is data-driven instead.
package strategy

import (
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/front"
	"github.com/tessellate/meshfront/frontupdate"
	"github.com/tessellate/meshfront/meshmodel"
)

// Config is the full set of generation tunables, passed once at
// construction — no fluent setter chain and no mutation once a run
// starts.
type Config struct {
	FrontUpdate frontupdate.Config
	// NElements bounds the run to exactly this many committed
	// facets. Zero or negative means
	// unbounded: run until the front empties or fails.
	NElements int
	// FacetCellSize sizes the frontupdate engine's facet-overlap
	// index; see frontupdate.NewEngine.
	FacetCellSize float64
}

// DefaultConfig returns FrontUpdate tunables at their documented
// defaults and an unbounded NElements.
func DefaultConfig(facetCellSize float64) Config {
	return Config{
		FrontUpdate:   frontupdate.DefaultConfig(),
		NElements:     0,
		FacetCellSize: facetCellSize,
	}
}

// Strategy owns one generation run over a single Domain/Mesh/Front
// triple. It is built once per run; Run drives it to completion.
type Strategy struct {
	domain *boundary.Domain
	mesh   *meshmodel.Mesh
	front  *front.Front
	engine *frontupdate.Engine
	cfg    Config

	Events Events
}

// New builds a Strategy over domain's mesh, seeding the front from
// every boundary edge in the domain and constructing the decision kernel.
func New(domain *boundary.Domain, cfg Config) *Strategy {
	mesh := domain.Mesh
	fr := front.New(mesh)
	for _, e := range domain.AllBoundaryEdges() {
		fr.Push(e)
	}
	fr.Sort(true)

	engine := frontupdate.NewEngine(mesh, domain, fr, cfg.FacetCellSize, cfg.FrontUpdate)

	return &Strategy{
		domain: domain,
		mesh:   mesh,
		front:  fr,
		engine: engine,
		cfg:    cfg,
	}
}

// Front exposes the strategy's front, mainly for tests and for
// callers inspecting state after a bounded-mode run.
func (s *Strategy) Front() *front.Front { return s.front }

// Run executes the outer loop to completion and returns a Result;
// it never panics on an ordinary meshing failure — giving up is a
// normal, data-carrying outcome.
func (s *Strategy) Run() Result {
	base, ok := s.front.SetBaseFirst()
	nGenerated := 0
	iteration := 0
	wideSearch := false

	for {
		if s.front.Size() == 0 {
			return s.finish(Result{Success: true, Mesh: s.mesh, NElems: nGenerated})
		}
		if s.cfg.NElements > 0 && nGenerated == s.cfg.NElements {
			return s.finish(Result{Success: true, Mesh: s.mesh, NElems: nGenerated})
		}
		if !ok {
			// The front is non-empty but has no base (shouldn't
			// happen given the Size()==0 check above; defensive).
			return s.finish(Result{
				Success: false,
				Mesh:    s.mesh,
				NElems:  nGenerated,
				Failure: &MeshingFailed{Reason: "front non-empty but no base edge available", NGenerated: nGenerated},
			})
		}

		var result frontupdate.Result
		if wideSearch {
			result = s.engine.AdvanceWideSearch(base)
		} else {
			result = s.engine.Advance(base)
		}

		if result.Outcome == frontupdate.Committed {
			nGenerated++
			s.mesh.ClearWaste()
			s.Events.emit(Event{Type: ElementCommitted, Facet: result.Facet, NElems: nGenerated})

			if wideSearch {
				wideSearch = false
				s.front.Sort(true)
				s.Events.emit(Event{Type: WideSearchExited})
			}
			iteration = 0
			base, ok = s.front.SetBaseFirst()
			continue
		}

		iteration++
		if iteration == s.front.Size() {
			if !wideSearch {
				wideSearch = true
				iteration = 0
				s.Events.emit(Event{Type: WideSearchEntered})
			} else {
				return s.finish(Result{
					Success: false,
					Mesh:    s.mesh,
					NElems:  nGenerated,
					Failure: &MeshingFailed{
						Reason:     "normal and wide-search passes both exhausted the front without a commit",
						NGenerated: nGenerated,
					},
				})
			}
		}
		base, ok = s.front.SetBaseNext()
	}
}

func (s *Strategy) finish(r Result) Result {
	RunCleanup(s.mesh)
	s.Events.emit(Event{Type: Finished, NElems: r.NElems, Result: &r})
	return r
}
