// Package frontupdate implements the decision kernel that the outer
// strategy loop drives one base edge at a time: given a front edge,
// it either commits a new triangle — reusing a nearby vertex or
// placing a fresh one — or rejects the edge outright. The candidate
// pipeline collects nearby geometry with a cheap spatial query first,
// then filters the result through a sequence of more expensive
// geometric predicates.
package frontupdate

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/front"
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/meshmodel"
	"github.com/tessellate/meshfront/spatial"
)

// Config holds the decision kernel's tunables, carried as a plain
// record rather than a fluent setter chain.
type Config struct {
	// MeshRangeFactor scales the candidate search radius relative to
	// the base edge's length.
	MeshRangeFactor float64
	// WideSearchFactor multiplies the search radius when the
	// strategy has escalated to wide search.
	WideSearchFactor float64
	// BaseVertexFactor scales the equilateral-triangle height used to
	// propose a new vertex position.
	BaseVertexFactor float64
	// MinCellQuality lower-bounds a candidate triangle's smallest
	// interior angle, in radians.
	MinCellQuality float64
	// MaxCellAngle upper-bounds a candidate triangle's largest
	// interior angle, in radians.
	MaxCellAngle float64
	// AngleCostWeight is the k factor in the candidate cost
	// C(v) = |v.xy-p*| + k*angle_penalty(e,v).
	AngleCostWeight float64
}

// DefaultConfig returns conservative tunable defaults: a mesh-range
// factor of 1.0, a wide-search multiplier of 10.0, a base-vertex
// factor of 1.5, 20deg/160deg angle bounds, and an angle-cost weight
// of 0.25.
func DefaultConfig() Config {
	return Config{
		MeshRangeFactor:  1.0,
		WideSearchFactor: 10.0,
		BaseVertexFactor: 1.5,
		MinCellQuality:   20 * math.Pi / 180,
		MaxCellAngle:     160 * math.Pi / 180,
		AngleCostWeight:  0.25,
	}
}

// equilateralHeightFactor is h = sqrt(3)/2, the height of an
// equilateral triangle of unit base.
const equilateralHeightFactor = 0.8660254037844386

// aMinFactor sets the minimum accepted (twice-)signed area for a
// candidate triangle to aMinFactor * e.length^2, scaling the
// degeneracy threshold with the base edge instead of using a fixed
// epsilon.
const aMinFactor = 1e-6

// Outcome distinguishes a committed triangle from a rejected base
// edge.
type Outcome int

const (
	Rejected Outcome = iota
	Committed
)

// Result is the decision kernel's return value: either a committed
// facet or a human-readable rejection reason, never both.
type Result struct {
	Outcome Outcome
	Facet   meshmodel.Handle
	Reason  string
}

// Engine owns the spatial index over committed facet centroids (used
// for the overlap check) and the tunables that parameterize candidate
// search and validation. The vertex index and
// containment tests come from the Domain; the active-edge set comes
// from the Front; neither is owned here.
type Engine struct {
	mesh   *meshmodel.Mesh
	domain *boundary.Domain
	front  *front.Front
	facets *spatial.Index[meshmodel.Handle]
	cfg    Config
}

// NewEngine returns an Engine wired to mesh/domain/fr, with its own
// facet-centroid index sized by facetCellSize (typically comparable
// to the domain's expected element size).
func NewEngine(mesh *meshmodel.Mesh, domain *boundary.Domain, fr *front.Front, facetCellSize float64, cfg Config) *Engine {
	return &Engine{
		mesh:   mesh,
		domain: domain,
		front:  fr,
		facets: spatial.NewIndex[meshmodel.Handle](facetCellSize, 64),
		cfg:    cfg,
	}
}

// SeedFacet registers a facet created outside the engine (e.g. by
// boundary/strategy bootstrap code) with the overlap index, keyed by
// its centroid. Facets this engine commits itself are registered by
// commit; strategy.Strategy does not call SeedFacet, so only facets
// passed here or committed by the engine take part in the overlap
// check.
func (e *Engine) SeedFacet(f meshmodel.Handle) {
	e.registerFacet(f)
}

func (e *Engine) registerFacet(f meshmodel.Handle) {
	facet := e.mesh.Facets.MustGet(f)
	e.facets.Insert(f, e.centroid(facet))
}

func (e *Engine) centroid(f *meshmodel.Facet) mgl64.Vec2 {
	n := f.NumVertices()
	sum := mgl64.Vec2{}
	for i := 0; i < n; i++ {
		sum = sum.Add(e.mesh.Vertices.MustGet(f.Vertices[i]).XY)
	}
	return sum.Mul(1.0 / float64(n))
}

// ProposePosition computes the proposed new-vertex position
// p* = midpoint(e) + normal(e)*min(h*k*len, size_function(midpoint(e))),
// offsetting outward from the base edge by whichever is smaller: an
// ideal equilateral-triangle height, or the domain's local size hint.
func (e *Engine) ProposePosition(baseEdge meshmodel.Handle) mgl64.Vec2 {
	edge := e.mesh.Edges.MustGet(baseEdge)
	ideal := equilateralHeightFactor * e.cfg.BaseVertexFactor * edge.Length
	offset := math.Min(ideal, e.domain.SizeFunction(edge.Midpoint))
	return edge.Midpoint.Add(edge.Normal.Mul(offset))
}

// Advance runs the full decision kernel for baseEdge: collects
// candidates, validates them in cost order, and commits the first
// that passes, searching within the normal radius. AdvanceWideSearch
// multiplies that radius by cfg.WideSearchFactor without relaxing any
// acceptability threshold.
func (e *Engine) Advance(baseEdge meshmodel.Handle) Result {
	return e.advance(baseEdge, false)
}

// AdvanceWideSearch is Advance with the search radius enlarged by
// cfg.WideSearchFactor, for use once the strategy has exhausted a
// normal pass of the front without progress.
func (e *Engine) AdvanceWideSearch(baseEdge meshmodel.Handle) Result {
	return e.advance(baseEdge, true)
}

func (e *Engine) advance(baseEdge meshmodel.Handle, wideSearch bool) Result {
	edge := e.mesh.Edges.MustGet(baseEdge)
	v1, v2 := edge.V1, edge.V2
	p1, p2 := e.mesh.Vertices.MustGet(v1).XY, e.mesh.Vertices.MustGet(v2).XY

	pStar := e.ProposePosition(baseEdge)
	radius := e.cfg.MeshRangeFactor * edge.Length
	if wideSearch {
		radius *= e.cfg.WideSearchFactor
	}

	candidates := e.collectCandidates(baseEdge, pStar, radius)

	for _, c := range candidates {
		pos := pStar
		if !c.isNew {
			pos = e.mesh.Vertices.MustGet(c.vertex).XY
		}
		if reason, ok := e.validate(baseEdge, v1, v2, p1, p2, c.vertex, pos, c.isNew); !ok {
			_ = reason
			continue
		}
		return e.commit(baseEdge, v1, v2, c.vertex, pos, c.isNew)
	}

	return Result{Outcome: Rejected, Reason: "no candidate passed validation"}
}

// candidate is one vertex (existing or synthetic) under consideration
// to close the triangle on baseEdge.
type candidate struct {
	vertex meshmodel.Handle // only meaningful when !isNew
	isNew  bool
	cost   float64
}

// collectCandidates builds the ordered candidate list: every vertex
// within radius of p*, e.v1 or e.v2 — three
// query centers, since a good closing vertex may sit near either
// endpoint of the base edge without being near the proposed new-point
// position — excluding v1 and v2 themselves (they're already two
// corners of the proposed triangle), each costed and sorted
// ascending, with the synthetic candidate p* appended last regardless
// of cost.
func (e *Engine) collectCandidates(baseEdge meshmodel.Handle, pStar mgl64.Vec2, radius float64) []candidate {
	edge := e.mesh.Edges.MustGet(baseEdge)
	p1 := e.mesh.Vertices.MustGet(edge.V1).XY
	p2 := e.mesh.Vertices.MustGet(edge.V2).XY
	dir := p2.Sub(p1)

	seen := make(map[meshmodel.Handle]bool)
	var list []candidate

	add := func(h meshmodel.Handle) {
		if seen[h] || h == edge.V1 || h == edge.V2 {
			return
		}
		seen[h] = true
		pos := e.mesh.Vertices.MustGet(h).XY
		list = append(list, candidate{vertex: h, cost: e.cost(pos, pStar, dir)})
	}

	for _, center := range [...]mgl64.Vec2{pStar, p1, p2} {
		for h := range e.domain.VerticesInRadius(center, radius) {
			add(h)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].cost != list[j].cost {
			return list[i].cost < list[j].cost
		}
		return list[i].vertex < list[j].vertex
	})

	list = append(list, candidate{vertex: meshmodel.Invalid, isNew: true, cost: math.Inf(1)})
	return list
}

// cost implements C(v) = |v.xy-p*| + k*angle_penalty(e,v): distance
// to the proposed position plus a penalty equal to the angle between
// the base edge's direction (v1->v2) and the vector from v to p*,
// folded into [0, pi].
func (e *Engine) cost(v, pStar mgl64.Vec2, edgeDir mgl64.Vec2) float64 {
	dist := v.Sub(pStar).Len()
	toward := pStar.Sub(v)
	if toward.LenSqr() < geom.Epsilon {
		return dist
	}
	penalty := geom.AngleBetween(edgeDir, toward)
	if penalty > math.Pi {
		penalty = 2*math.Pi - penalty
	}
	return dist + e.cfg.AngleCostWeight*penalty
}
