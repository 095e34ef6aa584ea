// SPDX-License-Identifier: MIT

package hac

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/matrix"
)

// parallelMinClusters is the active-cluster count below which a step is
// always scanned sequentially, whatever Options.Workers says.
const parallelMinClusters = 8

// Cluster runs HAC over feature vectors.
//
// Steps:
//  1. Apply options; an unsupported linkage fails here, before any work.
//  2. n ≤ 1 returns an empty merge matrix.
//  3. Build the Euclidean distance matrix (distance.Pairwise).
//  4. Merge until one cluster remains (see ClusterDistances).
//
// Errors: ErrUnsupportedLinkage, ErrInvalidOptions, distance.ErrDimensionMismatch,
// distance.ErrNonFinite, and any engine invariant failure. No partial result
// is ever returned.
//
// Complexity: O(n²·d) + O(n³) pair evaluations.
func Cluster(vectors [][]float64, opts ...Option) (Merges, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(vectors) <= 1 {
		return Merges{}, nil
	}

	D, err := distance.Pairwise(vectors)
	if err != nil {
		return nil, fmt.Errorf("hac: distance matrix: %w", err)
	}

	return run(D, o)
}

// ClusterDistances runs HAC over a precomputed item distance matrix.
//
// The matrix must be square, finite, non-negative, zero on the diagonal and
// exactly symmetric (matrix.ValidateDistance with tol 0). A non-*Dense
// implementation is copied once.
//
// Per step, every active pair (a, b), a < b, is evaluated in ascending order,
// the strictly smallest linkage distance wins and ties go to the
// lexicographically smallest (a, b). The winner is recorded as
// {a, b, distance, size(a)+size(b)} and merged under id n+step.
func ClusterDistances(d matrix.Matrix, opts ...Option) (Merges, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateDistance(d, 0); err != nil {
		return nil, fmt.Errorf("hac: %w", err)
	}
	if d.Rows() <= 1 {
		return Merges{}, nil
	}
	D, err := asDense(d)
	if err != nil {
		return nil, fmt.Errorf("hac: %w", err)
	}

	return run(D, o)
}

// asDense returns d itself when it is a *Dense, otherwise a copy.
func asDense(d matrix.Matrix) (*matrix.Dense, error) {
	if D, ok := d.(*matrix.Dense); ok {
		return D, nil
	}
	n := d.Rows()
	D, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = d.At(i, j); err != nil {
				return nil, err
			}
			if err = D.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return D, nil
}

// candidate is the best pair seen so far by a scan.
type candidate struct {
	a, b int
	dist float64
	ok   bool
}

// beatenBy reports whether (dist, a, b) replaces c: a strictly smaller
// distance, or an equal distance with a lexicographically smaller (a, b).
func (c candidate) beatenBy(dist float64, a, b int) bool {
	if !c.ok {
		return true
	}
	if dist != c.dist {
		return dist < c.dist
	}

	return a < c.a || (a == c.a && b < c.b)
}

// engine holds the state of one run. members mirrors the registry as sorted
// item arrays so the pair scan does not re-materialize bitmaps every step.
type engine struct {
	d       *matrix.Dense
	opts    Options
	reg     *Registry
	members map[int][]uint32
}

// run is the merge loop shared by Cluster and ClusterDistances.
func run(d *matrix.Dense, o Options) (Merges, error) {
	n := d.Rows()
	reg, err := NewRegistry(n)
	if err != nil {
		return nil, err
	}
	e := &engine{
		d:       d,
		opts:    o,
		reg:     reg,
		members: make(map[int][]uint32, n),
	}
	for i := 0; i < n; i++ {
		e.members[i] = []uint32{uint32(i)}
	}

	log := o.Logger
	log.Info("hac: clustering started",
		zap.Int("items", n),
		zap.Stringer("linkage", o.Linkage),
		zap.Int("workers", o.Workers),
	)

	merges := make(Merges, 0, n-1)
	for step := 0; reg.Len() > 1; step++ {
		best, err := e.selectPair()
		if err != nil {
			log.Error("hac: pair selection failed", zap.Int("step", step), zap.Error(err))
			return nil, fmt.Errorf("hac: step %d: %w", step, err)
		}
		m, id, err := e.merge(best)
		if err != nil {
			log.Error("hac: merge failed", zap.Int("step", step), zap.Int("a", best.a), zap.Int("b", best.b), zap.Error(err))
			return nil, fmt.Errorf("hac: step %d pair (%d,%d): %w", step, best.a, best.b, err)
		}
		merges = append(merges, m)
		log.Debug("hac: merged",
			zap.Int("step", step),
			zap.Int("a", m.A),
			zap.Int("b", m.B),
			zap.Float64("distance", m.Distance),
			zap.Int("size", m.Size),
			zap.Int("new_id", id),
		)
	}

	log.Info("hac: clustering finished", zap.Int("items", n), zap.Int("merges", len(merges)))

	return merges, nil
}

// merge joins the selected pair in the registry and refreshes the member cache.
func (e *engine) merge(best candidate) (Merge, int, error) {
	id, err := e.reg.Merge(best.a, best.b)
	if err != nil {
		return Merge{}, 0, err
	}
	members := e.reg.members[id]
	e.members[id] = members.ToArray()
	delete(e.members, best.a)
	delete(e.members, best.b)

	return Merge{
		A:        best.a,
		B:        best.b,
		Distance: best.dist,
		Size:     int(members.GetCardinality()),
	}, id, nil
}

// selectPair returns the pair to merge at the current step.
//
// With Workers > 1 the rows of the pair triangle are split into contiguous
// chunks of roughly equal pair count. Each chunk keeps its own best and the
// chunk results are reduced with the same beatenBy rule, so the outcome is
// the one a sequential scan would produce.
func (e *engine) selectPair() (candidate, error) {
	active := e.reg.Active()
	if e.opts.Workers == 1 || len(active) < parallelMinClusters {
		return e.scan(active, 0, len(active))
	}

	bounds := splitRows(len(active), e.opts.Workers)
	results := make([]candidate, len(bounds)-1)

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for c := 0; c+1 < len(bounds); c++ {
		lo, hi, slot := bounds[c], bounds[c+1], c
		g.Go(func() error {
			best, err := e.scan(active, lo, hi)
			if err != nil {
				return err
			}
			results[slot] = best

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	var best candidate
	for _, r := range results {
		if r.ok && best.beatenBy(r.dist, r.a, r.b) {
			best = r
		}
	}

	return best, nil
}

// scan evaluates the pairs (active[i], active[j]) with lo <= i < hi and i < j.
func (e *engine) scan(active []int, lo, hi int) (candidate, error) {
	var best candidate
	for i := lo; i < hi; i++ {
		a := active[i]
		for j := i + 1; j < len(active); j++ {
			b := active[j]
			dist, err := e.opts.Linkage.between(e.d, e.members[a], e.members[b])
			if err != nil {
				return candidate{}, fmt.Errorf("pair (%d,%d): %w", a, b, err)
			}
			if best.beatenBy(dist, a, b) {
				best = candidate{a: a, b: b, dist: dist, ok: true}
			}
		}
	}

	return best, nil
}

// splitRows cuts rows 0..k-1 of the pair triangle (row i holds k-1-i pairs)
// into at most workers contiguous, non-empty chunks of similar pair count.
// The result holds chunk boundaries: chunk c covers [bounds[c], bounds[c+1]).
func splitRows(k, workers int) []int {
	total := k * (k - 1) / 2
	bounds := []int{0}
	acc, chunk := 0, 1
	for i := 0; i < k && chunk < workers; i++ {
		acc += k - 1 - i
		if acc*workers >= chunk*total {
			bounds = append(bounds, i+1)
			chunk++
		}
	}
	if bounds[len(bounds)-1] != k {
		bounds = append(bounds, k)
	}

	return bounds
}
