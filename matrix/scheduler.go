// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/lvnum/numeric"
)

// scheduler runs the recursive quadrant multiplication of two n×n matrices,
// n a power of two:
//
//	C_ik = A_i0·B_0k + A_i1·B_1k   for i, k ∈ {0, 1}
//
// Every quadrant of C is one task that forks its two products, joins only
// those two, and sums them. Quadrants are views (no copies) and the result
// is an Aggregate of the four sums.
//
// Tasks are gated by a shared weighted semaphore. A task that finds no free
// permit, or whose dimension is at or below the cutoff, runs inline on the
// current goroutine. Acquisition never blocks, so a task waiting on its
// children can never starve them of a permit.
type scheduler struct {
	permits *semaphore.Weighted
	cutoff  int
	opts    *Options
}

func newScheduler(o *Options) *scheduler {
	return &scheduler{
		permits: semaphore.NewWeighted(int64(o.workers)),
		cutoff:  o.cutoff,
		opts:    o,
	}
}

// fork is one fan-out point: forked tasks go to the errgroup, inline tasks
// record their error directly. Only the forking goroutine calls spawn and
// wait, so err needs no lock.
type fork struct {
	g   errgroup.Group
	err error
}

// spawn starts task on a new goroutine when n is above the cutoff and a
// permit is free, otherwise runs it inline.
func (s *scheduler) spawn(f *fork, n int, task func() error) {
	if n > s.cutoff && s.permits.TryAcquire(1) {
		f.g.Go(func() error {
			defer s.permits.Release(1)

			return task()
		})

		return
	}
	if err := task(); err != nil && f.err == nil {
		f.err = err
	}
}

func (f *fork) wait() error {
	if err := f.g.Wait(); err != nil {
		return err
	}

	return f.err
}

func (s *scheduler) mul(a, b Matrix) (Matrix, error) {
	n := a.Rows()
	switch n {
	case 1:
		x, err := a.At(0, 0)
		if err != nil {
			return nil, err
		}
		y, err := b.At(0, 0)
		if err != nil {
			return nil, err
		}

		return &Singleton{v: numeric.Mul(x, y)}, nil
	case 2:
		return mul2(a, b)
	}

	h := n / 2
	aq, err := quadrants(a, h)
	if err != nil {
		return nil, err
	}
	bq, err := quadrants(b, h)
	if err != nil {
		return nil, err
	}

	var (
		out  [2][2]Matrix
		root fork
	)
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			i, k := i, k
			s.spawn(&root, n, func() error {
				var (
					p    [2]Matrix
					join fork
				)
				for j := 0; j < 2; j++ {
					j := j
					s.spawn(&join, h, func() error {
						var err error
						p[j], err = s.mul(aq[i][j], bq[j][k])

						return err
					})
				}
				if err := join.wait(); err != nil {
					return err
				}
				sum, err := addOf(p[0], p[1], s.opts)
				if err != nil {
					return err
				}
				out[i][k] = sum

				return nil
			})
		}
	}
	if err := root.wait(); err != nil {
		return nil, err
	}

	return NewAggregate([][]Matrix{
		{out[0][0], out[0][1]},
		{out[1][0], out[1][1]},
	})
}

// mul2 is the closed-form 2×2 product.
func mul2(a, b Matrix) (Matrix, error) {
	a00, a01, a10, a11, err := cells2(a)
	if err != nil {
		return nil, err
	}
	b00, b01, b10, b11, err := cells2(b)
	if err != nil {
		return nil, err
	}
	dot := func(x, y, z, w numeric.Numeric) numeric.Numeric {
		return numeric.Add(numeric.Mul(x, y), numeric.Mul(z, w))
	}

	return NewDense([][]numeric.Numeric{
		{dot(a00, b00, a01, b10), dot(a00, b01, a01, b11)},
		{dot(a10, b00, a11, b10), dot(a10, b01, a11, b11)},
	})
}

// quadrants splits a 2h×2h matrix into four h×h views. A contiguous view is
// re-cut directly over its own backing so nesting never deepens.
func quadrants(m Matrix, h int) ([2][2]Matrix, error) {
	var q [2][2]Matrix
	base, r0, c0 := m, 0, 0
	if v, ok := m.(*SubMatrix); ok && v.contiguous() {
		base, r0, c0 = v.backing, v.startRow, v.startCol
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			top, left := r0+i*h, c0+j*h
			v, err := NewSubMatrix(base, top, left, top+h-1, left+h-1)
			if err != nil {
				return q, err
			}
			q[i][j] = v
		}
	}

	return q, nil
}
