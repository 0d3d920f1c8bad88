// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

// grid is the storage shared by Dense (row-major) and Columnar (column-major).
//
// lines holds the native-axis vectors. A stored vector is never mutated in
// place: appending a cross-axis line replaces every stored vector with an
// extended copy. That lets Transpose hand the same vectors to the
// opposite-major type in O(n) instead of copying n² elements.
//
// cross caches opposite-axis vectors per index; it is filled lazily under mu
// and dropped by every structural append.
type grid struct {
	lines  []*vector.Vector
	width  int // length of every line
	orient vector.Orientation
	kind   numeric.Kind
	ctx    numeric.Context

	// kindSet and ctxSet record explicit WithKind/WithContext; without them the
	// first append into a grid holding no elements decides kind and context.
	kindSet, ctxSet bool

	mu    sync.Mutex
	cross map[int]*vector.Vector
}

// newGrid validates rectangular input, resolves the declared kind and
// converts every entry to it. The width is taken from the first line.
func newGrid(lines [][]numeric.Numeric, orient vector.Orientation, o *Options) (*grid, error) {
	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}

	return newShapedGrid(lines, width, orient, o)
}

// newShapedGrid is newGrid with an explicit line length, so a grid with no
// lines still keeps its cross dimension.
func newShapedGrid(lines [][]numeric.Numeric, width int, orient vector.Orientation, o *Options) (*grid, error) {
	if width < 0 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidDimensions)
	}
	flat := make([]numeric.Numeric, 0, len(lines)*width)
	for i, l := range lines {
		if len(l) != width {
			return nil, fmt.Errorf("%s %d has %d entries, want %d: %w", orient, i, len(l), width, ErrDimensionMismatch)
		}
		for j, x := range l {
			if x == nil {
				return nil, fmt.Errorf("%s %d entry %d: %w", orient, i, j, ErrNilValue)
			}
		}
		flat = append(flat, l...)
	}

	g := &grid{
		width:   width,
		orient:  orient,
		lines:   make([]*vector.Vector, len(lines)),
		kindSet: o.kindSet,
		ctxSet:  o.ctxSet,
	}
	g.kind, g.ctx = o.declared(flat)
	for i, l := range lines {
		v, err := g.convertLine(l, g.kind, g.ctx)
		if err != nil {
			return nil, err
		}
		g.lines[i] = v
	}

	return g, nil
}

// vectorLines unwraps vectors into element slices for newGrid.
func vectorLines(vs []*vector.Vector) ([][]numeric.Numeric, error) {
	out := make([][]numeric.Numeric, len(vs))
	for i, v := range vs {
		if v == nil {
			return nil, fmt.Errorf("vector %d: %w", i, ErrNilValue)
		}
		out[i] = v.Elements()
	}

	return out, nil
}

// convertLine converts elems to kind and wraps them as a native line.
func (g *grid) convertLine(elems []numeric.Numeric, kind numeric.Kind, ctx numeric.Context) (*vector.Vector, error) {
	out := make([]numeric.Numeric, len(elems))
	for i, x := range elems {
		if x == nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNilValue)
		}
		y, err := numeric.Convert(x, kind, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}

	return vector.New(g.orient, out...)
}

// adopt returns the kind and context an append of elems must convert to.
// A grid that holds no elements takes them from elems unless they were
// declared explicitly.
func (g *grid) adopt(elems []numeric.Numeric) (numeric.Kind, numeric.Context) {
	if len(g.lines)*g.width > 0 {
		return g.kind, g.ctx
	}
	kind, ctx := g.kind, g.ctx
	if !g.kindSet {
		kind = numeric.KindInteger
		for _, x := range elems {
			if x != nil {
				kind = numeric.MaxKind(kind, x.Kind())
			}
		}
	}
	if !g.ctxSet {
		ctx = numeric.Unlimited
		for _, x := range elems {
			if x != nil {
				ctx = numeric.MinContext(ctx, x.Context())
			}
		}
	}

	return kind, ctx
}

func (g *grid) at(i, j int) (numeric.Numeric, error) {
	if i < 0 || i >= len(g.lines) || j < 0 || j >= g.width {
		return nil, ErrOutOfRange
	}

	return g.lines[i].At(j)
}

// native returns a read-only alias of stored line i.
func (g *grid) native(i int) (*vector.Vector, error) {
	if i < 0 || i >= len(g.lines) {
		return nil, ErrOutOfRange
	}

	return g.lines[i].View(g.orient), nil
}

// crossLine returns the opposite-axis line j, building and caching it on first use.
func (g *grid) crossLine(j int) (*vector.Vector, error) {
	if j < 0 || j >= g.width {
		return nil, ErrOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.cross[j]; ok {
		return v.View(v.Orientation()), nil
	}

	elems := make([]numeric.Numeric, len(g.lines))
	for i, l := range g.lines {
		x, err := l.At(j)
		if err != nil {
			return nil, err
		}
		elems[i] = x
	}
	v, err := vector.New(g.orient.Flip(), elems...)
	if err != nil {
		return nil, err
	}
	if g.cross == nil {
		g.cross = make(map[int]*vector.Vector)
	}
	g.cross[j] = v

	return v.View(v.Orientation()), nil
}

func (g *grid) invalidate() {
	g.mu.Lock()
	g.cross = nil
	g.mu.Unlock()
}

// appendLine adds one native-axis line. The first line of a 0×0 grid fixes the width.
// The grid is left untouched when v is rejected.
func (g *grid) appendLine(v *vector.Vector) error {
	if v == nil {
		return ErrNilValue
	}
	if (len(g.lines) > 0 || g.width > 0) && v.Len() != g.width {
		return fmt.Errorf("%s length %d, want %d: %w", g.orient, v.Len(), g.width, ErrDimensionMismatch)
	}
	kind, ctx := g.adopt(v.Elements())
	line, err := g.convertLine(v.Elements(), kind, ctx)
	if err != nil {
		return err
	}
	if len(g.lines) == 0 {
		g.width = v.Len()
	}
	g.lines = append(g.lines, line)
	g.kind, g.ctx = kind, ctx
	g.invalidate()

	return nil
}

// appendCross adds one opposite-axis line by extending every stored line copy-on-write.
// The grid is left untouched when v is rejected.
func (g *grid) appendCross(v *vector.Vector) error {
	if v == nil {
		return ErrNilValue
	}
	lines := g.lines
	if len(lines) == 0 && g.width == 0 {
		lines = make([]*vector.Vector, v.Len())
		for i := range lines {
			lines[i], _ = vector.New(g.orient)
		}
	}
	if v.Len() != len(lines) {
		return fmt.Errorf("%s length %d, want %d: %w", g.orient.Flip(), v.Len(), len(lines), ErrDimensionMismatch)
	}
	kind, ctx := g.adopt(v.Elements())
	conformed, err := g.convertLine(v.Elements(), kind, ctx)
	if err != nil {
		return err
	}

	next := make([]*vector.Vector, len(lines))
	for i, l := range lines {
		x, _ := conformed.At(i)
		if next[i], err = l.Appended(x); err != nil {
			return err
		}
	}
	g.lines = next
	g.width++
	g.kind, g.ctx = kind, ctx
	g.invalidate()

	return nil
}

// transposed shares the stored vectors with a grid of the opposite majority.
func (g *grid) transposed() *grid {
	flip := g.orient.Flip()
	lines := make([]*vector.Vector, len(g.lines))
	for i, l := range g.lines {
		lines[i] = l.View(flip)
	}

	return &grid{lines: lines, width: g.width, orient: flip, kind: g.kind, ctx: g.ctx, kindSet: g.kindSet, ctxSet: g.ctxSet}
}

func (g *grid) scaled(s numeric.Numeric) *grid {
	lines := make([]*vector.Vector, len(g.lines))
	for i, l := range g.lines {
		lines[i] = l.Scale(s)
	}

	return &grid{
		lines:  lines,
		width:  g.width,
		orient: g.orient,
		kind:   numeric.MaxKind(g.kind, s.Kind()),
		ctx:    numeric.MinContext(g.ctx, s.Context()),
	}
}

// sum adds h line by line; h must have the same majority and shape.
func (g *grid) sum(h *grid) (*grid, error) {
	lines := make([]*vector.Vector, len(g.lines))
	for i, l := range g.lines {
		v, err := l.Add(h.lines[i])
		if err != nil {
			return nil, err
		}
		lines[i] = v
	}

	return &grid{
		lines:  lines,
		width:  g.width,
		orient: g.orient,
		kind:   numeric.MaxKind(g.kind, h.kind),
		ctx:    numeric.MinContext(g.ctx, h.ctx),
	}, nil
}
