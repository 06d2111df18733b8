package rich

import (
	"fmt"

	"richstr/internal/types"
)

// sliceIndex normalizes a slice bound: negative values wrap from the end,
// out-of-range values clamp to [0, n].
func sliceIndex(n, i int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// charIndex normalizes a character index: negative values wrap from the end,
// out-of-range values are an error.
func charIndex(n, i int) (int, error) {
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: index %d with length %d", ErrIndex, i, n)
	}
	return idx, nil
}

// Slice returns the half-open rune range [start, stop). Bounds are clamped;
// negative offsets wrap from the end. Segments are clipped to their overlap
// with the range and fed back through the merge constructor.
func (r *String) Slice(start, stop int) *String {
	n := r.Len()
	start = sliceIndex(n, start)
	stop = sliceIndex(n, stop)
	if stop < start {
		stop = start
	}

	var segments []types.Segment
	for _, seg := range r.segments {
		if start >= seg.End() {
			continue
		}
		if stop <= seg.Start() {
			break
		}
		lo := seg.Start()
		if start > lo {
			lo = start
		}
		hi := seg.End()
		if stop < hi {
			hi = stop
		}
		segments = append(segments, seg.WithText(string(r.runes[lo:hi])))
	}
	return FromSegments(segments...)
}

// SliceStep is stride slicing. A unit step is ordinary slicing; any larger
// step degrades to plain-text slicing, because a pattern is not meaningful
// under a stride, and returns a pattern-free String. Steps below one are an
// error.
func (r *String) SliceStep(start, stop, step int) (*String, error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: slice step %d must be positive", ErrIndex, step)
	}
	if step == 1 {
		return r.Slice(start, stop), nil
	}
	n := r.Len()
	start = sliceIndex(n, start)
	stop = sliceIndex(n, stop)
	var picked []rune
	for i := start; i < stop; i += step {
		picked = append(picked, r.runes[i])
	}
	return Text(string(picked)), nil
}

// At returns the single character at rune index i with its pattern.
// Negative indices wrap from the end; out-of-range indices are an error.
func (r *String) At(i int) (*String, error) {
	idx, err := charIndex(r.Len(), i)
	if err != nil {
		return nil, err
	}
	for _, seg := range r.segments {
		if seg.Start() <= idx && idx < seg.End() {
			return FromSegments(seg.WithText(string(r.runes[idx : idx+1]))), nil
		}
	}
	return nil, fmt.Errorf("%w: no segment covers index %d", ErrIndex, idx)
}
