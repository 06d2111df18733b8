package rich

import (
	"sort"

	"richstr/internal/types"
)

// findAll locates occurrences of sub within the rune range [start, stop).
// A pattern-free needle delegates to plain substring search; a patterned
// needle is first located in the plain projection and then filtered to the
// positions where the window is pattern-equal segment by segment. reverse
// scans from the right; the returned indices are always ascending. limit < 0
// means unlimited. An empty needle matches once at the range start.
func (r *String) findAll(sub *String, start, stop, limit int, reverse bool) []int {
	n := r.Len()
	start = sliceIndex(n, start)
	stop = sliceIndex(n, stop)
	if stop < start || limit == 0 {
		return nil
	}
	if sub.Len() == 0 {
		return []int{start}
	}

	patterned := !sub.IsPlain()
	var indices []int
	for _, idx := range plainSearch(r.runes, sub.runes, start, stop, reverse) {
		if patterned && !r.StartsWith(sub, idx) {
			continue
		}
		indices = append(indices, idx)
		if limit > 0 && len(indices) >= limit {
			break
		}
	}
	if reverse {
		sort.Ints(indices)
	}
	return indices
}

// plainSearch yields non-overlapping match positions of needle in hay within
// [start, stop), scanning left to right or right to left.
func plainSearch(hay, needle []rune, start, stop int, reverse bool) []int {
	var out []int
	m := len(needle)
	if reverse {
		for i := stop - m; i >= start; {
			if matchAt(hay, needle, i) {
				out = append(out, i)
				i -= m
			} else {
				i--
			}
		}
	} else {
		for i := start; i+m <= stop; {
			if matchAt(hay, needle, i) {
				out = append(out, i)
				i += m
			} else {
				i++
			}
		}
	}
	return out
}

func matchAt(hay, needle []rune, at int) bool {
	for k, rn := range needle {
		if hay[at+k] != rn {
			return false
		}
	}
	return true
}

// Find returns the first occurrence of sub, or -1.
func (r *String) Find(sub *String) int {
	if idx := r.findAll(sub, 0, r.Len(), 1, false); len(idx) > 0 {
		return idx[0]
	}
	return -1
}

// RFind returns the last occurrence of sub, or -1.
func (r *String) RFind(sub *String) int {
	if idx := r.findAll(sub, 0, r.Len(), 1, true); len(idx) > 0 {
		return idx[0]
	}
	return -1
}

// FindAll returns every occurrence of sub, ascending.
func (r *String) FindAll(sub *String) []int {
	return r.findAll(sub, 0, r.Len(), -1, false)
}

// RFindAll returns every occurrence of sub scanning from the right,
// still ascending.
func (r *String) RFindAll(sub *String) []int {
	return r.findAll(sub, 0, r.Len(), -1, true)
}

// Contains reports whether sub occurs at least once.
func (r *String) Contains(sub *String) bool {
	return r.Find(sub) != -1
}

// StartsWith reports whether the window beginning at rune offset `at` equals
// prefix, pattern included.
func (r *String) StartsWith(prefix *String, at int) bool {
	if at < 0 || at+prefix.Len() > r.Len() {
		return false
	}
	return r.Slice(at, at+prefix.Len()).Equal(prefix)
}

// EndsWith reports whether the String ends with suffix, pattern included.
func (r *String) EndsWith(suffix *String) bool {
	return r.StartsWith(suffix, r.Len()-suffix.Len())
}

// SplitN splits around occurrences of sep, at most maxsplit times
// (maxsplit < 0 means unlimited). An empty separator yields a single copy.
func (r *String) SplitN(sep *String, maxsplit int) []*String {
	return r.splitN(sep, maxsplit, false)
}

// RSplitN splits around the rightmost occurrences of sep.
func (r *String) RSplitN(sep *String, maxsplit int) []*String {
	return r.splitN(sep, maxsplit, true)
}

// Split splits around every occurrence of sep.
func (r *String) Split(sep *String) []*String {
	return r.splitN(sep, -1, false)
}

func (r *String) splitN(sep *String, maxsplit int, reverse bool) []*String {
	if sep.Len() == 0 {
		return []*String{r.clone()}
	}
	var parts []*String
	start := 0
	for _, idx := range r.findAll(sep, 0, r.Len(), maxsplit, reverse) {
		parts = append(parts, r.Slice(start, idx))
		start = idx + sep.Len()
	}
	return append(parts, r.Slice(start, r.Len()))
}

// SplitLines splits on newline characters, optionally keeping them.
func (r *String) SplitLines(keepEnds bool) []*String {
	nl := Text("\n")
	if !keepEnds {
		return r.Split(nl)
	}
	var parts []*String
	start := 0
	for _, idx := range r.FindAll(nl) {
		parts = append(parts, r.Slice(start, idx+1))
		start = idx + 1
	}
	return append(parts, r.Slice(start, r.Len()))
}

// Partition splits around the first occurrence of sep into (before, match,
// after). When sep is absent the receiver lands in before and the other two
// are empty.
func (r *String) Partition(sep *String) (before, match, after *String) {
	idx := r.Find(sep)
	if idx == -1 {
		return r.clone(), Empty(), Empty()
	}
	return r.Slice(0, idx), r.Slice(idx, idx+sep.Len()), r.Slice(idx+sep.Len(), r.Len())
}

// RPartition splits around the last occurrence of sep. When sep is absent
// the receiver lands in after.
func (r *String) RPartition(sep *String) (before, match, after *String) {
	idx := r.RFind(sep)
	if idx == -1 {
		return Empty(), Empty(), r.clone()
	}
	return r.Slice(0, idx), r.Slice(idx, idx+sep.Len()), r.Slice(idx+sep.Len(), r.Len())
}

// Replace substitutes occurrences of old with new, at most n times
// (n < 0 means all).
func (r *String) Replace(old, new *String, n int) *String {
	return new.Join(r.SplitN(old, n))
}

// Join interleaves the receiver's segments between the elements.
func (r *String) Join(items []*String) *String {
	var segments []types.Segment
	for i, item := range items {
		if i > 0 {
			segments = append(segments, r.segments...)
		}
		segments = append(segments, item.segments...)
	}
	return FromSegments(segments...)
}
