// Package rich implements the rich-text string engine: an ordered,
// coverage-complete, auto-merging sequence of pattern segments kept
// consistent with a derived plain-text projection.
package rich

import (
	"errors"
	"strings"

	"richstr/internal/codec"
	"richstr/internal/types"
)

// ErrIndex is wrapped by all out-of-range index errors.
var ErrIndex = errors.New("index out of range")

// String is an immutable rich-text value. All methods return new instances;
// the single documented exception is RebuildInPlace. Indexing is rune-based.
type String struct {
	segments []types.Segment
	plain    string
	runes    []rune
	ansi     *string // memoized full ANSI rendering
}

// New builds a String from one text and one pattern.
func New(text string, fg, bg types.Color, styles ...string) (*String, error) {
	seg, err := types.NewSegment(text, fg, bg, styles...)
	if err != nil {
		return nil, err
	}
	return FromSegments(seg), nil
}

// Text builds a pattern-free String. The input is taken literally; escape
// sequences are not interpreted.
func Text(text string) *String {
	return FromSegments(types.RawSegment(text, "", "", nil))
}

// Parse builds a String from ANSI-decorated text.
func Parse(ansi string) *String {
	return FromSegments(codec.Parse(ansi)...)
}

// Empty returns the canonical empty String.
func Empty() *String {
	return FromSegments()
}

// FromSegments is the merge constructor. The first segment is taken as-is;
// each later non-empty segment either extends the previous run when its
// pattern matches or starts a new segment chained at the previous end offset.
// Zero content normalizes to the single canonical empty segment. This pass is
// what guarantees the coverage and maximality invariants after every
// structural operation.
func FromSegments(segments ...types.Segment) *String {
	var merged []types.Segment
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if len(merged) == 0 {
			seg.SetStart(0)
			merged = append(merged, seg)
			continue
		}
		last := &merged[len(merged)-1]
		if seg.PatternEqual(*last) {
			last.Text += seg.Text
		} else {
			seg.SetStart(last.End())
			merged = append(merged, seg)
		}
	}
	if len(merged) == 0 {
		merged = []types.Segment{types.EmptySegment()}
	}

	var b strings.Builder
	for _, seg := range merged {
		b.WriteString(seg.Text)
	}
	plain := b.String()

	return &String{
		segments: merged,
		plain:    plain,
		runes:    []rune(plain),
	}
}

// Concat chains package-level: all segments of all inputs through the merge
// constructor.
func Concat(items ...*String) *String {
	var segments []types.Segment
	for _, item := range items {
		if item != nil {
			segments = append(segments, item.segments...)
		}
	}
	return FromSegments(segments...)
}

func (r *String) clone() *String {
	return &String{segments: r.segments, plain: r.plain, runes: r.runes, ansi: r.ansi}
}

// Len returns the length in runes.
func (r *String) Len() int {
	return len(r.runes)
}

// Plain returns the derived plain-text projection.
func (r *String) Plain() string {
	return r.plain
}

// Segments returns a copy of the segment list.
func (r *String) Segments() []types.Segment {
	return append([]types.Segment(nil), r.segments...)
}

// Pieces decomposes the String into one single-segment String per run.
func (r *String) Pieces() []*String {
	pieces := make([]*String, 0, len(r.segments))
	for _, seg := range r.segments {
		pieces = append(pieces, FromSegments(seg))
	}
	return pieces
}

// ANSI returns the full serialized form. The result is memoized until
// RebuildInPlace invalidates it.
func (r *String) ANSI() string {
	if r.ansi == nil {
		s := codec.Assemble(r.segments, true, true, true)
		r.ansi = &s
	}
	return *r.ansi
}

// Render serializes the requested subset of the pattern: colors only,
// styles only, or any other projection.
func (r *String) Render(fg, bg, styles bool) string {
	return codec.Assemble(r.segments, fg, bg, styles)
}

func (r *String) IsFgColored() bool {
	for _, seg := range r.segments {
		if seg.IsFgColored() {
			return true
		}
	}
	return false
}

func (r *String) IsBgColored() bool {
	for _, seg := range r.segments {
		if seg.IsBgColored() {
			return true
		}
	}
	return false
}

func (r *String) IsStyled() bool {
	for _, seg := range r.segments {
		if seg.IsStyled() {
			return true
		}
	}
	return false
}

// IsPlain reports whether no segment carries any pattern.
func (r *String) IsPlain() bool {
	return !r.IsFgColored() && !r.IsBgColored() && !r.IsStyled()
}

// Equal reports full equality: same plain text and same per-character
// pattern. Both sides are in merge-normal form, so comparing segment lists
// position by position is exact.
func (r *String) Equal(other *String) bool {
	if other == nil || r.plain != other.plain || len(r.segments) != len(other.segments) {
		return false
	}
	for i := range r.segments {
		if !r.segments[i].EqualOn(other.segments[i], types.AttrAll) {
			return false
		}
	}
	return true
}

// Concat appends the arguments after the receiver.
func (r *String) Concat(others ...*String) *String {
	return Concat(append([]*String{r}, others...)...)
}

// Repeat concatenates n copies. Non-positive n yields the empty String.
func (r *String) Repeat(n int) *String {
	if n <= 0 {
		return Empty()
	}
	segments := make([]types.Segment, 0, n*len(r.segments))
	for i := 0; i < n; i++ {
		segments = append(segments, r.segments...)
	}
	return FromSegments(segments...)
}

// RebuildInPlace applies a rewrite-rule bundle to every segment and rebuilds
// the receiver in place. This is the sole mutable escape hatch of the type;
// it re-runs the merge pass, regenerates the plain projection and discards
// the memoized ANSI form.
func (r *String) RebuildInPlace(rw types.Rewrite) error {
	segments := make([]types.Segment, 0, len(r.segments))
	for _, seg := range r.segments {
		rewritten, err := seg.Rewrite(rw)
		if err != nil {
			return err
		}
		segments = append(segments, rewritten)
	}
	rebuilt := FromSegments(segments...)
	r.segments = rebuilt.segments
	r.plain = rebuilt.plain
	r.runes = rebuilt.runes
	r.ansi = nil
	return nil
}

// Rebuild returns a new String with the rewrite applied to the half-open
// range [start, stop). Negative offsets wrap from the end.
func (r *String) Rebuild(start, stop int, rw types.Rewrite) (*String, error) {
	start = sliceIndex(r.Len(), start)
	stop = sliceIndex(r.Len(), stop)
	if stop < start {
		stop = start
	}
	sub := r.Slice(start, stop)
	if err := sub.RebuildInPlace(rw); err != nil {
		return nil, err
	}
	if start == 0 && stop == r.Len() {
		return sub, nil
	}
	return r.Insert(start, sub, true, true), nil
}
