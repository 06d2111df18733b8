package rich

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"richstr/internal/types"
)

// Extend is the policy for attributing text lying outside the source
// pattern's length during Apply.
type Extend int

const (
	// ExtendNone keeps the target's own prior pattern on both overhangs.
	ExtendNone Extend = iota
	// ExtendLeft repeats the pattern's first segment over the left overhang.
	ExtendLeft
	// ExtendRight repeats the pattern's last segment over the right overhang.
	ExtendRight
	// ExtendAll extends both sides.
	ExtendAll
)

func (e Extend) left() bool  { return e == ExtendLeft || e == ExtendAll }
func (e Extend) right() bool { return e == ExtendRight || e == ExtendAll }

// Apply projects the receiver's pattern onto the target's text. The result
// has the target's text and length; the receiver's pattern begins at rune
// offset startIdx from the left. Where the target extends beyond the pattern
// the overhang either repeats the pattern's outermost segment (per extend) or
// keeps the target's own prior pattern.
func (r *String) Apply(target *String, startIdx int, extend Extend) *String {
	pl := startIdx
	pr := pl + r.Len()
	return r.applyAt(target, pl, pr, extend)
}

// RApply positions the pattern startIdx runes from the target's right edge.
func (r *String) RApply(target *String, startIdx int, extend Extend) *String {
	pr := target.Len() - startIdx
	pl := pr - r.Len()
	return r.applyAt(target, pl, pr, extend)
}

func (r *String) applyAt(target *String, pl, pr int, extend Extend) *String {
	textLen := target.Len()
	if textLen == 0 {
		return target.clone()
	}
	srcLen := r.Len()

	// sub-range of the pattern overlapping [0, textLen)
	pattern := r.Slice(max(-pl, 0), min(srcLen-(pr-textLen), srcLen))

	var segments []types.Segment
	// left overhang
	if pl > 0 {
		if extend.left() {
			segments = append(segments,
				pattern.segments[0].WithText(string(target.runes[0:min(pl, textLen)])))
		} else {
			segments = append(segments, target.Slice(0, pl).segments...)
		}
	}
	// middle: cut the target's text at the sub-pattern's segment boundaries
	if pl < textLen && pr > 0 {
		mid := target.runes[max(pl, 0):min(pr, textLen)]
		for _, seg := range pattern.segments {
			segments = append(segments, seg.WithText(string(mid[seg.Start():min(seg.End(), len(mid))])))
		}
	}
	// right overhang
	if pr < textLen {
		idx := max(pr, 0)
		if extend.right() {
			segments = append(segments,
				pattern.segments[len(pattern.segments)-1].WithText(string(target.runes[idx:])))
		} else {
			segments = append(segments, target.Slice(idx, textLen).segments...)
		}
	}

	return FromSegments(segments...)
}

/////////////////////////////////////////////////////////////////////////////
// CASE FOLDING
/////////////////////////////////////////////////////////////////////////////

// transform rewrites the plain text and reapplies the original pattern from
// offset zero. Any length drift ends up pattern-aligned from the left.
func (r *String) transform(plain string) *String {
	return r.Apply(Text(plain), 0, ExtendNone)
}

func (r *String) Upper() *String {
	return r.transform(strings.ToUpper(r.plain))
}

func (r *String) Lower() *String {
	return r.transform(strings.ToLower(r.plain))
}

// Title folds to title case using the language-neutral caser.
func (r *String) Title() *String {
	return r.transform(cases.Title(language.Und).String(r.plain))
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func (r *String) Capitalize() *String {
	if r.Len() == 0 {
		return r.clone()
	}
	head := string(unicode.ToUpper(r.runes[0]))
	tail := strings.ToLower(string(r.runes[1:]))
	return r.transform(head + tail)
}

func (r *String) SwapCase() *String {
	swapped := strings.Map(func(rn rune) rune {
		switch {
		case unicode.IsUpper(rn):
			return unicode.ToLower(rn)
		case unicode.IsLower(rn):
			return unicode.ToUpper(rn)
		default:
			return rn
		}
	}, r.plain)
	return r.transform(swapped)
}

/////////////////////////////////////////////////////////////////////////////
// JUSTIFICATION
/////////////////////////////////////////////////////////////////////////////

// just pads with fill on both sides and repositions the receiver's pattern
// over the original text, so the fill keeps its own pattern unless extend
// pulls the receiver's outermost segments into the padding.
func (r *String) just(leftLen, rightLen int, fill *String, extend Extend) *String {
	if fill == nil || fill.Len() == 0 {
		fill = Text(" ")
	}
	fl := fill.Len()
	left := fill.Repeat(leftLen/fl + 1).Slice(0, leftLen)
	right := fill.Repeat(rightLen/fl + 1).Slice(0, rightLen)
	return r.Apply(Concat(left, r, right), leftLen, extend)
}

// Center pads both sides to width, extra fill going left.
func (r *String) Center(width int, fill *String, extend Extend) *String {
	pad := width - r.Len()
	if pad <= 0 {
		return r.clone()
	}
	return r.just(pad/2+pad%2, pad/2, fill, extend)
}

// LJust pads on the right to width.
func (r *String) LJust(width int, fill *String, extend Extend) *String {
	if width <= r.Len() {
		return r.clone()
	}
	return r.just(0, width-r.Len(), fill, extend)
}

// RJust pads on the left to width.
func (r *String) RJust(width int, fill *String, extend Extend) *String {
	if width <= r.Len() {
		return r.clone()
	}
	return r.just(width-r.Len(), 0, fill, extend)
}

// ZFill left-pads with zeros to width.
func (r *String) ZFill(width int, extend Extend) *String {
	return r.RJust(width, Text("0"), extend)
}

/////////////////////////////////////////////////////////////////////////////
// CLIPPING
/////////////////////////////////////////////////////////////////////////////

// clip re-adopts the receiver's pattern on a shortened plain result,
// positioned at the offset where the result occurs in the original.
func (r *String) clip(result string) *String {
	byteIdx := strings.Index(r.plain, result)
	runeIdx := len([]rune(r.plain[:byteIdx]))
	return r.Apply(Text(result), -runeIdx, ExtendNone)
}

// Strip trims cutset runes from both ends; an empty cutset trims whitespace.
func (r *String) Strip(cutset string) *String {
	if cutset == "" {
		return r.clip(strings.TrimSpace(r.plain))
	}
	return r.clip(strings.Trim(r.plain, cutset))
}

func (r *String) LStrip(cutset string) *String {
	if cutset == "" {
		return r.clip(strings.TrimLeftFunc(r.plain, unicode.IsSpace))
	}
	return r.clip(strings.TrimLeft(r.plain, cutset))
}

func (r *String) RStrip(cutset string) *String {
	if cutset == "" {
		return r.clip(strings.TrimRightFunc(r.plain, unicode.IsSpace))
	}
	return r.clip(strings.TrimRight(r.plain, cutset))
}

func (r *String) RemovePrefix(prefix string) *String {
	return r.clip(strings.TrimPrefix(r.plain, prefix))
}

func (r *String) RemoveSuffix(suffix string) *String {
	return r.clip(strings.TrimSuffix(r.plain, suffix))
}

/////////////////////////////////////////////////////////////////////////////
// INSERTION
/////////////////////////////////////////////////////////////////////////////

// Insert places sub at the given rune index (negative wraps, out-of-range
// clamps). overwrite replaces instead of shifting the existing content.
// With keepPattern false the inserted text is recolored: overwritten ranges
// adopt the receiver's pattern at that position, shifted-in text adopts the
// pattern of the character at the insertion point.
func (r *String) Insert(index int, sub *String, overwrite, keepPattern bool) *String {
	index = sliceIndex(r.Len(), index)
	if !keepPattern {
		if overwrite {
			sub = r.Apply(sub, -index, ExtendNone)
		} else if r.Len() > 0 {
			at, err := r.At(min(index, r.Len()-1))
			if err == nil {
				sub = at.Apply(sub, 0, ExtendAll)
			}
		}
	}
	if overwrite {
		return Concat(r.Slice(0, index), sub, r.Slice(index+sub.Len(), r.Len()))
	}
	return Concat(r.Slice(0, index), sub, r.Slice(index, r.Len()))
}
