package types

import (
	"errors"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// REWRITE RULES
/////////////////////////////////////////////////////////////////////////////

// ErrRewrite is wrapped by all malformed rewrite-rule errors.
var ErrRewrite = errors.New("invalid rewrite rule")

// ColorRule is one ordered find-and-replace pair over a color code.
// Match "" matches a currently unset color; To "" clears the color.
type ColorRule struct {
	Match string
	To    string
}

// ColorRewrite rewrites one color attribute: either an unconditional
// replacement (Replace) or an ordered rule list applied left to right,
// each pair firing when the current code equals its Match.
type ColorRewrite struct {
	Replace bool
	To      string
	Rules   []ColorRule
}

// SetColor is an unconditional color replacement. code "" clears the color.
func SetColor(code string) *ColorRewrite {
	return &ColorRewrite{Replace: true, To: code}
}

// MapColor is a conditional rule-list rewrite.
func MapColor(rules ...ColorRule) *ColorRewrite {
	return &ColorRewrite{Rules: rules}
}

func (c *ColorRewrite) apply(code string) (string, error) {
	if c == nil {
		return code, nil
	}
	if c.Replace {
		if len(c.Rules) > 0 {
			return "", fmt.Errorf("%w: color rewrite cannot both replace and map", ErrRewrite)
		}
		return c.To, nil
	}
	for _, rule := range c.Rules {
		if code == rule.Match {
			code = rule.To
		}
	}
	return code, nil
}

// StyleRule is one find-and-replace pair over the style set.
//   - All=true matches every style: To replaces the whole set, nil To clears it.
//   - Match non-nil fires only when Match is a subset of the current styles:
//     the matched codes are removed and To (if non-nil) is added.
//   - All=false with nil Match unconditionally adds To.
type StyleRule struct {
	All   bool
	Match StyleSet
	To    StyleSet
}

// ClearStyles removes every style.
func ClearStyles() StyleRule {
	return StyleRule{All: true}
}

// AddStyles unconditionally adds the given codes.
func AddStyles(set StyleSet) StyleRule {
	return StyleRule{To: set}
}

// SwapStyles replaces match with to when every code in match is present.
// A nil to removes the matched codes.
func SwapStyles(match, to StyleSet) StyleRule {
	return StyleRule{Match: match, To: to}
}

func (r StyleRule) apply(styles StyleSet) (StyleSet, error) {
	if r.All && r.Match != nil {
		return nil, fmt.Errorf("%w: style rule cannot both match all and match a set", ErrRewrite)
	}
	switch {
	case r.All:
		if r.To == nil {
			return StyleSet{}, nil
		}
		if len(r.To) > 0 {
			return r.To.Clone(), nil
		}
		return styles, nil

	case r.Match == nil:
		if r.To == nil {
			return nil, fmt.Errorf("%w: style rule with no match and no replacement", ErrRewrite)
		}
		if len(r.To) == 0 {
			return styles, nil
		}
		merged := styles.Clone()
		for code := range r.To {
			merged[code] = struct{}{}
		}
		return merged, nil

	case r.Match.SubsetOf(styles) && len(r.Match) > 0:
		next := styles.Clone()
		for code := range r.Match {
			delete(next, code)
		}
		for code := range r.To {
			next[code] = struct{}{}
		}
		return next, nil

	default:
		return styles, nil
	}
}

// Rewrite bundles the per-attribute rules of one rewrite pass.
// Nil fields leave the corresponding attribute untouched.
type Rewrite struct {
	Fg     *ColorRewrite
	Bg     *ColorRewrite
	Styles []StyleRule
}

// Rewrite applies the rule bundle and returns the rewritten segment.
// Malformed rules surface as a single ErrRewrite-wrapped error.
func (s Segment) Rewrite(rw Rewrite) (Segment, error) {
	fg, err := rw.Fg.apply(s.Fg)
	if err != nil {
		return Segment{}, fmt.Errorf("rewrite fg: %w", err)
	}
	bg, err := rw.Bg.apply(s.Bg)
	if err != nil {
		return Segment{}, fmt.Errorf("rewrite bg: %w", err)
	}
	styles := s.Styles
	for _, rule := range rw.Styles {
		styles, err = rule.apply(styles)
		if err != nil {
			return Segment{}, fmt.Errorf("rewrite styles: %w", err)
		}
	}
	out := Segment{Text: s.Text, Fg: fg, Bg: bg, Styles: styles.Clone(), start: s.start}
	delete(out.Styles, "")
	return out, nil
}
