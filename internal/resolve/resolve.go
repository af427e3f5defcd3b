// Package resolve computes a field's effective value from the report's
// layered data sources. Pure reads; no side effects. Priority is strict:
// user edit, then AI-generated (with a legacy path fallback), then the
// report's own document, then the static default. "Defined" excludes nil and
// empty string but keeps 0 and false; sequence values are joined with
// newlines at every tier, so callers always see flat text.
package resolve

import (
	"fmt"
	"strings"
)

// Sources holds the three layered documents for one report. UserEdits is a
// flat map keyed by dot-path field identifiers; AI and Report are nested
// documents navigated by dot-path.
type Sources struct {
	UserEdits map[string]any
	AI        map[string]any
	Report    map[string]any
}

// Field names one resolvable field: its user-edit/report path, its AI path,
// an optional legacy AI path tried when the primary is absent, and the
// static fallback.
type Field struct {
	Path         string
	AIPath       string
	LegacyAIPath string
	Fallback     any
}

// Value resolves one field. First defined-and-non-empty tier wins.
func Value(src Sources, f Field) any {
	if v, ok := defined(src.UserEdits[f.Path]); ok {
		return v
	}
	if v, ok := defined(Lookup(src.AI, f.AIPath)); ok {
		return v
	}
	if f.LegacyAIPath != "" {
		if v, ok := defined(Lookup(src.AI, f.LegacyAIPath)); ok {
			return v
		}
	}
	if v, ok := defined(Lookup(src.Report, f.Path)); ok {
		return v
	}
	if v, ok := defined(f.Fallback); ok {
		return v
	}
	return f.Fallback
}

// Text resolves one field and renders it as a string.
func Text(src Sources, f Field) string {
	v := Value(src, f)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Lookup navigates a nested document by dot-path. Returns nil when any
// segment is missing or not a map.
func Lookup(doc map[string]any, path string) any {
	if doc == nil || path == "" {
		return nil
	}
	segs := strings.Split(path, ".")
	var cur any = doc
	for _, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// defined normalizes a candidate and reports whether it counts as a value.
// nil and "" lose; 0 and false win; sequences are joined first, so an empty
// sequence loses like an empty string.
func defined(v any) (any, bool) {
	v = normalize(v)
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, t != ""
	default:
		return v, true
	}
}

// normalize joins sequence values into newline-separated text. The AI may
// return an array of strings for a field rendered as free text; the join is
// a normalization rule, not formatting, and applies identically at every
// tier.
func normalize(v any) any {
	switch seq := v.(type) {
	case []string:
		return strings.Join(seq, "\n")
	case []any:
		parts := make([]string, 0, len(seq))
		for _, item := range seq {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				parts = append(parts, s)
				continue
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "\n")
	default:
		return v
	}
}
