// Package videoid parses video identifiers out of the URL shapes people paste
// into the input sheet.
package videoid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmpty        = errors.New("empty video reference")
	ErrUnrecognized = errors.New("unrecognized video reference")
)

// Shape records which form of reference an identifier was taken from.
type Shape int

const (
	// WatchQuery is a reference carrying a v= parameter, e.g. youtube.com/watch?v=ID.
	WatchQuery Shape = iota + 1
	// PathSegment is a reference whose last path segment is the id, e.g. youtu.be/ID.
	PathSegment
	// Bare is a reference that is already just the id.
	Bare
)

func (s Shape) String() string {
	switch s {
	case WatchQuery:
		return "watch_query"
	case PathSegment:
		return "path_segment"
	case Bare:
		return "bare"
	default:
		return "unknown"
	}
}

// Parsed is the result of a successful Parse.
type Parsed struct {
	ID    string
	Shape Shape
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Parse extracts the identifier from ref.
func Parse(ref string) (Parsed, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Parsed{}, ErrEmpty
	}

	var p Parsed
	if _, after, ok := strings.Cut(ref, "v="); ok {
		p = Parsed{ID: after, Shape: WatchQuery}
	} else if i := strings.LastIndex(ref, "/"); i >= 0 {
		p = Parsed{ID: ref[i+1:], Shape: PathSegment}
	} else {
		p = Parsed{ID: ref, Shape: Bare}
	}

	// Everything after the first & is a trailing query parameter.
	p.ID, _, _ = strings.Cut(p.ID, "&")
	p.ID = stripSuffix(p.ID)

	if !idPattern.MatchString(p.ID) {
		return Parsed{}, fmt.Errorf("%w: %q", ErrUnrecognized, ref)
	}
	return p, nil
}

// stripSuffix drops a query string or fragment trailing the id.
func stripSuffix(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}
