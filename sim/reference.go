package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pagesim/pagesim/sim/trace"
)

// Page is the page identifier consumed by every policy.
// Aliased from sim/trace so traces and the engine share one type.
type Page = trace.Page

// ReferenceString is an ordered sequence of page references. It is fixed
// for the duration of one simulation run and never mutated by the engine.
type ReferenceString []Page

// DistinctPages returns the number of distinct pages in the string.
func (rs ReferenceString) DistinctPages() int {
	seen := make(map[Page]bool, len(rs))
	for _, p := range rs {
		seen[p] = true
	}
	return len(seen)
}

func (rs ReferenceString) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rs {
		sb.WriteString(strconv.Itoa(int(p)))
		if i < len(rs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// ParseReferenceString parses a comma-separated list of page numbers,
// e.g. "1,2,3,4,1,2,5". Whitespace around entries is ignored.
func ParseReferenceString(s string) (ReferenceString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ReferenceString{}, nil
	}
	parts := strings.Split(s, ",")
	refs := make(ReferenceString, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid page reference %q: %w", part, err)
		}
		refs = append(refs, Page(n))
	}
	return refs, nil
}
