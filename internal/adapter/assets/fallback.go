package assets

import "math/rand/v2"

// Fallback picks a random creative among the configured fallback refs. It
// is used when no campaign is eligible for a report.
type Fallback struct {
	refs []string
	intn func(int) int
}

// NewFallback returns a picker over refs. Empty refs are ignored.
func NewFallback(refs []string) *Fallback {
	kept := make([]string, 0, len(refs))
	for _, r := range refs {
		if r != "" {
			kept = append(kept, r)
		}
	}
	return &Fallback{refs: kept, intn: rand.IntN}
}

// Pick returns a random fallback ref, or "" when none is configured.
func (f *Fallback) Pick() string {
	if f == nil || len(f.refs) == 0 {
		return ""
	}
	return f.refs[f.intn(len(f.refs))]
}
