package pages

// ResolveOptions controls active-page resolution when no predicate
// matches the current browser location.
type ResolveOptions struct {
	// ThrowOnNotFound makes resolution fail with NoActivePageError
	// instead of falling back.
	ThrowOnNotFound bool

	// FallbackToFirst returns the first page in iteration order when
	// nothing matches.
	FallbackToFirst bool
}

// DefaultResolveOptions falls back to the first page when no predicate
// matches.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{FallbackToFirst: true}
}

// ResolveActive returns the first page, in the given order, whose IsAt
// predicate matches the current browser location. Each predicate is one
// cheap synchronous URL comparison, and page sets are small, so a linear
// scan per call is fine; the result is never cached because the browser
// location can change between steps.
//
// When no predicate matches: with ThrowOnNotFound the call fails with
// NoActivePageError listing every candidate; otherwise with
// FallbackToFirst the first page is returned; otherwise the result is
// nil with no error.
func ResolveActive(candidates []*Page, opts ResolveOptions) (*Page, error) {
	for _, p := range candidates {
		if p.IsAt() {
			return p, nil
		}
	}

	if opts.ThrowOnNotFound {
		keys := make([]string, 0, len(candidates))
		for _, p := range candidates {
			keys = append(keys, p.Key())
		}
		return nil, &NoActivePageError{Candidates: keys}
	}

	if opts.FallbackToFirst && len(candidates) > 0 {
		return candidates[0], nil
	}

	return nil, nil
}
