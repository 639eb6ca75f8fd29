package lsystem

// Expand rewrites the axiom for the given number of iterations.
// Iteration 0 is the axiom itself. Each round scans the previous
// generation left to right, replacing every symbol that has a rule and
// copying the rest through unchanged. Symbols without a rule expand to
// themselves, so an empty rule set returns the axiom for any iteration
// count. Expand never fails; an empty axiom yields an empty result.
//
// Sequence length can grow exponentially with the iteration count.
// Expand materializes only the current generation (double-buffered),
// so memory is bounded by the final two generations, not the history.
// It enforces no iteration cap; bounding runaway growth is the
// caller's policy.
func Expand(axiom []Symbol, rules *RuleSet, iterations int) []Symbol {
	result := make([]Symbol, len(axiom))
	copy(result, axiom)
	if iterations <= 0 || rules.Len() == 0 {
		return result
	}

	pool := newBufferPool(len(axiom) * 2)
	pool.appendSlice(axiom)
	pool.swap()

	for i := 0; i < iterations; i++ {
		for _, sym := range pool.current() {
			if replacement, ok := rules.Lookup(sym); ok {
				pool.appendSlice(replacement)
			} else {
				pool.append(sym)
			}
		}
		pool.swap()
	}

	final := pool.current()
	result = make([]Symbol, len(final))
	copy(result, final)
	return result
}
