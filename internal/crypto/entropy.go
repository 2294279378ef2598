package crypto

import "math"

// EntropyBits estimates password strength as length * log2(poolSize),
// treating every position as an independent uniform draw from the full
// pool. RequireEachClass shrinks the real output space slightly; the
// estimate deliberately ignores that so the reported number stays stable
// across configurations. Returns 0 for degenerate options and never fails.
func EntropyBits(opts Options) float64 {
	if opts.Length < 1 {
		return 0
	}
	size := PoolSize(opts)
	if size == 0 {
		return 0
	}
	return float64(opts.Length) * math.Log2(float64(size))
}

// PoolSize returns the number of distinct usable characters for opts after
// class selection and exclusion filtering.
func PoolSize(opts Options) int {
	pool, _ := buildPools(opts)
	return len(pool)
}
