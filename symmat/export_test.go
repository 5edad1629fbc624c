package symmat

// Test-only bridges to package internals (white-box property tests).

// FillChunkInt exposes fillChunk for seam tests with explicit chunk bounds.
func FillChunkInt(data []int, start, end int, f func(r, c int) int) {
	fillChunk(data, start, end, f)
}

// Isqrt exposes the integer square root.
func Isqrt(x uint64) int { return isqrt(x) }

// ParallelThreshold exposes the single-worker cutoff.
const ParallelThreshold = parallelThreshold
