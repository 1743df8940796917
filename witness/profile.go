package witness

// binom returns C(n, k), computed iteratively to avoid the intermediate
// overflow a naive factorial ratio would hit (mirrors the original
// implementation's incremental `(res * (n-i)) / (i+1)` loop).
func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}

	return res
}

// degreeProfile builds dp(k), the signature profile a k-element shattered
// set's witnessing vertex must dominate (spec.md §4.5, resolved per §9 to
// use C(k-1, d-1) rather than the source's inconsistent C(k, d) variant):
// for d from k down to 1, the value d appears C(k-1, d-1) times.
func degreeProfile(k int) []int {
	var res []int
	for d := k; d >= 1; d-- {
		count := binom(k-1, d-1)
		for i := 0; i < count; i++ {
			res = append(res, d)
		}
	}

	return res
}

// dominatesProfile reports whether degrees (a vertex's neighbour degrees,
// sorted descending) position-wise dominates profile: degrees must be at
// least as long and at least as large at every shared position (spec.md
// §4.5).
func dominatesProfile(degrees, profile []int) bool {
	if len(degrees) < len(profile) {
		return false
	}
	for i, p := range profile {
		if degrees[i] < p {
			return false
		}
	}

	return true
}
