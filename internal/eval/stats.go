package eval

import (
	"math"
	"sort"
)

// #region kendall
// kendallTau computes Kendall's tau-b between two equal-length samples,
// with the standard tie correction. Returns 0 when either sample is
// constant (undefined denominator).
func kendallTau(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}

	var concordant, discordant float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			prod := dx * dy
			switch {
			case prod > 0:
				concordant++
			case prod < 0:
				discordant++
			}
		}
	}

	n0 := float64(n*(n-1)) / 2
	n1 := tiePairs(xs)
	n2 := tiePairs(ys)
	denom := math.Sqrt((n0 - n1) * (n0 - n2))
	if denom == 0 {
		return 0
	}
	return (concordant - discordant) / denom
}

// tiePairs counts pairs sharing a value (sum over groups of t*(t-1)/2).
func tiePairs(xs []float64) float64 {
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	var pairs float64
	for _, t := range counts {
		pairs += float64(t*(t-1)) / 2
	}
	return pairs
}

// #endregion kendall

// #region spearman
// spearmanRho computes Spearman's rank correlation with average ranks for
// ties: Pearson correlation over the two rank vectors. Returns 0 when
// either rank vector is constant.
func spearmanRho(xs, ys []float64) float64 {
	rx := averageRanks(xs)
	ry := averageRanks(ys)
	return pearson(rx, ry)
}

// averageRanks assigns 1-based ranks, averaging within tie groups.
func averageRanks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		// positions i..j share the value; average rank is the midpoint
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// #endregion spearman
