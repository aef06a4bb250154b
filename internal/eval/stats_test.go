package eval

import (
	"math"
	"testing"
)

func almost(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.6f, got %.6f", want, got)
	}
}

func TestKendallTauPerfect(t *testing.T) {
	xs := []float64{0.1, 0.4, 0.7, 0.9}
	almost(t, kendallTau(xs, xs), 1.0)
}

func TestKendallTauReversed(t *testing.T) {
	xs := []float64{0.1, 0.4, 0.7, 0.9}
	ys := []float64{0.9, 0.7, 0.4, 0.1}
	almost(t, kendallTau(xs, ys), -1.0)
}

func TestKendallTauKnownValue(t *testing.T) {
	// Pairs: (1,2) concordant, (1,3) concordant, (2,3) discordant.
	xs := []float64{1, 2, 3}
	ys := []float64{1, 3, 2}
	almost(t, kendallTau(xs, ys), 1.0/3.0)
}

func TestKendallTauConstantColumn(t *testing.T) {
	xs := []float64{0.5, 0.5, 0.5}
	ys := []float64{1, 2, 3}
	almost(t, kendallTau(xs, ys), 0)
}

func TestKendallTauTieCorrection(t *testing.T) {
	// One tie in xs; tau-b denominator shrinks accordingly.
	xs := []float64{1, 1, 2}
	ys := []float64{1, 2, 3}
	// concordant: (0,2) and (1,2); pair (0,1) tied in x.
	// n0=3, n1=1, n2=0 → tau = 2 / sqrt(2*3).
	almost(t, kendallTau(xs, ys), 2/math.Sqrt(6))
}

func TestSpearmanPerfectMonotone(t *testing.T) {
	xs := []float64{0.1, 0.2, 0.3, 0.4}
	ys := []float64{10, 20, 30, 40}
	almost(t, spearmanRho(xs, ys), 1.0)
}

func TestSpearmanKnownValue(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{1, 3, 2}
	almost(t, spearmanRho(xs, ys), 0.5)
}

func TestSpearmanConstantColumn(t *testing.T) {
	xs := []float64{2, 2, 2}
	ys := []float64{1, 2, 3}
	almost(t, spearmanRho(xs, ys), 0)
}

func TestAverageRanksTies(t *testing.T) {
	ranks := averageRanks([]float64{0.2, 0.9, 0.9, 0.5})
	want := []float64{1, 3.5, 3.5, 2}
	for i := range want {
		if ranks[i] != want[i] {
			t.Fatalf("rank %d: expected %.1f, got %.1f", i, want[i], ranks[i])
		}
	}
}
