package pareto

import (
	"math"
	"math/rand"
	"testing"
)

// createBenchmarkPopulation はベンチマーク用の集団を生成する
func createBenchmarkPopulation(n, m int) [][]float64 {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewSource(42))
	return randomScores(rng, n, m)
}

// BenchmarkIdentifyPareto はフィルタ全体のベンチマークを実行する
func BenchmarkIdentifyPareto(b *testing.B) {
	// 様々なサイズでベンチマークを実行
	sizes := []struct {
		name string
		n    int
		m    int
	}{
		{"Small_100x2", 100, 2},
		{"Small_500x2", 500, 2},
		{"Medium_1000x3", 1000, 3}, // 並列処理の閾値
		{"Medium_2000x3", 2000, 3},
		{"Large_5000x5", 5000, 5},
		{"Large_10000x5", 10000, 5},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			scores := createBenchmarkPopulation(size.n, size.m)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := IdentifyPareto(scores); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkIdentifyParetoSequential は並列化を無効にした場合の比較用
func BenchmarkIdentifyParetoSequential(b *testing.B) {
	scores := createBenchmarkPopulation(5000, 5)
	f := New(WithParallelThreshold(math.MaxInt))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Identify(scores); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDominates は支配判定単体のベンチマーク
func BenchmarkDominates(b *testing.B) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	c := []float64{1, 2, 3, 4, 5, 6, 7, 9}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Dominates(a, c)
	}
}
