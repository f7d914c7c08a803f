package pareto

import (
	"github.com/YuminosukeSato/moselect/core/parallel"
	"github.com/YuminosukeSato/moselect/pkg/log"
)

// DefaultParallelThreshold は外側ループを並列化する個体数の既定閾値。
// これ以下の個体数では逐次走査の方が速い。
const DefaultParallelThreshold = 1000

// Filter はパレートフィルタの設定を保持する。
// ゼロ値は使わず New で作成すること。Filter自体は状態を持たないため、
// 1つのFilterを複数のゴルーチンから同時に使用できる。
type Filter struct {
	parallelThreshold int
	logger            log.Logger
}

// defaultFilter はパッケージレベル関数が使う共有インスタンス。
var defaultFilter = New()

// New は新しいFilterを作成する。
func New(opts ...Option) *Filter {
	f := &Filter{
		parallelThreshold: DefaultParallelThreshold,
		logger:            log.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Identify は非劣解のインデックスを昇順で返す。
// セマンティクスは IdentifyPareto と同一で、個体数が閾値を超える場合のみ
// 外側ループをCPUコア間で分割する。並列パスも逐次パスも不変の入力
// スナップショットだけを読むため、結果は常に一致する。
func (f *Filter) Identify(scores [][]float64) ([]int, error) {
	const op = "pareto.Identify"

	n, m, err := validateScores(op, scores)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	dominated := make([]bool, n)
	parallel.ParallelizeWithThreshold(n, f.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				// j == i の場合もベクトルは自分自身を支配しないため
				// 特別扱いは不要。最初の支配者が見つかった時点で打ち切る。
				if Dominates(scores[j], scores[i]) {
					dominated[i] = true
					break
				}
			}
		}
	})

	front := make([]int, 0, n)
	for i, d := range dominated {
		if !d {
			front = append(front, i)
		}
	}

	f.logger.Debug("pareto front identified",
		log.ComponentKey, "pareto",
		log.OperationKey, "identify",
		log.PopulationKey, n,
		log.ObjectivesKey, m,
		log.FrontSizeKey, len(front),
		log.ParallelKey, n > f.parallelThreshold,
	)
	return front, nil
}

// Front は非劣解のスコアベクトルとそのインデックスをまとめて返す。
func (f *Filter) Front(scores [][]float64) ([][]float64, []int, error) {
	indices, err := f.Identify(scores)
	if err != nil {
		return nil, nil, err
	}
	front := make([][]float64, len(indices))
	for k, idx := range indices {
		row := make([]float64, len(scores[idx]))
		copy(row, scores[idx])
		front[k] = row
	}
	return front, indices, nil
}
