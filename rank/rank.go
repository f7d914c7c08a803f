// Package rank はスコア済み候補のスカラー化とランキングを提供する。
//
// パレートフィルタが「どの候補が妥協なしに優れているか」を答えるのに対し、
// このパッケージは重みを与えて候補を一列に並べたい場合に使う。
// 探索戦略そのもの（グリッド/ランダム列挙など）は扱わない。
package rank

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/moselect/pkg/errors"
)

// WeightedSum は各候補のスコアベクトルと重みの内積を返す。
//
// パラメータ:
//   - scores: N行M列のスコア行列
//   - weights: 長さMの重みベクトル（有限値であること）
//
// スケールの異なる目的を混ぜる場合は preprocessing.MinMaxScale で
// 正規化してから渡すこと。
func WeightedSum(scores [][]float64, weights []float64) ([]float64, error) {
	const op = "rank.WeightedSum"

	n := len(scores)
	if n == 0 {
		return []float64{}, nil
	}

	m := len(scores[0])
	if m < 1 {
		return nil, errors.NewValueError(op, "score vectors must have at least one objective")
	}
	if len(weights) != m {
		return nil, errors.NewDimensionError(op, m, len(weights), 1)
	}
	for j, w := range weights {
		if !errors.IsFinite(w) {
			return nil, errors.NewValidationError("weights", "must be finite", j)
		}
	}

	for i, row := range scores {
		if len(row) != m {
			return nil, errors.NewDimensionError(op, m, len(row), 1)
		}
		if err := errors.CheckFinite(op, i, row); err != nil {
			return nil, err
		}
	}

	out := make([]float64, n)
	for i, row := range scores {
		out[i] = floats.Dot(row, weights)
	}
	return out, nil
}

// TopK はvaluesの大きい順に上位k個のインデックスを返す。
// 同値の場合は元のインデックスが小さい方が先になる（安定）。
// kが負の場合はエラー、len(values)を超える場合は全件に切り詰める。
func TopK(values []float64, k int) ([]int, error) {
	const op = "rank.TopK"

	if k < 0 {
		return nil, errors.NewValidationError("k", "must be non-negative", k)
	}
	for i, v := range values {
		if !errors.IsFinite(v) {
			return nil, errors.NewNonFiniteError(op, i, 0, v)
		}
	}
	if k > len(values) {
		k = len(values)
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return values[indices[a]] > values[indices[b]]
	})
	return indices[:k], nil
}
