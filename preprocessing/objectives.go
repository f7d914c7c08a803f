// Package preprocessing はスコア行列に対する前処理を提供する。
//
// パレートフィルタは全目的を「大きいほど良い」として扱うため、
// 最小化したい目的や正規化が必要なスコアはここで整えてから渡す。
// 全ての関数は純粋で、入力を変更せず新しい行列を返す。
package preprocessing

import (
	"github.com/YuminosukeSato/moselect/pkg/errors"
)

// Sense は目的関数の最適化方向を表す
type Sense int

const (
	// Maximize は「大きいほど良い」目的（フィルタの規約そのまま）
	Maximize Sense = iota
	// Minimize は「小さいほど良い」目的（符号反転が必要）
	Minimize
)

// String returns the string representation of the optimization sense.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Orient は最小化目的の列を符号反転し、全目的が最大化方向に揃った
// 新しいスコア行列を返す。
//
// パラメータ:
//   - scores: N行M列のスコア行列
//   - senses: 長さMの方向指定（目的ごとに Maximize または Minimize）
//
// 使用例:
//
//	oriented, err := preprocessing.Orient(scores, []preprocessing.Sense{
//	    preprocessing.Maximize, // 精度はそのまま
//	    preprocessing.Minimize, // レイテンシは反転
//	})
//	indices, err := pareto.IdentifyPareto(oriented)
func Orient(scores [][]float64, senses []Sense) ([][]float64, error) {
	const op = "preprocessing.Orient"

	n, m, err := validateScores(op, scores)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return [][]float64{}, nil
	}

	if len(senses) != m {
		return nil, errors.NewDimensionError(op, m, len(senses), 1)
	}
	for j, s := range senses {
		if s != Maximize && s != Minimize {
			return nil, errors.NewValidationError("senses", "each sense must be Maximize or Minimize", j)
		}
	}

	out := make([][]float64, n)
	for i, row := range scores {
		oriented := make([]float64, m)
		for j, v := range row {
			if senses[j] == Minimize {
				oriented[j] = -v
			} else {
				oriented[j] = v
			}
		}
		out[i] = oriented
	}
	return out, nil
}

// DedupRows は完全に一致するスコアベクトルを除去し、残った行と
// それらの元インデックスを返す。最初の出現が残る。
//
// パレートフィルタ自体は同一スコアの候補を両方残すため、
// 重複を除きたい場合はこの関数をフィルタの前段に挟むこと。
func DedupRows(scores [][]float64) ([][]float64, []int, error) {
	const op = "preprocessing.DedupRows"

	n, m, err := validateScores(op, scores)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return [][]float64{}, []int{}, nil
	}

	kept := make([][]float64, 0, n)
	indices := make([]int, 0, n)
	for i, row := range scores {
		dup := false
		for _, prev := range kept {
			if equalRows(prev, row) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		cp := make([]float64, m)
		copy(cp, row)
		kept = append(kept, cp)
		indices = append(indices, i)
	}
	return kept, indices, nil
}

// MinMaxScale は各目的（列）を [0, 1] に正規化した新しい行列を返す。
// 列内の値が全て等しい場合、その列は0になる。
// 重み付きスカラー化（rank.WeightedSum）の前処理として使う。
func MinMaxScale(scores [][]float64) ([][]float64, error) {
	const op = "preprocessing.MinMaxScale"

	n, m, err := validateScores(op, scores)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return [][]float64{}, nil
	}

	// 列ごとの最小値と最大値
	mins := make([]float64, m)
	maxs := make([]float64, m)
	copy(mins, scores[0])
	copy(maxs, scores[0])
	for _, row := range scores[1:] {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	out := make([][]float64, n)
	for i, row := range scores {
		scaled := make([]float64, m)
		for j, v := range row {
			span := maxs[j] - mins[j]
			if span > 0 {
				scaled[j] = (v - mins[j]) / span
			}
		}
		out[i] = scaled
	}
	return out, nil
}

func equalRows(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// validateScores は入力全体を処理開始前に検証する（fail fast）。
func validateScores(op string, scores [][]float64) (int, int, error) {
	n := len(scores)
	if n == 0 {
		return 0, 0, nil
	}

	m := len(scores[0])
	if m < 1 {
		return 0, 0, errors.NewValueError(op, "score vectors must have at least one objective")
	}

	for i, row := range scores {
		if len(row) != m {
			return 0, 0, errors.NewDimensionError(op, m, len(row), 1)
		}
		if err := errors.CheckFinite(op, i, row); err != nil {
			return 0, 0, err
		}
	}
	return n, m, nil
}
