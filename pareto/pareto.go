// Package pareto は多目的スコアに対するパレート（非劣解）フィルタを提供する。
//
// 各候補はM個の目的関数値からなるスコアベクトルを持ち、全ての目的は
// 「大きいほど良い」と解釈される。最小化したい目的は呼び出し側が事前に
// 符号反転しておくこと（preprocessing.Orient を参照）。
package pareto

import (
	"github.com/YuminosukeSato/moselect/pkg/errors"
)

// Dominates はスコアベクトルaがbを支配するかどうかを判定する。
// 支配の定義: 全ての目的で a[i] >= b[i] かつ少なくとも1つの目的で a[i] > b[i]。
// 同一のベクトル同士は互いに支配しない（支配関係は非反射的）。
//
// aとbは同じ長さであることを前提とする。IdentifyPareto系の入口で
// 検証済みの行だけがここに到達する。
func Dominates(a, b []float64) bool {
	strict := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			strict = true
		}
	}
	return strict
}

// IdentifyPareto は非劣解（パレート最適解）のインデックスを昇順で返す。
//
// scores はN行M列の非ジャグ行列（各行が1候補のスコアベクトル）。
// N=0 の場合は空の結果を返す（エラーではない）。検証は比較を始める前に
// 一括で行い、行長の不一致・M<1・非有限値はそれぞれ型付きエラーになる。
//
// 計算量は O(N²·M)。この領域で典型的な個体数（数十〜数千）には
// 二重ループによる全探索が最も単純かつ十分に速い。
func IdentifyPareto(scores [][]float64) ([]int, error) {
	return defaultFilter.Identify(scores)
}

// Front は非劣解のスコアベクトルとそのインデックスをまとめて返す。
// 返されるベクトルは入力のコピーであり、入力と領域を共有しない。
func Front(scores [][]float64) ([][]float64, []int, error) {
	return defaultFilter.Front(scores)
}

// validateScores は入力全体を比較開始前に検証する（fail fast）。
// 戻り値は候補数Nと目的数M。N=0 のときは (0, 0, nil)。
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
