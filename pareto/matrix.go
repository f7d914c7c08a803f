package pareto

import (
	"gonum.org/v1/gonum/mat"
)

// IdentifyParetoMatrix は gonum の行列を入力とするフロントエンド。
// 行が候補、列が目的関数に対応する。セマンティクスは IdentifyPareto と同一。
func IdentifyParetoMatrix(X mat.Matrix) ([]int, error) {
	return defaultFilter.IdentifyMatrix(X)
}

// IdentifyMatrix は gonum の行列を入力とするフロントエンド。
func (f *Filter) IdentifyMatrix(X mat.Matrix) ([]int, error) {
	r, c := X.Dims()
	if r == 0 {
		return []int{}, nil
	}

	// 行単位のスライスに展開してから通常経路で検証・走査する。
	scores := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		scores[i] = row
	}
	return f.Identify(scores)
}
