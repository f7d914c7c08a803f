package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/moselect/pareto"
	"github.com/YuminosukeSato/moselect/pkg/errors"
)

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		scores  [][]float64
		senses  []Sense
		want    [][]float64
		wantErr bool
	}{
		{
			name:   "mixed senses",
			scores: [][]float64{{0.9, 120}, {0.8, 80}},
			senses: []Sense{Maximize, Minimize},
			want:   [][]float64{{0.9, -120}, {0.8, -80}},
		},
		{
			name:   "all maximize is identity",
			scores: [][]float64{{1, 2}, {3, 4}},
			senses: []Sense{Maximize, Maximize},
			want:   [][]float64{{1, 2}, {3, 4}},
		},
		{
			name:   "empty population",
			scores: [][]float64{},
			senses: nil,
			want:   [][]float64{},
		},
		{
			name:    "senses length mismatch",
			scores:  [][]float64{{1, 2}},
			senses:  []Sense{Maximize},
			wantErr: true,
		},
		{
			name:    "invalid sense value",
			scores:  [][]float64{{1, 2}},
			senses:  []Sense{Maximize, Sense(42)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Orient(tt.scores, tt.senses)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientDoesNotMutateInput(t *testing.T) {
	scores := [][]float64{{1, 2}}
	_, err := Orient(scores, []Sense{Minimize, Minimize})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, scores)
}

func TestOrientThenFilter(t *testing.T) {
	// 精度は最大化、誤差は最小化。誤差を反転すると候補1が候補0を支配する。
	scores := [][]float64{
		{0.7, 5.0},
		{0.9, 2.0},
		{0.8, 1.0},
	}
	oriented, err := Orient(scores, []Sense{Maximize, Minimize})
	require.NoError(t, err)

	indices, err := pareto.IdentifyPareto(oriented)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, indices)
}

func TestDedupRows(t *testing.T) {
	scores := [][]float64{
		{1, 1},
		{2, 2},
		{1, 1},
		{3, 1},
		{2, 2},
	}

	kept, indices, err := DedupRows(scores)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2}, {3, 1}}, kept)
	assert.Equal(t, []int{0, 1, 3}, indices)
}

func TestDedupRowsLayeredBeforeFilter(t *testing.T) {
	// フィルタ単体は同一スコアを両方残す。前段のDedupで片方に絞れる。
	scores := [][]float64{{1, 1}, {1, 1}}

	direct, err := pareto.IdentifyPareto(scores)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, direct)

	kept, indices, err := DedupRows(scores)
	require.NoError(t, err)
	require.Equal(t, []int{0}, indices)

	deduped, err := pareto.IdentifyPareto(kept)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, deduped)
}

func TestMinMaxScale(t *testing.T) {
	scores := [][]float64{
		{0, 10},
		{5, 10},
		{10, 10},
	}

	scaled, err := MinMaxScale(scores)
	require.NoError(t, err)

	// 第1列は [0, 0.5, 1]、第2列は定数なので全て0
	assert.InDelta(t, 0.0, scaled[0][0], 1e-12)
	assert.InDelta(t, 0.5, scaled[1][0], 1e-12)
	assert.InDelta(t, 1.0, scaled[2][0], 1e-12)
	for i := range scaled {
		assert.Zero(t, scaled[i][1], "constant column must scale to 0")
	}
}

func TestPreprocessingInvalidInput(t *testing.T) {
	ragged := [][]float64{{1, 2}, {1}}
	nan := [][]float64{{1, math.NaN()}}

	_, err := MinMaxScale(ragged)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, _, err = DedupRows(nan)
	var nfErr *errors.NonFiniteError
	assert.True(t, errors.As(err, &nfErr))
}
