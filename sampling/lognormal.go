// Package sampling はハイパーパラメータ探索空間のサンプリングを提供する。
//
// 学習率や正則化係数のような正値のハイパーパラメータは対数正規分布から
// 引くのが定石だが、分布のパラメータ（基礎となる正規分布のμとσ）を
// 直接指定するのは直感的でない。このパッケージは「サンプルの平均と
// 標準偏差」からモーメント一致でμとσを逆算する入口を提供する。
package sampling

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/moselect/pkg/errors"
)

// LogNormal は対数正規分布のサンプラー
type LogNormal struct {
	// Mu は基礎となる正規分布の平均
	Mu float64
	// Sigma は基礎となる正規分布の標準偏差
	Sigma float64

	dist distuv.LogNormal
}

// NewLogNormal はμとσを直接指定してサンプラーを作成する。
// σは正の有限値であること。
func NewLogNormal(mu, sigma float64, opts ...Option) (*LogNormal, error) {
	if !errors.IsFinite(mu) {
		return nil, errors.NewValidationError("mu", "must be finite", mu)
	}
	if !errors.IsFinite(sigma) || sigma <= 0 {
		return nil, errors.NewValidationError("sigma", "must be positive and finite", sigma)
	}

	ln := &LogNormal{Mu: mu, Sigma: sigma}
	cfg := applyOptions(opts)
	ln.dist = distuv.LogNormal{Mu: mu, Sigma: sigma, Src: cfg.src}
	return ln, nil
}

// LogNormalFromMoments は生成されるサンプルの平均と標準偏差を指定して
// サンプラーを作成する。基礎となる正規分布のパラメータは閉形式
//
//	σ² = ln(1 + (stddev/mean)²)
//	μ  = ln(mean) − σ²/2
//
// で逆算される。meanとstddevはどちらも正の有限値であること。
func LogNormalFromMoments(mean, stddev float64, opts ...Option) (*LogNormal, error) {
	if !errors.IsFinite(mean) || mean <= 0 {
		return nil, errors.NewValidationError("mean", "must be positive and finite", mean)
	}
	if !errors.IsFinite(stddev) || stddev <= 0 {
		return nil, errors.NewValidationError("stddev", "must be positive and finite", stddev)
	}

	sigma2 := math.Log(1 + (stddev/mean)*(stddev/mean))
	mu := math.Log(mean) - sigma2/2
	return NewLogNormal(mu, math.Sqrt(sigma2), opts...)
}

// Rand は分布から1つサンプルを引く
func (ln *LogNormal) Rand() float64 {
	return ln.dist.Rand()
}

// Sample は分布からn個のサンプルを引く。nは非負であること。
func (ln *LogNormal) Sample(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.NewValidationError("n", "must be non-negative", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = ln.dist.Rand()
	}
	return out, nil
}

// Mean は分布の（サンプル空間での）平均を返す
func (ln *LogNormal) Mean() float64 {
	return math.Exp(ln.Mu + ln.Sigma*ln.Sigma/2)
}

// StdDev は分布の（サンプル空間での）標準偏差を返す
func (ln *LogNormal) StdDev() float64 {
	s2 := ln.Sigma * ln.Sigma
	return math.Sqrt((math.Exp(s2) - 1) * math.Exp(2*ln.Mu+s2))
}

type config struct {
	src rand.Source
}

// Option is a function that configures a sampler
type Option func(*config)

// WithSeed fixes the RNG seed for reproducible sampling.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource sets an explicit RNG source, e.g. a shared locked source.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
