// Package moselect provides multi-objective candidate selection for Go,
// designed for model selection and multi-objective optimization pipelines.
//
// MOSelect offers a small, scikit-learn-flavored toolkit for picking the
// best candidates out of a scored population: the core is a Pareto
// (non-dominated) filter over score matrices, surrounded by the
// preprocessing and ranking helpers that a selection pipeline needs.
//
// # Features
//
// - Pareto Filter: exact non-dominated set identification over N candidates
// - Pure Functions: every operation is deterministic and side-effect free
// - Robust Error Handling: typed errors with stack traces for malformed input
// - High Performance: optional CPU-parallel scan for large populations
// - gonum Friendly: matrix front-ends for gonum/mat users
//
// # Installation
//
// Install MOSelect using go get:
//
//	go get github.com/YuminosukeSato/moselect
//
// # Quick Start
//
// Here's a simple example of Pareto-front identification:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/moselect/pareto"
//	)
//
//	func main() {
//	    scores := [][]float64{
//	        {97, 23}, {55, 77}, {34, 76}, {80, 60}, {99, 4},
//	    }
//
//	    front, err := pareto.IdentifyPareto(scores)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Non-dominated indices:", front)
//	}
//
// Every objective is maximized by convention. Objectives that should be
// minimized must be negated first; preprocessing.Orient does exactly that.
//
// # Packages
//
// The library is organized into several packages:
//
//   - pareto: Pareto (non-dominated) filtering of score matrices
//   - preprocessing: score orientation, scaling, and deduplication
//   - rank: weighted-sum scalarization and top-k ranking
//   - sampling: log-normal search-space sampling
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error types and panic recovery
//   - pkg/log: structured logging utilities
//
// # Performance
//
// The filter runs the textbook O(N²·M) dominance scan, which is the right
// tool for the population sizes seen in multi-objective search (tens to
// low thousands of candidates). Populations above a configurable threshold
// are scanned in parallel across CPU cores with identical results.
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/YuminosukeSato/moselect
//
// # License
//
// MOSelect is released under the MIT License.
package moselect
