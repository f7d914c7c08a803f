// Package log defines standard attribute keys for selection operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in MOSelect. Using these standard keys enables better
// log analysis, monitoring, and debugging of selection pipelines.
//
// The keys follow a hierarchical naming convention (e.g., "population.size",
// "front.size") to enable structured log analysis and filtering.

package log

// Operation Context
// These attributes identify the component and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "pareto", "preprocessing", "rank", "sampling"
	ComponentKey = "component"

	// OperationKey specifies the selection operation being performed.
	// Standard values: "identify", "orient", "dedup", "scale", "rank", "sample"
	OperationKey = "operation"
)

// Population Shape
// These attributes describe the score data being processed.
const (
	// PopulationKey indicates the number of candidates (rows) in the population.
	PopulationKey = "population.size"

	// ObjectivesKey indicates the number of objectives (columns) per candidate.
	ObjectivesKey = "population.objectives"

	// FrontSizeKey indicates the number of non-dominated candidates found.
	FrontSizeKey = "front.size"
)

// Performance Metrics
// These attributes capture timing and parallelism characteristics.
const (
	// DurationMsKey indicates the duration of an operation in milliseconds.
	DurationMsKey = "duration_ms"

	// ParallelKey indicates whether the operation ran on the parallel path.
	ParallelKey = "parallel"

	// WorkersKey indicates the number of goroutines used.
	WorkersKey = "workers"
)

// Sampling Context
const (
	// SeedKey records the RNG seed of a sampling operation.
	SeedKey = "seed"

	// SamplesKey indicates the number of samples drawn.
	SamplesKey = "samples"
)
