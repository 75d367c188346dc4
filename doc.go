// Package wgpath recovers waveguide centerlines from fabricated polygon
// outlines and derives the length and bend-radius metrics used to verify a
// physical layout against its routing constraints.
//
// The input is the raw two-rail outline of a waveguide ribbon: a closed
// polygon per run on a designated layer, with no semantic tags telling us
// which boundary points belong to which rail or which port pairs with which
// run. The package recovers that structure, cleans up discretization
// artifacts, and performs the discrete differential geometry needed to check
// minimum bend radius and target path length.
//
// # Pipeline
//
// Data flows strictly upward through pure functions:
//
//	raw vertices → cleaned/ordered points → rails → centerline(s) →
//	per-port-pair paths → resampled/smoothed paths → curvature metrics
//
// The stages are:
//
//   - Point cleaning (see [FilterPointsByStdDistance] and
//     [SortPointsNearestNeighbor])
//   - Rail splitting and centerline construction (see [Centerline])
//   - Port-pair topology resolution (see [ExtractPaths])
//   - Arc-length resampling and local-polynomial smoothing (see [Resample]
//     and [SmoothSavGol])
//   - Curvature and length analysis (see [Path.Curvature],
//     [Path.MinBendRadius], and [Path.Length])
//
// # Statelessness and concurrency
//
// No function retains state between calls and no package-level mutable state
// exists. Extraction of independent paths is embarrassingly parallel: callers
// may run the pipeline concurrently per polygon or per component without
// coordination.
//
// The package owns no file format, wire protocol, or CLI. Layout I/O, port
// metadata storage, and plotting are the caller's concern; this is an
// in-process computational core.
package wgpath
