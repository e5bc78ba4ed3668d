// Package container implements the block-grid spatial index that partitions
// a bounded rectangular domain into cubical blocks, stores particles per
// block, and supports periodic wrap-around and concurrent insertion with a
// deferred overflow-reconciliation step (spec §3, §4.1).
//
// What:
//
//   - Box is the domain's bounding interval plus per-axis periodicity flags.
//   - Config is a functional-options-built, YAML-loadable configuration
//     bundle (domain box, grid resolution, capacity ceiling, radical mode),
//     grounded on pthm-soup/config's embedded-defaults-plus-overlay Load.
//   - Grid owns the per-block particle arrays. Put is the serial insertion
//     path; PutParallel is safe for concurrent callers via an atomic
//     per-block slot claim, deferring any slot beyond a block's current
//     capacity to a shared overflow log drained by ReconcileOverflow.
//   - Remap folds a position into the primary domain along periodic axes
//     and reports the periodic image offset.
//
// Non-goals: dynamic removal of particles; incremental updates after
// particle motion (spec §1).
package container
