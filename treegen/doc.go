// Package treegen generates deterministic, bounded-fanout random
// trees for tests and benchmarks. Grounded on
// _examples/original_source/src/tree_generator/simple_tree_generator_impl.h,
// with one deliberate fix and one deliberate generalization:
//
//   - Fix: the original reseeds a fresh std::mt19937 with its default
//     seed inside every generate_tree/modify_tree call, so repeated
//     calls in the same process produce identical output (spec.md
//     section 9's documented seeding bug). RandomTree instead takes a
//     caller-owned *rand.Rand, so determinism comes from the caller's
//     seed, not from an accidental default.
//   - Generalization: the original builds a uniformly random *n*-node
//     ordered tree via a closing-bracket bijection that gives no
//     direct control over fanout. Since the spec calls for an explicit
//     maxFanout parameter, RandomTree instead assigns each new node a
//     random parent drawn only from nodes with spare fanout capacity —
//     a simpler parent-selection scheme that keeps the original's
//     size-driven guarantee (exactly size nodes, never depth-driven)
//     while adding the fanout bound.
package treegen
