// Package aggregate folds a binary operator over every element of a strided
// N-dimensional view and returns one scalar.
//
// The fold is a deterministic left fold in row-major order (the last axis
// varies fastest), seeded with the element at the all-zero index. The view is
// never copied or modified.
//
// Aggregate tries three stages in order:
//
//  1. a native bulk reduction for contiguous views of built-in element types,
//  2. a row kernel specialized for the operator kind and element type,
//  3. the generic traversal calling the operator's Op method per element.
//
// The first two stages are only chosen for operators that report a Kind and
// always yield the result of stage 3, unless WithReassociation is given.
//
// Rank 1 and rank 2 views use dedicated loops. Higher ranks run the last three
// axes as nested loops and enumerate the leading axes with an odometer.
package aggregate
