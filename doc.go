// Package jsom provides a fluent view over dynamically typed value trees
// such as those produced by decoding JSON.
//
// # Overview
//
// A tree is made of nodes. A node is one of:
//
//   - *Mapping: string keys in insertion order, node values
//   - *Sequence: ordered nodes
//   - string, bool, or any Go number type (including json.Number)
//   - nil, the null node
//
// A *Value is a transient view of one node. Navigation (Get, At, Keys,
// Values, SubList, GetPath) returns new Values; mutations (Put, Add,
// Insert, RemoveKey, Sort, Clear, ...) return the Value they were called
// on. A Value never holds another Value: Wrap passes Values through and
// every insertion unwraps its argument before storing it, so containers
// only hold raw nodes.
//
//	todo := jsom.List(
//	    jsom.Must(jsom.NewMapping().Put("title", "learn go")),
//	    jsom.Must(jsom.NewMapping().Put("done", false)),
//	)
//	first := jsom.Must(todo.At(0))
//
// # Errors
//
// Operations fail with one of three sentinel errors, tested with
// errors.Is:
//
//   - ErrNullValue: a present value was required but the node is null
//   - ErrTypeMismatch: the node's kind does not support the operation
//   - ErrIndexOutOfRange: a sequence index or range is outside the sequence
//
// A missing mapping key is not an error: Get returns a null view.
//
// # Lazy sequences
//
// Elements and Entries expose containers as iter.Seq values which can be
// piped through Filter and Map and terminated with Count, Reduce, or
// Collect with the ToSequence and ToMapping collectors. The parallel
// variants split a container into partitions for CollectParallel.
//
// # Deep clone
//
// DeepClone copies every Mapping and Sequence of a tree and shares its
// scalar leaves.
//
// # Thread Safety
//
// Trees are not safe for concurrent mutation. Parallel partitions only read
// the container they were created from.
package jsom
