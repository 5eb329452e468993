// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package throwing provides a fallible-computation runtime: a function
// signals "value produced", "domain error code" or "typed exception
// object" as three mutually exclusive outcomes, and callers propagate
// or selectively catch these outcomes without stack unwinding.
//
// The core type [Computation] represents the deferred body of a
// fallible function. Awaiting a nested computation with [Bind] runs it
// to completion on the same call stack and either continues with its
// value or moves its failure into the awaiting computation's slot,
// abandoning the rest of the body. Failure propagation is therefore a
// slot-to-slot move with early-return effect, never an unwind.
//
// # Design Philosophy
//
// throwing provides:
//   - A tri-state outcome slot with strict single ownership; propagation
//     is a move, never a copy or shared reference
//   - A minimal, hand-rolled runtime type identification scheme that
//     catches exceptions by declared base across a programmer-declared
//     inheritance graph
//   - Ordered catch-clause dispatch with domain-error clauses, a
//     catch-all clause and an explicit rethrow operation
//   - An injectable allocator strategy; allocation failure degrades to
//     the not-enough-memory domain error instead of aborting
//
// Everything is single threaded and cooperative: at most one
// computation executes at any instant, nested computations run in the
// exact order they are awaited, and no scheduler exists.
//
// # Core Operations
//
// Declaring a fallible function and its body:
//
//   - [Return]: Produce the success value terminating the body
//   - [ReturnVoid]: Terminate a void-producing body
//   - [Throw]: Raise a declared exception value, moved into a capsule
//   - [ThrowAlloc]: Raise with an explicit allocation strategy
//   - [ThrowError], [Raise]: Raise a domain error, no allocation
//   - [Rethrow]: Propagate the exception currently being handled
//   - [Bind], [Map], [Then]: Await a nested computation
//   - [Suspend]: Defer body construction until the computation runs
//
// Execution and catching:
//
//   - [Run]: Drive a computation and drain its outcome into a [Result]
//   - [Result.Catches]: Dispatch an ordered catch-clause list
//   - [Catch], [CatchError], [CatchAll]: Declare catch clauses
//   - [TryCatch]: Run an entry computation and dispatch in one step
//
// # Declarations
//
// Exception types are declared with [DefineException], naming their
// direct bases in declaration order via [BaseOf]; catching by base
// walks this graph depth first, first declared path wins. Error code
// enumerations are bound to exactly one [ErrorDomain] through
// [DefineErrorDomain]; the built-in [Errc] domain carries the POSIX
// message table. The built-in exception hierarchy is rooted at
// [Exception].
//
// # Resource Safety
//
//   - [Bracket]: Acquire-release-use with guaranteed release
//   - [OnError]: Run cleanup only on failure, then re-raise
//
// # Example
//
//	func foo(success bool) throwing.Computation[int] {
//		if !success {
//			return throwing.Throw[int](throwing.NewRuntimeError("My runtime error"))
//		}
//		return throwing.Return(1337)
//	}
//
//	res := throwing.TryCatch(
//		foo(false),
//		throwing.Catch(func(e *throwing.Exception) throwing.Computation[int] {
//			fmt.Println("exception caught:", e.What())
//			return throwing.Return(1)
//		}),
//		throwing.CatchAll(func() throwing.Computation[int] {
//			fmt.Println("Unknown exception")
//			return throwing.Return(1)
//		}),
//	)
//	// res.Value() == 1
package throwing
