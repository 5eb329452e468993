// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Computation represents the deferred body of a fallible function
// producing a value of type A. Nothing executes until the computation
// is driven, by awaiting it with [Bind] or by running it with [Run].
// Driving executes the body synchronously to completion on the same
// call stack and resolves its outcome slot. A computation that is
// never driven simply never executes.
type Computation[A any] struct {
	run func() promisedValue[A]
}

// Void is the result type of computations that produce no value.
type Void = struct{}

// Return produces the success value terminating a fallible body.
func Return[A any](v A) Computation[A] {
	return Computation[A]{run: func() promisedValue[A] {
		p := makePromised[A]()
		p.setValue(v)
		return p
	}}
}

// ReturnVoid terminates the body of a void-producing computation.
func ReturnVoid() Computation[Void] {
	return Return(Void{})
}

// Suspend defers construction of a computation until it is driven.
// Use it when building the body itself has side effects or depends on
// state that must be observed at execution time.
func Suspend[A any](f func() Computation[A]) Computation[A] {
	return Computation[A]{run: func() promisedValue[A] {
		return f().run()
	}}
}

// Throw raises ex, moving it into a capsule drawn from
// [DefaultAllocator]. The exception type must have been declared with
// [DefineException]; throwing an undeclared type panics.
func Throw[A, E any](ex E) Computation[A] {
	return ThrowAlloc[A](DefaultAllocator, ex)
}

// ThrowAlloc raises ex using an explicit allocation strategy. If the
// allocator reports exhaustion the throw degrades to the
// not-enough-memory domain error; the failure is never dropped.
func ThrowAlloc[A, E any](alloc Allocator, ex E) Computation[A] {
	desc := descriptorOf[E]()
	return Computation[A]{run: func() promisedValue[A] {
		p := makePromised[A]()
		v := ex
		c, ok := alloc.Capsule(desc, &v)
		p.setException(c, ok)
		return p
	}}
}

// ThrowError raises a domain error. No allocation takes place.
func ThrowError[A any](err Error) Computation[A] {
	return Computation[A]{run: func() promisedValue[A] {
		p := makePromised[A]()
		p.setError(err)
		return p
	}}
}

// Raise raises the domain error for a registered code value.
// Raise[A](code) is equivalent to ThrowError[A](Err(code)).
func Raise[A any, E ~int](code E) Computation[A] {
	err := Err(code)
	return ThrowError[A](err)
}

// Rethrow propagates the exception currently being handled, unchanged,
// without constructing a new capsule. Valid only inside the body of a
// catch clause; the dispatcher restores the originally active failure.
func Rethrow[A any]() Computation[A] {
	return Computation[A]{run: func() promisedValue[A] {
		p := makePromised[A]()
		p.rethrow()
		return p
	}}
}
