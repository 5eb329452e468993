// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Result is the finished outcome of a computation: a drained outcome
// slot holding either the value or the failure. A result is created
// once by [Run] and consumed at most once, by catch dispatch or by
// direct value access; a second consumption panics.
type Result[A any] struct {
	value promisedValue[A]
	used  oneShot
}

// Run drives the computation to completion and drains its outcome.
func Run[A any](c Computation[A]) *Result[A] {
	return &Result[A]{value: c.run()}
}

// Success reports whether a value is stored.
func (r *Result[A]) Success() bool { return r.value.hasValue() }

// Failure reports whether an exception or error is stored.
func (r *Result[A]) Failure() bool { return !r.value.hasValue() }

// Err returns the stored domain error. When the failure is an
// exception rather than a domain error the returned error carries the
// internal exception sentinel domain; check [Result.Exception] first.
func (r *Result[A]) Err() Error { return r.value.getError() }

// Exception returns the runtime type descriptor and address of the
// stored exception, or (nil, nil) when no exception is active.
func (r *Result[A]) Exception() (*TypeDescriptor, any) {
	if !r.value.hasException() || r.value.capsule == nil {
		return nil, nil
	}
	return r.value.capsule.desc, r.value.capsule.value
}

// Value consumes the result and returns the stored value. The behavior
// is undefined if a failure is stored; that is a caller bug, not a
// reported condition.
func (r *Result[A]) Value() A {
	r.used.consume("result")
	return r.value.take()
}
