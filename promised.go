// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// promisedValue is the tri-state outcome slot of a computation. Exactly
// one state is active at a time, encoded in the domain pointer:
//
//	nil             value
//	exceptionDomain exception capsule (nil capsule: rethrow pending)
//	pendingDomain   not set yet (construction only)
//	anything else   domain error
//
// Transitions happen only through the set operations below; calling
// them out of sequence is undefined by design, not a checked error.
// The slot must not be read before exactly one set operation ran.
type promisedValue[T any] struct {
	domain  *ErrorDomain
	code    int
	capsule *Capsule
	value   T
}

func makePromised[T any]() promisedValue[T] {
	return promisedValue[T]{domain: pendingDomain}
}

func (p *promisedValue[T]) hasValue() bool     { return p.domain == nil }
func (p *promisedValue[T]) hasException() bool { return p.domain == exceptionDomain }
func (p *promisedValue[T]) hasError() bool     { return !p.hasValue() && !p.hasException() }
func (p *promisedValue[T]) isRethrow() bool    { return p.hasException() && p.capsule == nil }

// setValue resolves the slot with a success value.
func (p *promisedValue[T]) setValue(v T) {
	p.value = v
	p.domain = nil
}

// setError resolves the slot with a domain error. No allocation.
func (p *promisedValue[T]) setError(err Error) {
	p.domain = err.domain
	p.code = err.code
}

// setException resolves the slot with an exception capsule. ok is the
// allocator's verdict; an exhausted allocator degrades the failure to
// the not-enough-memory domain error instead of dropping it.
func (p *promisedValue[T]) setException(c *Capsule, ok bool) {
	if !ok {
		p.setError(Err(ErrcNotEnoughMemory))
		return
	}
	p.capsule = c
	p.domain = exceptionDomain
}

// rethrow marks the slot as propagating the exception active in an
// enclosing catch context, without constructing a new capsule.
func (p *promisedValue[T]) rethrow() {
	p.capsule = nil
	p.domain = exceptionDomain
}

// getError returns the active domain error.
func (p *promisedValue[T]) getError() Error {
	return Error{domain: p.domain, code: p.code}
}

// take moves the value out of the slot.
func (p *promisedValue[T]) take() T {
	return p.value
}

// propagateFailure moves the failure held by src into dst. src becomes
// logically empty and must not be read again; dst must not hold a
// value or an exception. Never valid when src holds a value.
func propagateFailure[T, U any](dst *promisedValue[T], src *promisedValue[U]) {
	dst.domain = src.domain
	dst.code = src.code
	dst.capsule = src.capsule
	src.capsule = nil
	src.domain = pendingDomain
}
