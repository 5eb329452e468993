// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Ordered catch-clause dispatch. A clause list is walked in declaration
// order against the active failure; the first structurally matching
// clause wins and its outcome becomes the overall outcome.

type clauseKind uint8

const (
	clauseTyped clauseKind = iota
	clauseError
	clauseAll
)

// Clause is one catch clause in a dispatch list. Construct with
// [Catch], [CatchError] or [CatchAll]. All clauses of one dispatch
// produce a common result type A, enforced at composition time by the
// type system.
type Clause[A any] struct {
	kind    clauseKind
	desc    *TypeDescriptor
	typed   func(any) Computation[A]
	errorFn func(Error) Computation[A]
	all     func() Computation[A]
}

// Catch declares a clause matching exceptions whose runtime type
// equals E or declares E as a base, directly or transitively. The
// handler receives the pointer adjusted to the E sub-object; the
// pointer is valid only for the duration of the handler.
//
// The handler may itself fail, which replaces the caught failure, or
// invoke [Rethrow] to restore it unchanged.
func Catch[E, A any](handler func(*E) Computation[A]) Clause[A] {
	return Clause[A]{
		kind:  clauseTyped,
		desc:  descriptorOf[E](),
		typed: func(p any) Computation[A] { return handler(p.(*E)) },
	}
}

// CatchError declares a domain-error clause. It matches any failure
// carrying a domain error; it never matches an exception.
func CatchError[A any](handler func(Error) Computation[A]) Clause[A] {
	return Clause[A]{kind: clauseError, errorFn: handler}
}

// CatchAll declares a parameterless clause matching any failure.
// It must be the last clause of its dispatch list.
func CatchAll[A any](handler func() Computation[A]) Clause[A] {
	return Clause[A]{kind: clauseAll, all: handler}
}

// Catches consumes the result and returns the computation dispatching
// the clause list against it. A stored value passes through untouched
// and no clause is invoked; otherwise clauses are tried in declaration
// order and the first match is invoked with the matched exception
// sub-object, the domain error, or no argument. An unmatched failure
// propagates to the enclosing caller unchanged.
//
// Panics at composition time if a catch-all clause is not last.
func (r *Result[A]) Catches(clauses ...Clause[A]) Computation[A] {
	for i := range clauses {
		if clauses[i].kind == clauseAll && i != len(clauses)-1 {
			panic("throwing: catch-all clause must be the last one")
		}
	}
	r.used.consume("result")
	pv := r.value
	r.value.capsule = nil // moved into the dispatch computation
	return Computation[A]{run: func() promisedValue[A] {
		return dispatchClauses(pv, clauses)
	}}
}

func dispatchClauses[A any](pv promisedValue[A], clauses []Clause[A]) promisedValue[A] {
	if pv.hasValue() {
		return pv
	}

	// The (type, address) identity of the active exception, or nil
	// when a domain error or a bare rethrow marker is active.
	var desc *TypeDescriptor
	var addr any
	if pv.hasException() && pv.capsule != nil {
		desc = pv.capsule.desc
		addr = pv.capsule.value
	}

	for i := range clauses {
		clause := &clauses[i]
		var handled Computation[A]
		switch clause.kind {
		case clauseTyped:
			if addr == nil {
				continue
			}
			p := dynCast(clause.desc, addr, desc)
			if p == nil {
				continue
			}
			handled = clause.typed(p)
		case clauseError:
			if addr != nil {
				continue
			}
			handled = clause.errorFn(pv.getError())
		case clauseAll:
			handled = clause.all()
		}

		out := handled.run()
		if out.isRethrow() {
			// The clause rethrew: the originally active failure is
			// restored and propagates unchanged.
			return pv
		}
		if pv.capsule != nil {
			pv.capsule.release()
		}
		return out
	}

	// No clause matched; the failure propagates to the enclosing
	// caller unchanged.
	return pv
}
