// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Await operations for computations.
//
// Minimal definition: Return and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate computation allocations.

// Bind awaits m and continues with f. The nested computation runs to
// completion immediately on the same call stack; on success f receives
// its value, on failure f never runs and the failure moves into the
// awaiting computation's slot. This gives failure propagation the
// effect of an early return.
func Bind[A, B any](m Computation[A], f func(A) Computation[B]) Computation[B] {
	return Computation[B]{run: func() promisedValue[B] {
		pv := m.run()
		if !pv.hasValue() {
			out := makePromised[B]()
			propagateFailure(&out, &pv)
			return out
		}
		return f(pv.take()).run()
	}}
}

// Map awaits m and applies a pure transformation to its value.
// Failures propagate as with [Bind].
func Map[A, B any](m Computation[A], f func(A) B) Computation[B] {
	return Computation[B]{run: func() promisedValue[B] {
		pv := m.run()
		out := makePromised[B]()
		if !pv.hasValue() {
			propagateFailure(&out, &pv)
			return out
		}
		out.setValue(f(pv.take()))
		return out
	}}
}

// Then awaits m, discards its value and continues with n. Failures of
// m propagate and n never runs.
func Then[A, B any](m Computation[A], n Computation[B]) Computation[B] {
	return Computation[B]{run: func() promisedValue[B] {
		pv := m.run()
		if !pv.hasValue() {
			out := makePromised[B]()
			propagateFailure(&out, &pv)
			return out
		}
		return n.run()
	}}
}
