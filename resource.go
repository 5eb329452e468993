// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Resource safety primitives for failure-safe resource management.

// Bracket acquires a resource, uses it, and releases it whether or not
// use fails. A failure of use propagates after release completes; a
// failure of release surfaces only when use succeeded.
func Bracket[R, A any](
	acquire Computation[R],
	release func(R) Computation[Void],
	use func(R) Computation[A],
) Computation[A] {
	return Bind(acquire, func(resource R) Computation[A] {
		return Computation[A]{run: func() promisedValue[A] {
			out := use(resource).run()
			rel := release(resource).run()
			if out.hasValue() && !rel.hasValue() {
				res := makePromised[A]()
				propagateFailure(&res, &rel)
				return res
			}
			return out
		}}
	})
}

// OnError runs cleanup only when body fails, then re-raises the
// original failure unchanged. A failure of cleanup itself replaces the
// original one.
func OnError[A any](body Computation[A], cleanup func() Computation[Void]) Computation[A] {
	return Computation[A]{run: func() promisedValue[A] {
		out := body.run()
		if out.hasValue() {
			return out
		}
		rel := cleanup().run()
		if !rel.hasValue() {
			res := makePromised[A]()
			propagateFailure(&res, &rel)
			return res
		}
		return out
	}}
}
