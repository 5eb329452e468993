// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// TryCatch executes the entry computation and dispatches the catch
// clauses against its outcome. An unhandled failure is reported
// through the returned result, never as a crash.
//
//	res := throwing.TryCatch(
//		throwing.Bind(foo(false), func(v int) throwing.Computation[int] {
//			return throwing.Return(v)
//		}),
//		throwing.Catch(func(e *throwing.Exception) throwing.Computation[int] {
//			fmt.Println("caught:", e.What())
//			return throwing.Return(1)
//		}),
//	)
func TryCatch[A any](body Computation[A], clauses ...Clause[A]) *Result[A] {
	if len(clauses) == 0 {
		return Run(body)
	}
	return Run(Run(body).Catches(clauses...))
}
