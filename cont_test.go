// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing_test

import (
	"testing"

	"code.hybscloud.com/throwing"
)

func TestReturnRun(t *testing.T) {
	res := throwing.Run(throwing.Return(42))
	if res.Failure() {
		t.Fatal("expected success")
	}
	if got := res.Value(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestReturnVoid(t *testing.T) {
	res := throwing.Run(throwing.ReturnVoid())
	if res.Failure() {
		t.Fatal("expected success")
	}
}

func TestThrowErrorRun(t *testing.T) {
	res := throwing.Run(throwing.ThrowError[int](throwing.Err(testGeneralFailure)))
	if res.Success() {
		t.Fatal("expected failure")
	}
	if got := res.Err().Message(); got != "General failure." {
		t.Fatalf("got message %q, want %q", got, "General failure.")
	}
}

func TestRaise(t *testing.T) {
	res := throwing.Run(throwing.Raise[int](throwing.ErrcTimedOut))
	if res.Success() {
		t.Fatal("expected failure")
	}
	if got := res.Err().Code(); got != int(throwing.ErrcTimedOut) {
		t.Fatalf("got code %d, want %d", got, int(throwing.ErrcTimedOut))
	}
	if got := res.Err().Message(); got != "Connection timed out" {
		t.Fatalf("got message %q, want %q", got, "Connection timed out")
	}
}

func TestLazyStart(t *testing.T) {
	ran := false
	c := throwing.Suspend(func() throwing.Computation[int] {
		ran = true
		return throwing.Return(1)
	})
	if ran {
		t.Fatal("body ran before the computation was driven")
	}
	res := throwing.Run(c)
	if !ran {
		t.Fatal("body did not run when driven")
	}
	if got := res.Value(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestAbandonedComputationNeverRuns(t *testing.T) {
	ran := false
	_ = throwing.Suspend(func() throwing.Computation[int] {
		ran = true
		return throwing.Return(1)
	})
	if ran {
		t.Fatal("abandoned computation ran")
	}
}

func TestBindContinuesOnValue(t *testing.T) {
	c := throwing.Bind(throwing.Return(10), func(x int) throwing.Computation[int] {
		return throwing.Return(x * 2)
	})
	if got := throwing.Run(c).Value(); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindShortCircuitsOnFailure(t *testing.T) {
	continued := false
	c := throwing.Bind(
		throwing.ThrowError[int](throwing.Err(testNotPermitted)),
		func(x int) throwing.Computation[int] {
			continued = true
			return throwing.Return(x)
		},
	)
	res := throwing.Run(c)
	if continued {
		t.Fatal("continuation ran after a failed await")
	}
	if res.Success() {
		t.Fatal("expected the failure to propagate")
	}
	if got := res.Err().Code(); got != int(testNotPermitted) {
		t.Fatalf("got code %d, want %d", got, int(testNotPermitted))
	}
}

func TestNoStatementAfterFailedAwait(t *testing.T) {
	var trace []string
	body := throwing.Bind(
		throwing.Suspend(func() throwing.Computation[int] {
			trace = append(trace, "first")
			return throwing.Return(1)
		}),
		func(int) throwing.Computation[int] {
			return throwing.Bind(
				throwing.Suspend(func() throwing.Computation[int] {
					trace = append(trace, "failing")
					return throwing.Throw[int](chainA{Tag: "boom"})
				}),
				func(int) throwing.Computation[int] {
					trace = append(trace, "after")
					return throwing.Return(2)
				},
			)
		},
	)
	res := throwing.Run(body)
	if res.Success() {
		t.Fatal("expected the failure to propagate")
	}
	if len(trace) != 2 || trace[0] != "first" || trace[1] != "failing" {
		t.Fatalf("got trace %v, want [first failing]", trace)
	}
}

func TestAwaitOrdering(t *testing.T) {
	var order []int
	step := func(n int) throwing.Computation[int] {
		return throwing.Suspend(func() throwing.Computation[int] {
			order = append(order, n)
			return throwing.Return(n)
		})
	}
	c := throwing.Bind(step(1), func(int) throwing.Computation[int] {
		return throwing.Bind(step(2), func(int) throwing.Computation[int] {
			return step(3)
		})
	})
	if got := throwing.Run(c).Value(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("got order %v, want [1 2 3]", order)
	}
}

func TestMap(t *testing.T) {
	c := throwing.Map(throwing.Return(21), func(x int) int { return x * 2 })
	if got := throwing.Run(c).Value(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMapPropagatesFailure(t *testing.T) {
	c := throwing.Map(
		throwing.ThrowError[int](throwing.Err(testGeneralFailure)),
		func(x int) int { return x },
	)
	if throwing.Run(c).Success() {
		t.Fatal("expected the failure to propagate through Map")
	}
}

func TestThen(t *testing.T) {
	first := false
	c := throwing.Then(
		throwing.Suspend(func() throwing.Computation[int] {
			first = true
			return throwing.Return(1)
		}),
		throwing.Return("done"),
	)
	if got := throwing.Run(c).Value(); got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
	if !first {
		t.Fatal("first computation did not run")
	}
}

func TestThenSkipsSecondOnFailure(t *testing.T) {
	second := false
	c := throwing.Then(
		throwing.ThrowError[int](throwing.Err(testGeneralFailure)),
		throwing.Suspend(func() throwing.Computation[string] {
			second = true
			return throwing.Return("unreachable")
		}),
	)
	if throwing.Run(c).Success() {
		t.Fatal("expected the failure to propagate through Then")
	}
	if second {
		t.Fatal("second computation ran after a failure")
	}
}

func TestResultConsumedTwicePanics(t *testing.T) {
	res := throwing.Run(throwing.Return(1))
	_ = res.Value()
	defer func() {
		if recover() == nil {
			t.Fatal("second consumption did not panic")
		}
	}()
	_ = res.Value()
}
