// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing_test

import (
	"math/rand"
	"testing"

	"code.hybscloud.com/throwing"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.Intn(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.Intn(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(95) + 32) // printable ASCII
	}
	return string(b)
}

// Property: the driver returns every success value unchanged and
// invokes no clause.
func TestPropertyDriverIdentityOnSuccess(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < propertyN; i++ {
		v := randInt(rng)
		invoked := false
		res := throwing.TryCatch(
			throwing.Return(v),
			throwing.Catch(func(e *throwing.Exception) throwing.Computation[int] {
				invoked = true
				return throwing.Return(0)
			}),
			throwing.CatchAll(func() throwing.Computation[int] {
				invoked = true
				return throwing.Return(0)
			}),
		)
		if invoked {
			t.Fatalf("iteration %d: clause invoked for value %d", i, v)
		}
		if got := res.Value(); got != v {
			t.Fatalf("iteration %d: got %d, want %d", i, got, v)
		}
	}
}

// Property: a thrown exception payload survives base-type catching
// unchanged.
func TestPropertyPayloadSurvivesCatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < propertyN; i++ {
		msg := randString(rng)
		res := throwing.TryCatch(
			throwing.Throw[string](throwing.NewRuntimeError(msg)),
			throwing.Catch(func(e *throwing.Exception) throwing.Computation[string] {
				return throwing.Return(e.What())
			}),
		)
		if got := res.Value(); got != msg {
			t.Fatalf("iteration %d: got %q, want %q", i, got, msg)
		}
	}
}

// Property: a failure at a random position in a Bind chain stops the
// body exactly there; no later step runs.
func TestPropertyFailureStopsChain(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < propertyN; i++ {
		length := rng.Intn(8) + 2
		failAt := rng.Intn(length)
		ran := 0
		c := throwing.Return(0)
		for step := 0; step < length; step++ {
			step := step
			c = throwing.Bind(c, func(int) throwing.Computation[int] {
				ran++
				if step == failAt {
					return throwing.Raise[int](throwing.ErrcInterrupted)
				}
				return throwing.Return(step)
			})
		}
		res := throwing.Run(c)
		if res.Success() {
			t.Fatalf("iteration %d: expected failure", i)
		}
		if ran != failAt+1 {
			t.Fatalf("iteration %d: %d steps ran, want %d", i, ran, failAt+1)
		}
	}
}

// Property: rethrow preserves the exception identity through any
// number of handler layers.
func TestPropertyRethrowIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < propertyN/10; i++ {
		msg := randString(rng)
		layers := rng.Intn(4) + 1
		res := throwing.Run(throwing.Throw[int](throwing.NewRuntimeError(msg)))
		for layer := 0; layer < layers; layer++ {
			res = throwing.Run(res.Catches(
				throwing.Catch(func(e *throwing.RuntimeError) throwing.Computation[int] {
					return throwing.Rethrow[int]()
				}),
			))
		}
		if res.Success() {
			t.Fatalf("iteration %d: rethrown failure vanished", i)
		}
		desc, addr := res.Exception()
		if desc != throwing.RuntimeErrorType {
			t.Fatalf("iteration %d: type changed to %v", i, desc)
		}
		if got := addr.(*throwing.RuntimeError).What(); got != msg {
			t.Fatalf("iteration %d: got %q, want %q", i, got, msg)
		}
	}
}

// Property: domain error messages equal the registered table entry and
// is_success holds only for the designated success code.
func TestPropertyErrcTableConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < propertyN; i++ {
		code := throwing.Errc(rng.Intn(132))
		err := throwing.Err(code)
		if err.Message() != throwing.ErrcDomain.Message(int(code)) {
			t.Fatalf("iteration %d: message mismatch for code %d", i, code)
		}
		if got, want := err.Success(), code == throwing.ErrcSuccess; got != want {
			t.Fatalf("iteration %d: success = %v for code %d", i, got, code)
		}
	}
}
