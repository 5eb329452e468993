// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

import "sync/atomic"

// oneShot enforces at-most-once consumption of a resolved outcome.
// A result's payload has a single owner; consuming it twice would
// duplicate the owned failure, so the second attempt panics.
type oneShot struct {
	used atomic.Uintptr
}

// consume marks the outcome consumed. Panics on a second call.
func (o *oneShot) consume(what string) {
	if o.used.Add(1) != 1 {
		panic("throwing: " + what + " consumed twice")
	}
}
