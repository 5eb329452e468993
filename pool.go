// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

import "sync"

// Capsule pool for the default allocator. A consumed failure releases
// its capsule back to the pool with all fields zeroed; pooled capsules
// require single ownership, which the promised-value move discipline
// guarantees.

var capsulePool = sync.Pool{New: func() any { return new(Capsule) }}

// HeapAllocator is the default, infallible capsule allocator. Capsules
// are drawn from a pool and returned when the failure they carry is
// consumed.
type HeapAllocator struct{}

// Capsule implements [Allocator]. It always succeeds.
func (HeapAllocator) Capsule(desc *TypeDescriptor, value any) (*Capsule, bool) {
	c := capsulePool.Get().(*Capsule)
	c.desc = desc
	c.value = value
	c.pooled = true
	return c, true
}

// release zeroes the capsule and returns it to the pool; no-op for
// capsules of other allocators.
func (c *Capsule) release() {
	if !c.pooled {
		return
	}
	c.desc = nil
	c.value = nil
	c.pooled = false
	capsulePool.Put(c)
}
