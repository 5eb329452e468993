// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Capsule is the type-erased holder of one concrete exception value
// together with its runtime type identity. A capsule has exactly one
// owner at a time; ownership moves with the failure it belongs to.
type Capsule struct {
	desc   *TypeDescriptor
	value  any // pointer to the concrete exception value
	pooled bool
}

// TypeID returns the descriptor of the held exception's runtime type.
func (c *Capsule) TypeID() *TypeDescriptor { return c.desc }

// Address returns the pointer to the held exception value.
func (c *Capsule) Address() any { return c.value }

// Allocator controls storage for exception capsules.
//
// Capsule stores value (a pointer to the concrete exception) under the
// given descriptor and reports false when storage is exhausted. An
// exhausted allocator degrades the throw to the not-enough-memory
// domain error; the failure is never dropped.
type Allocator interface {
	Capsule(desc *TypeDescriptor, value any) (*Capsule, bool)
}

// DefaultAllocator backs [Throw]. It never fails.
var DefaultAllocator Allocator = HeapAllocator{}
