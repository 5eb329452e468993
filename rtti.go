// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

import (
	"reflect"
	"sync"
)

// TypeDescriptor is the immutable per-exception-type table: the type's
// direct bases in declaration order and the conversion from a derived
// pointer to each base sub-object. Descriptors form a DAG mirroring the
// declared inheritance and are never mutated after [DefineException].
type TypeDescriptor struct {
	name  string
	bases []baseLink
}

type baseLink struct {
	desc *TypeDescriptor
	cast func(any) any // derived pointer to base sub-object pointer
}

// Name returns the declared exception type name.
func (d *TypeDescriptor) Name() string { return d.name }

// Base declares one direct base of an exception type.
// Construct with [BaseOf].
type Base struct {
	desc *TypeDescriptor
	cast func(any) any
}

// BaseOf declares B as a direct base of D, with the pointer adjustment
// from a D value to its B sub-object. B must have been defined already;
// bases are declared in order, roots first.
//
//	throwing.BaseOf(func(e *RuntimeError) *Exception { return &e.Exception })
func BaseOf[D, B any](cast func(*D) *B) Base {
	return Base{
		desc: descriptorOf[B](),
		cast: func(p any) any { return cast(p.(*D)) },
	}
}

var (
	descMu      sync.RWMutex
	descriptors = map[reflect.Type]*TypeDescriptor{}
)

// DefineException registers the exception type T with its declared
// direct bases, making T throwable and catchable. Declaring the same
// type twice panics.
//
//	type parseError struct{ throwing.Exception }
//
//	var parseErrorType = throwing.DefineException[parseError]("parse_error",
//		throwing.BaseOf(func(e *parseError) *throwing.Exception { return &e.Exception }))
func DefineException[T any](name string, bases ...Base) *TypeDescriptor {
	d := &TypeDescriptor{name: name, bases: make([]baseLink, len(bases))}
	for i, b := range bases {
		d.bases[i] = baseLink{desc: b.desc, cast: b.cast}
	}
	key := reflect.TypeOf((*T)(nil)).Elem()
	descMu.Lock()
	defer descMu.Unlock()
	if _, dup := descriptors[key]; dup {
		panic("throwing: exception type already defined: " + key.String())
	}
	descriptors[key] = d
	return d
}

// descriptorOf resolves the descriptor for exception type T. Throwing
// or catching a type that was never defined is a programming error
// reported at first use.
func descriptorOf[T any]() *TypeDescriptor {
	key := reflect.TypeOf((*T)(nil)).Elem()
	descMu.RLock()
	d := descriptors[key]
	descMu.RUnlock()
	if d == nil {
		panic("throwing: exception type not defined: " + key.String())
	}
	return d
}

// dynCast searches for the target type within the declared base graph
// of from, starting at addr (a pointer to the most derived value).
// Identity matches return addr unchanged; otherwise the direct bases
// are searched depth first in declaration order and the first match
// wins. Returns nil when target is not reachable.
//
// A type reachable through two distinct base paths resolves through
// the first declared path; no ambiguity is detected.
func dynCast(target *TypeDescriptor, addr any, from *TypeDescriptor) any {
	if from == target {
		return addr
	}
	for i := range from.bases {
		b := &from.bases[i]
		if p := dynCast(target, b.cast(addr), b.desc); p != nil {
			return p
		}
	}
	return nil
}
