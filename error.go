// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

import (
	"reflect"
	"sync"
)

// ErrorDomain identifies a family of error codes and translates codes
// of that family to messages.
//
// A domain is immutable after construction and lives for the process
// lifetime. Exactly one domain exists per error code enumeration type;
// use [DefineErrorDomain] to create and register it.
type ErrorDomain struct {
	name    string
	success int
	message func(int) string
}

// Name returns the error domain name.
func (d *ErrorDomain) Name() string { return d.name }

// Message returns the error message for the given code.
// For the success code the result is unspecified; every other code
// yields non-empty text. Message must not fail.
func (d *ErrorDomain) Message(code int) string { return d.message(code) }

// Success reports whether code is the domain's designated success code.
func (d *ErrorDomain) Success(code int) bool { return code == d.success }

// Sentinel domains encoding promised-value states. They are never
// registered, so their identity cannot collide with a user domain.
var (
	// pendingDomain marks a slot that has not been set yet. It is only
	// observable during construction, never by callers.
	pendingDomain = &ErrorDomain{message: func(int) string { return "" }}

	// exceptionDomain marks a slot holding an exception capsule, or a
	// rethrow-pending marker when the capsule is nil.
	exceptionDomain = &ErrorDomain{message: func(int) string { return "" }}
)

var (
	domainMu sync.RWMutex
	domains  = map[reflect.Type]*ErrorDomain{}
)

// DefineErrorDomain creates the error domain for the code type E and
// registers it under E's type identity. The domain's name and success
// code are given, along with the code-to-message translation, which
// must return non-empty text for every non-success code.
//
// Each code type has exactly one domain; defining a second domain for
// the same type panics. Registration is expected to happen during
// package initialization:
//
//	type dbError int
//
//	const (
//		dbOK dbError = iota
//		dbNotFound
//		dbCorrupt
//	)
//
//	var dbDomain = throwing.DefineErrorDomain("db", dbOK, func(code dbError) string {
//		switch code {
//		case dbNotFound:
//			return "Entry not found"
//		case dbCorrupt:
//			return "Store corrupted"
//		default:
//			return "Unspecified error"
//		}
//	})
func DefineErrorDomain[E ~int](name string, success E, message func(E) string) *ErrorDomain {
	d := &ErrorDomain{
		name:    name,
		success: int(success),
		message: func(code int) string { return message(E(code)) },
	}
	key := reflect.TypeOf((*E)(nil)).Elem()
	domainMu.Lock()
	defer domainMu.Unlock()
	if _, dup := domains[key]; dup {
		panic("throwing: error domain already defined for " + key.String())
	}
	domains[key] = d
	return d
}

// domainOf resolves the registered domain for the code type E.
// Using a code type with no registered domain is a programming error
// reported at first use.
func domainOf[E ~int]() *ErrorDomain {
	key := reflect.TypeOf((*E)(nil)).Elem()
	domainMu.RLock()
	d := domains[key]
	domainMu.RUnlock()
	if d == nil {
		panic("throwing: no error domain defined for " + key.String())
	}
	return d
}

// Error is a lightweight (domain, code) pair. It carries no ownership
// beyond a non-owning reference to its domain and is freely copyable.
type Error struct {
	domain *ErrorDomain
	code   int
}

// Err constructs an Error from a code enumeration value, resolving the
// domain registered for the value's type.
func Err[E ~int](code E) Error {
	return Error{domain: domainOf[E](), code: int(code)}
}

// ErrIn constructs an Error with an explicitly given domain.
func ErrIn[E ~int](code E, domain *ErrorDomain) Error {
	return Error{domain: domain, code: int(code)}
}

// Domain returns the error domain.
func (e Error) Domain() *ErrorDomain { return e.domain }

// Code returns the error code.
func (e Error) Code() int { return e.code }

// Message returns the domain's message for the code. Calling this on a
// success error is implementation defined according to the domain.
func (e Error) Message() string { return e.domain.Message(e.code) }

// Success reports whether the error indicates success.
func (e Error) Success() bool { return e.domain.Success(e.code) }

// Failure reports whether the error indicates failure.
func (e Error) Failure() bool { return !e.domain.Success(e.code) }
